package reqsign

import (
	"fmt"
	"strings"
)

// percentEncode percent-encodes every byte of s for which safe returns
// false, as %XX uppercase hex. Bytes for which safe returns true pass
// through unchanged.
func percentEncode(s string, safe func(byte) bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if safe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// urlFragmentSafe implements the CONTROLS ∪ {':', '/'} charset: every byte
// except ASCII control characters, ':', and '/' is left unescaped. It is
// used for the URL component of the signature base string.
func urlFragmentSafe(b byte) bool {
	if isASCIIControl(b) {
		return false
	}
	return b != ':' && b != '/'
}

// nonAlphanumericSafe implements the NON_ALPHANUMERIC charset: only ASCII
// letters and digits are left unescaped; everything else, including '-',
// '_', '.', and '~', is percent-encoded.
func nonAlphanumericSafe(b byte) bool {
	return isASCIIAlphaNumeric(b)
}

func isASCIIControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func isASCIIAlphaNumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// formURLEncode implements the application/x-www-form-urlencoded
// serialization WHATWG defines: alphanumerics and '*', '-', '.', '_' pass
// through, a space becomes '+', and everything else is percent-encoded.
func formURLEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case isFormURLSafe(c):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isFormURLSafe(b byte) bool {
	if isASCIIAlphaNumeric(b) {
		return true
	}
	switch b {
	case '*', '-', '.', '_':
		return true
	}
	return false
}
