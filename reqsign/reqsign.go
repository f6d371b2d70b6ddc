// Package reqsign canonicalizes an HTTP request description into the exact
// byte string the exchange expects as input to its request-signing hash.
// Every byte here is part of the wire contract and is pinned by literal
// test vectors, not just described behaviorally.
package reqsign

import (
	"encoding/json"
	"sort"
	"strings"
)

// Param is a single request parameter. A plain []Param (rather than a map)
// is used throughout so that POST/PUT bodies can preserve caller-supplied
// insertion order, which the signing contract requires.
type Param struct {
	Key   string
	Value string
}

// BaseString builds the signature base string: METHOD & encoded-URL &
// encoded-params.
func BaseString(method, url string, params []Param) string {
	upperMethod := strings.ToUpper(method)

	var encodedParams string
	switch upperMethod {
	case "GET", "DELETE":
		encodedParams = encodeGetDeleteParams(params)
	case "POST", "PUT":
		encodedParams = encodePostPutParams(params)
	default:
		encodedParams = ""
	}

	return upperMethod + "&" + percentEncode(url, urlFragmentSafe) + "&" + encodedParams
}

// encodeGetDeleteParams sorts pairs by key, form-urlencodes them, percent-
// encodes the whole thing with the NON_ALPHANUMERIC charset, then doubles up
// the encoding of commas (the remote service requires %252C, not %2C).
func encodeGetDeleteParams(params []Param) string {
	sorted := make([]Param, len(params))
	copy(sorted, params)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	pairs := make([]string, len(sorted))
	for i, p := range sorted {
		pairs[i] = formURLEncode(p.Key) + "=" + formURLEncode(p.Value)
	}
	formEncoded := strings.Join(pairs, "&")

	encoded := percentEncode(formEncoded, nonAlphanumericSafe)
	return strings.ReplaceAll(encoded, "%2C", "%252C")
}

// encodePostPutParams serializes params as a JSON object preserving
// insertion order (not sorted), percent-encodes it with NON_ALPHANUMERIC,
// then additionally escapes '!', ''', '(', ')'. nonAlphanumericSafe already
// percent-encodes these four characters, so this replacement step does not
// change the output.
func encodePostPutParams(params []Param) string {
	jsonStr := orderedJSONObject(params)
	encoded := percentEncode(jsonStr, nonAlphanumericSafe)

	replacer := strings.NewReplacer(
		"!", "%21",
		"'", "%27",
		"(", "%28",
		")", "%29",
	)
	return replacer.Replace(encoded)
}

// orderedJSONObject renders params as a compact JSON object in insertion
// order. encoding/json is used for correct string escaping of each value;
// the object braces and ordering are assembled by hand since Go maps and
// json.Marshal on structs cannot express caller-supplied key order.
func orderedJSONObject(params []Param) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(&b, p.Key)
		b.WriteByte(':')
		writeJSONString(&b, p.Value)
	}
	b.WriteByte('}')
	return b.String()
}

func writeJSONString(b *strings.Builder, s string) {
	encoded, _ := json.Marshal(s)
	b.Write(encoded)
}
