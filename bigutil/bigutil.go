// Package bigutil provides the byte-level and big-integer conversions shared
// by every other package in this module. Endianness here is load-bearing:
// hash inputs are little-endian, hex display and the request-signing digest
// are big-endian, and mixing the two silently breaks wire compatibility with
// the remote rollup.
package bigutil

import (
	"crypto/sha256"
	"math/big"
)

// FieldByteSize is the fixed width, in bytes, of every field element and
// scalar this module serializes: 32 bytes holds the 254-bit SNARK scalar
// field with room to spare.
const FieldByteSize = 32

// ToBytes32 encodes n as exactly FieldByteSize bytes, little-endian,
// zero-padded on the right. Callers must reduce n modulo a field/subgroup
// order before calling this: values of 2^256 or larger are truncated rather
// than rejected, matching the reference implementation this module is wire
// compatible with.
func ToBytes32(n *big.Int) []byte {
	out := make([]byte, FieldByteSize)
	le := n.Bytes() // big-endian
	for i, j := 0, len(le)-1; j >= 0 && i < FieldByteSize; i, j = i+1, j-1 {
		out[i] = le[j]
	}
	return out
}

// FromBytesLE interprets b as a non-negative integer in little-endian byte
// order.
func FromBytesLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, j := 0, len(b)-1; j >= 0; i, j = i+1, j-1 {
		be[i] = b[j]
	}
	return new(big.Int).SetBytes(be)
}

// Sha256Snark hashes the UTF-8 bytes of s with SHA-256, interprets the
// digest as a big-endian integer, and reduces it modulo m. This is the
// request-hash-to-field function used to turn a canonicalized HTTP request
// into a Poseidon-ready scalar.
func Sha256Snark(s string, m *big.Int) *big.Int {
	sum := sha256.Sum256([]byte(s))
	h := new(big.Int).SetBytes(sum[:])
	return h.Mod(h, m)
}
