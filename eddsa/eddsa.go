// Package eddsa implements Hash-EdDSA over Baby Jubjub with Poseidon as the
// challenge hash: the signer holds a secret scalar k, derives a
// message-dependent nonce r deterministically (never re-randomized, since
// nonce reuse across distinct messages leaks k), and produces a signature
// (R, s) that a verifier can check against the public point A = k*G.
//
// This package only signs; verification of an existing signature is
// explicitly out of scope.
package eddsa

import (
	"crypto/sha512"
	"fmt"
	"math/big"

	"github.com/loopring-sign/l2signer/babyjubjub"
	"github.com/loopring-sign/l2signer/bigutil"
	"github.com/loopring-sign/l2signer/fq"
	"github.com/loopring-sign/l2signer/poseidon"
)

// Signature is a Baby Jubjub EdDSA signature: the nonce commitment point R
// and the response scalar s.
type Signature struct {
	R *babyjubjub.Point
	S *big.Int
}

// SignedMessage bundles a signature with the public key and message scalar
// it was produced under, mirroring the reference implementation's
// (A, (R, s), M) triple.
type SignedMessage struct {
	A *babyjubjub.Point
	Signature
	M *big.Int
}

// String renders the signature as decimal "Rx Ry s", matching the reference
// implementation's Signature::to_string.
func (sig Signature) String() string {
	return fmt.Sprintf("%s %s %s", sig.R.X.String(), sig.R.Y.String(), sig.S.String())
}

// Hex renders the signature for wire transport: 0x followed by R.x, R.y, and
// s, each zero-padded to 64 hex digits (32 bytes, big-endian display).
func (sig Signature) Hex() string {
	return "0x" + hex64(sig.R.X) + hex64(sig.R.Y) + hex64(sig.S)
}

// Sign produces a deterministic Hash-EdDSA signature of the message scalar M
// under the private scalar k.
func Sign(k *big.Int, m *big.Int) SignedMessage {
	base := babyjubjub.Generate()
	a := babyjubjub.Mul(base, k)

	r := nonce(k, m)
	rPoint := babyjubjub.Mul(base, r)

	challenge := challengeHash(rPoint, a, m)

	// s = (r + k*t) mod E
	s := new(big.Int).Add(r, new(big.Int).Mul(k, challenge))
	s.Mod(s, babyjubjub.E)

	return SignedMessage{
		A: a,
		Signature: Signature{
			R: rPoint,
			S: s,
		},
		M: m,
	}
}

// nonce computes r = SHA-512(to_bytes_32(k) || to_bytes_32(m)), interpreted
// little-endian, reduced modulo the subgroup order L. It is deterministic in
// (k, m): reusing it across distinct messages would leak k.
func nonce(k, m *big.Int) *big.Int {
	buf := append(bigutil.ToBytes32(k), bigutil.ToBytes32(m)...)
	sum := sha512.Sum512(buf)
	r := bigutil.FromBytesLE(sum[:])
	return fq.ModReduce(r, babyjubjub.L)
}

// challengeHash computes t = Poseidon(R.x, R.y, A.x, A.y, M) using the
// (t=6, R_F=6, R_P=52) parameter set.
func challengeHash(r, a *babyjubjub.Point, m *big.Int) *big.Int {
	params := poseidon.PublicParameters()
	inputs := []*big.Int{r.X, r.Y, a.X, a.Y, m}

	t, err := poseidon.Permute(params, inputs)
	if err != nil {
		// Five inputs into a t=6 permutation can never trip EmptyInput or
		// InputsExceedRate; a failure here means the parameter set itself
		// is malformed.
		panic(fmt.Sprintf("eddsa: challenge hash permutation failed: %v", err))
	}
	return t
}

func hex64(n *big.Int) string {
	return fmt.Sprintf("%064x", n)
}
