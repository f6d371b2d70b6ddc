// Package fq implements finite field arithmetic over the SNARK scalar field
// (and, by supplying a different modulus, any prime field the rest of the
// module needs). Every operation preserves the invariant that the stored
// representative lies in [0, m).
package fq

import (
	"errors"
	"math/big"
)

// SnarkScalarField is p_Q, the BN254 scalar field prime and the base field
// Baby Jubjub is defined over.
var SnarkScalarField, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10,
)

// ErrorFQDivisionByZero is returned by Div when the divisor is zero modulo m; there
// is no multiplicative inverse to compute.
var ErrorFQDivisionByZero = errors.New("fq: division by zero")

// FQ is a field element: a residue n together with the modulus m it is
// reduced against. The zero value is not meaningful; construct with New.
type FQ struct {
	n *big.Int
	m *big.Int
}

// New reduces n modulo m (Euclidean remainder, always non-negative) and
// returns the resulting field element. If m is nil, SnarkScalarField is
// used.
func New(n *big.Int, m *big.Int) FQ {
	if m == nil {
		m = SnarkScalarField
	}
	r := new(big.Int).Mod(n, m)
	return FQ{n: r, m: m}
}

// N returns the canonical big integer representative in [0, m).
func (a FQ) N() *big.Int { return new(big.Int).Set(a.n) }

// M returns the modulus this element is reduced against.
func (a FQ) M() *big.Int { return new(big.Int).Set(a.m) }

// Equal compares two elements by their canonical representative. Elements
// with different moduli are never equal.
func (a FQ) Equal(b FQ) bool {
	return a.m.Cmp(b.m) == 0 && a.n.Cmp(b.n) == 0
}

// IsZero reports whether the canonical representative is zero.
func (a FQ) IsZero() bool { return a.n.Sign() == 0 }

// Add returns (a+b) mod m.
func (a FQ) Add(b FQ) FQ {
	return New(new(big.Int).Add(a.n, b.n), a.m)
}

// Sub returns (a-b) mod m using Euclidean remainder, so the result is always
// in [0, m) even when a < b.
func (a FQ) Sub(b FQ) FQ {
	return New(new(big.Int).Sub(a.n, b.n), a.m)
}

// Mul returns (a*b) mod m.
func (a FQ) Mul(b FQ) FQ {
	return New(new(big.Int).Mul(a.n, b.n), a.m)
}

// Inverse returns a^-1 mod m via Fermat's little theorem (a^(m-2) mod m),
// valid because m is prime. Returns ErrorFQDivisionByZero if a is zero.
func (a FQ) Inverse() (FQ, error) {
	if a.IsZero() {
		return FQ{}, ErrorFQDivisionByZero
	}
	exp := new(big.Int).Sub(a.m, big.NewInt(2))
	return New(new(big.Int).Exp(a.n, exp, a.m), a.m), nil
}

// Div returns a*b^-1 mod m. Returns ErrorFQDivisionByZero if b is zero.
func (a FQ) Div(b FQ) (FQ, error) {
	inv, err := b.Inverse()
	if err != nil {
		return FQ{}, err
	}
	return a.Mul(inv), nil
}

// Neg returns -a mod m.
func (a FQ) Neg() FQ {
	return New(new(big.Int).Neg(a.n), a.m)
}

// Pow returns a^e mod m for a non-negative exponent e.
func (a FQ) Pow(e *big.Int) FQ {
	return New(new(big.Int).Exp(a.n, e, a.m), a.m)
}

// ModReduce reduces n modulo m with Euclidean semantics, returning a value in
// [0, m). It is exported because several callers (Poseidon's MDS
// construction, the EdDSA nonce reduction) need the bare reduction without
// constructing an FQ.
func ModReduce(n, m *big.Int) *big.Int {
	return new(big.Int).Mod(n, m)
}
