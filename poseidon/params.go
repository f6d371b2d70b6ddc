package poseidon

import (
	"errors"
	"math/big"

	"github.com/loopring-sign/l2signer/bigutil"
	"github.com/loopring-sign/l2signer/fq"
	"golang.org/x/crypto/blake2b"
)

// Poseidon permutation errors, matching the two misuse conditions the
// protocol's reference implementation distinguishes.
var (
	// ErrorPoseidonEmptyInput is returned when Permute is called with no inputs.
	ErrorPoseidonEmptyInput = errors.New("poseidon: no inputs provided")

	// ErrorPoseidonInputsExceedRate is returned when the number of inputs is not
	// strictly less than the state width t (the usable rate is t-1).
	ErrorPoseidonInputsExceedRate = errors.New("poseidon: inputs exceed the rate")
)

// defaultSBoxExponent is the S-box power map exponent every parameter set in
// this protocol uses. It is still carried as a field on Parameters, not a
// bare constant, because the permutation is defined in terms of it.
var defaultSBoxExponent = big.NewInt(5)

// Parameters bundles everything a Poseidon permutation call needs: the
// field it runs over, the state width, the full/partial round counts, the
// S-box exponent, and the round constants and MDS matrix derived from seed.
type Parameters struct {
	P        *big.Int
	T        int
	RF       int
	RP       int
	Seed     string
	E        *big.Int
	Security int
	C        []*big.Int
	M        [][]*big.Int
}

// NewParameters builds a full parameter set, deriving C and M from seed per
// the "{seed}_constants" / "{seed}_matrix_0000" convention. The S-box
// exponent is fixed at 5; no caller in this protocol ever varies it.
func NewParameters(p *big.Int, t, rf, rp int, seed string, security int) *Parameters {
	return &Parameters{
		P:        p,
		T:        t,
		RF:       rf,
		RP:       rp,
		Seed:     seed,
		E:        defaultSBoxExponent,
		Security: security,
		C:        DeriveConstants(p, seed+"_constants", rf+rp),
		M:        DeriveMatrix(p, seed+"_matrix_0000", t),
	}
}

// PublicParameters returns the (t=6, R_F=6, R_P=52) parameter set used for
// EdDSA's hash_public(R, A, M) challenge hash.
func PublicParameters() *Parameters {
	return NewParameters(fq.SnarkScalarField, 6, 6, 52, "poseidon", 128)
}

// ScalarParameters returns the parameter set used for signing a list of n
// scalars directly: state width t = n+1, with R_P = 53 rather than 52 (the
// reference implementation uses a different partial-round count for this
// variable-width family of state widths).
func ScalarParameters(n int) *Parameters {
	return NewParameters(fq.SnarkScalarField, n+1, 6, 53, "poseidon", 128)
}

// DeriveConstants produces n field elements from seed by chaining
// Blake2b-256: c[0] is Blake2b(seed) mod p, and each subsequent hash is
// computed over the raw (unreduced) previous 256-bit digest, not its mod-p
// reduction. Diverging from that chaining rule breaks bit-for-bit
// compatibility with the reference implementation.
func DeriveConstants(p *big.Int, seed string, n int) []*big.Int {
	result := make([]*big.Int, n)

	h := blake2bLE([]byte(seed))
	result[0] = fq.ModReduce(h, p)

	for i := 1; i < n; i++ {
		h = blake2bLE(bigutil.ToBytes32(h))
		result[i] = fq.ModReduce(h, p)
	}

	return result
}

// DeriveMatrix builds the t x t Cauchy MDS matrix from 2t seed-derived
// constants: M[i][j] is the modular inverse of the Euclidean-reduced
// difference c[i] - c[t+j].
func DeriveMatrix(p *big.Int, seed string, t int) [][]*big.Int {
	c := DeriveConstants(p, seed, 2*t)
	exp := new(big.Int).Sub(p, big.NewInt(2))

	m := make([][]*big.Int, t)
	for i := 0; i < t; i++ {
		row := make([]*big.Int, t)
		for j := 0; j < t; j++ {
			diff := fq.ModReduce(new(big.Int).Sub(c[i], c[t+j]), p)
			row[j] = new(big.Int).Exp(diff, exp, p)
		}
		m[i] = row
	}
	return m
}

func blake2bLE(b []byte) *big.Int {
	sum := blake2b.Sum256(b)
	return bigutil.FromBytesLE(sum[:])
}
