// Package babyjubjub implements the Baby Jubjub twisted-Edwards group used as
// the signing curve for this protocol's EdDSA scheme.
//
// Point arithmetic (addition, scalar multiplication, curve/subgroup
// membership) is delegated to github.com/iden3/go-iden3-crypto/babyjub,
// whose affine Point type implements the same generic twisted-Edwards group
// law this curve uses (A=168700, D=168696 over the SNARK scalar field). Only
// the generator differs from that library's default: this protocol pins G to
// the point recovered from the k=1 test vector in the protocol's reference
// implementation, not iden3's own B8 base point, so Generate returns that
// value explicitly rather than delegating to babyjub.B8.
package babyjubjub

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/babyjub"
)

// Point is an affine Baby Jubjub curve point (x, y) satisfying
// A*x^2 + y^2 = 1 + D*x^2*y^2 over the SNARK scalar field.
type Point = babyjub.Point

// L is the prime order of the Baby Jubjub subgroup this protocol's scalars
// live in.
var L = babyjub.SubOrder

// E is the order of the full curve group (L times the curve's cofactor of
// 8), used as the modulus when reducing the EdDSA signature scalar s.
var E = babyjub.Order

// generatorX, generatorY pin this protocol's generator G. They are the
// affine coordinates recovered from signing with the private scalar k=1
// (A = k*G = G), the only way the reference implementation's generator is
// observable: it is never printed directly, only used.
var (
	generatorX, _ = new(big.Int).SetString(
		"16540640123574156134436876038791482806971768689494387082833631921987005038935", 10)
	generatorY, _ = new(big.Int).SetString(
		"20819045374670962167435360035096875258406992893633759881276124905556507972311", 10)
)

// Generate returns the fixed generator point G.
func Generate() *Point {
	return &Point{X: new(big.Int).Set(generatorX), Y: new(big.Int).Set(generatorY)}
}

// Neutral returns the group identity (0, 1).
func Neutral() *Point {
	return &Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// Add returns p+q using the complete twisted-Edwards unified addition
// formula.
func Add(p, q *Point) *Point {
	return babyjub.NewPoint().Projective().Add(p.Projective(), q.Projective()).Affine()
}

// Mul returns k*p, scalar multiplication via the underlying library's
// double-and-add implementation.
func Mul(p *Point, k *big.Int) *Point {
	return babyjub.NewPoint().Mul(k, p)
}

// OnCurve reports whether p satisfies the curve equation.
func OnCurve(p *Point) bool {
	return p.InCurve()
}

// InSubgroup reports whether p lies in the prime-order subgroup of order L.
func InSubgroup(p *Point) bool {
	return p.InSubGroup()
}

// AsScalar returns [x, y] as big integers, the representation Poseidon
// consumes when a point is one of its inputs.
func AsScalar(p *Point) [2]*big.Int {
	return [2]*big.Int{new(big.Int).Set(p.X), new(big.Int).Set(p.Y)}
}
