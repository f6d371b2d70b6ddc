package babyjubjub

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarGen() gopter.Gen {
	return gen.SliceOfN(8, gen.UInt8()).Map(func(b []byte) *big.Int {
		return new(big.Int).SetBytes(b)
	})
}

func subgroupPointGen() gopter.Gen {
	return scalarGen().Map(func(k *big.Int) *Point {
		return Mul(Generate(), k)
	})
}

func TestGenerateIsOnCurveAndInSubgroup(t *testing.T) {
	g := Generate()
	assert.True(t, OnCurve(g))
	assert.True(t, InSubgroup(g))
}

func TestGPlusNeutralIsG(t *testing.T) {
	g := Generate()
	sum := Add(g, Neutral())
	assert.Equal(t, 0, sum.X.Cmp(g.X))
	assert.Equal(t, 0, sum.Y.Cmp(g.Y))
}

func TestCurveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("sum of two subgroup points stays on the curve", prop.ForAll(
		func(p, q *Point) bool {
			return OnCurve(Add(p, q))
		},
		subgroupPointGen(), subgroupPointGen(),
	))

	properties.Property("k1*(k2*G) == (k1*k2 mod L)*G", prop.ForAll(
		func(k1, k2 *big.Int) bool {
			lhs := Mul(Mul(Generate(), k2), k1)
			prod := new(big.Int).Mod(new(big.Int).Mul(k1, k2), L)
			rhs := Mul(Generate(), prod)
			return lhs.X.Cmp(rhs.X) == 0 && lhs.Y.Cmp(rhs.Y) == 0
		},
		scalarGen(), scalarGen(),
	))

	properties.TestingRun(t)
}

func TestAsScalar(t *testing.T) {
	g := Generate()
	s := AsScalar(g)
	require.Equal(t, 0, s[0].Cmp(g.X))
	require.Equal(t, 0, s[1].Cmp(g.Y))
}
