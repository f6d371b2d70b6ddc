package bigutil

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestToBytes32RoundTrip(t *testing.T) {
	n := big.NewInt(0x0102030405)
	b := ToBytes32(n)

	assert.Len(t, b, FieldByteSize)
	assert.Equal(t, byte(0x05), b[0])
	assert.Equal(t, byte(0x04), b[1])

	assert.Equal(t, 0, FromBytesLE(b).Cmp(n))
}

func TestToBytes32ZeroPadded(t *testing.T) {
	b := ToBytes32(big.NewInt(1))
	assert.Equal(t, byte(1), b[0])
	for _, v := range b[1:] {
		assert.Equal(t, byte(0), v)
	}
}

func TestFromBytesLEProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("ToBytes32 then FromBytesLE is identity for values below 2^256", prop.ForAll(
		func(raw []byte) bool {
			n := new(big.Int).SetBytes(raw)
			return FromBytesLE(ToBytes32(n)).Cmp(n) == 0
		},
		gen.SliceOfN(32, gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestSha256SnarkReducesModM(t *testing.T) {
	m := big.NewInt(97)
	h := Sha256Snark("hello", m)
	assert.True(t, h.Sign() >= 0)
	assert.True(t, h.Cmp(m) < 0)
}

func TestSha256SnarkDeterministic(t *testing.T) {
	m := big.NewInt(1<<62 - 1)
	a := Sha256Snark("same input", m)
	b := Sha256Snark("same input", m)
	assert.Equal(t, 0, a.Cmp(b))
}
