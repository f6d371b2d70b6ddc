package l2signer

import (
	"math/big"
	"testing"

	"github.com/loopring-sign/l2signer/reqsign"
	"github.com/stretchr/testify/require"
)

func TestSignRequestVector(t *testing.T) {
	got := SignRequest(
		"POST",
		"https://api3.loopring.io/api/v3/apiKey",
		[]reqsign.Param{{Key: "accountId", Value: "12345"}},
		"0x087d254d02a857d215c4c14d72521f8ab6a81ec8f0107eaf16093ebb7c70dc50",
	)

	want := "0x15fdcda3ca2965d2ae43739cc6740e50c08d3f756c6161bcedb10fbc05290e000f3bc31e2293ba91ca7ac55cd20a86ae3541d3dfed63896cd474015ec60b8d40274f98b2d0a87ebf8cd0ee16dc9ec953a229cf0d6b2b61867ca80ba6e8ae1ed3"
	require.Equal(t, want, got)
}

func TestSignRequestMalformedKeyDegradesToZero(t *testing.T) {
	zeroKeySig := SignRequest(
		"GET",
		"https://api3.loopring.io/api/v3/apiKey",
		[]reqsign.Param{{Key: "accountId", Value: "1"}},
		"not hex at all",
	)
	zeroSig := SignRequest(
		"GET",
		"https://api3.loopring.io/api/v3/apiKey",
		[]reqsign.Param{{Key: "accountId", Value: "1"}},
		"0x0000000000000000000000000000000000000000000000000000000000000000",
	)
	require.Equal(t, zeroSig, zeroKeySig)
}

func TestSignScalarsDeterministic(t *testing.T) {
	inputs := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}

	a, err := SignScalars(inputs, "0x01")
	require.NoError(t, err)
	b, err := SignScalars(inputs, "0x01")
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestSignScalarsRejectsEmptyInput(t *testing.T) {
	_, err := SignScalars(nil, "0x01")
	require.Error(t, err)
}

func TestDeriveAccountVector(t *testing.T) {
	account, err := DeriveAccount("0xf8214f068c55d1bebf1fbefced91eba5f4bbe14315e1ad71f61f21e094f5853a12eba239aeaa77538ae458eebe49ca2b732d211bf0943095b3502a3b0e6a08cd1c")
	require.NoError(t, err)
	require.Equal(t, "0x001fa186947c8c644cd11078f67e0bb21656432f55c4df76997b6acab2abda7f", account.PrivateKeyHex)
}
