// Package l2signer is the public entry point: it composes request
// canonicalization, Poseidon, and EdDSA into the three operations callers
// actually need: sign an HTTP request, sign a list of scalars, and derive
// an L2 keypair from an L1 signature.
package l2signer

import (
	"math/big"
	"strings"

	"github.com/loopring-sign/l2signer/bigutil"
	"github.com/loopring-sign/l2signer/eddsa"
	"github.com/loopring-sign/l2signer/fq"
	"github.com/loopring-sign/l2signer/keygen"
	"github.com/loopring-sign/l2signer/poseidon"
	"github.com/loopring-sign/l2signer/reqsign"
)

// Account is re-exported so callers don't need to import keygen directly.
type Account = keygen.Account

// SignRequest canonicalizes the HTTP request description, reduces its SHA-256
// digest modulo the SNARK scalar field, and signs the resulting scalar with
// privateKeyHex.
//
// A malformed privateKeyHex is treated as the zero scalar rather than
// rejected. This mirrors the reference implementation's observable
// behavior and is a known footgun, not a recommended way to call this
// function.
func SignRequest(method, url string, params []reqsign.Param, privateKeyHex string) string {
	base := reqsign.BaseString(method, url, params)
	message := bigutil.Sha256Snark(base, fq.SnarkScalarField)

	k := parsePrivateKeyHex(privateKeyHex)
	signed := eddsa.Sign(k, message)
	return signed.Hex()
}

// SignScalars Poseidon-hashes inputs (state width t = len(inputs)+1, R_P=53)
// into a single message scalar, then signs that scalar with privateKeyHex.
// Returns poseidon.ErrorPoseidonEmptyInput if inputs is empty.
func SignScalars(inputs []*big.Int, privateKeyHex string) (string, error) {
	params := poseidon.ScalarParameters(len(inputs))
	message, err := poseidon.Permute(params, inputs)
	if err != nil {
		return "", err
	}

	k := parsePrivateKeyHex(privateKeyHex)
	signed := eddsa.Sign(k, message)
	return signed.Hex(), nil
}

// DeriveAccount derives an L2 keypair from an L1 ECDSA signature hex string.
func DeriveAccount(signedMessageECDSAHex string) (Account, error) {
	return keygen.DeriveAccount(signedMessageECDSAHex)
}

// parsePrivateKeyHex parses a 0x-prefixed hex private key. On parse failure
// it returns the zero scalar rather than an error, matching the reference
// implementation.
func parsePrivateKeyHex(hexKey string) *big.Int {
	trimmed := strings.TrimPrefix(hexKey, "0x")
	k, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return big.NewInt(0)
	}
	return k
}
