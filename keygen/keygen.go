// Package keygen derives a Layer-2 Baby Jubjub signing keypair from a
// Layer-1 ECDSA signature over a server-issued seed, per the exchange's
// key-derivation scheme: L2_EDDSA_KEY = SHA-256(eth.sign(keySeed)) mod L.
package keygen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/loopring-sign/l2signer/babyjubjub"
	"github.com/loopring-sign/l2signer/bigutil"
)

// ErrorKeygenInvalidHex is returned when the supplied ECDSA signature is not valid
// hex, optionally 0x-prefixed.
var ErrorKeygenInvalidHex = errors.New("You didn't pass a valid hex-string")

// Account holds a derived L2 keypair, each field 0x-prefixed and zero-padded
// to 64 hex digits (32 bytes, big-endian display).
type Account struct {
	PrivateKeyHex string
	PublicXHex    string
	PublicYHex    string
}

// DeriveL2PrivateKey decodes the hex-encoded L1 ECDSA signature, SHA-256
// hashes the raw signature bytes, interprets the digest as a little-endian
// integer, and reduces it modulo the Baby Jubjub subgroup order L.
//
// The little-endian integer only needs to be built once: reading the digest
// bytes in reverse and reconstructing the same value as a weighted sum over
// powers of 256 are mathematically identical operations, so this performs
// the single equivalent reduction rather than both.
func DeriveL2PrivateKey(signedMessageECDSAHex string) (*big.Int, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signedMessageECDSAHex, "0x"))
	if err != nil {
		return nil, ErrorKeygenInvalidHex
	}

	digest := sha256.Sum256(raw)
	h := bigutil.FromBytesLE(digest[:])

	return new(big.Int).Mod(h, babyjubjub.L), nil
}

// DeriveAccount derives the full L2 Account (private scalar and public
// point) from an L1 ECDSA signature.
func DeriveAccount(signedMessageECDSAHex string) (Account, error) {
	priv, err := DeriveL2PrivateKey(signedMessageECDSAHex)
	if err != nil {
		return Account{}, err
	}

	pub := babyjubjub.Mul(babyjubjub.Generate(), priv)

	return Account{
		PrivateKeyHex: hex0x64(priv),
		PublicXHex:    hex0x64(pub.X),
		PublicYHex:    hex0x64(pub.Y),
	}, nil
}

func hex0x64(n *big.Int) string {
	return fmt.Sprintf("0x%064x", n)
}
