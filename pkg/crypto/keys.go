// Package crypto provides the secp256k1 key-pair operations the key tree
// builds on: constructing private keys from raw bytes, deriving public
// keys, tweak-adding child private keys and rendering account addresses.
package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"

	"github.com/tidewater-labs/hdwallet/pkg/types"
)

// PrivateKeySize is the length of a serialized private key in bytes.
const PrivateKeySize = 32

// ErrInvalidTweak is returned when a derivation tweak is not a usable
// scalar: it is at or above the curve order, or the tweaked key is zero.
var ErrInvalidTweak = errors.New("crypto: invalid derivation tweak")

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GeneratePrivateKey creates a new random secp256k1 private key.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("crypto: generate key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret. The
// secret must be non-zero and below the curve order.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("crypto: private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("crypto: private key exceeds curve order")
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("crypto: private key is zero")
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PublicKey returns the public key for this private key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: pk.key.PubKey()}
}

// DeriveChild returns a new private key whose scalar is this key's scalar
// plus the tweak, modulo the curve order. The parent is not modified.
func (pk *PrivateKey) DeriveChild(tweak [32]byte) (*PrivateKey, error) {
	var t secp256k1.ModNScalar
	if overflow := t.SetBytes(&tweak); overflow != 0 {
		return nil, ErrInvalidTweak
	}
	sum := new(secp256k1.ModNScalar).Add2(&t, &pk.key.Key)
	if sum.IsZero() {
		return nil, ErrInvalidTweak
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(sum)}, nil
}

// Serialize returns the 32-byte big-endian private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Equal reports whether two private keys hold the same scalar.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	return other != nil && pk.key.Key.Equals(&other.key.Key)
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// PublicKey wraps a secp256k1 public key.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePubKey parses a compressed (33-byte) or uncompressed (65-byte)
// public key.
func ParsePubKey(b []byte) (*PublicKey, error) {
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("crypto: parse public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.key.SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte uncompressed encoding.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.key.SerializeUncompressed()
}

// Equal reports whether two public keys are the same point.
func (p *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && p.key.IsEqual(other.key)
}

// Address derives the account address: the last 20 bytes of the
// Keccak-256 of the uncompressed public key point (without the 0x04 tag).
func (p *PublicKey) Address() types.Address {
	un := p.key.SerializeUncompressed()
	h := sha3.NewLegacyKeccak256()
	h.Write(un[1:])
	sum := h.Sum(nil)

	var addr types.Address
	copy(addr[:], sum[types.HashSize-types.AddressSize:])
	return addr
}
