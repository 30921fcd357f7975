package types

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// HashSize is the length of a hash in bytes.
const HashSize = 32

// Hash represents a 256-bit content hash.
type Hash [HashSize]byte

// Fingerprint computes the BLAKE3-256 hash of data. Wallets use it to
// derive stable identifiers from public key material.
func Fingerprint(data []byte) Hash {
	return blake3.Sum256(data)
}

// HashFromBytes builds a Hash from exactly HashSize bytes.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSize {
		return h, fmt.Errorf("types: hash must be %d bytes, got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// IsZero returns true if the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// Short returns the first 8 hex characters, for log output.
func (h Hash) Short() string {
	return hex.EncodeToString(h[:4])
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
