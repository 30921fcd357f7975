package mnemonic

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a stretched seed in bytes (512 bits).
const SeedSize = 64

// seedIterations is the PBKDF2 iteration count fixed by BIP-39.
const seedIterations = 2048

// Seed is the opaque 64-byte output of the PBKDF2 stretch. It is a one-way
// function of (phrase, passphrase); no relation back to the entropy is kept.
type Seed []byte

// NewSeed stretches a mnemonic's phrase and an optional passphrase into a
// 64-byte seed with PBKDF2-HMAC-SHA512. The salt is the NFKD form of
// "mnemonic" followed by the raw passphrase.
func NewSeed(m *Mnemonic, passphrase string) Seed {
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return Seed(pbkdf2.Key([]byte(m.Phrase()), []byte(salt), seedIterations, SeedSize, sha512.New))
}

// Seed is shorthand for NewSeed(m, passphrase).
func (m *Mnemonic) Seed(passphrase string) Seed {
	return NewSeed(m, passphrase)
}

// ParseSeed decodes a hex-encoded seed.
func ParseSeed(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("mnemonic: parse seed: %w", err)
	}
	if len(b) != SeedSize {
		return nil, fmt.Errorf("mnemonic: parse seed: got %d bytes, want %d", len(b), SeedSize)
	}
	return Seed(b), nil
}

// Bytes returns the raw seed bytes.
func (s Seed) Bytes() []byte { return []byte(s) }

func (s Seed) String() string { return hex.EncodeToString(s) }
