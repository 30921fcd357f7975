// Package types defines the small fixed-size value types shared across the
// wallet: account addresses and content hashes.
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address represents a 160-bit account address (the trailing 20 bytes of
// the Keccak-256 of an uncompressed public key).
type Address [AddressSize]byte

// AddressFromBytes builds an Address from exactly AddressSize bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, fmt.Errorf("types: address must be %d bytes, got %d", AddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress decodes a hex address with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("types: parse address: %w", err)
	}
	return AddressFromBytes(b)
}

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// String returns the 0x-prefixed, EIP-55 checksummed rendering: a hex
// letter is upper-cased when the corresponding nibble of the Keccak-256
// of the lower-case hex string is 8 or more.
func (a Address) String() string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out)
}

// Hex returns the raw lower-case hex address without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// MarshalJSON encodes the address as its checksummed string form.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes either checksummed or plain hex forms.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAddress(strings.ToLower(s))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
