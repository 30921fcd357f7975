// Package hdpath represents BIP-32 derivation paths such as
// m/44'/60'/0'/0/0: an ordered sequence of child numbers, each either
// normal or hardened. Parsing and serialization round-trip exactly on the
// canonical form.
package hdpath

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is the child-number bit that marks hardened derivation.
const HardenedOffset uint32 = 0x80000000

// ErrEmpty is returned when a path string yields no components.
var ErrEmpty = errors.New("hdpath: empty path")

// ChildNumber is a 32-bit derivation index. The top bit flags hardened
// derivation; the low 31 bits are the index.
type ChildNumber uint32

// Normal returns the non-hardened child number for an index.
func Normal(i uint32) ChildNumber {
	return ChildNumber(i &^ HardenedOffset)
}

// Hardened returns the hardened child number for an index.
func Hardened(i uint32) ChildNumber {
	return ChildNumber(i | HardenedOffset)
}

// IsHardened reports whether the hardened bit is set.
func (c ChildNumber) IsHardened() bool {
	return uint32(c)&HardenedOffset != 0
}

// Index returns the low 31 bits.
func (c ChildNumber) Index() uint32 {
	return uint32(c) &^ HardenedOffset
}

// Bytes returns the big-endian encoding used in derivation HMACs.
func (c ChildNumber) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(c))
	return b
}

// String renders the index with a trailing apostrophe when hardened.
func (c ChildNumber) String() string {
	if c.IsHardened() {
		return strconv.FormatUint(uint64(c.Index()), 10) + "'"
	}
	return strconv.FormatUint(uint64(c.Index()), 10)
}

// Path is an ordered, root-relative derivation path (the leading "m" is
// implicit). Order defines the walk through the key tree.
type Path []ChildNumber

// Parse reads a path of the grammar ("m/")? segment ("/" segment)*, where
// a segment is a decimal index optionally followed by ' for hardened.
// Indices must be below 2^31 so that parse and String round-trip without
// aliasing the hardened bit.
func Parse(s string) (Path, error) {
	var path Path
	for _, component := range strings.Split(s, "/") {
		if component == "m" {
			continue
		}
		hardened := strings.HasSuffix(component, "'")
		digits := strings.TrimSuffix(component, "'")
		index, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("hdpath: bad segment %q: %w", component, err)
		}
		if index >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("hdpath: index %d out of range in %q", index, component)
		}
		if hardened {
			path = append(path, Hardened(uint32(index)))
		} else {
			path = append(path, Normal(uint32(index)))
		}
	}
	if len(path) == 0 {
		return nil, ErrEmpty
	}
	return path, nil
}

// String renders the canonical form m/i1/i2/... with ' marking hardened
// components and no superfluous separators.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i == 0 {
			b.WriteString("m/")
		} else {
			b.WriteByte('/')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Bytes concatenates the big-endian encodings of every component.
func (p Path) Bytes() []byte {
	out := make([]byte, 0, 4*len(p))
	for _, c := range p {
		b := c.Bytes()
		out = append(out, b[:]...)
	}
	return out
}
