// Package mnemonic implements the BIP-39 mnemonic codec: a deterministic,
// checksummed mapping between raw entropy and a word phrase, plus the
// PBKDF2 seed stretch. Both directions are bit-exact against the BIP-39
// reference vectors.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tidewater-labs/hdwallet/pkg/words"
)

var (
	// ErrInvalidLength is returned when a word count or entropy size is
	// outside the five legal mnemonic sizes.
	ErrInvalidLength = errors.New("mnemonic: invalid mnemonic length")

	// ErrInvalidChecksum is returned when a phrase decodes cleanly but its
	// embedded checksum does not match the recovered entropy.
	ErrInvalidChecksum = errors.New("mnemonic: invalid checksum")
)

// wordBits is the number of entropy+checksum bits each word encodes.
const wordBits = 11

// Type is one of the five legal mnemonic sizes, identified by word count.
// Each size fixes the entropy length and the checksum length.
type Type int

const (
	Words12 Type = 12 // 128 bits of entropy
	Words15 Type = 15 // 160 bits
	Words18 Type = 18 // 192 bits
	Words21 Type = 21 // 224 bits
	Words24 Type = 24 // 256 bits
)

// TypeFromWordCount maps a word count to its Type.
func TypeFromWordCount(n int) (Type, error) {
	switch n {
	case 12, 15, 18, 21, 24:
		return Type(n), nil
	default:
		return 0, fmt.Errorf("%w: %d words", ErrInvalidLength, n)
	}
}

// TypeFromEntropySize maps an entropy byte length to its Type.
func TypeFromEntropySize(size int) (Type, error) {
	switch size {
	case 16, 20, 24, 28, 32:
		return Type(size * 8 / 32 * 3), nil
	default:
		return 0, fmt.Errorf("%w: %d entropy bytes", ErrInvalidLength, size)
	}
}

// WordCount returns the number of words in a phrase of this type.
func (t Type) WordCount() int { return int(t) }

// EntropyBits returns the number of entropy bits.
func (t Type) EntropyBits() int { return int(t) / 3 * 32 }

// ChecksumBits returns the number of checksum bits (entropy bits / 32).
func (t Type) ChecksumBits() int { return t.EntropyBits() / 32 }

// TotalBits returns the combined entropy and checksum bit count.
func (t Type) TotalBits() int { return t.EntropyBits() + t.ChecksumBits() }

// Mnemonic binds a language, raw entropy and its canonical phrase. The
// phrase is always the checksum-valid rendering of the entropy under the
// language's word table; the two never diverge.
type Mnemonic struct {
	language words.Language
	entropy  []byte
	phrase   string
}

// New generates a fresh mnemonic of the given type from crypto/rand.
func New(t Type, lang words.Language) (*Mnemonic, error) {
	if _, err := TypeFromWordCount(t.WordCount()); err != nil {
		return nil, err
	}
	ent := make([]byte, t.EntropyBits()/8)
	if _, err := rand.Read(ent); err != nil {
		return nil, fmt.Errorf("mnemonic: read entropy: %w", err)
	}
	return fromEntropy(ent, lang)
}

// FromEntropy builds the mnemonic encoding the given entropy. The entropy
// length must be 16, 20, 24, 28 or 32 bytes.
func FromEntropy(ent []byte, lang words.Language) (*Mnemonic, error) {
	if _, err := TypeFromEntropySize(len(ent)); err != nil {
		return nil, err
	}
	return fromEntropy(ent, lang)
}

// fromEntropy encodes entropy whose length is already known to be legal:
// checksum = SHA256(ent)[0], then ent||checksum is read as an MSB-first
// bit stream and split into 11-bit word indices (the trailing partial
// group is discarded).
func fromEntropy(ent []byte, lang words.Language) (*Mnemonic, error) {
	table, err := words.Get(lang)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(ent))
	copy(owned, ent)

	checksum := sha256.Sum256(owned)
	stream := make([]byte, len(owned)+1)
	copy(stream, owned)
	stream[len(owned)] = checksum[0]

	t, _ := TypeFromEntropySize(len(owned))
	var b strings.Builder
	for w := 0; w < t.WordCount(); w++ {
		idx := 0
		for bit := w * wordBits; bit < (w+1)*wordBits; bit++ {
			idx <<= 1
			if stream[bit/8]&(1<<(7-bit%8)) != 0 {
				idx |= 1
			}
		}
		word, err := table.Word(idx)
		if err != nil {
			return nil, err
		}
		if w > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}

	return &Mnemonic{language: lang, entropy: owned, phrase: b.String()}, nil
}

// FromPhrase parses and validates a phrase, recovering its entropy. The
// phrase is compatibility-decomposed first so different Unicode spellings
// of the same words are treated identically.
func FromPhrase(phrase string, lang words.Language) (*Mnemonic, error) {
	normalized := norm.NFKD.String(phrase)
	ent, err := phraseToEntropy(normalized, lang)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{language: lang, entropy: ent, phrase: normalized}, nil
}

// Validate checks a phrase for unknown words, illegal length and checksum
// mismatch, discarding the recovered entropy.
func Validate(phrase string, lang words.Language) error {
	_, err := phraseToEntropy(norm.NFKD.String(phrase), lang)
	return err
}

// phraseToEntropy reverses fromEntropy: words to 11-bit indices, indices
// to an MSB-first bit stream, stream to entropy bytes plus a trailing
// checksum byte whose top ChecksumBits bits must match SHA256(entropy).
func phraseToEntropy(phrase string, lang words.Language) ([]byte, error) {
	table, err := words.Get(lang)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(phrase)
	indices := make([]int, 0, len(fields))
	for _, w := range fields {
		idx, err := table.Index(w)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}

	t, err := TypeFromWordCount(len(indices))
	if err != nil {
		return nil, err
	}

	stream := make([]byte, (t.TotalBits()+7)/8)
	for w, idx := range indices {
		for b := 0; b < wordBits; b++ {
			if idx&(1<<(wordBits-1-b)) != 0 {
				bit := w*wordBits + b
				stream[bit/8] |= 1 << (7 - bit%8)
			}
		}
	}

	ent := stream[:t.EntropyBits()/8]
	shift := 8 - t.ChecksumBits()
	got := stream[len(ent)] >> shift

	checksum := sha256.Sum256(ent)
	want := checksum[0] >> shift

	if got != want {
		return nil, ErrInvalidChecksum
	}
	return ent, nil
}

// Entropy returns a copy of the raw entropy.
func (m *Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// Phrase returns the canonical phrase.
func (m *Mnemonic) Phrase() string { return m.phrase }

// Language returns the word-table language.
func (m *Mnemonic) Language() words.Language { return m.language }

// Type returns the mnemonic size.
func (m *Mnemonic) Type() Type {
	t, _ := TypeFromEntropySize(len(m.entropy))
	return t
}

func (m *Mnemonic) String() string { return m.phrase }
