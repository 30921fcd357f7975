// Package words provides the BIP-39 word tables: 2048-entry ordered
// vocabularies with forward (index to word), reverse (word to index) and
// prefix lookup. Tables are loaded once and shared read-only.
package words

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// TableSize is the number of words in every BIP-39 table.
const TableSize = 2048

// ErrInvalidWord is returned when a word is not present in a table, or an
// index is outside the table.
var ErrInvalidWord = errors.New("words: invalid word")

// Language identifies a word table in the registry.
type Language string

// Built-in languages, registered at init.
const (
	English            Language = "english"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	Czech              Language = "czech"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
)

// List is an immutable 2048-word table with its reverse lookup.
type List struct {
	words  []string
	index  map[string]int
	sorted bool
}

// NewList builds a List from exactly TableSize unique words. The table's
// sort order is checked here so prefix lookup can decide between binary
// search and a linear scan; an unsorted table is accepted but never
// binary-searched.
func NewList(ws []string) (*List, error) {
	if len(ws) != TableSize {
		return nil, fmt.Errorf("words: table has %d entries, want %d", len(ws), TableSize)
	}
	owned := make([]string, TableSize)
	copy(owned, ws)

	index := make(map[string]int, TableSize)
	for i, w := range owned {
		if w == "" {
			return nil, fmt.Errorf("words: empty word at index %d", i)
		}
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("words: duplicate word %q", w)
		}
		index[w] = i
	}

	return &List{
		words:  owned,
		index:  index,
		sorted: sort.StringsAreSorted(owned),
	}, nil
}

// Word returns the word at the given index (0..2047).
func (l *List) Word(i int) (string, error) {
	if i < 0 || i >= len(l.words) {
		return "", fmt.Errorf("words: index %d out of range: %w", i, ErrInvalidWord)
	}
	return l.words[i], nil
}

// Index returns the table index of the given word.
func (l *List) Index(word string) (int, error) {
	i, ok := l.index[word]
	if !ok {
		return 0, fmt.Errorf("words: %q not in table: %w", word, ErrInvalidWord)
	}
	return i, nil
}

// Sorted reports whether the table is in lexicographic order.
func (l *List) Sorted() bool {
	return l.sorted
}

// WordsWithPrefix returns all words starting with prefix, in table order.
// Sorted tables are binary-searched; unsorted tables fall back to a scan.
func (l *List) WordsWithPrefix(prefix string) []string {
	if !l.sorted {
		var out []string
		for _, w := range l.words {
			if strings.HasPrefix(w, prefix) {
				out = append(out, w)
			}
		}
		return out
	}

	start := sort.SearchStrings(l.words, prefix)
	end := start
	for end < len(l.words) && strings.HasPrefix(l.words[end], prefix) {
		end++
	}
	if start == end {
		return nil
	}
	return l.words[start:end:end]
}

var (
	registryMu sync.RWMutex
	registry   = make(map[Language]*List)
)

// Register adds a word table for a language. Registering an already-known
// language is an error; built-in tables cannot be replaced.
func Register(lang Language, list *List) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[lang]; ok {
		return fmt.Errorf("words: language %q already registered", lang)
	}
	registry[lang] = list
	return nil
}

// Get returns the word table for a language.
func Get(lang Language) (*List, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[lang]
	if !ok {
		return nil, fmt.Errorf("words: unknown language %q", lang)
	}
	return l, nil
}

// Languages returns the registered language identifiers, sorted.
func Languages() []Language {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Language, 0, len(registry))
	for lang := range registry {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
