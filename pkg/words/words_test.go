package words

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnglishTable(t *testing.T) {
	list, err := Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}

	tests := []struct {
		index int
		word  string
	}{
		{0, "abandon"},
		{3, "about"},
		{2047, "zoo"},
	}
	for _, tt := range tests {
		got, err := list.Word(tt.index)
		if err != nil {
			t.Fatalf("Word(%d) error: %v", tt.index, err)
		}
		if got != tt.word {
			t.Errorf("Word(%d) = %q, want %q", tt.index, got, tt.word)
		}

		idx, err := list.Index(tt.word)
		if err != nil {
			t.Fatalf("Index(%q) error: %v", tt.word, err)
		}
		if idx != tt.index {
			t.Errorf("Index(%q) = %d, want %d", tt.word, idx, tt.index)
		}
	}
}

func TestWord_OutOfRange(t *testing.T) {
	list, err := Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}

	for _, idx := range []int{-1, 2048, 1 << 20} {
		if _, err := list.Word(idx); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("Word(%d) error = %v, want ErrInvalidWord", idx, err)
		}
	}
}

func TestIndex_UnknownWord(t *testing.T) {
	list, err := Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}

	if _, err := list.Index("zonee"); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Index(zonee) error = %v, want ErrInvalidWord", err)
	}
}

func TestEnglishSorted(t *testing.T) {
	list, err := Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}
	if !list.Sorted() {
		t.Error("english table should be sorted")
	}
}

func TestWordsWithPrefix(t *testing.T) {
	list, err := Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}

	tests := []struct {
		prefix string
		first  string
		count  int
	}{
		{"zo", "zone", 2}, // zone, zoo
		{"abandon", "abandon", 1},
		{"qqq", "", 0},
	}
	for _, tt := range tests {
		got := list.WordsWithPrefix(tt.prefix)
		if len(got) != tt.count {
			t.Errorf("WordsWithPrefix(%q) returned %d words, want %d", tt.prefix, len(got), tt.count)
			continue
		}
		if tt.count > 0 && got[0] != tt.first {
			t.Errorf("WordsWithPrefix(%q)[0] = %q, want %q", tt.prefix, got[0], tt.first)
		}
	}
}

// An unsorted table must still answer prefix queries correctly, just
// without the binary search.
func TestWordsWithPrefix_Unsorted(t *testing.T) {
	ws := make([]string, TableSize)
	for i := range ws {
		ws[i] = fmt.Sprintf("w%04d", i)
	}
	// Swap two entries to break sort order.
	ws[0], ws[1] = ws[1], ws[0]

	list, err := NewList(ws)
	if err != nil {
		t.Fatalf("NewList() error: %v", err)
	}
	if list.Sorted() {
		t.Fatal("table should be detected as unsorted")
	}

	got := list.WordsWithPrefix("w000")
	if len(got) != 10 {
		t.Errorf("WordsWithPrefix(w000) returned %d words, want 10", len(got))
	}
}

func TestNewList_Invalid(t *testing.T) {
	short := make([]string, 100)
	for i := range short {
		short[i] = fmt.Sprintf("w%d", i)
	}
	if _, err := NewList(short); err == nil {
		t.Error("expected error for short table")
	}

	dup := make([]string, TableSize)
	for i := range dup {
		dup[i] = fmt.Sprintf("w%d", i)
	}
	dup[100] = dup[99]
	if _, err := NewList(dup); err == nil {
		t.Error("expected error for duplicate word")
	}
}

func TestRegister(t *testing.T) {
	ws := make([]string, TableSize)
	for i := range ws {
		ws[i] = fmt.Sprintf("x%04d", i)
	}
	list, err := NewList(ws)
	if err != nil {
		t.Fatalf("NewList() error: %v", err)
	}

	const lang = Language("test_register")
	if err := Register(lang, list); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := Register(lang, list); err == nil {
		t.Error("expected error registering the same language twice")
	}
	if err := Register(English, list); err == nil {
		t.Error("expected error replacing a built-in language")
	}

	got, err := Get(lang)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != list {
		t.Error("Get() should return the registered table")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get(Language("martian")); err == nil {
		t.Error("expected error for unknown language")
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	found := false
	for _, l := range langs {
		if l == English {
			found = true
		}
	}
	if !found {
		t.Error("Languages() should include english")
	}
	if len(langs) < 9 {
		t.Errorf("Languages() returned %d entries, want at least 9 built-ins", len(langs))
	}
}

func TestBuiltinTablesComplete(t *testing.T) {
	for _, lang := range []Language{
		English, ChineseSimplified, ChineseTraditional, Czech,
		French, Italian, Japanese, Korean, Spanish,
	} {
		list, err := Get(lang)
		if err != nil {
			t.Errorf("Get(%s) error: %v", lang, err)
			continue
		}
		if _, err := list.Word(TableSize - 1); err != nil {
			t.Errorf("%s: Word(%d) error: %v", lang, TableSize-1, err)
		}
	}
}
