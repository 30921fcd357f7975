package words

import (
	"fmt"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// The built-in tables come from the reviewed upstream wordlists rather
// than a hand-copied embed; a single transcription error would silently
// produce valid-looking but wrong mnemonics.
func init() {
	builtin := map[Language][]string{
		English:            wordlists.English,
		ChineseSimplified:  wordlists.ChineseSimplified,
		ChineseTraditional: wordlists.ChineseTraditional,
		Czech:              wordlists.Czech,
		French:             wordlists.French,
		Italian:            wordlists.Italian,
		Japanese:           wordlists.Japanese,
		Korean:             wordlists.Korean,
		Spanish:            wordlists.Spanish,
	}
	for lang, ws := range builtin {
		list, err := NewList(ws)
		if err != nil {
			panic(fmt.Sprintf("words: bad built-in table %q: %v", lang, err))
		}
		if err := Register(lang, list); err != nil {
			panic(err)
		}
	}
}
