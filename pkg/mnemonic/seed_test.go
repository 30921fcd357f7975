package mnemonic

import (
	"bytes"
	"testing"

	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/tidewater-labs/hdwallet/pkg/words"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSeed_Vectors(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		seed       string
	}{
		{
			name:       "empty passphrase",
			passphrase: "",
			seed:       "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
		{
			name:       "trezor passphrase",
			passphrase: "TREZOR",
			seed:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
	}

	m, err := FromPhrase(testPhrase, words.English)
	if err != nil {
		t.Fatalf("FromPhrase error: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := m.Seed(tt.passphrase)
			if seed.String() != tt.seed {
				t.Errorf("Seed(%q) = %s, want %s", tt.passphrase, seed, tt.seed)
			}
			if len(seed.Bytes()) != SeedSize {
				t.Errorf("seed length = %d, want %d", len(seed.Bytes()), SeedSize)
			}
		})
	}
}

func TestSeed_Deterministic(t *testing.T) {
	m, err := FromPhrase(testPhrase, words.English)
	if err != nil {
		t.Fatalf("FromPhrase error: %v", err)
	}
	if !bytes.Equal(m.Seed("x").Bytes(), m.Seed("x").Bytes()) {
		t.Error("same phrase and passphrase must yield the same seed")
	}
	if bytes.Equal(m.Seed("a").Bytes(), m.Seed("b").Bytes()) {
		t.Error("different passphrases must yield different seeds")
	}
}

// The stretcher must agree with the reference library for generated phrases.
func TestSeed_MatchesReference(t *testing.T) {
	for i := 0; i < 4; i++ {
		m, err := New(Words12, words.English)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		for _, passphrase := range []string{"", "TREZOR", "pässwörd"} {
			got := m.Seed(passphrase).Bytes()
			want := bip39.NewSeed(m.Phrase(), passphrase)
			if !bytes.Equal(got, want) {
				t.Fatalf("Seed(%q) for %q = %x, reference %x", passphrase, m.Phrase(), got, want)
			}
		}
	}
}

func TestParseSeed(t *testing.T) {
	const hexSeed = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	seed, err := ParseSeed(hexSeed)
	if err != nil {
		t.Fatalf("ParseSeed error: %v", err)
	}
	if seed.String() != hexSeed {
		t.Errorf("ParseSeed round trip = %s, want %s", seed, hexSeed)
	}

	if _, err := ParseSeed("abcd"); err == nil {
		t.Error("expected error for short seed")
	}
	if _, err := ParseSeed("zz" + hexSeed[2:]); err == nil {
		t.Error("expected error for non-hex seed")
	}
}
