package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/tidewater-labs/hdwallet/pkg/words"
)

const (
	testPhrase  = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testSeedHex = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
)

func testWallet(t *testing.T) *Wallet {
	t.Helper()
	seed, err := hex.DecodeString(testSeedHex)
	if err != nil {
		t.Fatalf("bad seed hex: %v", err)
	}
	w, err := FromSeed("test", seed)
	if err != nil {
		t.Fatalf("FromSeed error: %v", err)
	}
	return w
}

func TestFromMnemonic(t *testing.T) {
	w, err := FromMnemonic("test", testPhrase, words.English, "")
	if err != nil {
		t.Fatalf("FromMnemonic error: %v", err)
	}
	if w.Name() != "test" {
		t.Errorf("Name() = %q", w.Name())
	}
	// Same phrase, same master, same fingerprint.
	if w.Fingerprint() != testWallet(t).Fingerprint() {
		t.Error("phrase and seed construction should agree on the fingerprint")
	}
	if w.Fingerprint().IsZero() {
		t.Error("fingerprint should not be zero")
	}
}

func TestFromMnemonic_BadPhrase(t *testing.T) {
	if _, err := FromMnemonic("test", "not a phrase", words.English, ""); err == nil {
		t.Error("expected error for invalid phrase")
	}
}

func TestFromMnemonic_PassphraseChangesKeys(t *testing.T) {
	plain, err := FromMnemonic("a", testPhrase, words.English, "")
	if err != nil {
		t.Fatalf("FromMnemonic error: %v", err)
	}
	guarded, err := FromMnemonic("b", testPhrase, words.English, "TREZOR")
	if err != nil {
		t.Fatalf("FromMnemonic error: %v", err)
	}
	if plain.Fingerprint() == guarded.Fingerprint() {
		t.Error("passphrase should change the master key")
	}
}

func TestDeriveAccount(t *testing.T) {
	w := testWallet(t)

	acct, err := w.DeriveAccount("m/44'/60'/0'/0/0", "primary")
	if err != nil {
		t.Fatalf("DeriveAccount error: %v", err)
	}
	if acct.Path != "m/44'/60'/0'/0/0" {
		t.Errorf("Path = %q", acct.Path)
	}
	if acct.Label != "primary" {
		t.Errorf("Label = %q", acct.Label)
	}
	if got := acct.Address.String(); got != "0x9858EfFD232B4033E47d90003D41EC34EcaEda94" {
		t.Errorf("Address = %s", got)
	}

	// Non-canonical path input is stored canonically.
	acct2, err := w.DeriveAccount("44'/60'/0'/0/0", "")
	if err != nil {
		t.Fatalf("DeriveAccount error: %v", err)
	}
	if acct2.Path != acct.Path || acct2.Address != acct.Address {
		t.Error("canonical and bare path forms should derive the same account")
	}

	if _, err := w.DeriveAccount("m/abc", ""); err == nil {
		t.Error("expected error for malformed path")
	}
}

func TestExternalAccount(t *testing.T) {
	w := testWallet(t)

	acct, err := w.ExternalAccount(0, "")
	if err != nil {
		t.Fatalf("ExternalAccount error: %v", err)
	}
	if acct.Path != "m/44'/60'/0'/0/0" {
		t.Errorf("Path = %q", acct.Path)
	}

	next, err := w.ExternalAccount(1, "")
	if err != nil {
		t.Fatalf("ExternalAccount error: %v", err)
	}
	if next.Path != "m/44'/60'/0'/0/1" {
		t.Errorf("Path = %q", next.Path)
	}
	if next.Address == acct.Address {
		t.Error("consecutive indices should give different addresses")
	}
}

func TestDefaultAccountPath(t *testing.T) {
	if got := DefaultAccountPath(7).String(); got != "m/44'/60'/0'/0/7" {
		t.Errorf("DefaultAccountPath(7) = %q", got)
	}
}
