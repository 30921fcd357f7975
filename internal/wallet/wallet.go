// Package wallet ties the mnemonic codec, seed stretch and key tree into a
// named wallet with an encrypted on-disk keystore.
package wallet

import (
	"fmt"

	"github.com/tidewater-labs/hdwallet/internal/log"
	"github.com/tidewater-labs/hdwallet/pkg/hdkey"
	"github.com/tidewater-labs/hdwallet/pkg/hdpath"
	"github.com/tidewater-labs/hdwallet/pkg/mnemonic"
	"github.com/tidewater-labs/hdwallet/pkg/types"
	"github.com/tidewater-labs/hdwallet/pkg/words"
)

// Wallet is an in-memory wallet: a master node plus identity metadata.
// The fingerprint is the BLAKE3 hash of the master public key and is safe
// to log and store in the clear.
type Wallet struct {
	name        string
	master      *hdkey.ExtendedKey
	fingerprint types.Hash
}

// FromMnemonic builds a wallet by validating a phrase and stretching it
// with the given BIP-39 passphrase.
func FromMnemonic(name, phrase string, lang words.Language, passphrase string) (*Wallet, error) {
	m, err := mnemonic.FromPhrase(phrase, lang)
	if err != nil {
		return nil, fmt.Errorf("wallet: parse mnemonic: %w", err)
	}
	return FromSeed(name, m.Seed(passphrase).Bytes())
}

// FromSeed builds a wallet directly from seed bytes.
func FromSeed(name string, seed []byte) (*Wallet, error) {
	master, err := hdkey.NewMaster(seed)
	if err != nil {
		return nil, fmt.Errorf("wallet: master key: %w", err)
	}

	fp := types.Fingerprint(master.PublicKey().SerializeCompressed())
	log.Wallet.Debug().
		Str("wallet", name).
		Str("id", fp.Short()).
		Msg("master key built")

	return &Wallet{name: name, master: master, fingerprint: fp}, nil
}

// Name returns the wallet name.
func (w *Wallet) Name() string { return w.name }

// Fingerprint returns the BLAKE3 hash of the master public key.
func (w *Wallet) Fingerprint() types.Hash { return w.fingerprint }

// Master returns the master node.
func (w *Wallet) Master() *hdkey.ExtendedKey { return w.master }

// DeriveKey walks a path string from the master node.
func (w *Wallet) DeriveKey(pathStr string) (*hdkey.ExtendedKey, error) {
	path, err := hdpath.Parse(pathStr)
	if err != nil {
		return nil, err
	}
	return w.master.DerivePath(path)
}

// DeriveAccount derives the key at a path string and returns its account
// record.
func (w *Wallet) DeriveAccount(pathStr, label string) (Account, error) {
	path, err := hdpath.Parse(pathStr)
	if err != nil {
		return Account{}, err
	}
	node, err := w.master.DerivePath(path)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Path:    path.String(),
		Label:   label,
		Address: node.PublicKey().Address(),
	}, nil
}

// ExternalAccount derives the default BIP-44 external account at the given
// address index.
func (w *Wallet) ExternalAccount(index uint32, label string) (Account, error) {
	return w.DeriveAccount(DefaultAccountPath(index).String(), label)
}
