package wallet

import (
	"github.com/tidewater-labs/hdwallet/pkg/hdpath"
	"github.com/tidewater-labs/hdwallet/pkg/types"
)

// Account is a key derived from a wallet's master node, identified by its
// full derivation path.
type Account struct {
	Path    string        `json:"path"` // canonical form, e.g. m/44'/60'/0'/0/0
	Label   string        `json:"label,omitempty"`
	Address types.Address `json:"address"`
}

// BIP-44 path constants for the default account layout
// m/44'/60'/account'/change/index (coin type 60 per SLIP-44).
const (
	PurposeBIP44 = 44
	CoinType     = 60

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// DefaultAccountPath returns the BIP-44 path for an external address index
// under the first account: m/44'/60'/0'/0/index.
func DefaultAccountPath(index uint32) hdpath.Path {
	return hdpath.Path{
		hdpath.Hardened(PurposeBIP44),
		hdpath.Hardened(CoinType),
		hdpath.Hardened(0),
		hdpath.Normal(ChangeExternal),
		hdpath.Normal(index),
	}
}
