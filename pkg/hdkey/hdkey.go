// Package hdkey implements BIP-32 hierarchical deterministic key
// derivation: a master node built from a seed, single hardened or normal
// child steps, and multi-segment path walks. Nodes are immutable values;
// deriving never mutates the parent.
package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"github.com/tidewater-labs/hdwallet/pkg/crypto"
	"github.com/tidewater-labs/hdwallet/pkg/hdpath"
)

var (
	// ErrSeedLength is returned when a master key is built from a seed
	// that is not 16, 32 or 64 bytes.
	ErrSeedLength = errors.New("hdkey: seed length must be 16, 32 or 64 bytes")

	// ErrDepthTooLarge is returned when a derivation step would push the
	// depth past its one-byte range.
	ErrDepthTooLarge = errors.New("hdkey: depth too large")
)

// masterHMACKey is the fixed HMAC key for master node construction.
var masterHMACKey = []byte("Bitcoin seed")

// MaxDepth is the deepest node the one-byte depth field can represent.
const MaxDepth = 255

// FingerprintSize is the length of a parent fingerprint in bytes.
const FingerprintSize = 4

// ChainCodeSize is the length of a chain code in bytes.
const ChainCodeSize = 32

// ExtendedKey is one node of the derivation tree: a private key, its
// public key (always kept consistent), the chain code, and the metadata
// identifying the node's place in the tree. The parent is referenced only
// by its 4-byte fingerprint, never by a live pointer.
type ExtendedKey struct {
	key               *crypto.PrivateKey
	pubKey            *crypto.PublicKey
	parentFingerprint [FingerprintSize]byte
	childNumber       hdpath.ChildNumber
	depth             uint8
	chainCode         [ChainCodeSize]byte
}

// NewMaster builds the depth-0 master node from a seed of 16, 32 or 64
// bytes: HMAC-SHA512("Bitcoin seed", seed), left half the key, right half
// the chain code.
func NewMaster(seed []byte) (*ExtendedKey, error) {
	switch len(seed) {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrSeedLength, len(seed))
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	key, err := crypto.PrivateKeyFromBytes(sum[:32])
	if err != nil {
		return nil, fmt.Errorf("hdkey: master key: %w", err)
	}

	node := &ExtendedKey{
		key:         key,
		pubKey:      key.PublicKey(),
		childNumber: hdpath.Normal(0),
		depth:       0,
	}
	copy(node.chainCode[:], sum[32:])
	return node, nil
}

// DeriveChild derives the child node for a single child number. Hardened
// children mix in the parent private key; normal children use only the
// parent public key, which is what makes watch-only derivation possible
// across non-hardened steps.
func (k *ExtendedKey) DeriveChild(cn hdpath.ChildNumber) (*ExtendedKey, error) {
	if k.depth == MaxDepth {
		return nil, ErrDepthTooLarge
	}

	mac := hmac.New(sha512.New, k.chainCode[:])
	if cn.IsHardened() {
		mac.Write([]byte{0x00})
		mac.Write(k.key.Serialize())
	} else {
		mac.Write(k.pubKey.SerializeCompressed())
	}
	cnBytes := cn.Bytes()
	mac.Write(cnBytes[:])
	sum := mac.Sum(nil)

	var tweak [32]byte
	copy(tweak[:], sum[:32])
	childKey, err := k.key.DeriveChild(tweak)
	if err != nil {
		return nil, fmt.Errorf("hdkey: derive child %s: %w", cn, err)
	}

	// Parent fingerprint is RIPEMD-160 over the parent public key bytes
	// directly (no SHA-256 first).
	ripe := ripemd160.New()
	ripe.Write(k.pubKey.SerializeCompressed())
	digest := ripe.Sum(nil)

	child := &ExtendedKey{
		key:         childKey,
		pubKey:      childKey.PublicKey(),
		childNumber: cn,
		depth:       k.depth + 1,
	}
	copy(child.parentFingerprint[:], digest[:FingerprintSize])
	copy(child.chainCode[:], sum[32:])
	return child, nil
}

// DerivePath walks the path from this node, deriving one child per
// component in order. The first failing step aborts the walk; no partial
// result is returned.
func (k *ExtendedKey) DerivePath(path hdpath.Path) (*ExtendedKey, error) {
	node := k
	for _, cn := range path {
		child, err := node.DeriveChild(cn)
		if err != nil {
			return nil, err
		}
		node = child
	}
	return node, nil
}

// PrivateKey returns the node's private key.
func (k *ExtendedKey) PrivateKey() *crypto.PrivateKey { return k.key }

// PublicKey returns the node's public key.
func (k *ExtendedKey) PublicKey() *crypto.PublicKey { return k.pubKey }

// ParentFingerprint returns the first 4 bytes of RIPEMD160 over the
// parent's public key; all zeros for the master node.
func (k *ExtendedKey) ParentFingerprint() [FingerprintSize]byte { return k.parentFingerprint }

// ChildNumber returns the child number that produced this node; 0 for the
// master node.
func (k *ExtendedKey) ChildNumber() hdpath.ChildNumber { return k.childNumber }

// Depth returns the node's distance from the master node.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ChainCode returns the node's 32-byte chain code.
func (k *ExtendedKey) ChainCode() [ChainCodeSize]byte { return k.chainCode }
