package zns

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ZilTLD is the top level label the ZNS registry claims.
const ZilTLD = "zil"

// Node is the fixed size identifier of a domain's position in the naming
// hierarchy, used as the registry contract's lookup key.
type Node [32]byte

// RootNode is the namehash of the hierarchy root (the empty name).
var RootNode = Node{}

func (n Node) Hex() string {
	return "0x" + hex.EncodeToString(n[:])
}

// Hasher is the 32-byte hash function a namehash engine folds labels with.
// It must be the same function the target registry contract is keyed by or
// every lookup silently misses.
type Hasher func(data []byte) [32]byte

// SHA256Hasher keys ZNS registries.
func SHA256Hasher(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Keccak256Hasher keys ENS style registries and ZNS forks derived from them.
func Keccak256Hasher(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}

// NamehashEngine derives registry lookup keys for one naming service, fixed
// by its top level label and hash function.
type NamehashEngine struct {
	tld  string
	hash Hasher
}

func NewNamehashEngine(tld string, hash Hasher) *NamehashEngine {
	return &NamehashEngine{tld: tld, hash: hash}
}

// NewZNSEngine returns the engine for the .zil hierarchy.
func NewZNSEngine() *NamehashEngine {
	return NewNamehashEngine(ZilTLD, SHA256Hasher)
}

// Childhash is one fold step: hash(parent || hash(label)). Labels are
// lowercased before hashing; ZNS registry keys are derived from lowercase
// names, so any other normalization would break every lookup.
func (ne *NamehashEngine) Childhash(parent Node, label string) Node {
	labelHash := ne.hash([]byte(strings.ToLower(label)))
	return ne.hash(append(parent[:], labelHash[:]...))
}

// Namehash folds the domain's labels right to left from RootNode, one
// Childhash step per label. It errors with ErrUnsupportedDomain when the
// rightmost label is not the engine's top level label. The empty domain
// folds zero labels and returns RootNode.
func (ne *NamehashEngine) Namehash(domain string) (Node, error) {
	node := RootNode
	if domain == "" {
		return node, nil
	}
	labels := strings.Split(domain, ".")
	if !strings.EqualFold(labels[len(labels)-1], ne.tld) {
		return node, newResolutionError(ErrUnsupportedDomain, domain)
	}
	for i := len(labels) - 1; i >= 0; i-- {
		node = ne.Childhash(node, labels[i])
	}
	return node, nil
}

// Namehash derives the .zil registry key of domain.
func Namehash(domain string) (Node, error) {
	return NewZNSEngine().Namehash(domain)
}

// Childhash derives a child node in the .zil hierarchy.
func Childhash(parent Node, label string) Node {
	return NewZNSEngine().Childhash(parent, label)
}
