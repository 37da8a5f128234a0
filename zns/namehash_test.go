package zns_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tranvictor/zilname/zns"
)

// Vectors cross-checked against the ZNS registry: the node of "zil" is the
// key the live registry stores the top level domain under.
var knownNodes = map[string]string{
	"zil":           "0x9915d0456b878862e822e2361da37232f626a2e47505c8795134a95d36138ed3",
	"alice.zil":     "0x80d9b41e9f6eb6ce00ba0b3de01397eab486f5dc485a12b3c1f702f578a606ef",
	"foo.alice.zil": "0x83acc147fb88d2b80ff1a668c978abdd1b63bd85f76dc8fad285d844ff8fa49e",
	"a.b.c.zil":     "0x66f9dfbedb1d09d34cbf280b646703fbd06f7e4c51e4bb82c415cedf6c521132",
}

func TestNamehashKnownNodes(t *testing.T) {
	for domain, want := range knownNodes {
		node, err := zns.Namehash(domain)
		if err != nil {
			t.Fatalf("Namehash(%q): unexpected error: %s", domain, err)
		}
		if node.Hex() != want {
			t.Errorf("Namehash(%q): want %s, got %s", domain, want, node.Hex())
		}
	}
}

func TestNamehashIsIteratedChildhash(t *testing.T) {
	// depth 1 through 4
	for _, domain := range []string{"zil", "c.zil", "b.c.zil", "a.b.c.zil"} {
		direct, err := zns.Namehash(domain)
		if err != nil {
			t.Fatalf("Namehash(%q): unexpected error: %s", domain, err)
		}

		folded := zns.RootNode
		labels := strings.Split(domain, ".")
		for i := len(labels) - 1; i >= 0; i-- {
			folded = zns.Childhash(folded, labels[i])
		}

		if direct != folded {
			t.Errorf("domain %q: direct %s != folded %s", domain, direct.Hex(), folded.Hex())
		}
	}
}

func TestChildhashDerivesSubdomainNode(t *testing.T) {
	parent, err := zns.Namehash("alice.zil")
	if err != nil {
		t.Fatal(err)
	}
	child := zns.Childhash(parent, "foo")
	want, err := zns.Namehash("foo.alice.zil")
	if err != nil {
		t.Fatal(err)
	}
	if child != want {
		t.Errorf("Childhash(node(alice.zil), foo): want %s, got %s", want.Hex(), child.Hex())
	}
}

func TestNamehashNormalizesCase(t *testing.T) {
	lower, err := zns.Namehash("alice.zil")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := zns.Namehash("ALICE.zil")
	if err != nil {
		t.Fatal(err)
	}
	if lower != upper {
		t.Errorf("ALICE.zil and alice.zil must hash identically, got %s and %s", upper.Hex(), lower.Hex())
	}
}

func TestNamehashRejectsForeignTLD(t *testing.T) {
	_, err := zns.Namehash("alice.eth")
	if !errors.Is(err, zns.ErrUnsupportedDomain) {
		t.Errorf("Namehash(alice.eth): want ErrUnsupportedDomain, got %v", err)
	}
}

func TestNamehashEmptyDomainIsRoot(t *testing.T) {
	node, err := zns.Namehash("")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if node != zns.RootNode {
		t.Errorf("namehash of the empty domain must be the root node, got %s", node.Hex())
	}
}

func TestNamehashInjectiveOnCorpus(t *testing.T) {
	corpus := []string{
		"zil", "a.zil", "b.zil", "ab.zil", "a.a.zil", "a.b.zil",
		"b.a.zil", "aa.zil", "alice.zil", "alicezil.zil", "x.alice.zil",
		"brad.zil",
	}
	seen := map[zns.Node]string{}
	for _, domain := range corpus {
		node, err := zns.Namehash(domain)
		if err != nil {
			t.Fatalf("Namehash(%q): unexpected error: %s", domain, err)
		}
		if prev, clash := seen[node]; clash {
			t.Errorf("collision: %q and %q both hash to %s", prev, domain, node.Hex())
		}
		seen[node] = domain
	}
}

func TestKeccakEngineMatchesENS(t *testing.T) {
	// canonical EIP-137 vectors
	engine := zns.NewNamehashEngine("eth", zns.Keccak256Hasher)

	vectors := map[string]string{
		"eth":     "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae",
		"foo.eth": "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f",
	}
	for domain, want := range vectors {
		node, err := engine.Namehash(domain)
		if err != nil {
			t.Fatalf("Namehash(%q): unexpected error: %s", domain, err)
		}
		if node.Hex() != want {
			t.Errorf("Namehash(%q): want %s, got %s", domain, want, node.Hex())
		}
	}
}
