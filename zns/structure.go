package zns

import (
	"sort"
	"strings"
)

// Tree is the nested view of a resolver's flat record set. Values are either
// string leaves or nested Trees.
type Tree map[string]interface{}

// SubTree returns the Tree at key, or nil when the key is absent or holds a
// leaf.
func (t Tree) SubTree(key string) Tree {
	sub, _ := t[key].(Tree)
	return sub
}

// Leaf returns the string at key, or "" when the key is absent or holds a
// subtree.
func (t Tree) Leaf(key string) string {
	leaf, _ := t[key].(string)
	return leaf
}

// StructureRecords converts a flat map of dotted-path keys into a nested
// Tree. Keys are processed in sorted order so the result is a pure function
// of the input. When a key collides with a prefix of a deeper key (both
// "a" = "x" and "a.b" = "y" present), the deeper key wins: the scalar at the
// colliding segment is discarded and the subtree kept. Malformed keys (empty
// segments, leading/trailing dots) are structured permissively, never
// rejected.
func StructureRecords(flat map[string]string) Tree {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tree := Tree{}
	for _, key := range keys {
		segments := strings.Split(key, ".")
		cur := tree
		for _, seg := range segments[:len(segments)-1] {
			child, ok := cur[seg].(Tree)
			if !ok {
				child = Tree{}
				cur[seg] = child
			}
			cur = child
		}
		last := segments[len(segments)-1]
		if _, occupied := cur[last].(Tree); !occupied {
			cur[last] = flat[key]
		}
	}
	return tree
}
