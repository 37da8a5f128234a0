package zns_test

import (
	"reflect"
	"testing"

	"github.com/tranvictor/zilname/zns"
)

func TestStructureRecords(t *testing.T) {
	cases := []struct {
		name string
		flat map[string]string
		want zns.Tree
	}{
		{
			name: "empty",
			flat: map[string]string{},
			want: zns.Tree{},
		},
		{
			name: "single leaf",
			flat: map[string]string{"x": "y"},
			want: zns.Tree{"x": "y"},
		},
		{
			name: "shared prefix",
			flat: map[string]string{"a.b": "1", "a.c": "2"},
			want: zns.Tree{"a": zns.Tree{"b": "1", "c": "2"}},
		},
		{
			name: "three levels",
			flat: map[string]string{
				"crypto.ETH.address": "0xaaa",
				"crypto.ZIL.address": "zil1aaa",
				"ttl":                "300",
			},
			want: zns.Tree{
				"crypto": zns.Tree{
					"ETH": zns.Tree{"address": "0xaaa"},
					"ZIL": zns.Tree{"address": "zil1aaa"},
				},
				"ttl": "300",
			},
		},
		{
			// a key that is a prefix of a deeper key loses to the
			// subtree, deterministically
			name: "prefix conflict",
			flat: map[string]string{"a": "x", "a.b": "y"},
			want: zns.Tree{"a": zns.Tree{"b": "y"}},
		},
		{
			name: "malformed keys are structured permissively",
			flat: map[string]string{".a": "v", "b.": "w"},
			want: zns.Tree{
				"":  zns.Tree{"a": "v"},
				"b": zns.Tree{"": "w"},
			},
		},
	}

	for _, c := range cases {
		got := zns.StructureRecords(c.flat)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: want %#v, got %#v", c.name, c.want, got)
		}
	}
}

func TestStructureRecordsIsPure(t *testing.T) {
	flat := map[string]string{
		"a":     "x",
		"a.b":   "y",
		"a.b.c": "z",
		"d":     "w",
	}
	first := zns.StructureRecords(flat)
	second := zns.StructureRecords(flat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("structuring the same flat map twice diverged: %#v vs %#v", first, second)
	}
}
