package fuzzytrie

import (
	"testing"
)

func TestOverlapFindsLongestSuffixPrefixMatch(t *testing.T) {
	cases := []struct {
		prefix, label string
		want          int
	}{
		{"abc", "cde", 1},
		{"abc", "bcx", 2},
		{"abc", "xyz", 0},
		{"abc", "abc", 3},
		{"", "abc", 0},
	}
	for _, c := range cases {
		if got := overlap(c.prefix, c.label); got != c.want {
			t.Errorf("overlap(%q, %q) = %d, want %d", c.prefix, c.label, got, c.want)
		}
	}
}

func TestCollectValuesAppliesOverlapCorrection(t *testing.T) {
	// A query "abc" that lands mid-edge on a node labeled "cde" (sharing a
	// "c" with the query tail) must not double-count that shared "c".
	root := &Node[int]{text: "cde", terminal: true, children: map[rune]*Node[int]{}}
	entries := collectValues(root, "abc")
	if len(entries) != 1 || entries[0].Key != "de" {
		t.Fatalf("collectValues with overlap = %+v, want one entry with key %q", entries, "de")
	}
}

func TestCollectValuesDescendsIntoChildren(t *testing.T) {
	root := &Node[int]{text: "rom", children: map[rune]*Node[int]{
		'a': newLeaf[int]("anus", nil),
		'u': newLeaf[int]("ulus", nil),
	}}
	entries := collectValues(root, "rom")
	if len(entries) != 2 {
		t.Fatalf("collectValues = %+v, want 2 entries", entries)
	}
	if entries[0].Key != "anus" || entries[1].Key != "ulus" {
		t.Fatalf("collectValues keys = [%q %q], want [anus ulus] in sorted order", entries[0].Key, entries[1].Key)
	}
}

func TestCollectStringSuffixesEmitsOnlyTerminalKeys(t *testing.T) {
	root := &Node[int]{text: "rom", terminal: false, children: map[rune]*Node[int]{
		'a': newLeaf[int]("anus", nil),
	}}
	set := collectStringSuffixes(root, "rom")
	if set.Size() != 1 || !set.Contains("anus") {
		t.Fatalf("collectStringSuffixes = %v, want {anus}", set)
	}
}
