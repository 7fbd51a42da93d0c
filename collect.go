package fuzzytrie

import (
	"slices"
	"strings"

	"github.com/jub0bs/fuzzytrie/internal/grapheme"
	"github.com/jub0bs/fuzzytrie/internal/util"
)

// An Entry pairs a reconstructed key with a borrowed reference to its
// payload, as returned by GetSuffixesValues and
// GetSuffixesWithMatchingOptions.
type Entry[V any] struct {
	Key   string
	Value *V
}

// overlap returns the largest k such that the last k code points of prefix
// form a prefix of label; it implements the collector's overlap-correction
// step: failing to strip this overlap from the subtree root's label would
// double-count characters (e.g. producing "abccde" instead of "abcde" for
// a query "abc" matched against a node labeled "cde" reached via a shared
// "c").
func overlap(prefix, label string) int {
	runes := []rune(prefix)
	for k := len(runes); k > 0; k-- {
		candidate := string(runes[len(runes)-k:])
		if strings.HasPrefix(label, candidate) {
			return k
		}
	}
	return 0
}

// collectValues performs a depth-first walk of the subtree rooted at root,
// reconstructing the suffix beneath the match point for every stored key in
// that subtree (the query prefix itself is not prepended) along with a
// borrowed reference to its payload.
func collectValues[V any](root *Node[V], prefix string) []Entry[V] {
	var out []Entry[V]
	var stack []string
	var walk func(n *Node[V], isRoot bool)
	walk = func(n *Node[V], isRoot bool) {
		n.visitCount++
		pushed := false
		if isRoot {
			k := overlap(prefix, n.text)
			if k < grapheme.Len(n.text) {
				stack = append(stack, grapheme.Suffix(n.text, k))
				pushed = true
			}
		} else {
			stack = append(stack, n.text)
			pushed = true
		}
		if n.terminal {
			out = append(out, Entry[V]{Key: strings.Join(stack, ""), Value: n.value})
		}
		for _, child := range n.children {
			walk(child, false)
		}
		if pushed {
			stack = stack[:len(stack)-1]
		}
	}
	walk(root, true)
	slices.SortFunc(out, func(a, b Entry[V]) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// collectStringSuffixes is collectValues' set-valued sibling: it discards
// payloads and emits only the reconstructed keys, deduplicated.
func collectStringSuffixes[V any](root *Node[V], prefix string) util.Set[string] {
	out := make(util.Set[string])
	var stack []string
	var walk func(n *Node[V], isRoot bool)
	walk = func(n *Node[V], isRoot bool) {
		n.visitCount++
		pushed := false
		if isRoot {
			k := overlap(prefix, n.text)
			if k < grapheme.Len(n.text) {
				stack = append(stack, grapheme.Suffix(n.text, k))
				pushed = true
			}
		} else {
			stack = append(stack, n.text)
			pushed = true
		}
		if n.terminal {
			out.Add(strings.Join(stack, ""))
		}
		for _, child := range n.children {
			walk(child, false)
		}
		if pushed {
			stack = stack[:len(stack)-1]
		}
	}
	walk(root, true)
	return out
}
