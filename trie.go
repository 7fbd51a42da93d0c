package fuzzytrie

import (
	"github.com/jub0bs/fuzzytrie/internal/grapheme"
	"github.com/jub0bs/fuzzytrie/internal/match"
	"github.com/jub0bs/fuzzytrie/internal/util"
)

// A Trie maps textual keys to optional payloads of type V.
// The zero value is not ready to use; construct one with New.
type Trie[V any] struct {
	children  map[rune]*Node[V]
	nodeCount int
	charCount int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{children: make(map[rune]*Node[V])}
}

// NodeCount returns the number of Nodes in t, the root excluded.
func (t *Trie[V]) NodeCount() int { return t.nodeCount }

// CharCount returns the total number of code points stored across every
// edge label in t.
func (t *Trie[V]) CharCount() int { return t.charCount }

// Insert adds text to t, associating it with value. Insert is a no-op if
// text is empty. Re-inserting a key that is already present in t sets its
// payload only if it did not already have one: the original payload is
// never overwritten.
func (t *Trie[V]) Insert(text string, value *V) {
	if text == "" {
		return
	}
	first := firstRune(text)
	if child, ok := t.children[first]; ok {
		added, chars := child.insert(text, value)
		t.nodeCount += added
		t.charCount += chars
		return
	}
	leaf := newLeaf(text, value)
	t.children[first] = leaf
	t.nodeCount++
	t.charCount += leaf.weight
}

// Remove removes text from t. It is a no-op if text is empty or not
// present in t.
func (t *Trie[V]) Remove(text string) {
	if text == "" {
		return
	}
	first := firstRune(text)
	child, ok := t.children[first]
	if !ok {
		return
	}
	child.remove(text, &t.nodeCount, &t.charCount)
	if len(child.children) == 0 && !child.terminal {
		delete(t.children, first)
		t.nodeCount--
		t.charCount -= grapheme.Len(child.text)
	}
}

// SuffixTree returns the Node at which prefix is fully matched by an exact,
// character-by-character walk, or nil if prefix is empty or not matched.
// The returned Node is owned by t; it must not be used after t is mutated.
func (t *Trie[V]) SuffixTree(prefix string) *Node[V] {
	if prefix == "" {
		return nil
	}
	first := firstRune(prefix)
	child, ok := t.children[first]
	if !ok {
		return nil
	}
	return suffixRoot(child, prefix)
}

// SuffixTreeWithMatchingOptions is SuffixTree's equivalence-class sibling:
// prefix and every edge label visited are normalized through opts before
// being compared.
func (t *Trie[V]) SuffixTreeWithMatchingOptions(prefix string, opts match.MatchingOptions) *Node[V] {
	if prefix == "" {
		return nil
	}
	first := firstRune(prefix)
	child, ok := t.children[first]
	if !ok {
		return nil
	}
	tagged := opts.Tag(prefix)
	return suffixTreeWithOptions(child, tagged, opts)
}

// GetStringSuffixes returns, as an unordered set, the suffix beyond prefix
// of every key stored beneath the Node matched by an exact search for
// prefix. prefix itself is not prepended to the returned suffixes.
func (t *Trie[V]) GetStringSuffixes(prefix string) util.Set[string] {
	root := t.SuffixTree(prefix)
	if root == nil {
		return make(util.Set[string])
	}
	return collectStringSuffixes(root, prefix)
}

// GetSuffixesValues returns every (suffix, payload) pair stored beneath the
// Node matched by an exact search for prefix, or nil if prefix does not
// match. Each Entry's Key is the suffix beyond prefix, not the full stored
// key.
func (t *Trie[V]) GetSuffixesValues(prefix string) []Entry[V] {
	root := t.SuffixTree(prefix)
	if root == nil {
		return nil
	}
	return collectValues(root, prefix)
}

// GetSuffixesWithMatchingOptions is GetSuffixesValues' equivalence-class
// sibling.
func (t *Trie[V]) GetSuffixesWithMatchingOptions(prefix string, opts match.MatchingOptions) []Entry[V] {
	root := t.SuffixTreeWithMatchingOptions(prefix, opts)
	if root == nil {
		return nil
	}
	return collectValues(root, prefix)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
