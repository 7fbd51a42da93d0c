package fuzzytrie

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// wireNode mirrors the JSON wire format for a Node: the children map's keys
// are single-code-point strings rather than runes, since JSON object keys
// must be strings.
type wireNode[V any] struct {
	Text       string              `json:"text"`
	Terminal   bool                `json:"terminal"`
	Children   map[string]*Node[V] `json:"children"`
	Value      *V                  `json:"value"`
	VisitCount uint64              `json:"visit_count"`
	Weight     int                 `json:"weight"`
}

// MarshalJSON implements the wire format for a Node.
func (n *Node[V]) MarshalJSON() ([]byte, error) {
	children := make(map[string]*Node[V], len(n.children))
	for r, child := range n.children {
		children[string(r)] = child
	}
	return json.Marshal(wireNode[V]{
		Text:       n.text,
		Terminal:   n.terminal,
		Children:   children,
		Value:      n.value,
		VisitCount: n.visitCount,
		Weight:     n.weight,
	})
}

// UnmarshalJSON implements the wire format for a Node. Absent optional
// fields default to their zero value.
func (n *Node[V]) UnmarshalJSON(data []byte) error {
	var wire wireNode[V]
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedTrie, err)
	}
	n.text = wire.Text
	n.terminal = wire.Terminal
	n.value = wire.Value
	n.visitCount = wire.VisitCount
	n.weight = wire.Weight
	n.children = make(map[rune]*Node[V], len(wire.Children))
	for key, child := range wire.Children {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || r == utf8.RuneError {
			return fmt.Errorf("%w: child key %q is not a single code point", ErrMalformedTrie, key)
		}
		n.children[r] = child
	}
	return nil
}

// wireTrie mirrors the JSON wire format for a Trie.
type wireTrie[V any] struct {
	CharCount int                 `json:"char_count"`
	Children  map[string]*Node[V] `json:"children"`
	NodeCount int                 `json:"node_count"`
}

// MarshalJSON implements the wire format for a Trie.
func (t *Trie[V]) MarshalJSON() ([]byte, error) {
	children := make(map[string]*Node[V], len(t.children))
	for r, child := range t.children {
		children[string(r)] = child
	}
	return json.Marshal(wireTrie[V]{
		CharCount: t.charCount,
		Children:  children,
		NodeCount: t.nodeCount,
	})
}

// UnmarshalJSON implements the wire format for a Trie. It never mutates
// t on failure.
func (t *Trie[V]) UnmarshalJSON(data []byte) error {
	var wire wireTrie[V]
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedTrie, err)
	}
	children := make(map[rune]*Node[V], len(wire.Children))
	for key, child := range wire.Children {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || r == utf8.RuneError {
			return fmt.Errorf("%w: child key %q is not a single code point", ErrMalformedTrie, key)
		}
		children[r] = child
	}
	t.charCount = wire.CharCount
	t.children = children
	t.nodeCount = wire.NodeCount
	return nil
}
