package fuzzytrie

import (
	"iter"

	"github.com/jub0bs/fuzzytrie/internal/grapheme"
)

// A Node is one edge-compressed vertex of a Trie. Node's zero value is not
// meaningful; Nodes are only ever constructed by Trie's Insert (or by
// decoding a Trie from its JSON wire format) and manipulated in place
// thereafter.
type Node[V any] struct {
	text       string
	terminal   bool
	value      *V
	children   map[rune]*Node[V]
	weight     int
	visitCount uint64
}

// Text returns n's edge label: the code points appended to the search path
// on the edge leading into n.
func (n *Node[V]) Text() string { return n.text }

// Terminal reports whether a stored key ends exactly at n.
func (n *Node[V]) Terminal() bool { return n.terminal }

// Value returns the payload associated with the key ending at n, or nil if
// n is not terminal or the key was inserted without a payload.
func (n *Node[V]) Value() *V { return n.value }

// Weight is the total code-point length of every edge label in the subtree
// rooted at n, n's own label included.
func (n *Node[V]) Weight() int { return n.weight }

// VisitCount is the number of times a search has traversed n. It is
// observational only: implementations, including this one, may update it
// on a best-effort basis, and no correctness depends on its value.
func (n *Node[V]) VisitCount() uint64 { return n.visitCount }

// Children iterates over n's children, keyed by the first code point of
// each child's edge label.
func (n *Node[V]) Children() iter.Seq2[rune, *Node[V]] {
	return func(yield func(rune, *Node[V]) bool) {
		for r, c := range n.children {
			if !yield(r, c) {
				return
			}
		}
	}
}

func newLeaf[V any](text string, value *V) *Node[V] {
	return &Node[V]{
		text:     text,
		terminal: true,
		value:    value,
		children: make(map[rune]*Node[V]),
		weight:   grapheme.Len(text),
	}
}

func (n *Node[V]) childrenWeight() int {
	w := 0
	for _, c := range n.children {
		w += c.weight
	}
	return w
}

func (n *Node[V]) recomputeWeight() {
	n.weight = grapheme.Len(n.text) + n.childrenWeight()
}

// insert adds text (rooted at n, whose label shares text's first code
// point) under n, per the edge-compressed split/descend algorithm. It
// returns the number of Nodes and code points added to the tree.
func (n *Node[V]) insert(text string, value *V) (nodesAdded, charsAdded int) {
	labelRunes := []rune(n.text)
	textRunes := []rune(text)
	p := 0
	for {
		labelOk := p < len(labelRunes)
		textOk := p < len(textRunes)
		switch {
		case labelOk && textOk && labelRunes[p] == textRunes[p]:
			p++
			continue
		case labelOk && textOk: // mismatch at p: split
			return n.split(labelRunes, textRunes, p, value)
		case !labelOk && textOk: // label exhausted, text remains: descend
			return n.descend(textRunes, p, value)
		case labelOk && !textOk: // text exhausted, label remains: split off a terminal prefix
			return n.splitTerminalPrefix(labelRunes, p, value)
		default: // both exhausted: this is the key
			n.terminal = true
			if n.value == nil {
				n.value = value
			}
			return 0, 0
		}
	}
}

func (n *Node[V]) split(labelRunes, textRunes []rune, p int, value *V) (nodesAdded, charsAdded int) {
	existingTail := string(labelRunes[p:])
	tailNode := &Node[V]{
		text:     existingTail,
		terminal: n.terminal,
		value:    n.value,
		children: n.children,
	}
	tailNode.recomputeWeight()

	textTail := string(textRunes[p:])
	leaf := newLeaf(textTail, value)

	n.text = string(labelRunes[:p])
	n.terminal = false
	n.value = nil
	n.children = map[rune]*Node[V]{
		labelRunes[p]: tailNode,
		textRunes[p]:  leaf,
	}
	n.recomputeWeight()
	return 2, grapheme.Len(textTail)
}

func (n *Node[V]) descend(textRunes []rune, p int, value *V) (nodesAdded, charsAdded int) {
	remainder := string(textRunes[p:])
	first := textRunes[p]
	if child, ok := n.children[first]; ok {
		added, chars := child.insert(remainder, value)
		n.weight += chars
		return added, chars
	}
	leaf := newLeaf(remainder, value)
	n.children[first] = leaf
	n.weight += leaf.weight
	return 1, leaf.weight
}

func (n *Node[V]) splitTerminalPrefix(labelRunes []rune, p int, value *V) (nodesAdded, charsAdded int) {
	tail := string(labelRunes[p:])
	tailNode := &Node[V]{
		text:     tail,
		terminal: n.terminal,
		value:    n.value,
		children: n.children,
	}
	tailNode.recomputeWeight()

	n.text = string(labelRunes[:p])
	n.terminal = true
	n.value = value
	n.children = map[rune]*Node[V]{labelRunes[p]: tailNode}
	n.recomputeWeight()
	return 1, 0
}

// remove removes text from the subtree rooted at n, decrementing
// *nodeCount/*charCount for every Node and code point it eliminates, and
// merging n with its sole remaining child if doing so is required to
// preserve the no-degenerate-split invariant. n is never merged into a
// child on account of a descendant's removal while n itself is terminal:
// that would discard the key stored at n.
func (n *Node[V]) remove(text string, nodeCount, charCount *int) {
	labelRunes := []rune(n.text)
	textRunes := []rune(text)
	p := 0
	mergeCheck := false
loop:
	for {
		labelOk := p < len(labelRunes)
		textOk := p < len(textRunes)
		switch {
		case labelOk && textOk && labelRunes[p] != textRunes[p]:
			return // mismatch: key not present along this path
		case labelOk && textOk:
			p++
			continue
		case labelOk && !textOk:
			return // text is a strict prefix of this node's label: not a stored key
		case !labelOk && textOk:
			remainder := string(textRunes[p:])
			first := textRunes[p]
			child, ok := n.children[first]
			if !ok {
				return // this prefix never existed in this tree
			}
			before := child.weight
			child.remove(remainder, nodeCount, charCount)
			n.weight -= before - child.weight
			if len(child.children) == 0 && !child.terminal {
				*nodeCount--
				*charCount -= grapheme.Len(child.text)
				n.weight -= child.weight
				delete(n.children, first)
			}
			// n itself stores a key (n.terminal) independently of this
			// descendant prune, so merging n into its sole remaining child
			// here would silently discard n's own key and payload. Only
			// merge when n is not itself terminal.
			if !n.terminal {
				mergeCheck = true
			}
			break loop
		default: // both exhausted: n is the key being removed
			if len(n.children) == 1 {
				mergeCheck = true
				break loop
			}
			n.terminal = false
			n.value = nil
			return
		}
	}
	if mergeCheck && len(n.children) == 1 {
		for _, child := range n.children {
			*nodeCount--
			n.text += child.text
			n.value = child.value
			n.terminal = child.terminal
			n.children = child.children
		}
	}
}
