package fuzzytrie

import (
	"slices"
	"unicode"

	"github.com/jub0bs/fuzzytrie/internal/match"
)

// suffixRoot implements the exact prefix walk: it follows n's edge label
// against prefix, descending into children as the label is exhausted, and
// returns the Node at which prefix is fully consumed.
//
// A deliberate exception: a mismatch is tolerated (and treated as a match)
// when both characters are whitespace, so exact search stays forgiving of
// interchangeable white space even outside the equivalence-class facility.
func suffixRoot[V any](n *Node[V], prefix string) *Node[V] {
	n.visitCount++
	labelRunes := []rune(n.text)
	prefixRunes := []rune(prefix)
	p := 0
	for {
		labelOk := p < len(labelRunes)
		prefixOk := p < len(prefixRunes)
		switch {
		case !prefixOk:
			return n
		case !labelOk:
			child, ok := n.children[prefixRunes[p]]
			if !ok {
				return nil
			}
			return suffixRoot(child, string(prefixRunes[p:]))
		case labelRunes[p] == prefixRunes[p]:
			p++
		case unicode.IsSpace(labelRunes[p]) && unicode.IsSpace(prefixRunes[p]):
			p++
		default:
			return nil
		}
	}
}

// suffixTreeWithOptions implements the equivalence-class walk.
//
// Whenever match_on_equivalent_children yields any candidate, that
// candidate is preferred over the exact/descendant continuation
// regardless of relative weight: the weight comparison only ever
// disambiguates among the equivalent-children candidates themselves, via
// the stable descending sort in bestEquivalentChild. The exact
// continuation is consulted only as a fallback when no equivalent child
// produced a result.
func suffixTreeWithOptions[V any](n *Node[V], prefix match.TaggedString, opts match.MatchingOptions) *Node[V] {
	n.visitCount++
	selfTagged := opts.Tag(n.text)
	taken := commonTaggedPrefixLen(prefix, selfTagged)

	switch {
	case taken == len(prefix):
		return n
	case taken == len(selfTagged):
		newPrefix := prefix[taken:]
		best := bestEquivalentChild(n, newPrefix, opts)
		if best != nil {
			return best
		}
		c := newPrefix[0].Tagged.Char()
		if child, ok := n.children[c]; ok {
			return suffixTreeWithOptions(child, newPrefix, opts)
		}
		return nil
	case taken < len(prefix) && taken < len(selfTagged):
		offset := selfTagged[taken].Offset
		newPrefix := prefix[taken:]
		best := bestEquivalentChild(n, newPrefix, opts)
		if best != nil {
			return best
		}
		labelRunes := []rune(n.text)
		if child, ok := n.children[labelRunes[offset]]; ok {
			return suffixTreeWithOptions(child, newPrefix, opts)
		}
		return nil
	default:
		return nil
	}
}

// commonTaggedPrefixLen returns the length of the longest common prefix of
// a and b under Tagged equality.
func commonTaggedPrefixLen(a, b match.TaggedString) int {
	n := min(len(a), len(b))
	i := 0
	for ; i < n; i++ {
		if !a[i].Tagged.Equal(b[i].Tagged) {
			break
		}
	}
	return i
}

// bestEquivalentChild returns the heaviest result of recursing into every
// child of n whose edge label's first character either matches prefix's
// first character or is itself a trigger character in opts, per
// match_on_equivalent_children. Children are visited in ascending
// rune order so that weight ties resolve deterministically.
func bestEquivalentChild[V any](n *Node[V], prefix match.TaggedString, opts match.MatchingOptions) *Node[V] {
	if len(prefix) == 0 {
		return nil
	}
	target := prefix[0].Tagged.Char()
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)

	var candidates []*Node[V]
	for _, r := range keys {
		if r != target && !opts.HasTrigger(r) {
			continue
		}
		if res := suffixTreeWithOptions(n.children[r], prefix, opts); res != nil {
			candidates = append(candidates, res)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	slices.SortStableFunc(candidates, func(a, b *Node[V]) int {
		return b.weight - a.weight
	})
	return candidates[0]
}
