// Package match implements the equivalence-class normalization pipeline
// that drives fuzzy prefix matching: CharacterSet presets, MatchingOptions,
// and the NormalizedChar/Tagged/TaggedString machinery used to compare a
// query against an edge label under a set of per-character equivalence
// rules.
package match

import (
	"hash/maphash"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jub0bs/fuzzytrie/internal/util"
)

// uppercaseRune folds a single rune through util.Uppercase.
func uppercaseRune(r rune) rune {
	folded := []rune(util.Uppercase(string(r)))
	if len(folded) != 1 {
		return r
	}
	return folded[0]
}

// A CharacterSet describes a class of characters that are, for matching
// purposes, interchangeable.
type CharacterSet struct {
	kind   kind
	custom runeSet
	hash   uint64
}

type kind uint8

const (
	kindWhiteSpaces kind = iota
	kindNewLines
	kindWhiteSpacesAndNewLines
	kindCapitalized
	kindUnicodeNFC
	kindCustom
)

// WhiteSpaces is the equivalence class of spaces and tabs.
func WhiteSpaces() CharacterSet { return CharacterSet{kind: kindWhiteSpaces} }

// NewLines is the equivalence class of newline characters.
func NewLines() CharacterSet { return CharacterSet{kind: kindNewLines} }

// WhiteSpacesAndNewLines is the equivalence class of spaces, tabs, and
// newlines.
func WhiteSpacesAndNewLines() CharacterSet { return CharacterSet{kind: kindWhiteSpacesAndNewLines} }

// CapitalizedLetters folds letters to upper case for matching purposes.
func CapitalizedLetters() CharacterSet { return CharacterSet{kind: kindCapitalized} }

// UnicodeNormalizedForm folds each trigger rune, taken on its own, to its
// Unicode NFC form for matching purposes (e.g. U+212B ANGSTROM SIGN folds
// to U+00C5). Runes are normalized one at a time: a decomposed sequence
// such as 'e' followed by a combining acute accent is not composed, so it
// does not match a precomposed 'é'.
func UnicodeNormalizedForm() CharacterSet { return CharacterSet{kind: kindUnicodeNFC} }

// Custom declares an equivalence class consisting exactly of members.
// Two Custom sets with equal (order-independent) membership always
// normalize to the same sentinel hash.
func Custom(members ...rune) CharacterSet {
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return CharacterSet{
		kind:   kindCustom,
		custom: newRuneSet(sorted),
		hash:   hashRunes(sorted),
	}
}

// normalizedChar returns the NormalizedChar that r maps to under cs.
func (cs CharacterSet) normalizedChar(r rune) NormalizedChar {
	switch cs.kind {
	case kindWhiteSpaces:
		if r == ' ' || r == '\t' {
			return squash
		}
	case kindNewLines:
		if r == '\n' {
			return squash
		}
	case kindWhiteSpacesAndNewLines:
		if r == ' ' || r == '\t' || r == '\n' {
			return squash
		}
	case kindCapitalized:
		return NormalizedChar{tag: tagChar, char: uppercaseRune(r)}
	case kindUnicodeNFC:
		return NormalizedChar{tag: tagChar, char: normalizeNFC(r)}
	case kindCustom:
		if cs.custom.Contains(r) {
			return NormalizedChar{tag: tagSentinel, hash: cs.hash, char: r}
		}
	}
	return NormalizedChar{tag: tagChar, char: r}
}

// normalizeNFC folds r to the rune produced by NFC-normalizing it, falling
// back to r unchanged if normalization does not yield a single code point
// (a code point whose NFC form is a sequence of several).
func normalizeNFC(r rune) rune {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	normalized := norm.NFC.Bytes(buf[:n])
	folded, size := utf8.DecodeRune(normalized)
	if size != len(normalized) {
		return r
	}
	return folded
}

var customSeed = maphash.MakeSeed()

// hashRunes computes a stable (for the lifetime of the process) hash of a
// sorted, deduplicated rune sequence, so that two separately constructed
// Custom sets with equal membership collapse to the same sentinel.
func hashRunes(sorted []rune) uint64 {
	var h maphash.Hash
	h.SetSeed(customSeed)
	var buf [utf8.UTFMax]byte
	for _, r := range sorted {
		n := utf8.EncodeRune(buf[:], r)
		h.Write(buf[:n])
	}
	return h.Sum64()
}

// runeSet is a membership test over an arbitrary set of runes, backed by
// util.ASCIISet's bitset for the (common) ASCII members and a fallback map
// for the rare non-ASCII member.
type runeSet struct {
	ascii util.ASCIISet
	extra map[rune]struct{}
}

func newRuneSet(rs []rune) runeSet {
	var asciiChars []byte
	var extra map[rune]struct{}
	for _, r := range rs {
		if r < utf8.RuneSelf {
			asciiChars = append(asciiChars, byte(r))
			continue
		}
		if extra == nil {
			extra = make(map[rune]struct{})
		}
		extra[r] = struct{}{}
	}
	return runeSet{
		ascii: util.MakeASCIISet(string(asciiChars)),
		extra: extra,
	}
}

func (rs runeSet) Contains(r rune) bool {
	if r < utf8.RuneSelf {
		return rs.ascii.Contains(byte(r))
	}
	if rs.extra == nil {
		return false
	}
	_, found := rs.extra[r]
	return found
}
