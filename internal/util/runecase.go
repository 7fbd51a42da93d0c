package util

import (
	"strings"
	"unicode"
)

// Uppercase returns the upper-cased version of str, folding each rune
// through [unicode.ToUpper] rather than assuming an ASCII-only string
// (adapted from an ASCII-only byte-case helper to cover arbitrary trie
// keys, which are not restricted to header-token text).
func Uppercase(str string) string {
	return strings.Map(unicode.ToUpper, str)
}
