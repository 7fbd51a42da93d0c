package grapheme_test

import (
	"testing"

	"github.com/jub0bs/fuzzytrie/internal/grapheme"
)

func TestPrefixSuffix(t *testing.T) {
	cases := []struct {
		s          string
		n          int
		wantPrefix string
		wantSuffix string
	}{
		{"", 0, "", ""},
		{"abcdef", 0, "", "abcdef"},
		{"abcdef", 3, "abc", "def"},
		{"abcdef", 6, "abcdef", ""},
		{"🤡abcde🤡", 4, "🤡abc", "de🤡"},
		{"🤡abcde🤡", 1, "🤡", "abcde🤡"},
	}
	for _, tc := range cases {
		if got := grapheme.Prefix(tc.s, tc.n); got != tc.wantPrefix {
			t.Errorf("Prefix(%q, %d): got %q; want %q", tc.s, tc.n, got, tc.wantPrefix)
		}
		if got := grapheme.Suffix(tc.s, tc.n); got != tc.wantSuffix {
			t.Errorf("Suffix(%q, %d): got %q; want %q", tc.s, tc.n, got, tc.wantSuffix)
		}
	}
}

func TestLen(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"🤡abc🤡", 5},
	}
	for _, tc := range cases {
		if got := grapheme.Len(tc.s); got != tc.want {
			t.Errorf("Len(%q): got %d; want %d", tc.s, got, tc.want)
		}
	}
}
