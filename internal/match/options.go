package match

// MatchingOptions maps a trigger rune to the CharacterSet it selects.
// Only runes that appear as triggers are normalized; every other rune
// passes through unchanged. The zero value is Exact: no rune is treated
// specially.
type MatchingOptions struct {
	Treatments map[rune]CharacterSet
}

// Exact performs plain, literal prefix matching.
func Exact() MatchingOptions {
	return MatchingOptions{}
}

// IgnoringWhiteSpace treats spaces and tabs as interchangeable.
func IgnoringWhiteSpace() MatchingOptions {
	ws := WhiteSpaces()
	return MatchingOptions{Treatments: map[rune]CharacterSet{
		' ':  ws,
		'\t': ws,
	}}
}

// IgnoringNewLines treats newlines as interchangeable with white space.
func IgnoringNewLines() MatchingOptions {
	return MatchingOptions{Treatments: map[rune]CharacterSet{
		'\n': WhiteSpaces(),
	}}
}

// IgnoringWhiteSpaceAndNewLines treats spaces, tabs, and newlines as all
// mutually interchangeable.
func IgnoringWhiteSpaceAndNewLines() MatchingOptions {
	ws := WhiteSpaces()
	return MatchingOptions{Treatments: map[rune]CharacterSet{
		' ':  ws,
		'\t': ws,
		'\n': ws,
	}}
}

// New builds a MatchingOptions value from an explicit trigger-to-class
// mapping.
func New(treatments map[rune]CharacterSet) MatchingOptions {
	return MatchingOptions{Treatments: treatments}
}

// Tag normalizes s into its TaggedString form under opts.
func (opts MatchingOptions) Tag(s string) TaggedString {
	ts := make(TaggedString, 0, len(s))
	offset := 0
	for _, r := range s {
		nc := opts.normalizedChar(r)
		if !nc.IsSquash() {
			ts = append(ts, TaggedChar{Tagged: tag(nc), Offset: offset})
		}
		offset++
	}
	return ts
}

func (opts MatchingOptions) normalizedChar(r rune) NormalizedChar {
	cs, ok := opts.Treatments[r]
	if !ok {
		return NormalizedChar{tag: tagChar, char: r}
	}
	return cs.normalizedChar(r)
}

// HasTrigger reports whether r is a trigger rune in opts.
func (opts MatchingOptions) HasTrigger(r rune) bool {
	_, ok := opts.Treatments[r]
	return ok
}
