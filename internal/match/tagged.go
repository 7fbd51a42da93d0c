package match

// A NormalizedChar is the result of running one character through a
// CharacterSet: it is dropped entirely (Squash), passed through literally
// (Char), or replaced by a representative of its equivalence class
// (Sentinel).
type NormalizedChar struct {
	tag  normalizedTag
	hash uint64 // meaningful only when tag == tagSentinel
	char rune   // meaningful when tag == tagChar or tagSentinel
}

type normalizedTag uint8

const (
	tagSquash normalizedTag = iota
	tagChar
	tagSentinel
)

var squash = NormalizedChar{tag: tagSquash}

// IsSquash reports whether nc should be dropped from the tagged stream.
func (nc NormalizedChar) IsSquash() bool { return nc.tag == tagSquash }

// Tagged is either a literal character or a sentinel standing for an
// equivalence class; it carries enough information to compare two
// positions from possibly-different strings for equivalence.
type Tagged struct {
	isSentinel bool
	hash       uint64
	char       rune
}

// Char returns the exemplar rune carried by t, regardless of whether t is a
// literal character or a sentinel.
func (t Tagged) Char() rune { return t.char }

// Equal reports whether t and other denote the same equivalence class:
// two Chars are equal iff their runes are equal; two Sentinels are equal
// iff their hashes are equal; a Char and a Sentinel are never equal.
func (t Tagged) Equal(other Tagged) bool {
	if t.isSentinel != other.isSentinel {
		return false
	}
	if t.isSentinel {
		return t.hash == other.hash
	}
	return t.char == other.char
}

// TaggedChar pairs a Tagged token with its offset (a code-point index) in
// the pre-squash original string.
type TaggedChar struct {
	Tagged Tagged
	Offset int
}

// A TaggedString is the normalized form of a string under some
// MatchingOptions: a sequence of TaggedChar, with Squash entries dropped.
type TaggedString []TaggedChar

// Len returns the number of tagged positions in ts.
func (ts TaggedString) Len() int { return len(ts) }

func tag(nc NormalizedChar) Tagged {
	switch nc.tag {
	case tagSentinel:
		return Tagged{isSentinel: true, hash: nc.hash, char: nc.char}
	default:
		return Tagged{char: nc.char}
	}
}
