package fuzzytrie

import "errors"

// ErrMalformedTrie is returned when a serialized Trie fails to decode
// because it violates the wire format's structural expectations
// (see the serialize package). It never results from an in-memory
// operation: Insert, Remove, and every search/collection method are total
// on well-formed input.
var ErrMalformedTrie = errors.New("fuzzytrie: malformed serialized trie")
