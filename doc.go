// Package fuzzytrie provides an in-memory, edge-compressed prefix trie
// (a radix trie) that maps textual keys to optional payload values and
// supports both exact and equivalence-class ("fuzzy") prefix search, the
// latter driven by a caller-supplied table of per-character equivalence
// rules such as "treat whitespace as interchangeable" or "fold case".
//
// A Trie is a single-writer, single-threaded data structure: no method
// blocks, yields, or can be cancelled, and concurrent mutation is not
// supported. Read operations (SuffixTree and its siblings) are logically
// non-mutating, aside from incrementing each visited Node's observational
// VisitCount.
package fuzzytrie
