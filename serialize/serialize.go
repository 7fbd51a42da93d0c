// Package serialize round-trips a [fuzzytrie.Trie] through its JSON wire
// format, either in memory or against a file.
package serialize

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jub0bs/fuzzytrie"
)

// Marshal encodes t as pretty-printed JSON.
func Marshal[V any](t *fuzzytrie.Trie[V]) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// Unmarshal decodes data into a new Trie. It returns an error wrapping
// [fuzzytrie.ErrMalformedTrie] if data does not conform to the wire
// format.
func Unmarshal[V any](data []byte) (*fuzzytrie.Trie[V], error) {
	t := fuzzytrie.New[V]()
	if err := json.Unmarshal(data, t); err != nil {
		if !errors.Is(err, fuzzytrie.ErrMalformedTrie) {
			err = fmt.Errorf("%w: %w", fuzzytrie.ErrMalformedTrie, err)
		}
		return nil, err
	}
	return t, nil
}

// SaveFile encodes t and writes it to path.
func SaveFile[V any](path string, t *fuzzytrie.Trie[V]) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize: encode trie: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("serialize: write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads path and decodes it into a new Trie.
func LoadFile[V any](path string) (*fuzzytrie.Trie[V], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("serialize: read %s: %w", path, err)
	}
	t, err := Unmarshal[V](data)
	if err != nil {
		return nil, fmt.Errorf("serialize: decode %s: %w", path, err)
	}
	return t, nil
}
