// Command fuzzytrie is a small example driver over the fuzzytrie library,
// with four subcommands: basic, fuzzy, interactive, and serializing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jub0bs/fuzzytrie"
	"github.com/jub0bs/fuzzytrie/internal/match"
	"github.com/jub0bs/fuzzytrie/serialize"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fuzzytrie <basic|fuzzy|interactive|serializing> [args]")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	mode, rest := args[0], args[1:]
	var err error
	switch mode {
	case "basic":
		err = runBasic(log, rest)
	case "fuzzy":
		err = runFuzzy(log, rest)
	case "interactive":
		err = runInteractive(log, rest)
	case "serializing":
		err = runSerializing(log, rest)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Error("fuzzytrie: command failed", "mode", mode, "err", err)
		os.Exit(1)
	}
}

func ptrString(s string) *string { return &s }

func seedWordlist() *fuzzytrie.Trie[string] {
	t := fuzzytrie.New[string]()
	t.Insert("romanus", nil)
	t.Insert("romulus", nil)
	t.Insert("rubens", nil)
	t.Insert("ruber", nil)
	t.Insert("rubicon", nil)
	t.Insert("rubicundus", nil)
	return t
}

func runBasic(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("basic", flag.ExitOnError)
	prefix := fs.String("prefix", "rom", "prefix to query")
	fs.Parse(args)

	t := seedWordlist()
	log.Info("queried prefix", "mode", "basic", "prefix", *prefix)
	entries := t.GetSuffixesValues(*prefix)
	for _, e := range entries {
		fmt.Println(e.Key)
	}
	log.Info("match count", "count", len(entries))
	return nil
}

func runFuzzy(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("fuzzy", flag.ExitOnError)
	prefix := fs.String("prefix", "roma", "prefix to query")
	fs.Parse(args)

	t := seedWordlist()
	t.Insert("rom anus", nil)

	opts := match.IgnoringWhiteSpace()
	log.Info("queried prefix", "mode", "fuzzy", "prefix", *prefix)
	entries := t.GetSuffixesWithMatchingOptions(*prefix, opts)
	for _, e := range entries {
		fmt.Println(e.Key)
	}
	log.Info("match count", "count", len(entries))
	return nil
}

// runInteractive reads lines from stdin: a line of the form "+word" or
// "+word:value" inserts word (with value as its payload, if given); any
// other line is treated as a prefix query under
// MatchingOptions.IgnoringWhiteSpaceAndNewLines.
func runInteractive(log *slog.Logger, args []string) error {
	t := fuzzytrie.New[string]()
	opts := match.IgnoringWhiteSpaceAndNewLines()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "+"):
			word, value, hasValue := strings.Cut(line[1:], ":")
			var v *string
			if hasValue {
				v = &value
			}
			t.Insert(word, v)
			log.Info("inserted", "word", word, "has_value", hasValue)
		default:
			entries := t.GetSuffixesWithMatchingOptions(line, opts)
			for _, e := range entries {
				fmt.Println(e.Key)
			}
			log.Info("queried prefix", "prefix", line, "count", len(entries))
		}
	}
	return scanner.Err()
}

func runSerializing(log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("serializing", flag.ExitOnError)
	path := fs.String("file", "trie.json", "path to JSON file to write, then read back")
	fs.Parse(args)

	t := fuzzytrie.New[string]()
	t.Insert("romanus", nil)
	t.Insert("romulus", ptrString("ten"))
	t.Insert("rubens", nil)
	t.Insert("ruber", nil)
	t.Insert("rubicon", nil)
	t.Insert("rubicundus", nil)
	if err := serialize.SaveFile(*path, t); err != nil {
		return err
	}
	log.Info("wrote trie", "path", *path, "node_count", t.NodeCount())

	loaded, err := serialize.LoadFile[string](*path)
	if err != nil {
		return err
	}
	log.Info("read trie back", "path", *path, "node_count", loaded.NodeCount())
	entries := loaded.GetSuffixesValues("rom")
	for _, e := range entries {
		fmt.Println(e.Key)
	}
	return nil
}
