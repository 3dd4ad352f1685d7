// Package wordlist implements the SLIP-39 word table: exact and prefix
// lookup, unique-prefix resolution, and the 10-bit binary codec.
//
// The table is fixed at 1024 words, strictly sorted, so a word's position
// is its numeric index and every lookup is a binary search. The default
// catalog is embedded in the binary, validated once at init, and shared
// read-only by every caller; nothing in this package mutates it.
package wordlist

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

// Size is the number of words in the SLIP-39 wordlist (2^BitLength).
const Size = 1024

// BitLength is the number of bits needed to index the wordlist.
const BitLength = 10

//go:embed words.txt
var wordData string

// defaultCatalog is constructed once at process start and never mutated.
var defaultCatalog = mustCatalog(strings.Fields(wordData))

// Catalog is an immutable, lexicographically ordered word table. A word's
// position in the table is its numeric index.
type Catalog struct {
	words []string
}

// Default returns the embedded SLIP-39 catalog.
func Default() *Catalog { return defaultCatalog }

// New builds a Catalog from a strictly sorted list of unique words.
// Most callers want Default; New exists so alternative tables (including
// tiny test tables) get the same lookup semantics.
func New(words []string) (*Catalog, error) {
	for i := 1; i < len(words); i++ {
		if words[i-1] >= words[i] {
			return nil, fmt.Errorf("wordlist not strictly sorted at index %d: %q >= %q", i, words[i-1], words[i])
		}
	}
	return &Catalog{words: words}, nil
}

func mustCatalog(words []string) *Catalog {
	if len(words) != Size {
		panic(fmt.Sprintf("embedded wordlist has %d words, want %d", len(words), Size))
	}
	c, err := New(words)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize lowercases and trims a user-typed query. It is idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.words) }

// Words returns the full table in catalog order. The slice is shared;
// callers must treat it as read-only.
func (c *Catalog) Words() []string { return c.words }

// Index returns the numeric index of an exact, already-normalized word.
func (c *Catalog) Index(word string) (int, bool) {
	i := sort.SearchStrings(c.words, word)
	if i < len(c.words) && c.words[i] == word {
		return i, true
	}
	return 0, false
}

// Word returns the word at index i, or false when i is out of range.
func (c *Catalog) Word(i int) (string, bool) {
	if i < 0 || i >= len(c.words) {
		return "", false
	}
	return c.words[i], true
}

// Matches returns every word starting with prefix, in catalog order.
// The empty prefix matches the whole catalog. The returned slice aliases
// the table and must be treated as read-only.
func (c *Catalog) Matches(prefix string) []string {
	lo := sort.SearchStrings(c.words, prefix)
	hi := lo
	for hi < len(c.words) && strings.HasPrefix(c.words[hi], prefix) {
		hi++
	}
	return c.words[lo:hi]
}
