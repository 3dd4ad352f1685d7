package wordlist

import (
	"fmt"
	"strings"
)

// WordNotFoundError reports a query that matches no catalog entry. Word
// holds the query exactly as the caller supplied it.
type WordNotFoundError struct {
	Word string
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("word %q not found in SLIP-39 wordlist", e.Word)
}

// AmbiguousPrefixError reports a prefix matching more than one word.
// Matches carries every matching word in catalog order, uncapped.
type AmbiguousPrefixError struct {
	Prefix  string
	Count   int
	Matches []string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("prefix %q is ambiguous: %d matches (%s)",
		e.Prefix, e.Count, strings.Join(e.Matches, ", "))
}

// InvalidBinaryLengthError reports a bit string that is not exactly
// BitLength characters long.
type InvalidBinaryLengthError struct {
	Length int
}

func (e *InvalidBinaryLengthError) Error() string {
	return fmt.Sprintf("binary must be exactly %d bits, got %d bits", BitLength, e.Length)
}

// InvalidBinaryError reports a bit string with malformed content.
type InvalidBinaryError struct {
	Reason string
}

func (e *InvalidBinaryError) Error() string {
	return fmt.Sprintf("invalid binary string: %s", e.Reason)
}
