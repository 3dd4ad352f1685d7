package wordlist

import (
	"fmt"
	"strconv"
)

// Encode returns the 10-bit binary representation of a SLIP-39 word.
// The word is normalized (trimmed, lowercased) before lookup; a word
// outside the catalog yields a WordNotFoundError carrying the original
// input.
func (c *Catalog) Encode(word string) (string, error) {
	i, ok := c.Index(Normalize(word))
	if !ok {
		return "", &WordNotFoundError{Word: word}
	}
	return fmt.Sprintf("%0*b", BitLength, i), nil
}

// Decode returns the SLIP-39 word for a 10-bit binary string. The string
// must be exactly BitLength characters of '0' and '1'.
func (c *Catalog) Decode(binary string) (string, error) {
	if len(binary) != BitLength {
		return "", &InvalidBinaryLengthError{Length: len(binary)}
	}
	for _, r := range binary {
		if r != '0' && r != '1' {
			return "", &InvalidBinaryError{Reason: "binary string must only contain '0' and '1'"}
		}
	}
	index, err := strconv.ParseUint(binary, 2, 16)
	if err != nil {
		return "", &InvalidBinaryError{Reason: err.Error()}
	}
	word, ok := c.Word(int(index))
	if !ok {
		// Unreachable for the full 1024-word catalog: 10 bits cannot
		// exceed index 1023. Guards catalogs built with New.
		return "", &InvalidBinaryError{Reason: fmt.Sprintf("index %d out of wordlist range (0-%d)", index, c.Len()-1)}
	}
	return word, nil
}

// Encode encodes a word against the default SLIP-39 catalog.
func Encode(word string) (string, error) { return Default().Encode(word) }

// Decode decodes a bit string against the default SLIP-39 catalog.
func Decode(binary string) (string, error) { return Default().Decode(binary) }
