package command

import "github.com/wordbits/slip39c/internal/wordlist"

// resolveWord turns a typed query into a catalog word. With usePrefix it
// accepts any unambiguous prefix; without, only an exact (normalized)
// word.
func resolveWord(query string, usePrefix bool) (string, error) {
	if usePrefix {
		return wordlist.FindByPrefix(query)
	}
	normalized := wordlist.Normalize(query)
	if _, ok := wordlist.Default().Index(normalized); ok {
		return normalized, nil
	}
	return "", &wordlist.WordNotFoundError{Word: query}
}
