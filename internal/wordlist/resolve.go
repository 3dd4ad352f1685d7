package wordlist

// FindMatches returns every catalog word starting with the normalized
// query, in catalog order.
func (c *Catalog) FindMatches(query string) []string {
	return c.Matches(Normalize(query))
}

// FindByPrefix resolves a typed query to exactly one catalog word.
//
// An exact match always wins, even when the query is also a proper
// prefix of other words. Failing that, the query must select exactly one
// word by prefix: zero matches yield a WordNotFoundError carrying the
// original query, more than one yields an AmbiguousPrefixError carrying
// every match.
//
// Resolution is deterministic and never mutates the catalog.
func (c *Catalog) FindByPrefix(query string) (string, error) {
	normalized := Normalize(query)
	if _, ok := c.Index(normalized); ok {
		return normalized, nil
	}
	matches := c.Matches(normalized)
	switch len(matches) {
	case 0:
		return "", &WordNotFoundError{Word: query}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousPrefixError{Prefix: normalized, Count: len(matches), Matches: matches}
	}
}

// FindByPrefix resolves a query against the default SLIP-39 catalog.
func FindByPrefix(query string) (string, error) { return Default().FindByPrefix(query) }

// FindMatches returns prefix matches from the default SLIP-39 catalog.
func FindMatches(query string) []string { return Default().FindMatches(query) }
