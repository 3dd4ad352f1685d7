package session

import "github.com/wordbits/slip39c/internal/wordlist"

// Suggestions maintains the live prefix-filtered candidate list and its
// wrap-around selection cursor. Only input changes refilter the list;
// cursor movement never does.
type Suggestions struct {
	catalog *wordlist.Catalog
	words   []string
	cursor  int
}

// NewSuggestions creates a suggestion list seeded with the full catalog.
func NewSuggestions(catalog *wordlist.Catalog) *Suggestions {
	s := &Suggestions{catalog: catalog}
	s.SetInput("")
	return s
}

// SetInput refilters the candidates for the given raw input. An empty
// normalized input yields the entire catalog in catalog order. The cursor
// is kept when it still points at a valid position, otherwise reset to 0.
func (s *Suggestions) SetInput(input string) {
	s.words = s.catalog.Matches(wordlist.Normalize(input))
	if len(s.words) == 0 || s.cursor >= len(s.words) {
		s.cursor = 0
	}
}

// MoveLeft moves the selection left, wrapping from 0 to the end.
// No-op on an empty list.
func (s *Suggestions) MoveLeft() {
	if len(s.words) == 0 {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	} else {
		s.cursor = len(s.words) - 1
	}
}

// MoveRight moves the selection right, wrapping from the end to 0.
// No-op on an empty list.
func (s *Suggestions) MoveRight() {
	if len(s.words) == 0 {
		return
	}
	if s.cursor < len(s.words)-1 {
		s.cursor++
	} else {
		s.cursor = 0
	}
}

// Current returns the selected word, or false when the list is empty.
func (s *Suggestions) Current() (string, bool) {
	if len(s.words) == 0 {
		return "", false
	}
	return s.words[s.cursor], true
}

// Words returns the current candidates in catalog order (read-only).
func (s *Suggestions) Words() []string { return s.words }

// Cursor returns the selection index; 0 when the list is empty.
func (s *Suggestions) Cursor() int { return s.cursor }

// Len returns the number of candidates.
func (s *Suggestions) Len() int { return len(s.words) }
