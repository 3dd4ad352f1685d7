package session

// DefaultHistoryCapacity bounds the accepted-word history in normal
// operation.
const DefaultHistoryCapacity = 20

// PaperHistoryCapacity bounds the history in paper mode, where only the
// most recent word may remain visible.
const PaperHistoryCapacity = 1

// History stores accepted words oldest-first, up to a fixed capacity,
// plus a review cursor for browsing past entries. cursor == -1 means the
// live input view; anything else indexes entries.
type History struct {
	entries  []string
	capacity int
	cursor   int
}

// NewHistory creates an empty history. paper selects the single-entry
// capacity used for air-gapped paper workflows.
func NewHistory(paper bool) *History {
	capacity := DefaultHistoryCapacity
	if paper {
		capacity = PaperHistoryCapacity
	}
	return &History{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
		cursor:   -1,
	}
}

// Accept records a newly confirmed word and parks the review cursor on
// it. In paper mode the new word wholesale replaces whatever was stored.
// Once a non-paper history is full, further words are silently dropped
// and the call changes nothing; saturation is policy, not an error.
func (h *History) Accept(word string) {
	if h.capacity == 1 {
		h.entries = h.entries[:0]
		h.entries = append(h.entries, word)
		h.cursor = 0
		return
	}
	if len(h.entries) >= h.capacity {
		return
	}
	h.entries = append(h.entries, word)
	h.cursor = len(h.entries) - 1
}

// ReviewUp moves the review cursor toward older entries. From the live
// view it lands on the most recent entry. At the oldest entry it stays
// put. No-op on an empty history.
func (h *History) ReviewUp() {
	if len(h.entries) == 0 {
		return
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
}

// ReviewDown moves the review cursor toward newer entries. From the live
// view it enters review at the oldest entry. Past the most recent entry
// it returns to the live view; that is the exit path back to typing.
func (h *History) ReviewDown() {
	if h.cursor == -1 {
		if len(h.entries) > 0 {
			h.cursor = 0
		}
		return
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	} else {
		h.cursor = -1
	}
}

// ClearReview drops back to the live input view.
func (h *History) ClearReview() { h.cursor = -1 }

// Reviewing reports whether the cursor points at a past entry.
func (h *History) Reviewing() bool { return h.cursor != -1 }

// ReviewCursor returns the raw cursor: -1 for the live view, otherwise
// an index into Entries.
func (h *History) ReviewCursor() int { return h.cursor }

// Current returns the entry under the review cursor, or false when in
// the live view.
func (h *History) Current() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	return h.entries[h.cursor], true
}

// Entries returns the stored words oldest-first (read-only).
func (h *History) Entries() []string { return h.entries }

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Full reports whether the history has reached capacity.
func (h *History) Full() bool { return len(h.entries) >= h.capacity }

// Capacity returns the configured maximum number of entries.
func (h *History) Capacity() int { return h.capacity }
