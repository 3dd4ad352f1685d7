package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAccept(t *testing.T) {
	h := NewHistory(false)
	assert.Equal(t, DefaultHistoryCapacity, h.Capacity())
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Reviewing())

	h.Accept("academic")
	h.Accept("zero")
	assert.Equal(t, []string{"academic", "zero"}, h.Entries())

	// Accepting parks the review cursor on the new entry.
	assert.Equal(t, 1, h.ReviewCursor())
	w, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "zero", w)
}

func TestHistorySaturation(t *testing.T) {
	h := NewHistory(false)
	for i := 0; i < DefaultHistoryCapacity; i++ {
		h.Accept(fmt.Sprintf("word%02d", i))
	}
	require.True(t, h.Full())
	snapshot := append([]string(nil), h.Entries()...)
	cursor := h.ReviewCursor()

	// The 21st accept changes nothing at all.
	h.Accept("overflow")
	assert.Equal(t, DefaultHistoryCapacity, h.Len())
	assert.Equal(t, snapshot, h.Entries())
	assert.Equal(t, cursor, h.ReviewCursor())
	assert.NotContains(t, h.Entries(), "overflow")
}

func TestHistoryPaperMode(t *testing.T) {
	h := NewHistory(true)
	assert.Equal(t, PaperHistoryCapacity, h.Capacity())

	h.Accept("academic")
	assert.Equal(t, []string{"academic"}, h.Entries())
	assert.Equal(t, 0, h.ReviewCursor())

	// Each accept wholesale replaces the previous word.
	h.Accept("zero")
	assert.Equal(t, []string{"zero"}, h.Entries())
	assert.Equal(t, 0, h.ReviewCursor())
}

func TestHistoryReviewUp(t *testing.T) {
	h := NewHistory(false)
	h.Accept("alpha")
	h.Accept("bravo")
	h.Accept("charlie")
	h.ClearReview()

	// From the live view, up lands on the most recent entry.
	h.ReviewUp()
	w, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "charlie", w)

	h.ReviewUp()
	h.ReviewUp()
	w, _ = h.Current()
	assert.Equal(t, "alpha", w)

	// The oldest entry is the floor.
	h.ReviewUp()
	w, _ = h.Current()
	assert.Equal(t, "alpha", w)
}

func TestHistoryReviewUpEmpty(t *testing.T) {
	h := NewHistory(false)
	h.ReviewUp()
	assert.False(t, h.Reviewing())
}

func TestHistoryReviewDownExitsAtNewest(t *testing.T) {
	h := NewHistory(false)
	h.Accept("alpha")
	h.Accept("bravo")
	h.ClearReview()

	h.ReviewUp() // bravo
	h.ReviewUp() // alpha
	h.ReviewDown()
	w, _ := h.Current()
	assert.Equal(t, "bravo", w)

	// Descending past the newest entry returns to the live view.
	h.ReviewDown()
	assert.False(t, h.Reviewing())
	_, ok := h.Current()
	assert.False(t, ok)
}

func TestHistoryReviewDownFromLiveView(t *testing.T) {
	h := NewHistory(false)

	// Nothing to enter on an empty history.
	h.ReviewDown()
	assert.False(t, h.Reviewing())

	h.Accept("alpha")
	h.Accept("bravo")
	h.ClearReview()

	// With entries, down from the live view enters review at the oldest.
	h.ReviewDown()
	w, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "alpha", w)
}

func TestHistoryClearReview(t *testing.T) {
	h := NewHistory(false)
	h.Accept("alpha")
	require.True(t, h.Reviewing())
	h.ClearReview()
	assert.False(t, h.Reviewing())
	assert.Equal(t, -1, h.ReviewCursor())
}
