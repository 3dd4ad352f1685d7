// Package session implements the interactive lookup engine: the live
// suggestion list, the bounded accepted-word history, and the state
// machine that drives both from input events. It has no terminal
// dependencies; the TUI layer translates key presses into event method
// calls and renders from Snapshot.
package session

import "github.com/wordbits/slip39c/internal/wordlist"

// State identifies the top-level session phase.
type State int

const (
	// StateStartup shows the mode-selection modal.
	StateStartup State = iota
	// StateRunning is the main loop; Mode is set once this is entered.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Mode selects the input interpretation while running.
type Mode int

const (
	// ModeWord takes typed prefixes and resolves them through suggestions.
	ModeWord Mode = iota
	// ModeBinary takes a raw 10-bit string.
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Session is the single-threaded interactive state machine. Every event
// method applies exactly one transition; none of them can fail. Invalid
// or incomplete input produces no state change rather than an error.
type Session struct {
	catalog        *wordlist.Catalog
	state          State
	mode           Mode
	modalSelection Mode
	input          []rune
	suggestions    *Suggestions
	history        *History
	paper          bool
}

// New creates a session at the mode-selection modal, with Word
// preselected.
func New(catalog *wordlist.Catalog, paper bool) *Session {
	return &Session{
		catalog:        catalog,
		state:          StateStartup,
		modalSelection: ModeWord,
		suggestions:    NewSuggestions(catalog),
		history:        NewHistory(paper),
		paper:          paper,
	}
}

// NewWithMode creates a session already running in the given mode,
// skipping the modal. Used when the mode is chosen up front via flag or
// config.
func NewWithMode(catalog *wordlist.Catalog, mode Mode, paper bool) *Session {
	s := New(catalog, paper)
	s.modalSelection = mode
	s.mode = mode
	s.state = StateRunning
	return s
}

// Catalog returns the read-only word table the session resolves against.
func (s *Session) Catalog() *wordlist.Catalog { return s.catalog }

// State returns the current top-level phase.
func (s *Session) State() State { return s.state }

// Mode returns the active input mode; ok is false while the modal is
// still up and no mode has been committed.
func (s *Session) Mode() (Mode, bool) {
	if s.state != StateRunning {
		return 0, false
	}
	return s.mode, true
}

// AppendChar handles a typed character.
//
// Word mode appends anything and refilters suggestions. Binary mode only
// accepts '0' or '1' up to 10 characters; anything else is a complete
// no-op, including the review cursor.
func (s *Session) AppendChar(c rune) {
	if s.state != StateRunning {
		return
	}
	switch s.mode {
	case ModeWord:
		s.history.ClearReview()
		s.input = append(s.input, c)
		s.suggestions.SetInput(string(s.input))
	case ModeBinary:
		if (c != '0' && c != '1') || len(s.input) >= wordlist.BitLength {
			return
		}
		s.history.ClearReview()
		s.input = append(s.input, c)
	}
}

// Backspace drops the last input character, refiltering suggestions in
// word mode. Empty input stays empty.
func (s *Session) Backspace() {
	if s.state != StateRunning {
		return
	}
	s.history.ClearReview()
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
	if s.mode == ModeWord {
		s.suggestions.SetInput(string(s.input))
	}
}

// MoveLeft toggles the modal selection during startup, or moves the
// suggestion cursor in word mode. Binary mode ignores it.
func (s *Session) MoveLeft() {
	if s.state == StateStartup {
		s.toggleSelection()
		return
	}
	if s.mode == ModeWord {
		s.history.ClearReview()
		s.suggestions.MoveLeft()
	}
}

// MoveRight is the mirror of MoveLeft.
func (s *Session) MoveRight() {
	if s.state == StateStartup {
		s.toggleSelection()
		return
	}
	if s.mode == ModeWord {
		s.history.ClearReview()
		s.suggestions.MoveRight()
	}
}

// ReviewUp steps the history review cursor toward older entries.
func (s *Session) ReviewUp() {
	if s.state != StateRunning {
		return
	}
	s.history.ReviewUp()
}

// ReviewDown steps the history review cursor toward newer entries,
// returning to the live view past the most recent one.
func (s *Session) ReviewDown() {
	if s.state != StateRunning {
		return
	}
	s.history.ReviewDown()
}

// Confirm commits the current selection.
//
// During startup it locks in the modal selection and enters the running
// state. In word mode it accepts the highlighted suggestion, if any. In
// binary mode it accepts the decoded word only for a complete, valid
// 10-bit string; anything else is a no-op.
func (s *Session) Confirm() {
	if s.state == StateStartup {
		s.mode = s.modalSelection
		s.state = StateRunning
		return
	}
	switch s.mode {
	case ModeWord:
		word, ok := s.suggestions.Current()
		if !ok {
			return
		}
		s.accept(word)
	case ModeBinary:
		if len(s.input) != wordlist.BitLength {
			return
		}
		word, err := s.catalog.Decode(string(s.input))
		if err != nil {
			return
		}
		s.accept(word)
	}
}

func (s *Session) toggleSelection() {
	if s.modalSelection == ModeWord {
		s.modalSelection = ModeBinary
	} else {
		s.modalSelection = ModeWord
	}
}

func (s *Session) accept(word string) {
	s.history.Accept(word)
	s.input = s.input[:0]
	if s.mode == ModeWord {
		s.suggestions.SetInput("")
	}
}

// Snapshot is a read-only projection of the session for rendering.
// Slices are copies; the renderer may hold a Snapshot across transitions
// without observing later mutations.
type Snapshot struct {
	State          State
	Mode           Mode
	ModalSelection Mode
	Input          string
	Suggestions    []string
	SuggestionIdx  int
	History        []string
	ReviewIdx      int
	Paper          bool
	Capacity       int
}

// Snapshot captures the current state. It never mutates the session and
// may be called any number of times between transitions.
func (s *Session) Snapshot() Snapshot {
	suggestions := make([]string, len(s.suggestions.Words()))
	copy(suggestions, s.suggestions.Words())
	history := make([]string, len(s.history.Entries()))
	copy(history, s.history.Entries())
	return Snapshot{
		State:          s.state,
		Mode:           s.mode,
		ModalSelection: s.modalSelection,
		Input:          string(s.input),
		Suggestions:    suggestions,
		SuggestionIdx:  s.suggestions.Cursor(),
		History:        history,
		ReviewIdx:      s.history.ReviewCursor(),
		Paper:          s.paper,
		Capacity:       s.history.Capacity(),
	}
}
