// Package tui renders the interactive calculator with bubbletea. The
// Model is a thin adapter: Update translates key presses into session
// events, View is a pure projection of the session snapshot.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wordbits/slip39c/internal/session"
)

type keyMap struct {
	Quit      key.Binding
	Confirm   key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c")),
		Confirm:   key.NewBinding(key.WithKeys("enter")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}

// Model wraps a session for the bubbletea event loop.
type Model struct {
	sess   *session.Session
	keys   keyMap
	styles Styles
	width  int
	height int
}

// NewModel creates a model around an existing session.
func NewModel(sess *session.Session) Model {
	snap := sess.Snapshot()
	return Model{
		sess:   sess,
		keys:   defaultKeyMap(),
		styles: newStyles(snap.Paper),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Each key press applies exactly one
// session transition.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.sess.Confirm()
		case key.Matches(msg, m.keys.Left):
			m.sess.MoveLeft()
		case key.Matches(msg, m.keys.Right):
			m.sess.MoveRight()
		case key.Matches(msg, m.keys.Up):
			m.sess.ReviewUp()
		case key.Matches(msg, m.keys.Down):
			m.sess.ReviewDown()
		case key.Matches(msg, m.keys.Backspace):
			m.sess.Backspace()
		default:
			if msg.Type == tea.KeyRunes && !msg.Alt {
				for _, r := range msg.Runes {
					m.sess.AppendChar(r)
				}
			} else if msg.Type == tea.KeySpace {
				m.sess.AppendChar(' ')
			}
		}
	}
	return m, nil
}
