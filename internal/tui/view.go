package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wordbits/slip39c/internal/session"
	"github.com/wordbits/slip39c/internal/wordlist"
)

const carouselWindow = 7

const disclaimer = "Note: Stateless mode encodes data using the SLIP-39 format,\n" +
	"but generated phrases are independent and cannot be combined for recovery."

// View implements tea.Model.
func (m Model) View() string {
	snap := m.sess.Snapshot()
	if snap.State == session.StateStartup {
		return m.viewModal(snap)
	}
	sections := []string{
		m.viewCarousel(snap),
		m.viewGrid(snap),
		m.viewInput(snap),
		m.viewHelp(),
		m.styles.Footer.Width(m.width).Align(lipgloss.Center).Render(disclaimer),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewCarousel renders the suggestion strip, or the decoded-word box in
// binary mode.
func (m Model) viewCarousel(snap session.Snapshot) string {
	if snap.Mode == session.ModeBinary {
		var content string
		if len(snap.Input) == wordlist.BitLength {
			word, err := m.sess.Catalog().Decode(snap.Input)
			if err != nil {
				content = m.styles.Invalid.Render("Invalid Binary")
			} else {
				content = m.styles.Decoded.Render("[ " + strings.ToUpper(word) + " ]")
			}
		} else {
			content = "Enter 10 bits..."
		}
		return m.styles.titledBox("Decoded Word", content, m.width)
	}

	if len(snap.Suggestions) == 0 {
		return m.styles.titledBox("Suggestions", "No matches", m.width)
	}

	start, end := carouselRange(snap.SuggestionIdx, len(snap.Suggestions))
	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		word := snap.Suggestions[i]
		if i == snap.SuggestionIdx {
			parts = append(parts, m.styles.Selected.Render("[ "+word+" ]"))
		} else {
			parts = append(parts, word)
		}
	}
	return m.styles.titledBox("Suggestions", strings.Join(parts, "   "), m.width)
}

// carouselRange picks a window of up to carouselWindow entries centered
// on the cursor, clamped to the list bounds.
func carouselRange(cursor, total int) (start, end int) {
	start = cursor - carouselWindow/2
	if start < 0 {
		start = 0
	}
	end = start + carouselWindow
	if end > total {
		end = total
		start = end - carouselWindow
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// gridContent decides which word the memory grid displays. History
// review has priority, then live binary input, then the highlighted
// suggestion.
func (m Model) gridContent(snap session.Snapshot) (word string, index int, bits string, hasWord bool) {
	catalog := m.sess.Catalog()
	fromWord := func(w string) (string, int, string, bool) {
		i, _ := catalog.Index(w)
		b, err := catalog.Encode(w)
		if err != nil {
			b = strings.Repeat("0", wordlist.BitLength)
		}
		return w, i, b, true
	}

	if snap.ReviewIdx != -1 {
		return fromWord(snap.History[snap.ReviewIdx])
	}
	if snap.Mode == session.ModeBinary {
		if len(snap.Input) == wordlist.BitLength {
			if w, err := catalog.Decode(snap.Input); err == nil {
				i, _ := catalog.Index(w)
				return w, i, snap.Input, true
			}
		}
		return "", 0, snap.Input, false
	}
	if len(snap.Suggestions) > 0 && snap.SuggestionIdx < len(snap.Suggestions) {
		return fromWord(snap.Suggestions[snap.SuggestionIdx])
	}
	return "", 0, "", false
}

var gridBitValues = [wordlist.BitLength]int{512, 256, 128, 64, 32, 16, 8, 4, 2, 1}

// viewGrid renders the memory grid: a 10-cell row of bit values over the
// current word's bits, with the word counter set into the frame.
func (m Model) viewGrid(snap session.Snapshot) string {
	word, index, bits, hasWord := m.gridContent(snap)

	var header, bitRow strings.Builder
	header.WriteString(m.styles.Border.Render("│"))
	bitRow.WriteString(m.styles.Border.Render("│"))
	for i, val := range gridBitValues {
		header.WriteString(m.styles.Accent.Render(fmt.Sprintf("%s│", center(fmt.Sprint(val), 5))))
		var cell string
		if i < len(bits) {
			c := bits[i]
			if c == '1' {
				cell = m.styles.Accent.Render(center("1", 5))
			} else {
				cell = m.styles.Muted.Render(center("0", 5))
			}
		} else {
			cell = m.styles.Muted.Render("  #  ")
		}
		bitRow.WriteString(cell)
		bitRow.WriteString(m.styles.Border.Render("│"))
	}

	sep := func(left, mid, right string) string {
		cells := make([]string, wordlist.BitLength)
		for i := range cells {
			cells[i] = "─────"
		}
		return m.styles.Border.Render(left + strings.Join(cells, mid) + right)
	}

	grid := lipgloss.JoinVertical(lipgloss.Left,
		sep("┌", "┬", "┐"),
		header.String(),
		sep("├", "┼", "┤"),
		bitRow.String(),
		sep("└", "┴", "┘"),
	)

	var info string
	if hasWord {
		info = m.styles.Info.Render(fmt.Sprintf("Word: %s | Index: %d", strings.ToUpper(word), index))
	} else {
		info = m.styles.Muted.Render("Select a word to view details")
	}

	inner := m.width - 2
	if inner < 4 {
		inner = 4
	}
	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(m.styles.accent).
		Width(inner).
		Align(lipgloss.Center).
		Render(grid + "\n\n" + info)

	return m.gridTopBorder(snap, inner) + "\n" + body
}

// gridTopBorder builds the grid frame's top line with the title at the
// left and the word counter at the right.
func (m Model) gridTopBorder(snap session.Snapshot, inner int) string {
	var counter string
	switch {
	case snap.Paper:
		counter = " < Paper Mode > "
	case snap.ReviewIdx != -1:
		counter = fmt.Sprintf(" Word #%d/%d [%d] ", snap.ReviewIdx+1, len(snap.History), snap.Capacity)
	default:
		counter = fmt.Sprintf(" Word #%d/%d ", len(snap.History)+1, snap.Capacity)
	}
	title := " Memory Grid "
	fill := inner - len(title) - len(counter) - 2
	if fill < 0 {
		fill = 0
	}
	return m.styles.Border.Render("┌─"+title+strings.Repeat("─", fill)) +
		m.styles.Accent.Render(counter) +
		m.styles.Border.Render("─┐")
}

// viewInput renders the search box with the numbered prompt.
func (m Model) viewInput(snap session.Snapshot) string {
	var prompt string
	kind := "Word"
	if snap.Mode == session.ModeBinary {
		kind = "Bits"
	}
	if snap.Paper {
		prompt = kind + "/> "
	} else {
		prompt = fmt.Sprintf("%s #%d/> ", kind, len(snap.History)+1)
	}

	inner := m.width - 2
	if inner < 4 {
		inner = 4
	}
	line := m.styles.Accent.Render(prompt + snap.Input + "_")
	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(m.styles.accent).
		Width(inner).
		Render(line)

	title := " Search "
	fill := inner - len(title) - 1
	if fill < 0 {
		fill = 0
	}
	top := m.styles.Border.Render("┌─" + title + strings.Repeat("─", fill) + "┐")
	return top + "\n" + body
}

func (m Model) viewHelp() string {
	help := "Esc: Exit | Enter: Select | ←→: Suggest | ↑↓: History"
	return m.styles.Accent.Width(m.width).Align(lipgloss.Right).Render(help)
}

// viewModal renders the startup mode-selection dialog centered on
// screen.
func (m Model) viewModal(snap session.Snapshot) string {
	wordStyle, binaryStyle := m.styles.Button, m.styles.Button
	if snap.ModalSelection == session.ModeWord {
		wordStyle = m.styles.ButtonOn
	} else {
		binaryStyle = m.styles.ButtonOn
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		wordStyle.Render("Word Input"),
		"    ",
		binaryStyle.Render("Binary Input"),
	)
	help := m.styles.Muted.Render("Use ←/→ to select, Enter to confirm")
	modal := m.styles.titledBox(
		"Select Input Mode",
		"\n"+buttons+"\n\n"+help+"\n",
		lipgloss.Width(buttons)+8,
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// center pads s to width columns, biasing left on odd padding.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
