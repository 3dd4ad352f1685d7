package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles collects every lipgloss style the views use. Paper mode swaps
// the accent from cyan to red so an air-gapped session is visually
// unmistakable.
type Styles struct {
	Accent   lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Decoded  lipgloss.Style
	Invalid  lipgloss.Style
	Muted    lipgloss.Style
	Info     lipgloss.Style
	Footer   lipgloss.Style
	ButtonOn lipgloss.Style
	Button   lipgloss.Style

	accent lipgloss.Color
}

func newStyles(paper bool) Styles {
	accent := lipgloss.Color("14")
	if paper {
		accent = lipgloss.Color("9")
	}
	return Styles{
		Accent:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Border:   lipgloss.NewStyle().Foreground(accent),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Decoded:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		ButtonOn: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Foreground(lipgloss.Color("0")).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 2),
		accent: accent,
	}
}

// titledBox renders content centered inside a bordered box with the
// title set into the top border, stretched to width columns.
func (s Styles) titledBox(title, content string, width int) string {
	inner := width - 2
	if inner < 4 {
		inner = 4
	}
	label := " " + title + " "
	if lipgloss.Width(label) > inner-2 {
		label = label[:inner-2]
	}
	fill := inner - lipgloss.Width(label) - 1
	if fill < 0 {
		fill = 0
	}
	top := s.Border.Render("┌─" + label + strings.Repeat("─", fill) + "┐")

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(s.accent).
		Width(inner).
		Align(lipgloss.Center).
		Render(content)

	return top + "\n" + body
}
