package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header     lipgloss.Style
	subtle     lipgloss.Style
	value      lipgloss.Style
	label      lipgloss.Style
	explain    lipgloss.Style
	status     lipgloss.Style
	caret      lipgloss.Style
	panel      lipgloss.Style
	cells      map[CellClass]lipgloss.Style
	pointers   map[string]lipgloss.Style
	barFilled  lipgloss.Style
	barPending lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		label:   lipgloss.NewStyle().Foreground(t.Secondary),
		explain: lipgloss.NewStyle().Foreground(t.Text).Italic(true),
		status:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		caret:   lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		cells: map[CellClass]lipgloss.Style{
			CellActive:     lipgloss.NewStyle().Bold(true).Foreground(t.Text),
			CellMid:        lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Warning),
			CellFound:      lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Success),
			CellEliminated: lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true),
		},
		pointers: map[string]lipgloss.Style{
			"L": lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
			"M": lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
			"R": lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		},
		barFilled:  lipgloss.NewStyle().Foreground(t.Success),
		barPending: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// pointerLabel colors each letter of a Pointers entry.
func (s styles) pointerLabel(label string) string {
	if label == "" {
		return ""
	}
	parts := strings.Split(label, ",")
	for i, p := range parts {
		if st, ok := s.pointers[p]; ok {
			parts[i] = st.Render(p)
		}
	}
	return strings.Join(parts, s.subtle.Render(","))
}

// progressBar renders how far the cursor is through the trace.
func (s styles) progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.barFilled.Render(strings.Repeat("█", filled)) + s.barPending.Render(strings.Repeat("░", width-filled))
}

func (s styles) separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return s.subtle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", max(0, width-mid-3))
	return s.subtle.Render(left + " ◆ " + right)
}
