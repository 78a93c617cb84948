package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header  lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	plot    lipgloss.Style
	hint    lipgloss.Style
	panel   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(8),
		value:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		plot:    lipgloss.NewStyle().Foreground(t.Text).Padding(1, 0),
		hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// ProgressBar renders a bar filled to fraction of width.
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
