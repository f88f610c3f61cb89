package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorKeyword = lipgloss.Color("#8B5CF6") // Violet
)

// styles renders CLI output. With color off every style is a no-op.
type styles struct {
	Error    lipgloss.Style
	Position lipgloss.Style
	Kind     lipgloss.Style
	Header   lipgloss.Style
}

// newStyles binds the styles to w so that color is dropped when w is not
// a terminal.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return styles{
			Error:    r.NewStyle(),
			Position: r.NewStyle(),
			Kind:     r.NewStyle(),
			Header:   r.NewStyle(),
		}
	}
	return styles{
		Error:    r.NewStyle().Foreground(ColorError).Bold(true),
		Position: r.NewStyle().Foreground(ColorMuted),
		Kind:     r.NewStyle().Foreground(ColorKeyword),
		Header:   r.NewStyle().Bold(true),
	}
}
