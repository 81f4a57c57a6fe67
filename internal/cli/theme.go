package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Faint lipgloss.Style
}

// newTheme binds styles to w so color is only emitted for terminals.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title: r.NewStyle().Bold(true),
		Pass:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Fail:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Faint: r.NewStyle().Faint(true),
	}
}
