package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a transient status message on the right.
func RenderStatusBar(width int, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
