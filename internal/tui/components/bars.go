package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

// BarEntry is one row in a horizontal bar listing.
type BarEntry struct {
	Label  string
	Amount string  // right-hand annotation, already formatted
	Value  float64 // drives bar length relative to the row maximum
}

// HorizontalBars renders a labeled bar per entry, scaled to the largest
// value. width is the total row width including label and amount columns.
func HorizontalBars(entries []BarEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	amountW := 0
	peak := 0.0
	for _, e := range entries {
		if w := lipgloss.Width(e.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(e.Amount); w > amountW {
			amountW = w
		}
		if e.Value > peak {
			peak = e.Value
		}
	}
	if peak == 0 {
		peak = 1
	}

	barW := width - labelW - amountW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		filled := int(e.Value / peak * float64(barW))
		if filled > barW {
			filled = barW
		}
		if filled < 1 && e.Value > 0 {
			filled = 1
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, e.Label)))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(restStyle.Render(strings.Repeat("·", barW-filled)))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, e.Amount)))
	}
	return b.String()
}
