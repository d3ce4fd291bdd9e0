package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/tui/components"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active

	if len(a.expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No expenses recorded yet. Add one with `finsprint expenses add`.")
	}

	var sections []string

	if len(a.catTotals) > 0 {
		entries := make([]components.BarEntry, 0, len(a.catTotals))
		for _, ct := range a.catTotals {
			total, _ := ct.Total.Float64()
			entries = append(entries, components.BarEntry{
				Label:  string(ct.Category),
				Amount: cli.FormatMoney(ct.Total, a.currency),
				Value:  total,
			})
		}
		sections = append(sections, components.ContentCard("Spending by Category",
			components.HorizontalBars(entries, components.CardInnerWidth(cw)), cw))
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	recurStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	var b strings.Builder
	for i, e := range a.expenses {
		if i > 0 {
			b.WriteString("\n")
		}
		meta := cli.ExpenseCategoryMeta(e.Category)
		line := fmt.Sprintf("%s  %s %s  %s",
			dateStyle.Render(e.Date.Format("Jan 02")),
			lipgloss.NewStyle().Foreground(meta.Color).Render(meta.Glyph),
			descStyle.Render(cli.Truncate(e.Description, 30)),
			catStyle.Render(string(e.Category)))
		if e.IsRecurring && e.RecurringFrequency != nil {
			line += recurStyle.Render(fmt.Sprintf("  ↻ %s", *e.RecurringFrequency))
		}
		amount := amtStyle.Render(cli.FormatMoney(e.Amount, a.currency))
		pad := cw - lipgloss.Width(line) - lipgloss.Width(amount) - 4
		if pad < 1 {
			pad = 1
		}
		b.WriteString(" " + line + strings.Repeat(" ", pad) + amount)
	}
	sections = append(sections, components.ContentCard(
		fmt.Sprintf("Recent Expenses (%d)", len(a.expenses)), b.String(), cw))

	return strings.Join(sections, "\n")
}
