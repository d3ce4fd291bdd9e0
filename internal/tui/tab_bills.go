package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func (a App) renderBillsTab(cw, contentH int) string {
	t := theme.Active

	if len(a.bills) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No bills tracked. Add one with `finsprint bills add`.")
	}

	now := time.Now()
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	paidStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	overdueStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	recurStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	visible := contentH - 2
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.billCursor >= visible {
		start = a.billCursor - visible + 1
	}
	end := start + visible
	if end > len(a.bills) {
		end = len(a.bills)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		bill := a.bills[i]
		if i > start {
			b.WriteString("\n")
		}

		pointer := "  "
		if i == a.billCursor {
			pointer = cursorStyle.Render("> ")
		}

		title := titleStyle.Render(cli.Truncate(bill.Title, 28))
		var status string
		switch {
		case bill.IsPaid:
			title = paidStyle.Render(cli.Truncate(bill.Title, 28))
			status = okStyle.Render("paid")
		case bill.IsOverdue(now):
			status = overdueStyle.Render(cli.FormatDueIn(bill.DaysUntilDue(now)))
		default:
			status = dimStyle.Render(cli.FormatDueIn(bill.DaysUntilDue(now)))
		}

		line := fmt.Sprintf("%s%s  %s  %s  %s",
			pointer, title,
			amtStyle.Render(cli.FormatMoney(bill.Amount, a.currency)),
			dimStyle.Render(cli.FormatDate(bill.DueDate)),
			status)
		if bill.IsRecurring && bill.RecurringFrequency != nil {
			line += recurStyle.Render(fmt.Sprintf("  ↻ %s", *bill.RecurringFrequency))
		}

		b.WriteString(line)
	}

	if len(a.bills) > visible {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(a.bills))))
	}

	return b.String()
}
