package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func (a App) renderTasksTab(cw, contentH int) string {
	t := theme.Active

	if len(a.tasks) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No tasks yet. Add one with `finsprint tasks add`.")
	}

	now := time.Now()
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	checkStyle := lipgloss.NewStyle().Foreground(t.Green)
	overdueStyle := lipgloss.NewStyle().Foreground(t.Red)
	rewardStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	// Keep the cursor visible when the list outgrows the tab
	visible := contentH - 2
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.taskCursor >= visible {
		start = a.taskCursor - visible + 1
	}
	end := start + visible
	if end > len(a.tasks) {
		end = len(a.tasks)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		task := a.tasks[i]
		if i > start {
			b.WriteString("\n")
		}

		pointer := "  "
		if i == a.taskCursor {
			pointer = cursorStyle.Render("> ")
		}

		check := dimStyle.Render("[ ]")
		title := titleStyle.Render(cli.Truncate(task.Title, 32))
		if task.IsCompleted {
			check = checkStyle.Render("[✓]")
			title = doneStyle.Render(cli.Truncate(task.Title, 32))
		}

		line := fmt.Sprintf("%s%s %s  %s  %s",
			pointer, check, title,
			cli.PriorityLabel(task.Priority),
			dimStyle.Render(string(task.Category)))

		if task.DueDate != nil && !task.IsCompleted {
			days := daysUntil(*task.DueDate, now)
			due := cli.FormatDueIn(days)
			if days < 0 {
				line += "  " + overdueStyle.Render(due)
			} else {
				line += "  " + dimStyle.Render(due)
			}
		}
		if task.Reward != nil && !task.IsCompleted {
			line += "  " + rewardStyle.Render(fmt.Sprintf("+%s", cli.FormatMoney(task.Reward.Amount, a.currency)))
		}

		b.WriteString(line)
	}

	if len(a.tasks) > visible {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(a.tasks))))
	}

	return b.String()
}

// daysUntil mirrors the whole-day arithmetic the domain uses for due dates.
func daysUntil(due, now time.Time) int {
	return int(due.Sub(now).Hours() / 24)
}
