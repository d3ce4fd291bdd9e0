package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/tui/components"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func (a App) renderSprintsTab(cw int) string {
	t := theme.Active

	if len(a.sprints) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No active sprints. Start one with `finsprint sprints add`.")
	}

	now := time.Now()
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)

	var sections []string
	for _, s := range a.sprints {
		inner := components.CardInnerWidth(cw)

		var b strings.Builder
		b.WriteString(components.ProgressBar(s.Progress(), inner-8))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s of %s  ·  %s  ·  %d days left",
			cli.FormatMoney(s.CurrentAmount, a.currency),
			cli.FormatMoney(s.GoalAmount, a.currency),
			s.Category,
			s.DaysRemaining(now))))

		for _, m := range s.Milestones {
			b.WriteString("\n")
			marker := dimStyle.Render("○")
			label := dimStyle.Render(fmt.Sprintf("%s at %s",
				m.Title, cli.FormatMoney(m.TargetAmount, a.currency)))
			if m.IsCompleted {
				marker = doneStyle.Render("●")
				label = doneStyle.Render(m.Title)
			}
			b.WriteString(fmt.Sprintf("  %s %s", marker, label))
		}

		sections = append(sections, components.ContentCard(s.Title, b.String(), cw))
	}

	return strings.Join(sections, "\n")
}

// renderSprintBars renders compact one-line goal bars, used on the
// overview tab.
func (a App) renderSprintBars(width, limit int) string {
	sprints := a.sprints
	if len(sprints) > limit {
		sprints = sprints[:limit]
	}

	labelW := 0
	for _, s := range sprints {
		if w := lipgloss.Width(cli.Truncate(s.Title, 20)); w > labelW {
			labelW = w
		}
	}

	barW := width - labelW - 30
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, s := range sprints {
		if i > 0 {
			b.WriteString("\n")
		}
		amounts := fmt.Sprintf("%s / %s",
			cli.FormatMoney(s.CurrentAmount, a.currency),
			cli.FormatMoney(s.GoalAmount, a.currency))
		b.WriteString(components.GoalBar(cli.Truncate(s.Title, 20), s.Progress(), amounts, labelW, barW))
	}
	return b.String()
}
