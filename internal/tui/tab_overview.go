package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/metrics"
	"github.com/theirongolddev/finsprint/internal/tui/components"
	"github.com/theirongolddev/finsprint/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	now := time.Now()
	ov := a.overview

	billsDetail := fmt.Sprintf("%d upcoming", ov.UpcomingBills)
	if ov.OverdueBills > 0 {
		billsDetail = lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("%d overdue", ov.OverdueBills))
	}

	cards := components.MetricCardRow([]components.Metric{
		{
			Label: "This Month",
			Value: cli.FormatMoney(ov.MonthlySpend, a.currency),
		},
		{
			Label:  "Tasks",
			Value:  fmt.Sprintf("%d active", ov.ActiveTasks),
			Detail: fmt.Sprintf("%d done", ov.CompletedTasks),
		},
		{
			Label:  "Rewards",
			Value:  cli.FormatMoney(ov.PotentialRewards, a.currency),
			Detail: "claimable",
		},
		{
			Label:  "Bills",
			Value:  fmt.Sprintf("%d", ov.UpcomingBills+ov.OverdueBills),
			Detail: billsDetail,
		},
	}, cw)

	var sections []string
	sections = append(sections, cards)

	if len(a.sprints) > 0 {
		sections = append(sections, components.ContentCard("Active Sprints",
			a.renderSprintBars(components.CardInnerWidth(cw), 4), cw))
	}

	upcoming := metrics.UpcomingBills(a.bills, now)
	if len(upcoming) > 0 {
		if len(upcoming) > 5 {
			upcoming = upcoming[:5]
		}
		rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

		var b strings.Builder
		for i, bill := range upcoming {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(rowStyle.Render(cli.Truncate(bill.Title, 28)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s",
				cli.FormatMoney(bill.Amount, a.currency),
				cli.FormatDueIn(bill.DaysUntilDue(now)))))
		}
		sections = append(sections, components.ContentCard("Upcoming Bills", b.String(), cw))
	}

	return strings.Join(sections, "\n")
}
