package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/metrics"
)

func runSummary(_ *cobra.Command, _ []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	currency := cfg.General.Currency

	overview := metrics.Summarize(tr.Expenses(), tr.Tasks(), tr.Sprints(), tr.Bills(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINSPRINT  " + now.Format("January 2006")))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "This Month",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Spent", cli.FormatMoney(overview.MonthlySpend, currency)},
			{"Active tasks", fmt.Sprintf("%d", overview.ActiveTasks)},
			{"Completed tasks", fmt.Sprintf("%d", overview.CompletedTasks)},
			{"Rewards up for grabs", cli.FormatMoney(overview.PotentialRewards, currency)},
			{"Active sprints", fmt.Sprintf("%d", overview.ActiveSprints)},
			{"Upcoming bills", fmt.Sprintf("%d", overview.UpcomingBills)},
			{"Overdue bills", fmt.Sprintf("%d", overview.OverdueBills)},
		},
	}))
	fmt.Println()

	// Spend by category, largest first, with scaled bars.
	totals := metrics.CategoryTotals(tr.Expenses())
	if len(totals) > 0 {
		maxTotal, _ := totals[0].Total.Float64()
		fmt.Printf("  Spending by Category\n")
		for _, ct := range totals {
			v, _ := ct.Total.Float64()
			fmt.Printf("  %-16s %-20s %s\n",
				cli.Truncate(string(ct.Category), 16),
				cli.RenderHorizontalBar(v, maxTotal, 20),
				cli.FormatMoney(ct.Total, currency))
		}
		fmt.Println()
	}

	// Sprint progress bars.
	for _, s := range metrics.ActiveSprints(tr.Sprints(), now) {
		fmt.Printf("  %s  %s  %dd left\n",
			cli.Truncate(s.Title, 28),
			cli.RenderProgressBar(s.Progress(), 20),
			s.DaysRemaining(now))
	}

	// The next few bills due.
	upcoming := metrics.UpcomingBills(tr.Bills(), now)
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}
	if len(upcoming) > 0 {
		fmt.Println()
		fmt.Printf("  Next Bills\n")
		for _, b := range upcoming {
			fmt.Printf("  %-24s %10s  %s\n",
				cli.Truncate(b.Title, 24),
				cli.FormatMoney(b.Amount, currency),
				cli.FormatDueIn(b.DaysUntilDue(now)))
		}
	}
	if overdue := metrics.OverdueBills(tr.Bills(), now); len(overdue) > 0 {
		fmt.Println()
		fmt.Print("  " + cli.WarnStyle.Render(fmt.Sprintf("%d overdue bill(s) — run `finsprint bills --view overdue`", len(overdue))))
		fmt.Println()
	}
	fmt.Println()

	return nil
}
