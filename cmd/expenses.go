package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/metrics"
	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/query"
)

var (
	flagExpenseCategory string
	flagExpenseSearch   string
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List expenses, most recent first",
	RunE:  runExpenses,
}

var (
	flagAddExpenseCategory  string
	flagAddExpenseDate      string
	flagAddExpenseFrequency string
)

var expensesAddCmd = &cobra.Command{
	Use:   "add AMOUNT DESCRIPTION",
	Short: "Log an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpensesAdd,
}

func init() {
	expensesCmd.Flags().StringVarP(&flagExpenseCategory, "category", "c", "", "Filter to a category label")
	expensesCmd.Flags().StringVarP(&flagExpenseSearch, "search", "s", "", "Substring search over description and category")

	expensesAddCmd.Flags().StringVarP(&flagAddExpenseCategory, "category", "c", string(model.CategoryOther), "Category label")
	expensesAddCmd.Flags().StringVar(&flagAddExpenseDate, "date", "", "Date (YYYY-MM-DD, default today)")
	expensesAddCmd.Flags().StringVar(&flagAddExpenseFrequency, "recurring", "", "Mark recurring: Daily, Weekly, Monthly, or Yearly")

	expensesCmd.AddCommand(expensesAddCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	filtered := query.FilterExpenses(tr.Expenses(), query.ExpenseFilter{
		Category: model.ExpenseCategory(flagExpenseCategory),
		Search:   flagExpenseSearch,
	})
	if len(filtered) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	rows := make([][]string, 0, len(filtered)+2)
	total := decimal.Zero
	for _, e := range filtered {
		recurring := ""
		if e.IsRecurring && e.RecurringFrequency != nil {
			recurring = string(*e.RecurringFrequency)
		}
		rows = append(rows, []string{
			cli.ShortID(e.ID),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Description, 30),
			string(e.Category),
			recurring,
			cli.FormatMoney(e.Amount, cfg.General.Currency),
		})
		total = total.Add(e.Amount)
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "TOTAL", cli.FormatMoney(total, cfg.General.Currency)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Expenses",
		Headers:   []string{"ID", "Date", "Description", "Category", "Repeats", "Amount"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}))

	monthly := metrics.TotalMonthlyExpenses(tr.Expenses(), time.Now())
	fmt.Printf("  This month: %s\n\n", cli.FormatMoney(monthly, cfg.General.Currency))

	return nil
}

func runExpensesAdd(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}

	date := time.Now()
	if flagAddExpenseDate != "" {
		if date, err = parseDate(flagAddExpenseDate); err != nil {
			return err
		}
	}

	e, err := model.NewExpense(amount, model.ExpenseCategory(flagAddExpenseCategory), args[1], date)
	if err != nil {
		return err
	}
	if flagAddExpenseFrequency != "" {
		freq, err := model.ParseFrequency(flagAddExpenseFrequency)
		if err != nil {
			return err
		}
		e = e.Recurring(freq)
	}

	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tr.AddExpense(e); err != nil {
		return err
	}

	fmt.Printf("  Logged %s  %s (%s)\n",
		cli.FormatMoney(e.Amount, cfg.General.Currency), e.Description, e.Category)
	return nil
}
