package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finsprint/internal/cli"
	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/query"
)

var flagBillView string

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List bill reminders",
	RunE:  runBills,
}

var (
	flagAddBillCategory  string
	flagAddBillFrequency string
	flagAddBillRemind    []int
)

var billsAddCmd = &cobra.Command{
	Use:   "add TITLE AMOUNT DUE",
	Short: "Create a bill reminder (due date YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE:  runBillsAdd,
}

var billsPayCmd = &cobra.Command{
	Use:   "pay BILL",
	Short: "Mark a bill paid (by id prefix or exact title)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsPay,
}

func init() {
	billsCmd.Flags().StringVarP(&flagBillView, "view", "v", string(query.BillsUpcoming),
		"View: upcoming, overdue, paid, or all")

	billsAddCmd.Flags().StringVarP(&flagAddBillCategory, "category", "c", string(model.CategoryUtilities), "Category label")
	billsAddCmd.Flags().StringVar(&flagAddBillFrequency, "recurring", "", "Mark recurring: Daily, Weekly, Monthly, or Yearly")
	billsAddCmd.Flags().IntSliceVar(&flagAddBillRemind, "remind", nil, "Days-before-due reminder offsets (default from config)")

	billsCmd.AddCommand(billsAddCmd)
	billsCmd.AddCommand(billsPayCmd)
	rootCmd.AddCommand(billsCmd)
}

func runBills(_ *cobra.Command, _ []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	view := query.BillView(flagBillView)
	switch view {
	case query.BillsUpcoming, query.BillsOverdue, query.BillsPaid, query.BillsAll:
	default:
		return fmt.Errorf("unknown view %q (want upcoming, overdue, paid, or all)", flagBillView)
	}

	now := time.Now()
	bills := query.FilterBills(tr.Bills(), view, now)
	if len(bills) == 0 {
		fmt.Printf("\n  No %s bills.\n", view)
		return nil
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		status := cli.FormatDueIn(b.DaysUntilDue(now))
		if b.IsPaid {
			status = cli.GoodStyle.Render("paid")
		} else if b.IsOverdue(now) {
			status = cli.WarnStyle.Render(status)
		}
		recurring := ""
		if b.IsRecurring && b.RecurringFrequency != nil {
			recurring = string(*b.RecurringFrequency)
		}
		rows = append(rows, []string{
			cli.ShortID(b.ID),
			cli.Truncate(b.Title, 26),
			string(b.Category),
			cli.FormatDate(b.DueDate),
			recurring,
			cli.FormatMoney(b.Amount, cfg.General.Currency),
			status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Bills (%s)", view),
		Headers:   []string{"ID", "Title", "Category", "Due", "Repeats", "Amount", "Status"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true},
	}))
	fmt.Println()

	return nil
}

func runBillsAdd(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	due, err := parseDate(args[2])
	if err != nil {
		return err
	}

	bill, err := model.NewBill(args[0], amount, due, model.ExpenseCategory(flagAddBillCategory))
	if err != nil {
		return err
	}
	if flagAddBillFrequency != "" {
		freq, err := model.ParseFrequency(flagAddBillFrequency)
		if err != nil {
			return err
		}
		bill = bill.Recurring(freq)
	}

	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	switch {
	case len(flagAddBillRemind) > 0:
		bill.ReminderDays = flagAddBillRemind
	case len(cfg.General.BillReminderDays) > 0:
		bill.ReminderDays = cfg.General.BillReminderDays
	}

	if err := tr.AddBill(bill); err != nil {
		return err
	}

	fmt.Printf("  Added bill %s  %s %s due %s\n",
		cli.ShortID(bill.ID), bill.Title,
		cli.FormatMoney(bill.Amount, cfg.General.Currency),
		cli.FormatDate(bill.DueDate))
	return nil
}

func runBillsPay(_ *cobra.Command, args []string) error {
	tr, cfg, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	bill, err := tr.FindBill(args[0])
	if err != nil {
		return friendlyErr(err)
	}
	if bill.IsPaid {
		fmt.Printf("  %q is already paid.\n", bill.Title)
		return nil
	}

	paid, err := tr.PayBill(bill.ID)
	if err != nil {
		return friendlyErr(err)
	}

	fmt.Printf("  Paid %s  %s\n", paid.Title, cli.FormatMoney(paid.Amount, cfg.General.Currency))
	return nil
}
