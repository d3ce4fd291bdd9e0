// Package seed provides the fixed starter records used to populate empty
// collections on first run, so a new user never sees blank screens. No
// business logic depends on these values.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finsprint/internal/model"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Expenses returns the five illustrative starter expenses, dated at now.
func Expenses(now time.Time) []model.Expense {
	return []model.Expense{
		must(model.NewExpense(d("5.40"), model.CategoryFood, "Starbucks Coffee", now)),
		must(model.NewExpense(d("45.99"), model.CategoryTransport, "Gas Station Fill-up", now)),
		must(model.NewExpense(d("12.99"), model.CategoryEntertainment, "Netflix Subscription", now)),
		must(model.NewExpense(d("89.50"), model.CategoryUtilities, "Electric Bill", now)),
		must(model.NewExpense(d("25.00"), model.CategoryShopping, "Online Purchase", now)),
	}
}

// Tasks returns the four starter financial tasks, each with a money reward.
func Tasks(_ time.Time) []model.Task {
	withReward := func(title string, priority model.TaskPriority, amount, rewardDesc string) model.Task {
		t := must(model.NewTask(title, "", model.TaskFinancial, priority))
		t.Reward = &model.TaskReward{Type: model.RewardMoney, Amount: d(amount), Description: rewardDesc}
		return t
	}
	return []model.Task{
		withReward("Review Monthly Budget", model.PriorityHigh, "10", "Budget review reward"),
		withReward("Update Investment Portfolio", model.PriorityMedium, "15", "Investment task reward"),
		withReward("Pay Credit Card Bill", model.PriorityUrgent, "5", "Bill payment reward"),
		withReward("Organize Financial Documents", model.PriorityLow, "8", "Organization reward"),
	}
}

// Sprints returns the starter emergency-fund sprint: started a week ago,
// three weeks to go, 75% of the way to its goal.
func Sprints(now time.Time) []model.FinancialSprint {
	s := must(model.NewSprint(
		"Emergency Fund Goal",
		"Build up emergency savings to $1000",
		d("1000"),
		now.AddDate(0, 0, -7),
		now.AddDate(0, 0, 23),
		model.SprintEmergencyFund,
	))
	s.CurrentAmount = d("750")
	return []model.FinancialSprint{s}
}

// Bills returns the three starter utility bills, all unpaid with due dates
// in the future relative to now.
func Bills(now time.Time) []model.BillReminder {
	return []model.BillReminder{
		must(model.NewBill("Rent Payment", d("1200"), now.AddDate(0, 0, 5), model.CategoryUtilities)),
		must(model.NewBill("Phone Bill", d("65"), now.AddDate(0, 0, 12), model.CategoryUtilities)),
		must(model.NewBill("Internet Service", d("79.99"), now.AddDate(0, 0, 8), model.CategoryUtilities)),
	}
}
