// Package metrics computes collection-wide aggregates for summary displays.
// Every function is pure, takes an explicit reference time where time
// matters, and returns zero values for empty input.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finsprint/internal/model"
)

// TotalMonthlyExpenses sums expenses sharing the reference date's calendar
// month and year. This is calendar equality, not a rolling 30-day window.
func TotalMonthlyExpenses(expenses []model.Expense, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Date.Month() == ref.Month() && e.Date.Year() == ref.Year() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CategoryTotal is the summed spend for one expense category.
type CategoryTotal struct {
	Category model.ExpenseCategory
	Total    decimal.Decimal
}

// CategoryTotals groups expenses by category and sums amounts per group,
// sorted descending by total. Equal totals order by category label so the
// result is deterministic.
func CategoryTotals(expenses []model.Expense) []CategoryTotal {
	byCategory := make(map[model.ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for c, sum := range byCategory {
		totals = append(totals, CategoryTotal{Category: c, Total: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// ActiveTasks returns tasks not yet completed, in input order.
func ActiveTasks(tasks []model.Task) []model.Task {
	var active []model.Task
	for _, t := range tasks {
		if !t.IsCompleted {
			active = append(active, t)
		}
	}
	return active
}

// CompletedTasks returns completed tasks, in input order.
func CompletedTasks(tasks []model.Task) []model.Task {
	var completed []model.Task
	for _, t := range tasks {
		if t.IsCompleted {
			completed = append(completed, t)
		}
	}
	return completed
}

// ActiveSprints returns sprints that are flagged active and have not yet
// passed their end date.
func ActiveSprints(sprints []model.FinancialSprint, now time.Time) []model.FinancialSprint {
	var active []model.FinancialSprint
	for _, s := range sprints {
		if s.IsActive && !s.EndDate.Before(now) {
			active = append(active, s)
		}
	}
	return active
}

// UpcomingBills returns unpaid bills due at or after now, soonest first.
func UpcomingBills(bills []model.BillReminder, now time.Time) []model.BillReminder {
	var upcoming []model.BillReminder
	for _, b := range bills {
		if !b.IsPaid && !b.DueDate.Before(now) {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}

// OverdueBills returns unpaid bills past their due date, in input order.
func OverdueBills(bills []model.BillReminder, now time.Time) []model.BillReminder {
	var overdue []model.BillReminder
	for _, b := range bills {
		if b.IsOverdue(now) {
			overdue = append(overdue, b)
		}
	}
	return overdue
}

// TotalPotentialRewards sums the reward amounts still claimable across
// active tasks. Tasks without a reward contribute nothing.
func TotalPotentialRewards(tasks []model.Task) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tasks {
		if !t.IsCompleted && t.Reward != nil {
			total = total.Add(t.Reward.Amount)
		}
	}
	return total
}

// Overview bundles the headline numbers shown on the dashboard.
type Overview struct {
	MonthlySpend     decimal.Decimal
	ActiveTasks      int
	CompletedTasks   int
	PotentialRewards decimal.Decimal
	ActiveSprints    int
	UpcomingBills    int
	OverdueBills     int
}

// Summarize computes the dashboard overview across all four collections.
func Summarize(expenses []model.Expense, tasks []model.Task, sprints []model.FinancialSprint, bills []model.BillReminder, now time.Time) Overview {
	return Overview{
		MonthlySpend:     TotalMonthlyExpenses(expenses, now),
		ActiveTasks:      len(ActiveTasks(tasks)),
		CompletedTasks:   len(CompletedTasks(tasks)),
		PotentialRewards: TotalPotentialRewards(tasks),
		ActiveSprints:    len(ActiveSprints(sprints, now)),
		UpcomingBills:    len(UpcomingBills(bills, now)),
		OverdueBills:     len(OverdueBills(bills, now)),
	}
}
