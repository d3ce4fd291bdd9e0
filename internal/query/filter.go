// Package query applies the filter and sort criteria the presentation
// layer asks for. Like metrics, everything here is pure over slices.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/finsprint/internal/metrics"
	"github.com/theirongolddev/finsprint/internal/model"
)

// TaskFilter selects tasks. Zero-valued fields mean "no filter";
// Completed is tri-state.
type TaskFilter struct {
	Priority  model.TaskPriority // "" = any
	Category  model.TaskCategory // "" = any
	Completed *bool              // nil = both
}

// FilterTasks returns tasks matching f, sorted by priority descending
// (urgent first) and then due date ascending. Within the same priority a
// task with no due date sorts after every task that has one.
func FilterTasks(tasks []model.Task, f TaskFilter) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Completed != nil && t.IsCompleted != *f.Completed {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return dueBefore(out[i].DueDate, out[j].DueDate)
	})
	return out
}

// dueBefore orders optional due dates ascending with nil treated as the
// maximum representable date.
func dueBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

// ExpenseFilter selects expenses. Search matches case-insensitively
// against the description and the category label.
type ExpenseFilter struct {
	Category model.ExpenseCategory // "" = any
	Search   string                // "" = any
}

// FilterExpenses returns expenses matching f, most recent first.
func FilterExpenses(expenses []model.Expense, f ExpenseFilter) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Search != "" &&
			!containsIgnoreCase(e.Description, f.Search) &&
			!containsIgnoreCase(string(e.Category), f.Search) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// BillView is one of the four mutually exclusive bill list modes.
type BillView string

const (
	BillsUpcoming BillView = "upcoming"
	BillsOverdue  BillView = "overdue"
	BillsPaid     BillView = "paid"
	BillsAll      BillView = "all"
)

// FilterBills returns the bills for the requested view. Upcoming and
// overdue share the metrics engine's classification; paid keeps insertion
// order; all sorts ascending by due date.
func FilterBills(bills []model.BillReminder, view BillView, now time.Time) []model.BillReminder {
	switch view {
	case BillsUpcoming:
		return metrics.UpcomingBills(bills, now)
	case BillsOverdue:
		return metrics.OverdueBills(bills, now)
	case BillsPaid:
		var paid []model.BillReminder
		for _, b := range bills {
			if b.IsPaid {
				paid = append(paid, b)
			}
		}
		return paid
	default:
		out := make([]model.BillReminder, len(bills))
		copy(out, bills)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DueDate.Before(out[j].DueDate)
		})
		return out
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
