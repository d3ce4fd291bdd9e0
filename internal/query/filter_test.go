package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsprint/internal/model"
)

func task(t *testing.T, title string, priority model.TaskPriority, due *time.Time) model.Task {
	t.Helper()
	tk, err := model.NewTask(title, "", model.TaskFinancial, priority)
	require.NoError(t, err)
	tk.DueDate = due
	return tk
}

func ptr(tm time.Time) *time.Time { return &tm }

func TestFilterTasks_SortOrder(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	yesterday := ptr(now.AddDate(0, 0, -1))
	tomorrow := ptr(now.AddDate(0, 0, 1))

	tasks := []model.Task{
		task(t, "urgent/no-date", model.PriorityUrgent, nil),
		task(t, "high/tomorrow", model.PriorityHigh, tomorrow),
		task(t, "urgent/yesterday", model.PriorityUrgent, yesterday),
	}

	got := FilterTasks(tasks, TaskFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, "urgent/yesterday", got[0].Title)
	assert.Equal(t, "urgent/no-date", got[1].Title)
	assert.Equal(t, "high/tomorrow", got[2].Title)
}

func TestFilterTasks_NoDueDateSortsLast(t *testing.T) {
	farFuture := ptr(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		task(t, "no date", model.PriorityMedium, nil),
		task(t, "distant date", model.PriorityMedium, farFuture),
	}

	got := FilterTasks(tasks, TaskFilter{})
	require.Len(t, got, 2)
	// A dated task beats an undated one however far out the date is.
	assert.Equal(t, "distant date", got[0].Title)
	assert.Equal(t, "no date", got[1].Title)
}

func TestFilterTasks_Predicates(t *testing.T) {
	now := time.Now()

	a := task(t, "a", model.PriorityHigh, nil)
	b := task(t, "b", model.PriorityLow, nil)
	b.Category = model.TaskHealth
	c := task(t, "c", model.PriorityHigh, nil).ToggleCompletion(now)

	tasks := []model.Task{a, b, c}

	byPriority := FilterTasks(tasks, TaskFilter{Priority: model.PriorityHigh})
	assert.Len(t, byPriority, 2)

	byCategory := FilterTasks(tasks, TaskFilter{Category: model.TaskHealth})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "b", byCategory[0].Title)

	active := false
	onlyActive := FilterTasks(tasks, TaskFilter{Completed: &active})
	assert.Len(t, onlyActive, 2)

	done := true
	onlyDone := FilterTasks(tasks, TaskFilter{Completed: &done})
	require.Len(t, onlyDone, 1)
	assert.Equal(t, "c", onlyDone[0].Title)

	assert.Empty(t, FilterTasks(nil, TaskFilter{}))
}

func TestFilterExpenses(t *testing.T) {
	mk := func(desc string, category model.ExpenseCategory, date time.Time) model.Expense {
		e, err := model.NewExpense(decimal.NewFromInt(5), category, desc, date)
		require.NoError(t, err)
		return e
	}

	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		mk("Morning coffee", model.CategoryFood, base),
		mk("Bus ticket", model.CategoryTransport, base.AddDate(0, 0, 2)),
		mk("Dinner out", model.CategoryFood, base.AddDate(0, 0, 1)),
	}

	recentFirst := FilterExpenses(expenses, ExpenseFilter{})
	require.Len(t, recentFirst, 3)
	assert.Equal(t, "Bus ticket", recentFirst[0].Description)
	assert.Equal(t, "Morning coffee", recentFirst[2].Description)

	food := FilterExpenses(expenses, ExpenseFilter{Category: model.CategoryFood})
	assert.Len(t, food, 2)

	// Search is case-insensitive over description...
	coffee := FilterExpenses(expenses, ExpenseFilter{Search: "COFFEE"})
	require.Len(t, coffee, 1)
	assert.Equal(t, "Morning coffee", coffee[0].Description)

	// ...and over the category label.
	dining := FilterExpenses(expenses, ExpenseFilter{Search: "dining"})
	assert.Len(t, dining, 2)
}

func TestFilterBills(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	mk := func(title string, due time.Time) model.BillReminder {
		b, err := model.NewBill(title, decimal.NewFromInt(10), due, model.CategoryUtilities)
		require.NoError(t, err)
		return b
	}

	late := mk("late", now.AddDate(0, 0, -2))
	soon := mk("soon", now.AddDate(0, 0, 3))
	paidOld := mk("paid-old", now.AddDate(0, 0, -10)).MarkPaid(now)
	paidNew := mk("paid-new", now.AddDate(0, 0, -1)).MarkPaid(now)

	bills := []model.BillReminder{paidOld, soon, late, paidNew}

	upcoming := FilterBills(bills, BillsUpcoming, now)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "soon", upcoming[0].Title)

	overdue := FilterBills(bills, BillsOverdue, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, "late", overdue[0].Title)

	// Paid view keeps insertion order.
	paid := FilterBills(bills, BillsPaid, now)
	require.Len(t, paid, 2)
	assert.Equal(t, "paid-old", paid[0].Title)
	assert.Equal(t, "paid-new", paid[1].Title)

	all := FilterBills(bills, BillsAll, now)
	require.Len(t, all, 4)
	assert.Equal(t, "paid-old", all[0].Title)
	assert.Equal(t, "soon", all[3].Title)
}
