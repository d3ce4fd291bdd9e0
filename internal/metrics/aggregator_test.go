package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsprint/internal/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(t *testing.T, amount string, category model.ExpenseCategory, date time.Time) model.Expense {
	t.Helper()
	e, err := model.NewExpense(d(amount), category, "test", date)
	require.NoError(t, err)
	return e
}

func TestTotalMonthlyExpenses(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		expense(t, "10.50", model.CategoryFood, time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)),
		expense(t, "20", model.CategoryShopping, time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC)),
		// Same month, previous year: excluded.
		expense(t, "99", model.CategoryFood, time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)),
		// Previous month: excluded.
		expense(t, "77", model.CategoryFood, time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)),
	}

	total := TotalMonthlyExpenses(expenses, now)
	assert.Equal(t, "30.5", total.String())

	// Adding an out-of-month expense never changes the result.
	more := append(expenses, expense(t, "1000", model.CategoryOther, now.AddDate(0, -2, 0)))
	assert.Equal(t, "30.5", TotalMonthlyExpenses(more, now).String())

	assert.True(t, TotalMonthlyExpenses(nil, now).IsZero())
}

func TestCategoryTotals(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expense(t, "5", model.CategoryFood, day),
		expense(t, "45.99", model.CategoryTransport, day),
		expense(t, "20", model.CategoryFood, day),
	}

	totals := CategoryTotals(expenses)
	require.Len(t, totals, 2)
	assert.Equal(t, model.CategoryTransport, totals[0].Category)
	assert.Equal(t, "45.99", totals[0].Total.String())
	assert.Equal(t, model.CategoryFood, totals[1].Category)
	assert.Equal(t, "25", totals[1].Total.String())

	assert.Empty(t, CategoryTotals(nil))
}

func TestTaskPartitions(t *testing.T) {
	now := time.Now()
	open, err := model.NewTask("open", "", model.TaskWork, model.PriorityLow)
	require.NoError(t, err)
	closed, err := model.NewTask("closed", "", model.TaskWork, model.PriorityLow)
	require.NoError(t, err)
	closed = closed.ToggleCompletion(now)

	tasks := []model.Task{open, closed}
	active := ActiveTasks(tasks)
	completed := CompletedTasks(tasks)

	require.Len(t, active, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, "open", active[0].Title)
	assert.Equal(t, "closed", completed[0].Title)
	assert.Len(t, active, len(tasks)-len(completed))
}

func TestActiveSprints(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	running := model.FinancialSprint{IsActive: true, EndDate: now.AddDate(0, 0, 10)}
	endingToday := model.FinancialSprint{IsActive: true, EndDate: now}
	expired := model.FinancialSprint{IsActive: true, EndDate: now.AddDate(0, 0, -1)}
	paused := model.FinancialSprint{IsActive: false, EndDate: now.AddDate(0, 0, 10)}

	active := ActiveSprints([]model.FinancialSprint{running, endingToday, expired, paused}, now)
	assert.Len(t, active, 2)
}

func TestBillPartitions(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	late, err := model.NewBill("late", d("10"), now.AddDate(0, 0, -3), model.CategoryUtilities)
	require.NoError(t, err)
	soon, err := model.NewBill("soon", d("10"), now.AddDate(0, 0, 2), model.CategoryUtilities)
	require.NoError(t, err)
	later, err := model.NewBill("later", d("10"), now.AddDate(0, 0, 9), model.CategoryUtilities)
	require.NoError(t, err)
	paid := soon.MarkPaid(now)
	paid.Title = "paid"

	bills := []model.BillReminder{later, paid, late, soon}

	upcoming := UpcomingBills(bills, now)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].Title)
	assert.Equal(t, "later", upcoming[1].Title)

	overdue := OverdueBills(bills, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, "late", overdue[0].Title)
}

func TestTotalPotentialRewards(t *testing.T) {
	now := time.Now()

	withReward := func(title, amount string) model.Task {
		task, err := model.NewTask(title, "", model.TaskFinancial, model.PriorityMedium)
		require.NoError(t, err)
		task.Reward = &model.TaskReward{Type: model.RewardMoney, Amount: d(amount), Description: "test"}
		return task
	}

	plain, err := model.NewTask("no reward", "", model.TaskPersonal, model.PriorityLow)
	require.NoError(t, err)
	claimed := withReward("claimed", "50").ToggleCompletion(now)

	tasks := []model.Task{withReward("a", "10"), withReward("b", "15"), plain, claimed}
	assert.Equal(t, "25", TotalPotentialRewards(tasks).String())

	assert.True(t, TotalPotentialRewards(nil).IsZero())
}

func TestSummarize_Empty(t *testing.T) {
	o := Summarize(nil, nil, nil, nil, time.Now())
	assert.True(t, o.MonthlySpend.IsZero())
	assert.True(t, o.PotentialRewards.IsZero())
	assert.Zero(t, o.ActiveTasks)
	assert.Zero(t, o.OverdueBills)
}
