package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsprint/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "finsprint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_MissingCollectionsAreEmpty(t *testing.T) {
	s := openTemp(t)

	expenses, err := s.LoadExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)

	bills, err := s.LoadBills()
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTemp(t)
	now := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	exp, err := model.NewExpense(decimal.RequireFromString("5.40"), model.CategoryFood, "Coffee", now)
	require.NoError(t, err)
	exp = exp.Recurring(model.Monthly)

	task, err := model.NewTask("Review budget", "monthly check", model.TaskFinancial, model.PriorityHigh)
	require.NoError(t, err)
	task.Reward = &model.TaskReward{Type: model.RewardMoney, Amount: decimal.NewFromInt(10), Description: "reward"}
	task = task.ToggleCompletion(now)

	sprint, err := model.NewSprint("Fund", "desc", decimal.NewFromInt(1000), now, now.AddDate(0, 1, 0), model.SprintEmergencyFund)
	require.NoError(t, err)
	sprint.Milestones = append(sprint.Milestones, model.NewMilestone("Half", decimal.NewFromInt(500), decimal.NewFromInt(10)))
	sprint = sprint.Advance(decimal.NewFromInt(750), now)

	bill, err := model.NewBill("Rent", decimal.NewFromInt(1200), now.AddDate(0, 0, 5), model.CategoryUtilities)
	require.NoError(t, err)

	require.NoError(t, s.SaveExpenses([]model.Expense{exp}))
	require.NoError(t, s.SaveTasks([]model.Task{task}))
	require.NoError(t, s.SaveSprints([]model.FinancialSprint{sprint}))
	require.NoError(t, s.SaveBills([]model.BillReminder{bill}))

	gotExpenses, err := s.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, gotExpenses, 1)
	got := gotExpenses[0]
	assert.Equal(t, exp.ID, got.ID)
	assert.True(t, exp.Amount.Equal(got.Amount))
	assert.Equal(t, exp.Category, got.Category)
	assert.True(t, got.IsRecurring)
	require.NotNil(t, got.RecurringFrequency)
	assert.Equal(t, model.Monthly, *got.RecurringFrequency)
	assert.True(t, exp.Date.Equal(got.Date))

	gotTasks, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, gotTasks, 1)
	assert.Equal(t, task.ID, gotTasks[0].ID)
	assert.True(t, gotTasks[0].IsCompleted)
	require.NotNil(t, gotTasks[0].CompletedDate)
	require.NotNil(t, gotTasks[0].Reward)
	assert.True(t, task.Reward.Amount.Equal(gotTasks[0].Reward.Amount))

	gotSprints, err := s.LoadSprints()
	require.NoError(t, err)
	require.Len(t, gotSprints, 1)
	assert.True(t, sprint.CurrentAmount.Equal(gotSprints[0].CurrentAmount))
	require.Len(t, gotSprints[0].Milestones, 1)
	assert.True(t, gotSprints[0].Milestones[0].IsCompleted)

	gotBills, err := s.LoadBills()
	require.NoError(t, err)
	require.Len(t, gotBills, 1)
	assert.Equal(t, []int{7, 3, 1}, gotBills[0].ReminderDays)
	assert.False(t, gotBills[0].IsPaid)
}

func TestStore_SaveReplacesWholeCollection(t *testing.T) {
	s := openTemp(t)
	now := time.Now().UTC()

	a, err := model.NewExpense(decimal.NewFromInt(1), model.CategoryOther, "a", now)
	require.NoError(t, err)
	b, err := model.NewExpense(decimal.NewFromInt(2), model.CategoryOther, "b", now)
	require.NoError(t, err)

	require.NoError(t, s.SaveExpenses([]model.Expense{a, b}))
	require.NoError(t, s.SaveExpenses([]model.Expense{b}))

	got, err := s.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestStore_CorruptBlob(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveRaw(KeyTasks, []byte("{not valid json")))

	got, err := s.LoadTasks()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Nil(t, got)
}

func TestStore_BadFieldBlobReturnsNoRecords(t *testing.T) {
	s := openTemp(t)

	// Valid JSON, but the first element fails to decode. No partially-decoded
	// records may leak out alongside the error.
	blob := []byte(`[{"id":"not-a-uuid","amount":"5","category":"Food & Dining"}]`)
	require.NoError(t, s.SaveRaw(KeyExpenses, blob))

	got, err := s.LoadExpenses()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Nil(t, got)
}
