package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	date := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	e, err := NewExpense(d("5.40"), CategoryFood, "Morning coffee", date)
	require.NoError(t, err)
	assert.Equal(t, "5.4", e.Amount.String())
	assert.False(t, e.IsRecurring)
	assert.Nil(t, e.RecurringFrequency)
	assert.Nil(t, e.LinkedTaskID)

	_, err = NewExpense(d("0"), CategoryFood, "free?", date)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewExpense(d("-3"), CategoryFood, "refund", date)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewExpense(d("3"), ExpenseCategory("Snacks"), "bad label", date)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpense_Recurring(t *testing.T) {
	e, err := NewExpense(d("12.99"), CategoryEntertainment, "Streaming", time.Now())
	require.NoError(t, err)

	r := e.Recurring(Monthly)
	assert.True(t, r.IsRecurring)
	require.NotNil(t, r.RecurringFrequency)
	assert.Equal(t, Monthly, *r.RecurringFrequency)

	// Original value untouched.
	assert.False(t, e.IsRecurring)
	assert.Nil(t, e.RecurringFrequency)
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("Review budget", "", TaskFinancial, PriorityHigh)
	require.NoError(t, err)

	assert.False(t, task.IsCompleted)
	assert.Nil(t, task.CompletedDate)
	assert.Nil(t, task.DueDate)
	assert.EqualValues(t, 3600, task.EstimatedDuration)

	_, err = NewTask("   ", "", TaskFinancial, PriorityHigh)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTask("x", "", TaskCategory("Chores"), PriorityHigh)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTask("x", "", TaskFinancial, TaskPriority("Critical"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTask_ToggleCompletion(t *testing.T) {
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	task, err := NewTask("Pay card", "", TaskFinancial, PriorityUrgent)
	require.NoError(t, err)

	done := task.ToggleCompletion(now)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedDate)
	assert.True(t, done.CompletedDate.Equal(now))

	// Toggling twice restores the original, completed date cleared.
	back := done.ToggleCompletion(now.Add(time.Hour))
	assert.Equal(t, task, back)
}

func TestPriority_Rank(t *testing.T) {
	assert.True(t, PriorityLow.Rank() < PriorityMedium.Rank())
	assert.True(t, PriorityMedium.Rank() < PriorityHigh.Rank())
	assert.True(t, PriorityHigh.Rank() < PriorityUrgent.Rank())
	assert.Equal(t, -1, TaskPriority("???").Rank())
}

func TestNewBill_Defaults(t *testing.T) {
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	b, err := NewBill("Rent", d("1200"), due, CategoryUtilities)
	require.NoError(t, err)
	assert.False(t, b.IsPaid)
	assert.Nil(t, b.PaidDate)
	assert.Equal(t, []int{7, 3, 1}, b.ReminderDays)

	// Reminder defaults are copied, not shared.
	b.ReminderDays[0] = 14
	assert.Equal(t, []int{7, 3, 1}, DefaultReminderDays)

	_, err = NewBill("", d("10"), due, CategoryUtilities)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBill("Rent", d("0"), due, CategoryUtilities)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBill_Overdue(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	b := BillReminder{DueDate: now.AddDate(0, 0, -2)}
	assert.True(t, b.IsOverdue(now))
	assert.Equal(t, -2, b.DaysUntilDue(now))

	// Paying clears overdue regardless of due date.
	paid := b.MarkPaid(now)
	assert.False(t, paid.IsOverdue(now))
	require.NotNil(t, paid.PaidDate)
	assert.True(t, paid.PaidDate.Equal(now))

	future := BillReminder{DueDate: now.AddDate(0, 0, 5)}
	assert.False(t, future.IsOverdue(now))
	assert.Equal(t, 5, future.DaysUntilDue(now))
}
