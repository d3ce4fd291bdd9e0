package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultReminderDays are the day offsets before a bill's due date at which
// a reminder is conceptually due.
var DefaultReminderDays = []int{7, 3, 1}

// BillReminder is an upcoming bill with a due date, sharing the expense
// category set.
type BillReminder struct {
	ID                 uuid.UUID       `json:"id"`
	Title              string          `json:"title"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            time.Time       `json:"dueDate"`
	Category           ExpenseCategory `json:"category"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency *Frequency      `json:"recurringFrequency,omitempty"`
	IsPaid             bool            `json:"isPaid"`
	PaidDate           *time.Time      `json:"paidDate,omitempty"`
	LinkedTaskID       *uuid.UUID      `json:"linkedTaskId,omitempty"`
	ReminderDays       []int           `json:"reminderDays"`
}

// NewBill creates an unpaid bill with a fresh id and the default reminder
// offsets.
func NewBill(title string, amount decimal.Decimal, dueDate time.Time, category ExpenseCategory) (BillReminder, error) {
	if strings.TrimSpace(title) == "" {
		return BillReminder{}, fmt.Errorf("%w: bill title is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return BillReminder{}, fmt.Errorf("%w: bill amount must be positive, got %s", ErrValidation, amount)
	}
	if !category.Valid() {
		return BillReminder{}, fmt.Errorf("%w: unknown bill category %q", ErrValidation, category)
	}
	reminders := make([]int, len(DefaultReminderDays))
	copy(reminders, DefaultReminderDays)
	return BillReminder{
		ID:           uuid.New(),
		Title:        title,
		Amount:       amount,
		DueDate:      dueDate,
		Category:     category,
		ReminderDays: reminders,
	}, nil
}

// Recurring returns a copy of b marked recurring at the given frequency.
func (b BillReminder) Recurring(freq Frequency) BillReminder {
	b.IsRecurring = true
	b.RecurringFrequency = &freq
	return b
}

// IsOverdue reports whether the bill is unpaid and past due.
func (b BillReminder) IsOverdue(now time.Time) bool {
	return !b.IsPaid && b.DueDate.Before(now)
}

// DaysUntilDue returns whole days until the due date. Negative once the
// bill is overdue; callers classify rather than clamp.
func (b BillReminder) DaysUntilDue(now time.Time) int {
	return wholeDays(now, b.DueDate)
}

// MarkPaid returns a copy of b paid at now.
func (b BillReminder) MarkPaid(now time.Time) BillReminder {
	b.IsPaid = true
	b.PaidDate = &now
	return b
}
