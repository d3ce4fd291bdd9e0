// Package model defines domain types for finsprint: expenses, tasks,
// financial sprints, and bill reminders. Records are immutable by
// convention; mutation helpers return a replacement value with the id
// preserved, and persistence is the caller's responsibility.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense or bill. The string values are
// persisted verbatim and must not change.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food & Dining"
	CategoryTransport     ExpenseCategory = "Transportation"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryUtilities     ExpenseCategory = "Utilities"
	CategoryHealthcare    ExpenseCategory = "Healthcare"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryEducation     ExpenseCategory = "Education"
	CategoryInvestment    ExpenseCategory = "Investment"
	CategoryOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryShopping,
	CategoryEducation,
	CategoryInvestment,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Frequency is how often a recurring expense or bill repeats.
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// Frequencies lists every repeat frequency in display order.
var Frequencies = []Frequency{Daily, Weekly, Monthly, Yearly}

// ParseFrequency matches a label against the known frequencies,
// case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown frequency %q", ErrValidation, s)
}

// Expense is a single logged expense.
type Expense struct {
	ID                 uuid.UUID       `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	Category           ExpenseCategory `json:"category"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	IsRecurring        bool            `json:"isRecurring"`
	RecurringFrequency *Frequency      `json:"recurringFrequency,omitempty"`
	LinkedTaskID       *uuid.UUID      `json:"linkedTaskId,omitempty"`
}

// NewExpense creates an expense dated at the given time with a fresh id.
func NewExpense(amount decimal.Decimal, category ExpenseCategory, description string, date time.Time) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: expense amount must be positive, got %s", ErrValidation, amount)
	}
	if !category.Valid() {
		return Expense{}, fmt.Errorf("%w: unknown expense category %q", ErrValidation, category)
	}
	return Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}

// Recurring returns a copy of e marked recurring at the given frequency.
// The frequency pointer invariant (set iff IsRecurring) holds for the result.
func (e Expense) Recurring(freq Frequency) Expense {
	e.IsRecurring = true
	e.RecurringFrequency = &freq
	return e
}

// wholeDays returns the truncated count of whole days from one instant to
// another; negative when `to` is in the past.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
