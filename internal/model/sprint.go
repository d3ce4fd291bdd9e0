package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SprintCategory classifies a financial sprint.
type SprintCategory string

const (
	SprintSaving        SprintCategory = "Saving"
	SprintBudgeting     SprintCategory = "Budgeting"
	SprintInvestment    SprintCategory = "Investment"
	SprintDebtPayoff    SprintCategory = "Debt Payoff"
	SprintEmergencyFund SprintCategory = "Emergency Fund"
)

// SprintCategories lists every sprint category in display order.
var SprintCategories = []SprintCategory{
	SprintSaving,
	SprintBudgeting,
	SprintInvestment,
	SprintDebtPayoff,
	SprintEmergencyFund,
}

// Valid reports whether c is one of the known sprint categories.
func (c SprintCategory) Valid() bool {
	for _, known := range SprintCategories {
		if c == known {
			return true
		}
	}
	return false
}

// SprintMilestone is an intermediate target within a sprint.
type SprintMilestone struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	IsCompleted   bool            `json:"isCompleted"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	Reward        decimal.Decimal `json:"reward"`
}

// NewMilestone creates an incomplete milestone with a fresh id.
func NewMilestone(title string, target, reward decimal.Decimal) SprintMilestone {
	return SprintMilestone{
		ID:           uuid.New(),
		Title:        title,
		TargetAmount: target,
		Reward:       reward,
	}
}

// FinancialSprint is a time-boxed savings goal.
type FinancialSprint struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	GoalAmount    decimal.Decimal   `json:"goalAmount"`
	CurrentAmount decimal.Decimal   `json:"currentAmount"`
	StartDate     time.Time         `json:"startDate"`
	EndDate       time.Time         `json:"endDate"`
	IsActive      bool              `json:"isActive"`
	Category      SprintCategory    `json:"category"`
	LinkedTaskIDs []uuid.UUID       `json:"linkedTaskIds"`
	Milestones    []SprintMilestone `json:"milestones"`
}

// NewSprint creates an active sprint with a fresh id, zero saved so far,
// and no milestones or linked tasks.
func NewSprint(title, description string, goal decimal.Decimal, start, end time.Time, category SprintCategory) (FinancialSprint, error) {
	if strings.TrimSpace(title) == "" {
		return FinancialSprint{}, fmt.Errorf("%w: sprint title is required", ErrValidation)
	}
	if !goal.IsPositive() {
		return FinancialSprint{}, fmt.Errorf("%w: sprint goal must be positive, got %s", ErrValidation, goal)
	}
	if end.Before(start) {
		return FinancialSprint{}, fmt.Errorf("%w: sprint end date precedes start date", ErrValidation)
	}
	if !category.Valid() {
		return FinancialSprint{}, fmt.Errorf("%w: unknown sprint category %q", ErrValidation, category)
	}
	return FinancialSprint{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		GoalAmount:    goal,
		CurrentAmount: decimal.Zero,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
		LinkedTaskIDs: []uuid.UUID{},
		Milestones:    []SprintMilestone{},
		Category:      category,
	}, nil
}

// Progress returns how far along the sprint is, clamped to [0, 1].
// A zero goal yields 0.
func (s FinancialSprint) Progress() float64 {
	if !s.GoalAmount.IsPositive() {
		return 0
	}
	p, _ := s.CurrentAmount.Div(s.GoalAmount).Float64()
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// DaysRemaining returns whole days until the end date, floored at 0 once
// the sprint is past due.
func (s FinancialSprint) DaysRemaining(now time.Time) int {
	d := wholeDays(now, s.EndDate)
	if d < 0 {
		return 0
	}
	return d
}

// Advance adds delta to the saved amount. The stored amount is not clamped
// to the goal; Progress clamps for display. Milestones whose target the new
// amount reaches are marked completed at now.
func (s FinancialSprint) Advance(delta decimal.Decimal, now time.Time) FinancialSprint {
	s.CurrentAmount = s.CurrentAmount.Add(delta)

	milestones := make([]SprintMilestone, len(s.Milestones))
	copy(milestones, s.Milestones)
	for i, m := range milestones {
		if !m.IsCompleted && s.CurrentAmount.GreaterThanOrEqual(m.TargetAmount) {
			m.IsCompleted = true
			completed := now
			m.CompletedDate = &completed
			milestones[i] = m
		}
	}
	s.Milestones = milestones
	return s
}
