package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskCategory classifies a productivity task.
type TaskCategory string

const (
	TaskFinancial TaskCategory = "Financial"
	TaskPersonal  TaskCategory = "Personal"
	TaskWork      TaskCategory = "Work"
	TaskHealth    TaskCategory = "Health"
	TaskLearning  TaskCategory = "Learning"
	TaskHousehold TaskCategory = "Household"
)

// TaskCategories lists every task category in display order.
var TaskCategories = []TaskCategory{
	TaskFinancial,
	TaskPersonal,
	TaskWork,
	TaskHealth,
	TaskLearning,
	TaskHousehold,
}

// Valid reports whether c is one of the known task categories.
func (c TaskCategory) Valid() bool {
	for _, known := range TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

// TaskPriority orders tasks from Low to Urgent.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Rank returns the sort weight of p: Low=0 through Urgent=3.
// Unknown priorities rank below Low.
func (p TaskPriority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return -1
}

// RewardType is the kind of reward attached to a task.
type RewardType string

const (
	RewardMoney     RewardType = "Money"
	RewardPoints    RewardType = "Points"
	RewardAllowance RewardType = "Allowance"
)

// TaskReward is an incentive attached to completing a task.
type TaskReward struct {
	Type        RewardType      `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// DefaultEstimatedSeconds is the estimated duration assigned to new tasks.
const DefaultEstimatedSeconds = 3600

// Task is a productivity task, optionally carrying a monetary reward and
// informational links to an expense or sprint.
type Task struct {
	ID                uuid.UUID    `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Category          TaskCategory `json:"category"`
	Priority          TaskPriority `json:"priority"`
	DueDate           *time.Time   `json:"dueDate,omitempty"`
	IsCompleted       bool         `json:"isCompleted"`
	CompletedDate     *time.Time   `json:"completedDate,omitempty"`
	EstimatedDuration float64      `json:"estimatedDuration"` // seconds
	ActualDuration    *float64     `json:"actualDuration,omitempty"`
	Reward            *TaskReward  `json:"reward,omitempty"`
	LinkedExpenseID   *uuid.UUID   `json:"linkedExpenseId,omitempty"`
	LinkedSprintID    *uuid.UUID   `json:"linkedSprintId,omitempty"`
}

// NewTask creates an incomplete task with a fresh id and the default
// estimated duration. Optional fields (due date, reward, links) are set on
// the returned value before the task is added to a collection.
func NewTask(title, description string, category TaskCategory, priority TaskPriority) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if !category.Valid() {
		return Task{}, fmt.Errorf("%w: unknown task category %q", ErrValidation, category)
	}
	if priority.Rank() < 0 {
		return Task{}, fmt.Errorf("%w: unknown task priority %q", ErrValidation, priority)
	}
	return Task{
		ID:                uuid.New(),
		Title:             title,
		Description:       description,
		Category:          category,
		Priority:          priority,
		EstimatedDuration: DefaultEstimatedSeconds,
	}, nil
}

// ToggleCompletion flips the completed flag. CompletedDate is stamped with
// now on completion and cleared when the task is reopened, so the
// completed-date-iff-completed invariant always holds.
func (t Task) ToggleCompletion(now time.Time) Task {
	if t.IsCompleted {
		t.IsCompleted = false
		t.CompletedDate = nil
		return t
	}
	t.IsCompleted = true
	t.CompletedDate = &now
	return t
}
