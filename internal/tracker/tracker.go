// Package tracker owns the four in-memory record collections and drives
// the load / seed / mutate / persist cycle. It replaces the original
// ambient published-state pattern with an explicit object the shell holds,
// plus an observer list for change notification. Everything here runs on
// the single logical thread driving the presentation layer; there is no
// locking by design of the data model.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/seed"
	"github.com/theirongolddev/finsprint/internal/store"
)

// ErrNotFound marks a mutation referencing an id absent from its
// collection. The mutation is skipped; nothing is persisted.
var ErrNotFound = errors.New("record not found")

// RecordStore is the persistence collaborator. *store.Store satisfies it.
type RecordStore interface {
	LoadExpenses() ([]model.Expense, error)
	SaveExpenses([]model.Expense) error
	LoadTasks() ([]model.Task, error)
	SaveTasks([]model.Task) error
	LoadSprints() ([]model.FinancialSprint, error)
	SaveSprints([]model.FinancialSprint) error
	LoadBills() ([]model.BillReminder, error)
	SaveBills([]model.BillReminder) error
}

// Change identifies which collection a notification is about.
type Change struct {
	Collection string // one of the store.Key* values
}

// LoadReport describes what happened during Load: which collections were
// seeded and which were reset after an unreadable blob.
type LoadReport struct {
	Seeded []string
	Reset  []string
}

// Options tune tracker behavior.
type Options struct {
	// Seed populates empty collections with starter records on Load.
	Seed bool
	// Now supplies timestamps for mutations; defaults to time.Now.
	Now func() time.Time
}

// Tracker holds the four collections and persists after every mutation.
type Tracker struct {
	store       RecordStore
	now         func() time.Time
	seedOnLoad  bool
	subscribers []func(Change)

	expenses []model.Expense
	tasks    []model.Task
	sprints  []model.FinancialSprint
	bills    []model.BillReminder
}

// New creates a tracker over the given record store. Call Load before use.
func New(rs RecordStore, opts Options) *Tracker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: rs, now: now, seedOnLoad: opts.Seed}
}

// Load reads all four collections. An unreadable blob degrades to an empty
// collection and is noted in the report, never returned as an error; empty
// collections are seeded and persisted immediately when seeding is on.
// Only store I/O failures are errors.
func (t *Tracker) Load() (LoadReport, error) {
	var report LoadReport

	loadOne := func(key string, load func() error) error {
		if err := load(); err != nil {
			if errors.Is(err, store.ErrCorrupt) {
				report.Reset = append(report.Reset, key)
				return nil
			}
			return err
		}
		return nil
	}

	if err := loadOne(store.KeyExpenses, func() (err error) { t.expenses, err = t.store.LoadExpenses(); return }); err != nil {
		return report, err
	}
	if err := loadOne(store.KeyTasks, func() (err error) { t.tasks, err = t.store.LoadTasks(); return }); err != nil {
		return report, err
	}
	if err := loadOne(store.KeySprints, func() (err error) { t.sprints, err = t.store.LoadSprints(); return }); err != nil {
		return report, err
	}
	if err := loadOne(store.KeyBills, func() (err error) { t.bills, err = t.store.LoadBills(); return }); err != nil {
		return report, err
	}

	if t.seedOnLoad {
		if err := t.seedEmpty(&report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// seedEmpty fills empty collections with starter records and persists each
// one it touches. Non-empty collections are never overwritten.
func (t *Tracker) seedEmpty(report *LoadReport) error {
	now := t.now()

	if len(t.expenses) == 0 {
		t.expenses = seed.Expenses(now)
		if err := t.store.SaveExpenses(t.expenses); err != nil {
			return fmt.Errorf("seeding expenses: %w", err)
		}
		report.Seeded = append(report.Seeded, store.KeyExpenses)
	}
	if len(t.tasks) == 0 {
		t.tasks = seed.Tasks(now)
		if err := t.store.SaveTasks(t.tasks); err != nil {
			return fmt.Errorf("seeding tasks: %w", err)
		}
		report.Seeded = append(report.Seeded, store.KeyTasks)
	}
	if len(t.sprints) == 0 {
		t.sprints = seed.Sprints(now)
		if err := t.store.SaveSprints(t.sprints); err != nil {
			return fmt.Errorf("seeding sprints: %w", err)
		}
		report.Seeded = append(report.Seeded, store.KeySprints)
	}
	if len(t.bills) == 0 {
		t.bills = seed.Bills(now)
		if err := t.store.SaveBills(t.bills); err != nil {
			return fmt.Errorf("seeding bills: %w", err)
		}
		report.Seeded = append(report.Seeded, store.KeyBills)
	}
	return nil
}

// Subscribe registers a change callback, invoked synchronously after every
// persisted mutation.
func (t *Tracker) Subscribe(fn func(Change)) {
	t.subscribers = append(t.subscribers, fn)
}

func (t *Tracker) notify(collection string) {
	for _, fn := range t.subscribers {
		fn(Change{Collection: collection})
	}
}

// Expenses returns a copy of the expense collection in insertion order.
func (t *Tracker) Expenses() []model.Expense {
	out := make([]model.Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}

// Tasks returns a copy of the task collection in insertion order.
func (t *Tracker) Tasks() []model.Task {
	out := make([]model.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// Sprints returns a copy of the sprint collection in insertion order.
func (t *Tracker) Sprints() []model.FinancialSprint {
	out := make([]model.FinancialSprint, len(t.sprints))
	copy(out, t.sprints)
	return out
}

// Bills returns a copy of the bill collection in insertion order.
func (t *Tracker) Bills() []model.BillReminder {
	out := make([]model.BillReminder, len(t.bills))
	copy(out, t.bills)
	return out
}

// AddExpense appends an expense and persists the collection.
func (t *Tracker) AddExpense(e model.Expense) error {
	t.expenses = append(t.expenses, e)
	if err := t.store.SaveExpenses(t.expenses); err != nil {
		return err
	}
	t.notify(store.KeyExpenses)
	return nil
}

// AddTask appends a task and persists the collection.
func (t *Tracker) AddTask(task model.Task) error {
	t.tasks = append(t.tasks, task)
	if err := t.store.SaveTasks(t.tasks); err != nil {
		return err
	}
	t.notify(store.KeyTasks)
	return nil
}

// AddSprint appends a sprint and persists the collection.
func (t *Tracker) AddSprint(s model.FinancialSprint) error {
	t.sprints = append(t.sprints, s)
	if err := t.store.SaveSprints(t.sprints); err != nil {
		return err
	}
	t.notify(store.KeySprints)
	return nil
}

// AddBill appends a bill and persists the collection.
func (t *Tracker) AddBill(b model.BillReminder) error {
	t.bills = append(t.bills, b)
	if err := t.store.SaveBills(t.bills); err != nil {
		return err
	}
	t.notify(store.KeyBills)
	return nil
}

// ToggleTask flips completion on the task with the given id and persists.
func (t *Tracker) ToggleTask(id uuid.UUID) (model.Task, error) {
	for i, task := range t.tasks {
		if task.ID != id {
			continue
		}
		toggled := task.ToggleCompletion(t.now())
		t.tasks[i] = toggled
		if err := t.store.SaveTasks(t.tasks); err != nil {
			return model.Task{}, err
		}
		t.notify(store.KeyTasks)
		return toggled, nil
	}
	return model.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
}

// PayBill marks the bill with the given id paid and persists.
func (t *Tracker) PayBill(id uuid.UUID) (model.BillReminder, error) {
	for i, b := range t.bills {
		if b.ID != id {
			continue
		}
		paid := b.MarkPaid(t.now())
		t.bills[i] = paid
		if err := t.store.SaveBills(t.bills); err != nil {
			return model.BillReminder{}, err
		}
		t.notify(store.KeyBills)
		return paid, nil
	}
	return model.BillReminder{}, fmt.Errorf("%w: bill %s", ErrNotFound, id)
}

// AdvanceSprint adds delta to the saved amount of the sprint with the
// given id and persists. Milestone completion follows the domain rule.
func (t *Tracker) AdvanceSprint(id uuid.UUID, delta decimal.Decimal) (model.FinancialSprint, error) {
	for i, s := range t.sprints {
		if s.ID != id {
			continue
		}
		advanced := s.Advance(delta, t.now())
		t.sprints[i] = advanced
		if err := t.store.SaveSprints(t.sprints); err != nil {
			return model.FinancialSprint{}, err
		}
		t.notify(store.KeySprints)
		return advanced, nil
	}
	return model.FinancialSprint{}, fmt.Errorf("%w: sprint %s", ErrNotFound, id)
}

// ReplaceSprint swaps the stored sprint with the same id and persists.
// Used when the shell edits fields (milestones, linked tasks) directly.
func (t *Tracker) ReplaceSprint(s model.FinancialSprint) (model.FinancialSprint, error) {
	for i, existing := range t.sprints {
		if existing.ID != s.ID {
			continue
		}
		t.sprints[i] = s
		if err := t.store.SaveSprints(t.sprints); err != nil {
			return model.FinancialSprint{}, err
		}
		t.notify(store.KeySprints)
		return s, nil
	}
	return model.FinancialSprint{}, fmt.Errorf("%w: sprint %s", ErrNotFound, s.ID)
}

// FindTask resolves a task by id prefix or exact title, for CLI lookups.
// An ambiguous or unknown reference returns ErrNotFound.
func (t *Tracker) FindTask(ref string) (model.Task, error) {
	var matches []model.Task
	for _, task := range t.tasks {
		if task.Title == ref || hasIDPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	if len(matches) != 1 {
		return model.Task{}, fmt.Errorf("%w: task %q (%d matches)", ErrNotFound, ref, len(matches))
	}
	return matches[0], nil
}

// FindBill resolves a bill by id prefix or exact title.
func (t *Tracker) FindBill(ref string) (model.BillReminder, error) {
	var matches []model.BillReminder
	for _, b := range t.bills {
		if b.Title == ref || hasIDPrefix(b.ID, ref) {
			matches = append(matches, b)
		}
	}
	if len(matches) != 1 {
		return model.BillReminder{}, fmt.Errorf("%w: bill %q (%d matches)", ErrNotFound, ref, len(matches))
	}
	return matches[0], nil
}

// FindSprint resolves a sprint by id prefix or exact title.
func (t *Tracker) FindSprint(ref string) (model.FinancialSprint, error) {
	var matches []model.FinancialSprint
	for _, s := range t.sprints {
		if s.Title == ref || hasIDPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	if len(matches) != 1 {
		return model.FinancialSprint{}, fmt.Errorf("%w: sprint %q (%d matches)", ErrNotFound, ref, len(matches))
	}
	return matches[0], nil
}

// Prefixes shorter than 4 characters are too easy to collide on.
func hasIDPrefix(id uuid.UUID, ref string) bool {
	return len(ref) >= 4 && len(ref) <= 36 &&
		strings.HasPrefix(id.String(), strings.ToLower(ref))
}
