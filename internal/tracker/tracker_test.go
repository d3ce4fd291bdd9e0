package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finsprint/internal/model"
	"github.com/theirongolddev/finsprint/internal/store"
)

var testNow = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T, opts Options) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "finsprint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	return New(s, opts), s
}

func TestLoad_SeedsEmptyCollections(t *testing.T) {
	tr, _ := newTestTracker(t, Options{Seed: true})

	report, err := tr.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, report.Seeded,
		[]string{store.KeyExpenses, store.KeyTasks, store.KeySprints, store.KeyBills})

	assert.Len(t, tr.Expenses(), 5)
	assert.Len(t, tr.Tasks(), 4)
	assert.Len(t, tr.Sprints(), 1)

	bills := tr.Bills()
	require.Len(t, bills, 3)
	for _, b := range bills {
		assert.False(t, b.IsPaid)
		assert.True(t, b.DueDate.After(testNow))
	}
}

func TestLoad_SeedPersistsAndNeverOverwrites(t *testing.T) {
	tr, s := newTestTracker(t, Options{Seed: true})
	_, err := tr.Load()
	require.NoError(t, err)

	// Seeded records hit the store immediately.
	persisted, err := s.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, persisted, 5)

	// A second cold start sees the same records and seeds nothing.
	tr2 := New(s, Options{Seed: true, Now: func() time.Time { return testNow }})
	report, err := tr2.Load()
	require.NoError(t, err)
	assert.Empty(t, report.Seeded)
	assert.Len(t, tr2.Expenses(), 5)
}

func TestLoad_SeedDisabled(t *testing.T) {
	tr, _ := newTestTracker(t, Options{Seed: false})

	report, err := tr.Load()
	require.NoError(t, err)
	assert.Empty(t, report.Seeded)
	assert.Empty(t, tr.Expenses())
	assert.Empty(t, tr.Bills())
}

func TestLoad_CorruptBlobResetsCollection(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "finsprint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.SaveRaw(store.KeyTasks, []byte("garbage")))

	tr := New(s, Options{Seed: false})
	report, err := tr.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyTasks}, report.Reset)
	assert.Empty(t, tr.Tasks())
}

func TestLoad_BadFieldBlobResetsAndReseeds(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "finsprint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// Valid JSON whose element fails to decode. The collection must come
	// back empty, not as a zero-value record, so seeding still kicks in.
	blob := []byte(`[{"id":"not-a-uuid","amount":"5","category":"Food & Dining"}]`)
	require.NoError(t, s.SaveRaw(store.KeyExpenses, blob))

	tr := New(s, Options{Seed: true, Now: func() time.Time { return testNow }})
	report, err := tr.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{store.KeyExpenses}, report.Reset)
	assert.Contains(t, report.Seeded, store.KeyExpenses)
	require.Len(t, tr.Expenses(), 5)
	for _, e := range tr.Expenses() {
		assert.NotEqual(t, uuid.Nil, e.ID)
	}

	// The reseeded records replace the bad blob on disk.
	persisted, err := s.LoadExpenses()
	require.NoError(t, err)
	assert.Len(t, persisted, 5)
}

func TestMutations_PersistAndNotify(t *testing.T) {
	tr, s := newTestTracker(t, Options{Seed: false})
	_, err := tr.Load()
	require.NoError(t, err)

	var changed []string
	tr.Subscribe(func(c Change) { changed = append(changed, c.Collection) })

	task, err := model.NewTask("Pay card", "", model.TaskFinancial, model.PriorityUrgent)
	require.NoError(t, err)
	require.NoError(t, tr.AddTask(task))

	toggled, err := tr.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
	require.NotNil(t, toggled.CompletedDate)
	assert.True(t, toggled.CompletedDate.Equal(testNow))

	// The persisted copy reflects the toggle.
	persisted, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].IsCompleted)

	bill, err := model.NewBill("Rent", decimal.NewFromInt(1200), testNow.AddDate(0, 0, 5), model.CategoryUtilities)
	require.NoError(t, err)
	require.NoError(t, tr.AddBill(bill))

	paid, err := tr.PayBill(bill.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)

	sprint, err := model.NewSprint("Fund", "", decimal.NewFromInt(100), testNow, testNow.AddDate(0, 1, 0), model.SprintSaving)
	require.NoError(t, err)
	require.NoError(t, tr.AddSprint(sprint))

	advanced, err := tr.AdvanceSprint(sprint.ID, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.Equal(t, "40", advanced.CurrentAmount.String())

	assert.Equal(t, []string{
		store.KeyTasks, store.KeyTasks,
		store.KeyBills, store.KeyBills,
		store.KeySprints, store.KeySprints,
	}, changed)
}

func TestMutations_UnknownID(t *testing.T) {
	tr, _ := newTestTracker(t, Options{Seed: false})
	_, err := tr.Load()
	require.NoError(t, err)

	_, err = tr.ToggleTask(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tr.PayBill(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tr.AdvanceSprint(uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindTask_ByTitleAndPrefix(t *testing.T) {
	tr, _ := newTestTracker(t, Options{Seed: false})
	_, err := tr.Load()
	require.NoError(t, err)

	task, err := model.NewTask("Review budget", "", model.TaskFinancial, model.PriorityHigh)
	require.NoError(t, err)
	require.NoError(t, tr.AddTask(task))

	byTitle, err := tr.FindTask("Review budget")
	require.NoError(t, err)
	assert.Equal(t, task.ID, byTitle.ID)

	byPrefix, err := tr.FindTask(task.ID.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, task.ID, byPrefix.ID)

	_, err = tr.FindTask("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
