// Package store provides SQLite-backed persistence for the four record
// collections. Each collection is stored as one JSON-serialized ordered
// sequence under its collection key; the store knows nothing about entity
// semantics beyond (de)serialization.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/finsprint/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Collection keys. These are the persisted names and must not change.
const (
	KeyExpenses = "expenses"
	KeyTasks    = "tasks"
	KeySprints  = "sprints"
	KeyBills    = "bills"
)

// ErrCorrupt marks a collection blob that failed to deserialize. Callers
// treat it as a cold-start empty collection, never as fatal.
var ErrCorrupt = errors.New("corrupt collection")

// Store is a SQLite-backed record store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// loadRaw returns the serialized blob for a collection key, reporting
// whether the key exists at all.
func (s *Store) loadRaw(name string) ([]byte, bool, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM collections WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading collection %s: %w", name, err)
	}
	return []byte(data), true, nil
}

// SaveRaw replaces a collection blob verbatim. Typed Save* methods are the
// normal write path; this exists for tooling and tests.
func (s *Store) SaveRaw(name string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO collections (name, data, updated_at)
		VALUES (?, ?, ?)`, name, string(data), now)
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	return nil
}

// load deserializes the collection at name into out (a pointer to a slice).
// A missing key leaves out untouched; an unparsable blob returns ErrCorrupt.
func (s *Store) load(name string, out any) error {
	data, ok, err := s.loadRaw(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

func (s *Store) save(name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing collection %s: %w", name, err)
	}
	return s.SaveRaw(name, data)
}

// LoadExpenses reads the expense collection; empty when never saved.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	var out []model.Expense
	if err := s.load(KeyExpenses, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveExpenses replaces the expense collection.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	return s.save(KeyExpenses, expenses)
}

// LoadTasks reads the task collection.
func (s *Store) LoadTasks() ([]model.Task, error) {
	var out []model.Task
	if err := s.load(KeyTasks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveTasks replaces the task collection.
func (s *Store) SaveTasks(tasks []model.Task) error {
	return s.save(KeyTasks, tasks)
}

// LoadSprints reads the sprint collection.
func (s *Store) LoadSprints() ([]model.FinancialSprint, error) {
	var out []model.FinancialSprint
	if err := s.load(KeySprints, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveSprints replaces the sprint collection.
func (s *Store) SaveSprints(sprints []model.FinancialSprint) error {
	return s.save(KeySprints, sprints)
}

// LoadBills reads the bill collection.
func (s *Store) LoadBills() ([]model.BillReminder, error) {
	var out []model.BillReminder
	if err := s.load(KeyBills, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveBills replaces the bill collection.
func (s *Store) SaveBills(bills []model.BillReminder) error {
	return s.save(KeyBills, bills)
}
