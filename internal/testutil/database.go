// Package testutil provides test utilities for the spend project.
// It offers store setup helpers with proper test isolation and a fluent
// builder for seeding expenses.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/spend/internal/expense"
	"github.com/Veraticus/spend/internal/service"
	"github.com/Veraticus/spend/internal/storage"
)

// TestStore bundles an expense store with the key-value storage behind it.
type TestStore struct {
	Storage  service.Storage
	Memory   *storage.MemoryStorage // nil for SQLite-backed stores
	Expenses *expense.Store
	t        *testing.T
}

// SetupTestStore creates an expense store over a fresh in-memory
// key-value store, seeded with the given expenses.
//
// Example:
//
//	ts := testutil.SetupTestStore(t,
//		testutil.NewExpenseBuilder().
//			WithExpense("Coffee", 4.5, model.CategoryFood).
//			Build(),
//	)
func SetupTestStore(t *testing.T, seed []Seed, opts ...expense.Option) *TestStore {
	t.Helper()

	mem := storage.NewMemoryStorage()
	ts := &TestStore{
		Storage:  mem,
		Memory:   mem,
		Expenses: expense.New(mem, opts...),
		t:        t,
	}
	ts.seed(seed)
	return ts
}

// SetupSQLiteStore creates an expense store over an in-memory SQLite
// database. It automatically handles migrations and cleanup.
func SetupSQLiteStore(t *testing.T, seed []Seed, opts ...expense.Option) *TestStore {
	t.Helper()

	db, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	ts := &TestStore{
		Storage:  db,
		Expenses: expense.New(db, opts...),
		t:        t,
	}
	ts.seed(seed)
	return ts
}

// Reload builds a second store over the same storage and loads it, as a
// restart would.
func (ts *TestStore) Reload() *expense.Store {
	ts.t.Helper()

	reloaded := expense.New(ts.Storage)
	if err := reloaded.Load(context.Background()); err != nil {
		ts.t.Fatalf("failed to reload expenses: %v", err)
	}
	return reloaded
}

func (ts *TestStore) seed(seed []Seed) {
	ts.t.Helper()

	ctx := context.Background()
	for _, s := range seed {
		if _, err := ts.Expenses.Add(ctx, s.Description, s.Amount, s.Category); err != nil {
			ts.t.Fatalf("failed to seed expense %q: %v", s.Description, err)
		}
	}
}
