// Package expense owns the expense collection and its persistence.
package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Veraticus/spend/internal/common"
	"github.com/Veraticus/spend/internal/model"
	"github.com/Veraticus/spend/internal/service"
	"github.com/google/uuid"
)

// ChangeFunc is notified with a snapshot of the collection after every
// successful mutation.
type ChangeFunc func(expenses []model.Expense)

// Store holds the ordered expense collection. Every mutation is written
// through to the key-value store before subscribers are notified.
type Store struct {
	kv          service.KeyValueStore
	newID       func() string
	subscribers map[int]ChangeFunc
	expenses    []model.Expense
	order       []int
	nextSub     int
	mu          sync.RWMutex
	// writeMu orders mutate, persist and notify as one unit.
	writeMu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store backed by kv. Call Load to read the
// persisted collection.
func New(kv service.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:          kv,
		newID:       uuid.NewString,
		subscribers: make(map[int]ChangeFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted snapshot.
// A missing snapshot yields an empty collection. An unreadable snapshot
// also yields an empty collection and a PersistenceError. Invalid records
// are skipped and reported the same way, wrapping ErrInvalidRecords.
func (s *Store) Load(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, service.KeyExpenses)
	if err != nil {
		return &common.PersistenceError{Op: "load", Key: service.KeyExpenses, Err: err}
	}

	var expenses []model.Expense
	var loadErr error
	if found && raw != "" {
		expenses, loadErr = Decode(raw)
		if loadErr != nil {
			common.LogWarn(loadErr, "discarding unreadable expense snapshot", common.Fields{"key": service.KeyExpenses})
			expenses = nil
			loadErr = &common.PersistenceError{Op: "load", Key: service.KeyExpenses, Err: loadErr}
		} else if kept, dropped := sanitize(expenses); dropped > 0 {
			err := fmt.Errorf("%w: dropped %d of %d", ErrInvalidRecords, dropped, len(expenses))
			common.LogWarn(err, "skipping invalid stored expenses", common.Fields{"key": service.KeyExpenses})
			expenses = kept
			loadErr = &common.PersistenceError{Op: "load", Key: service.KeyExpenses, Err: err}
		}
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()

	slog.Debug("loaded expenses", "count", len(expenses))
	return loadErr
}

// Add validates and appends a new expense.
func (s *Store) Add(ctx context.Context, description string, amount float64, category model.Category) (model.Expense, error) {
	description, err := Validate(description, amount, category)
	if err != nil {
		return model.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	id := model.ExpenseID(s.newID())
	for s.indexOf(id) >= 0 {
		id = model.ExpenseID(s.newID())
	}
	created := model.Expense{
		ID:          id,
		Description: description,
		Amount:      amount,
		Category:    category,
	}
	s.expenses = append(s.expenses, created)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return created, s.commit(ctx, "add", snapshot)
}

// Update replaces the expense with the given id, keeping its position.
func (s *Store) Update(ctx context.Context, id model.ExpenseID, description string, amount float64, category model.Category) (model.Expense, error) {
	description, err := Validate(description, amount, category)
	if err != nil {
		return model.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Expense{}, s.notFound("update", id)
	}
	updated := model.Expense{
		ID:          id,
		Description: description,
		Amount:      amount,
		Category:    category,
	}
	s.expenses[i] = updated
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return updated, s.commit(ctx, "update", snapshot)
}

// Remove deletes the expense with the given id.
func (s *Store) Remove(ctx context.Context, id model.ExpenseID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return s.notFound("remove", id)
	}
	s.expenses = slices.Delete(s.expenses, i, i+1)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.commit(ctx, "remove", snapshot)
}

// List returns a copy of the collection in order.
func (s *Store) List() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the expense with the given id.
func (s *Store) Get(id model.ExpenseID) (model.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.expenses[i], true
	}
	return model.Expense{}, false
}

// Len returns the number of expenses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expenses)
}

// Subscribe registers fn to run after every mutation. Subscribers run
// synchronously in registration order and must not mutate the store.
// The returned func unsubscribes.
func (s *Store) Subscribe(fn ChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
		s.order = slices.DeleteFunc(s.order, func(v int) bool { return v == id })
	}
}

// commit persists the snapshot and then notifies subscribers. A failed
// write is returned as a PersistenceError; the mutation stands.
func (s *Store) commit(ctx context.Context, op string, snapshot []model.Expense) error {
	var persistErr error
	if err := s.persist(ctx, snapshot); err != nil {
		common.LogWarn(err, "expense changes may not survive a restart", common.Fields{"op": op})
		persistErr = &common.PersistenceError{Op: op, Key: service.KeyExpenses, Err: err}
	}

	s.mu.RLock()
	subs := make([]ChangeFunc, 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(slices.Clone(snapshot))
	}

	slog.Debug("expense collection changed", "op", op, "count", len(snapshot))
	return persistErr
}

func (s *Store) persist(ctx context.Context, snapshot []model.Expense) error {
	raw, err := Encode(snapshot)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, service.KeyExpenses, raw)
}

func (s *Store) notFound(op string, id model.ExpenseID) error {
	err := &common.NotFoundError{Kind: "expense", ID: string(id)}
	common.LogWarn(err, "ignoring operation on unknown expense", common.Fields{"op": op, "id": string(id)})
	return err
}

func (s *Store) indexOf(id model.ExpenseID) int {
	return slices.IndexFunc(s.expenses, func(e model.Expense) bool { return e.ID == id })
}

func (s *Store) snapshotLocked() []model.Expense {
	if s.expenses == nil {
		return []model.Expense{}
	}
	return slices.Clone(s.expenses)
}

// Encode serializes a collection to its persisted JSON form.
func Encode(expenses []model.Expense) (string, error) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return "", fmt.Errorf("failed to encode expenses: %w", err)
	}
	return string(data), nil
}

// sanitize keeps the records that pass Validate and have a unique,
// non-empty id. Order is preserved.
func sanitize(expenses []model.Expense) ([]model.Expense, int) {
	kept := make([]model.Expense, 0, len(expenses))
	seen := make(map[model.ExpenseID]bool, len(expenses))
	for _, e := range expenses {
		description, err := Validate(e.Description, e.Amount, e.Category)
		if err != nil || e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		e.Description = description
		kept = append(kept, e)
	}
	return kept, len(expenses) - len(kept)
}

// Decode parses a persisted collection.
func Decode(raw string) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	return expenses, nil
}
