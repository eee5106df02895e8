package storage

import (
	"context"
	"sync"

	"github.com/Veraticus/spend/internal/service"
)

var _ service.Storage = (*MemoryStorage)(nil)

// MemoryStorage is a volatile Storage used by tests and --ephemeral runs.
type MemoryStorage struct {
	values   map[string]string
	writeErr error
	writes   int
	mu       sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set replaces the value stored under key, or fails with the error
// configured by FailWrites.
func (m *MemoryStorage) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.values[key] = value
	m.writes++
	return nil
}

// FailWrites makes every subsequent Set return err. Pass nil to recover.
func (m *MemoryStorage) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Writes returns the number of successful Set calls.
func (m *MemoryStorage) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Migrate is a no-op for the in-memory store.
func (m *MemoryStorage) Migrate(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStorage) Close() error {
	return nil
}
