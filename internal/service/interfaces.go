// Package service defines the interfaces for all application services.
package service

import (
	"context"
)

// Storage keys for durable application state.
const (
	KeyExpenses = "expenses"
	KeyTheme    = "theme"
)

// KeyValueStore defines the contract for our persistence layer: an opaque
// string store addressed by key.
type KeyValueStore interface {
	// Get returns the stored value. The bool is false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the stored value for key.
	Set(ctx context.Context, key, value string) error
}

// Storage is a KeyValueStore that owns a closable resource.
type Storage interface {
	KeyValueStore

	Migrate(ctx context.Context) error
	Close() error
}
