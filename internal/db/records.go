// Package db implements the record store and the repositories over it.
// Each collection is persisted as one JSON array under a fixed substrate
// key; every write is a full read-modify-write of that array.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/terraincognita07/fittrack/internal/kv"
)

const (
	WorkoutsKey = "fitness_workouts"
	CheckInsKey = "fitness_checkins"
	SettingsKey = "fitness_settings"
)

// ParseError reports stored content that is not valid JSON for its
// collection. It surfaces on read and is never swallowed: malformed
// persisted data is corruption the caller must see.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse collection %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a substrate rejection of a write.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write collection %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Collection is a named group of same-shaped records stored as a single
// JSON array. A per-collection mutex serializes read-modify-write
// cycles so concurrent adds cannot lose each other's records.
type Collection[T any] struct {
	store kv.Store
	key   string
	mu    sync.Mutex
}

func NewCollection[T any](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// ReadAll returns every record in persisted (append) order. A missing or
// empty key yields an empty slice, never an error.
func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	raw, present, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !present || raw == "" {
		return []T{}, nil
	}

	records := make([]T, 0)
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, &ParseError{Key: c.key, Err: err}
	}
	return records, nil
}

// WriteAll replaces the whole collection.
func (c *Collection[T]) WriteAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return &WriteError{Key: c.key, Err: err}
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return &WriteError{Key: c.key, Err: err}
	}
	return nil
}

// Update runs one locked read-modify-write cycle: it reads the current
// records, applies mutate, persists the result and returns it.
func (c *Collection[T]) Update(ctx context.Context, mutate func([]T) []T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = mutate(records)
	if err := c.WriteAll(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}
