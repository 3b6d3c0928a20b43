// Package memstore provides in-memory entity tables with the CRUD contract
// the HTTP layer exposes. Rows are flat value structs, so struct assignment
// is a full defensive copy; callers never receive an alias into the backing
// slice.
package memstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is the only structured failure the store raises; update and
// delete against an absent id return it wrapped with the entity kind.
var ErrNotFound = errors.New("record not found")

// Table holds one ordered sequence of records, seeded once and mutated in
// place. Identity is a positive integer assigned as max(existing)+1 on
// create; ids are never reused unless the deleted id was the current max.
type Table[T any] struct {
	mu      sync.RWMutex
	rows    []T
	id      func(T) int
	setID   func(*T, int)
	latency Latency
}

// NewTable builds a table over rows identified by the given accessors.
// Latency applies per operation; pass the zero value for immediate resolution.
func NewTable[T any](id func(T) int, setID func(*T, int), latency Latency) *Table[T] {
	return &Table[T]{id: id, setID: setID, latency: latency}
}

// Seed replaces the table contents with a copy of rows. Intended to run once
// at startup before any accessor call.
func (t *Table[T]) Seed(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make([]T, len(rows))
	copy(t.rows, rows)
}

// List returns a copy of every row in insertion order.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	if err := wait(ctx, t.latency.List); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out, nil
}

// Get returns the row with the given id, or false when absent. A missing id
// is not an error here; only mutations treat it as one.
func (t *Table[T]) Get(ctx context.Context, id int) (T, bool, error) {
	var zero T
	if err := wait(ctx, t.latency.Get); err != nil {
		return zero, false, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if t.id(row) == id {
			return row, true, nil
		}
	}
	return zero, false, nil
}

// Create assigns the next id, appends a copy of row, and returns the stored
// record. Any id supplied by the caller is overwritten.
func (t *Table[T]) Create(ctx context.Context, row T) (T, error) {
	var zero T
	if err := wait(ctx, t.latency.Create); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	next := 1
	for _, existing := range t.rows {
		if t.id(existing) >= next {
			next = t.id(existing) + 1
		}
	}
	t.setID(&row, next)
	t.rows = append(t.rows, row)
	return row, nil
}

// Update applies patch to a copy of the row with the given id, stores the
// result, and returns it. Fields the patch leaves untouched keep their
// previous values.
func (t *Table[T]) Update(ctx context.Context, id int, patch func(*T)) (T, error) {
	var zero T
	if err := wait(ctx, t.latency.Update); err != nil {
		return zero, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, row := range t.rows {
		if t.id(row) != id {
			continue
		}
		updated := row
		patch(&updated)
		t.setID(&updated, id)
		t.rows[i] = updated
		return updated, nil
	}
	return zero, ErrNotFound
}

// UpdateAll applies patch to every row under a single latency charge.
func (t *Table[T]) UpdateAll(ctx context.Context, patch func(*T)) error {
	if err := wait(ctx, t.latency.Update); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		updated := t.rows[i]
		patch(&updated)
		t.setID(&updated, t.id(t.rows[i]))
		t.rows[i] = updated
	}
	return nil
}

// Delete removes the row with the given id. No cascade: rows in other tables
// referencing the id are left dangling on purpose.
func (t *Table[T]) Delete(ctx context.Context, id int) error {
	if err := wait(ctx, t.latency.Delete); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, row := range t.rows {
		if t.id(row) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the current row count without simulated latency.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
