// Package view holds the per-table row state between fetch and render.
package view

import (
	"context"
	"sync"
)

// Loader owns one table's row set. Fetches are tagged with a monotonic
// sequence so a slow, superseded response can never overwrite rows installed
// by a newer fetch. Mutations reconcile rows locally so an action is visible
// without a round trip.
type Loader[R any] struct {
	mu     sync.Mutex
	seq    uint64
	rows   []R
	loaded bool
	key    func(R) string
}

// NewLoader creates a loader keying rows with the given accessor
func NewLoader[R any](key func(R) string) *Loader[R] {
	return &Loader[R]{key: key}
}

// Load fetches rows and installs them, unless a newer Load started in the
// meantime, then the stale result is discarded and the current rows
// returned. A fetch error leaves the installed rows untouched.
func (l *Loader[R]) Load(ctx context.Context, fetch func(context.Context) ([]R, error)) ([]R, error) {
	l.mu.Lock()
	l.seq++
	mine := l.seq
	l.mu.Unlock()

	rows, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		if l.loaded {
			return l.snapshot(), err
		}
		return nil, err
	}

	if mine != l.seq {
		// superseded by a newer fetch
		return l.snapshot(), nil
	}

	l.rows = rows
	l.loaded = true
	return l.snapshot(), nil
}

// Rows returns the installed rows
func (l *Loader[R]) Rows() []R {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Loaded reports whether any fetch has completed successfully
func (l *Loader[R]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Remove drops the row with the given key, reporting whether it was present
func (l *Loader[R]) Remove(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, row := range l.rows {
		if l.key(row) == key {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Patch applies fn to the row with the given key, reporting whether it was
// present
func (l *Loader[R]) Patch(key string, fn func(*R)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.rows {
		if l.key(l.rows[i]) == key {
			fn(&l.rows[i])
			return true
		}
	}
	return false
}

// Invalidate forgets the installed rows so the next Load starts fresh
func (l *Loader[R]) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
	l.loaded = false
}

func (l *Loader[R]) snapshot() []R {
	out := make([]R, len(l.rows))
	copy(out, l.rows)
	return out
}
