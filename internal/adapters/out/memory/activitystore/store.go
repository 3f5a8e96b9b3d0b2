// Package activitystore keeps the activity log in process memory.
//
// Entries live in a single slice guarded by a mutex, in the order they were
// appended. With a capacity set, the oldest entries are dropped once the cap
// is reached.
package activitystore

import (
	"context"
	"slices"
	"sync"
	"time"

	"freight/internal/core/domain/model/activity"
)

// Store is an in-memory ports.ActivityStore. The zero value is an unbounded
// empty store.
type Store struct {
	mu       sync.Mutex
	entries  []activity.Entry
	capacity int
}

// New creates a store keeping at most capacity entries; 0 means unbounded.
func New(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{capacity: capacity}
}

func (s *Store) Append(_ context.Context, entry activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if s.capacity > 0 && len(s.entries) > s.capacity {
		s.entries = slices.Clone(s.entries[len(s.entries)-s.capacity:])
	}
	return nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]activity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return []activity.Entry{}, nil
	}
	start := max(len(s.entries)-limit, 0)
	return slices.Clone(s.entries[start:]), nil
}

func (s *Store) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e activity.Entry) bool {
		return e.RecordedAt().Before(cutoff)
	})
	return int64(before - len(s.entries)), nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
