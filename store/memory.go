package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a RunStore kept in process memory. It is safe for
// concurrent use and intended for tests and one-shot CLI runs.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]RunRecord
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]RunRecord)}
}

// SaveRun implements RunStore.
func (s *MemoryStore) SaveRun(_ context.Context, rec RunRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("SaveRun: empty id: %w", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[rec.ID]; ok {
		return fmt.Errorf("SaveRun %s: %w", rec.ID, ErrDuplicate)
	}
	s.runs[rec.ID] = rec

	return nil
}

// GetRun implements RunStore.
func (s *MemoryStore) GetRun(_ context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("GetRun %s: %w", id, ErrNotFound)
	}

	return &rec, nil
}

// ListRuns implements RunStore.
func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]RunRecord, error) {
	s.mu.RLock()
	out := make([]RunRecord, 0, len(s.runs))
	for _, rec := range s.runs {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// Close implements RunStore. It is a no-op.
func (s *MemoryStore) Close() error { return nil }

// sortNewestFirst orders by CreatedAt descending, then ID ascending.
func sortNewestFirst(recs []RunRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})
}
