package store

import (
	"context"
	"sync"

	"github.com/kilianp07/plugkit/core/model"
	corestore "github.com/kilianp07/plugkit/core/store"
)

// MemoryStore keeps events in memory. Intended for tests and short-lived
// pipelines.
type MemoryStore struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Append implements store.Store.
func (s *MemoryStore) Append(_ context.Context, ev model.Event) error {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	return nil
}

// Query implements store.Store.
func (s *MemoryStore) Query(_ context.Context, q corestore.Query) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var res []model.Event
	for _, ev := range s.events {
		if !q.Matches(ev) {
			continue
		}
		res = append(res, ev)
		if q.Limit > 0 && len(res) == q.Limit {
			break
		}
	}
	return res, nil
}

// Close implements store.Store.
func (s *MemoryStore) Close() error { return nil }

// Len reports the number of stored events.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
