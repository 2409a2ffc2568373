package mem

import (
	"context"
	"sync"

	"tripwise/internal/planner"
)

// DraftStore is the in-memory fallback draft backend, used when no
// redis is configured and in tests. Same contract as the redis store:
// shallow merge, last write wins, no cross-writer coordination.
type DraftStore struct {
	mu   sync.RWMutex
	data map[string]planner.Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{data: make(map[string]planner.Draft)}
}

func (s *DraftStore) Load(_ context.Context, id string) (planner.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.data[id]
	if !ok {
		return planner.Draft{}, nil
	}
	// Copy out so callers cannot mutate the stored draft.
	return planner.Draft{}.Apply(d), nil
}

func (s *DraftStore) Merge(_ context.Context, id string, partial planner.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.data[id]
	if !ok {
		cur = planner.Draft{}
	}
	s.data[id] = cur.Apply(partial)
	return nil
}

func (s *DraftStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
