package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/polithane/polithane/internal/domain"
)

// MemoryCounterStore is an in-memory domain.CounterStore for tests and
// local development. Safe for concurrent use.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[uuid.UUID]domain.Counters
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{counters: make(map[uuid.UUID]domain.Counters)}
}

func (s *MemoryCounterStore) Increment(_ context.Context, contentID uuid.UUID, action domain.ActionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.counters[contentID]
	switch action {
	case domain.ActionView:
		c.Views++
	case domain.ActionLike:
		c.Likes++
	case domain.ActionComment:
		c.Comments++
	}
	s.counters[contentID] = c
	return nil
}

func (s *MemoryCounterStore) AddShares(_ context.Context, contentID uuid.UUID, n int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.counters[contentID]
	c.Shares += n
	s.counters[contentID] = c
	return nil
}

func (s *MemoryCounterStore) Snapshot(_ context.Context, contentID uuid.UUID) (domain.Counters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[contentID], nil
}

func (s *MemoryCounterStore) Reset(_ context.Context, contentID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, contentID)
	return nil
}
