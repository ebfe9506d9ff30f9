package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// memoryDraftStore is the in-process draft store used in tests and
// when Redis is unavailable.
type memoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

// NewMemoryDraftStore builds an in-memory draft store.
func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{drafts: make(map[string]domain.Draft)}
}

func (s *memoryDraftStore) Save(ctx context.Context, key string, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = draft
	return nil
}

func (s *memoryDraftStore) Load(ctx context.Context, key string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[key]
	if !ok {
		return nil, nil
	}
	return &draft, nil
}

func (s *memoryDraftStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}
