package repository

import (
	"context"
	"sync"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// InMemorySnapshotStore keeps blobs in a map. Used by tests and as a
// throwaway store when no persistence is configured.
type InMemorySnapshotStore struct {
	store map[string][]byte

	mu sync.RWMutex
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		store: make(map[string][]byte),
	}
}

func (s *InMemorySnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.store[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *InMemorySnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.store[key] = stored
	return nil
}

func (s *InMemorySnapshotStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.store, key)
	return nil
}
