package storage

import (
	"context"
	"slices"
	"sync"

	"dhyan/internal/ports"
)

// MemoryStore implements ports.KeyValueStore in memory.
// Used by --ephemeral runs and tests.
type MemoryStore struct {
	entries map[string][]byte
	mu      sync.RWMutex
}

var _ ports.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return slices.Clone(value), ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
