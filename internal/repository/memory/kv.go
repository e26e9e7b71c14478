package memory

import (
	"context"
	"sync"

	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
)

// KeyValueStore is a process-local KeyValueStore; state is lost on exit
type KeyValueStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{entries: make(map[string][]byte)}
}

// Verify interface compliance
var _ repository.KeyValueStore = (*KeyValueStore)(nil)

func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *KeyValueStore) PutAll(ctx context.Context, entries map[string][]byte) error {
	logger.StoreCall("memory", "PutAll", "keys", len(entries))

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range entries {
		s.entries[key] = append([]byte(nil), value...)
	}

	logger.StoreResult("memory", "PutAll", nil)
	return nil
}

// Len returns the number of stored keys
func (s *KeyValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
