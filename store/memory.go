package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local stage store. It backs tests and cache-less
// development runs when no Redis address is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func memKey(topic, stage string) string {
	return stage + "\x00" + topic
}

func (s *MemoryStore) Get(ctx context.Context, topic, stage string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.entries[memKey(topic, stage)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, topic, stage string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(payload))
	copy(b, payload)
	s.entries[memKey(topic, stage)] = b
	return nil
}

// Len reports the number of cached entries across all topics and stages.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
