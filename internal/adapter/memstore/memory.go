package memstore

import (
	"sync"

	"robotreadme/internal/domain"
)

// MemoryStore is a process-local count store for builds without a
// filesystem, and for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]domain.CountEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]domain.CountEntry)}
}

func (s *MemoryStore) GetCount(key string) (domain.CountEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.counts[key]
	return entry, ok, nil
}

func (s *MemoryStore) PutCount(key string, entry domain.CountEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key] = entry
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counts)
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = make(map[string]domain.CountEntry)
}

func (s *MemoryStore) Close() error {
	return nil
}
