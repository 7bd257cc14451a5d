package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store for development and tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, id, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[id][field]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) SetNX(_ context.Context, id, field, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.data[id]
	if !ok {
		fields = make(map[string]string)
		s.data[id] = fields
	}
	if _, exists := fields[field]; exists {
		return false, nil
	}
	fields[field] = value
	return true, nil
}
