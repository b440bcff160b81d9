package session

import (
	"context"
	"sync"
)

// Storage is the durable key/value area of one client.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// StorageFactory returns the storage scoped to clientID.
type StorageFactory func(clientID string) Storage

// MemoryStorage keeps entries in process memory. Entries of every client
// live in one shared map so stores created later for the same client see
// them, as they would with a database.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]map[string]string)}
}

// Factory scopes the shared memory to one client per call.
func (m *MemoryStorage) Factory() StorageFactory {
	return func(clientID string) Storage { return &memoryScope{m: m, client: clientID} }
}

type memoryScope struct {
	m      *MemoryStorage
	client string
}

func (s *memoryScope) Get(_ context.Context, key string) (string, bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	v, ok := s.m.entries[s.client][key]
	return v, ok, nil
}

func (s *memoryScope) Set(_ context.Context, key, value string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.entries[s.client] == nil {
		s.m.entries[s.client] = make(map[string]string)
	}
	s.m.entries[s.client][key] = value
	return nil
}

func (s *memoryScope) Delete(_ context.Context, keys ...string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, k := range keys {
		delete(s.m.entries[s.client], k)
	}
	return nil
}
