package auth

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory. It is meant for tests and for
// throwaway sessions.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

func (m *MemoryStore) Lookup(_ context.Context, username string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	digest, ok := m.records[username]
	if !ok {
		return "", ErrNotFound
	}
	return digest, nil
}

func (m *MemoryStore) Insert(_ context.Context, username, digest string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[username]; ok {
		return ErrAlreadyExists
	}
	m.records[username] = digest
	return nil
}

func (m *MemoryStore) Close() error { return nil }
