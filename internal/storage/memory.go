package storage

import "context"

// MemoryStore is an in-memory Store used by tests and as a throwaway backend.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}
