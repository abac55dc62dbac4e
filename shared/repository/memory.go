package repository

import (
	"context"
	"slices"
	"sync"
)

// MemoryBackend keeps documents in process memory. Used by tests and STORAGE_BACKEND=memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: map[string][]byte{}}
}

func (m *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[name]
	if !ok {
		return nil, ErrNotExist
	}

	return slices.Clone(data), nil
}

func (m *MemoryBackend) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[name] = slices.Clone(data)

	return nil
}
