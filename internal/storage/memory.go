package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps the document in memory. Writes counts successful
// writes so tests can assert that a rejected operation saved nothing.
type MemoryBackend struct {
	mu     sync.Mutex
	data   []byte
	exists bool
	Writes int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// NewMemoryBackendWith starts with data already stored.
func NewMemoryBackendWith(data []byte) *MemoryBackend {
	return &MemoryBackend{data: append([]byte(nil), data...), exists: true}
}

func (m *MemoryBackend) Location() string { return "memory" }

func (m *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.exists {
		return nil, ErrNotExist
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryBackend) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.exists = true
	m.Writes++
	return nil
}

// Bytes returns a copy of the stored document.
func (m *MemoryBackend) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
