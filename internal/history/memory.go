package history

import (
	"context"
	"sync"
)

// MemoryBackend keeps history in process memory. It is lost on restart.
type MemoryBackend struct {
	mu    sync.RWMutex
	users map[string][]Record
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{users: make(map[string][]Record)}
}

func (m *MemoryBackend) Append(_ context.Context, userID string, rec Record) error {
	rec.Payload = append([]byte(nil), rec.Payload...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID] = append(m.users[userID], rec)
	return nil
}

func (m *MemoryBackend) Load(_ context.Context, userID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Record(nil), m.users[userID]...), nil
}

func (m *MemoryBackend) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
