// internal/domain/cart/storage.go
package cart

import (
	"context"
	"sync"
)

// Storage persists one serialized cart slot per session. It is written on
// every mutation and read once when a session's cart is first touched.
// Implementations must treat absent or undecodable slots as an empty cart
// rather than an error; there is no schema versioning on the stored data.
type Storage interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStorage is an in-process Storage used when no durable backend is
// configured, and by tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string][]Line
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots: make(map[string][]Line),
	}
}

// Load returns the stored lines for the session, or nil if absent
func (m *MemoryStorage) Load(ctx context.Context, sessionID string) ([]Line, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.slots[sessionID]
	if !ok {
		return nil, nil
	}

	lines := make([]Line, len(stored))
	copy(lines, stored)
	return lines, nil
}

// Save stores a copy of the lines under the session's slot
func (m *MemoryStorage) Save(ctx context.Context, sessionID string, lines []Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]Line, len(lines))
	copy(stored, lines)
	m.slots[sessionID] = stored
	return nil
}

// Delete removes the session's slot
func (m *MemoryStorage) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, sessionID)
	return nil
}
