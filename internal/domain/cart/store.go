// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the carts for all active sessions. Every read and write goes
// through its operations; nothing else mutates lines directly. Mutations for
// one session are serialized, the Go equivalent of the browser's
// run-to-completion discipline.
type Store struct {
	storage Storage

	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore creates a cart store backed by the given storage
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		carts:   make(map[string]*Cart),
	}
}

// View represents a cart with derived totals, as returned to callers
type View struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"items"`
	Totals    Totals `json:"totals"`
}

// cart returns the session's cart, rehydrating from storage on first touch.
// Callers must hold s.mu.
func (s *Store) cart(ctx context.Context, sessionID string) *Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := &Cart{}
	lines, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		// A broken storage backend must not brick the session; start empty.
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("failed to rehydrate cart, starting empty")
	} else {
		c.Lines = lines
	}

	s.carts[sessionID] = c
	return c
}

// persist writes the session's slot. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, sessionID string, c *Cart) {
	if err := s.storage.Save(ctx, sessionID, c.Lines); err != nil {
		// The in-memory cart stays authoritative for this process; a failed
		// write only costs durability across restarts.
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("failed to persist cart")
	}
}

func (s *Store) view(sessionID string, c *Cart) *View {
	return &View{
		SessionID: sessionID,
		Lines:     c.Snapshot(),
		Totals:    c.CalculateTotals(),
	}
}

// Get returns the session's cart and totals
func (s *Store) Get(ctx context.Context, sessionID string) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view(sessionID, s.cart(ctx, sessionID))
}

// AddItem merges the item into the session's cart
func (s *Store) AddItem(ctx context.Context, sessionID string, item ItemSnapshot, qty int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	if err := c.AddItem(item, qty); err != nil {
		return nil, err
	}

	s.persist(ctx, sessionID, c)
	return s.view(sessionID, c), nil
}

// RemoveItem removes the line for itemID from the session's cart
func (s *Store) RemoveItem(ctx context.Context, sessionID, itemID string) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.RemoveItem(itemID)

	s.persist(ctx, sessionID, c)
	return s.view(sessionID, c)
}

// IncreaseQuantity bumps the line's quantity by one
func (s *Store) IncreaseQuantity(ctx context.Context, sessionID, itemID string) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	if c.IncreaseQuantity(itemID) {
		s.persist(ctx, sessionID, c)
	}
	return s.view(sessionID, c)
}

// DecreaseQuantity lowers the line's quantity by one, clamping at 1
func (s *Store) DecreaseQuantity(ctx context.Context, sessionID, itemID string) *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	if c.DecreaseQuantity(itemID) {
		s.persist(ctx, sessionID, c)
	}
	return s.view(sessionID, c)
}

// Clear empties the session's cart and deletes its storage slot
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ctx, sessionID)
	c.Clear()

	if err := s.storage.Delete(ctx, sessionID); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("failed to delete stored cart")
		return err
	}
	return nil
}

// Total returns the derived total for the session's cart
func (s *Store) Total(ctx context.Context, sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).Total()
}

// Contains reports whether the session's cart holds itemID
func (s *Store) Contains(ctx context.Context, sessionID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).Contains(itemID)
}

// Count returns the total quantity across the session's cart
func (s *Store) Count(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).CalculateTotals().TotalQuantity
}

// Snapshot returns an immutable copy of the session's lines, for checkout
func (s *Store) Snapshot(ctx context.Context, sessionID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(ctx, sessionID).Snapshot()
}

// Evict drops an idle session's cart from memory without touching storage.
// The next access rehydrates it.
func (s *Store) Evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
