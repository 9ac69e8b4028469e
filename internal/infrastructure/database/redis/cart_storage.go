// internal/infrastructure/database/redis/cart_storage.go
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// CartStorage persists carts as one JSON slot per session with a TTL,
// the same scheme used for guest session carts.
type CartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStorage creates a Redis-backed cart storage
func NewCartStorage(client *redis.Client, ttl time.Duration) *CartStorage {
	return &CartStorage{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load reads the session's slot. An absent key or an undecodable payload
// both yield an empty cart; stored data carries no schema version.
func (s *CartStorage) Load(ctx context.Context, sessionID string) ([]cart.Line, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("discarding malformed stored cart")
		return nil, nil
	}

	return lines, nil
}

// Save writes the session's slot, refreshing its TTL
func (s *CartStorage) Save(ctx context.Context, sessionID string, lines []cart.Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err()
}

// Delete removes the session's slot
func (s *CartStorage) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
