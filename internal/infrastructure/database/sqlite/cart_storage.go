// internal/infrastructure/database/sqlite/cart_storage.go
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// CartSlot is the single serialized cart slot per session
type CartSlot struct {
	SessionID string    `gorm:"primaryKey;size:64" json:"session_id"`
	Data      []byte    `gorm:"not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (CartSlot) TableName() string {
	return "cart_slots"
}

// CartStorage persists carts in the local SQLite database, surviving
// process restarts.
type CartStorage struct {
	db *gorm.DB
}

// NewCartStorage creates a SQLite-backed cart storage
func NewCartStorage(db *gorm.DB) *CartStorage {
	return &CartStorage{db: db}
}

// Load reads the session's slot. Absent rows and undecodable payloads both
// yield an empty cart.
func (s *CartStorage) Load(ctx context.Context, sessionID string) ([]cart.Line, error) {
	var slot CartSlot
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var lines []cart.Line
	if err := json.Unmarshal(slot.Data, &lines); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).
			Warn("discarding malformed stored cart")
		return nil, nil
	}

	return lines, nil
}

// Save upserts the session's slot
func (s *CartStorage) Save(ctx context.Context, sessionID string, lines []cart.Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	slot := CartSlot{
		SessionID: sessionID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&slot).Error
}

// Delete removes the session's slot
func (s *CartStorage) Delete(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&CartSlot{}).Error
}
