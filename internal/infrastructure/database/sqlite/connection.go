// internal/infrastructure/database/sqlite/connection.go
package sqlite

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/your-org/storefront-backend/internal/config"
)

// DB wraps the GORM connection to the local cart database
type DB struct {
	gorm *gorm.DB
}

// NewConnection opens (or creates) the local SQLite database used for
// durable cart storage
func NewConnection(cfg *config.Config) (*DB, error) {
	if dir := filepath.Dir(cfg.Cart.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Silent
	if cfg.IsDevelopment() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(cfg.Cart.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Single slot table; migrated in place, no versioned migrations
	if err := db.AutoMigrate(&CartSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart table: %w", err)
	}

	log.Println("✅ SQLite cart database ready")

	return &DB{gorm: db}, nil
}

// GetDB returns the underlying GORM handle
func (d *DB) GetDB() *gorm.DB {
	return d.gorm
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks the database connection health
func (d *DB) Health() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
