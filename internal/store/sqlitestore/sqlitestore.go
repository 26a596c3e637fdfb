// Package sqlitestore keeps the slots in a single SQLite table through GORM.
package sqlitestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/idilsaglam/tabletop/internal/store/kv"
)

// Slot is one named slot and its encoded value.
type Slot struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

type Store struct {
	db *gorm.DB
}

// Open creates (or reuses) the database at path and migrates the slot table.
// ":memory:" gives a throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir: %w", err)
			}
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// one connection: ":memory:" databases are per-connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Slot{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var slot Slot
	err := s.db.WithContext(ctx).Where("name = ?", key).Take(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("select slot: %w", err)
	}
	return []byte(slot.Value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	slot := Slot{Name: key, Value: string(value)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
