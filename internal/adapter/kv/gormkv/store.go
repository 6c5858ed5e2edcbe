package gormkv

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements kv.Store on a single GORM table of (key, value) rows.
// It works against any configured GORM dialect; the service uses SQLite for
// local single-node deployments and PostgreSQL when a shared database is
// available.
type Store struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for storage operations
}

// NewStore creates a Store and migrates the backing table.
func NewStore(db *gorm.DB, log *zap.Logger) (*Store, error) {
	if err := db.AutoMigrate(&RecordSchema{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// RecordSchema represents the database schema for the kv_records table.
type RecordSchema struct {
	Key   string `gorm:"primaryKey;size:255"` // Record key (primary key)
	Value string `gorm:"not null"`            // JSON-encoded record value
}

// TableName specifies the table name for the RecordSchema model.
func (RecordSchema) TableName() string {
	return "kv_records"
}

// Get returns the value stored under key, or false when no row exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var model RecordSchema
	if err := s.db.WithContext(ctx).First(&model, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		s.log.Error("failed to get record from db", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("failed to get record: %w", err)
	}
	return model.Value, true, nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	model := RecordSchema{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&model).Error
	if err != nil {
		s.log.Error("failed to set record in db", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to set record: %w", err)
	}
	return nil
}

// Remove deletes the row for key. Deleting an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&RecordSchema{}, "key = ?", key).Error; err != nil {
		s.log.Error("failed to remove record from db", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("failed to remove record: %w", err)
	}
	return nil
}
