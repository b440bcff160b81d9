package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/smart-order/internal/models"
)

// ClientStorage is the durable key/value area of one browser client.
type ClientStorage struct {
	db       *gorm.DB
	clientID string
}

func NewClientStorage(gdb *gorm.DB, clientID string) *ClientStorage {
	return &ClientStorage{db: gdb, clientID: clientID}
}

// Get returns the value stored under key; ok is false when absent.
func (s *ClientStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var e models.ClientEntry
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND entry_key = ?", s.clientID, key).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set writes key, replacing any previous value.
func (s *ClientStorage) Set(ctx context.Context, key, value string) error {
	e := models.ClientEntry{ClientID: s.clientID, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys; missing keys are not an error.
func (s *ClientStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND entry_key IN ?", s.clientID, keys).
		Delete(&models.ClientEntry{}).Error
	if err != nil {
		return fmt.Errorf("delete %v: %w", keys, err)
	}
	return nil
}
