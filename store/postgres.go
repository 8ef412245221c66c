package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// collectionRow holds a whole collection as a single JSONB payload. The
// store keeps the replace-on-write contract even on Postgres: one row per
// collection, rewritten on every save.
type collectionRow struct {
	Name    string `gorm:"primaryKey"`
	Records []byte `gorm:"type:jsonb;not null"`
}

func (collectionRow) TableName() string { return "collections" }

// PostgresStore keeps collections in a Postgres table via gorm.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) LoadAll(collection string) ([]json.RawMessage, error) {
	var row collectionRow
	if err := s.db.Where("name = ?", collection).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(row.Records, &records); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return records, nil
}

func (s *PostgresStore) SaveAll(collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", collection).Delete(&collectionRow{}).Error; err != nil {
			return fmt.Errorf("clear collection %s: %w", collection, err)
		}
		if err := tx.Create(&collectionRow{Name: collection, Records: payload}).Error; err != nil {
			return fmt.Errorf("save collection %s: %w", collection, err)
		}
		return nil
	})
}
