package storage

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys, one per collection. Each key is owned exclusively by its
// collection; no two callers write the same key.
const (
	KeyProducts = "products"
	KeyOrders   = "orders"
)

// collectionRecord is one durable key-value row: the key names a collection
// and the value holds its full JSON array, mirroring a browser localStorage
// entry.
type collectionRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

// TableName specifies the table name for collection records
func (collectionRecord) TableName() string {
	return "collections"
}

// Store reads and writes named JSON collections through a GORM database.
// It is the only component that touches the storage medium; it never holds
// or mutates in-memory collection state.
type Store struct {
	db *gorm.DB
}

// New wraps an open database and ensures the collections table exists
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&collectionRecord{}); err != nil {
		return nil, &StorageError{Op: "migrate", Err: err}
	}
	return &Store{db: db}, nil
}

// Load reads the collection stored under key. A missing key is not an
// error: it returns an empty slice so "no data yet" is distinguishable
// from corruption, which surfaces as *SerializationError.
func Load[T any](s *Store, key string) ([]T, error) {
	var rec collectionRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []T{}, nil
		}
		return nil, &StorageError{Op: "load", Key: key, Err: err}
	}

	var items []T
	if err := json.Unmarshal([]byte(rec.Value), &items); err != nil {
		return nil, &SerializationError{Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save serializes the whole collection as one JSON array and replaces
// whatever was stored under key. The write is a total replacement, never a
// merge.
func Save[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}

	rec := collectionRecord{Key: key, Value: string(payload)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return &StorageError{Op: "save", Key: key, Err: err}
	}
	return nil
}
