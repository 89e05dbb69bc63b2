package storage

import (
	"encoding/json"
	"errors"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionKey is the single key the local store keeps the ticket
// collection under, as a JSON-serialized array.
const CollectionKey = "tickets"

// CollectionRecord is the key-value row backing the local store.
type CollectionRecord struct {
	Key   string `gorm:"primarykey;type:varchar(64)"`
	Value string `gorm:"type:text;not null"`
}

// LocalStore persists the ticket collection as a single JSON document in an
// embedded SQLite database. It is the durable key-value variant of the
// adapter contract and does not assign ids, so NextID is ignored on save
// and reported as 1 on load.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore creates a LocalStore on top of an opened database.
func NewLocalStore(db *gorm.DB) *LocalStore {
	return &LocalStore{db: db}
}

// Load returns the persisted collection. A missing key or an unparseable
// payload falls back to the seed collection; only the latter is reported
// as an error.
func (s *LocalStore) Load() (Collection, error) {
	var record CollectionRecord
	if err := s.db.First(&record, "key = ?", CollectionKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SeedCollection(), nil
		}
		return SeedCollection(), apperrors.NewPersistenceError("read", err)
	}

	var tickets []models.Ticket
	if err := json.Unmarshal([]byte(record.Value), &tickets); err != nil {
		return SeedCollection(), apperrors.NewPersistenceError("parse", err)
	}

	return Collection{Tickets: tickets, NextID: 1}, nil
}

// Save upserts the full ticket collection under the collection key.
func (s *LocalStore) Save(col Collection) error {
	payload, err := json.Marshal(col.Tickets)
	if err != nil {
		return apperrors.NewPersistenceError("serialize", err)
	}

	record := CollectionRecord{Key: CollectionKey, Value: string(payload)}
	err = s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record).Error
	if err != nil {
		return apperrors.NewPersistenceError("write", err)
	}

	return nil
}
