// Package database owns the embedded SQLite connection backing the local
// key-value store.
package database

import (
	"github.com/sprintboard/sprintboard/internal/config"
	"github.com/sprintboard/sprintboard/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

// Connect opens the SQLite database at the configured path.
func Connect(cfg *config.Config) error {
	database, err := gorm.Open(sqlite.Open(cfg.LocalStorePath), &gorm.Config{})
	if err != nil {
		return err
	}

	db = database
	return nil
}

// Migrate creates the key-value schema.
func Migrate() error {
	return db.AutoMigrate(&storage.CollectionRecord{})
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return db
}

// SetDB sets the database instance. Used by tests to inject an in-memory
// database.
func SetDB(database *gorm.DB) {
	db = database
}
