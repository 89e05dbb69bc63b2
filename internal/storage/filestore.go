package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
)

// FileStore persists the ticket collection as one pretty-printed JSON file
// of shape {"tickets": [...], "nextId": N}. The nextId counter drives
// sequential integer id assignment; the file is created with the empty
// default shape on first use.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the collection from disk. A missing file is created with the
// default shape; an unreadable or unparseable file falls back to the
// default and reports the failure.
func (s *FileStore) Load() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		def := Collection{Tickets: nil, NextID: 1}
		if errors.Is(err, fs.ErrNotExist) {
			return def, s.Save(def)
		}
		return def, apperrors.NewPersistenceError("read", err)
	}

	var col Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return Collection{Tickets: nil, NextID: 1}, apperrors.NewPersistenceError("parse", err)
	}
	if col.NextID < 1 {
		col.NextID = 1
	}

	return col, nil
}

// Save writes the full collection to disk, pretty-printed.
func (s *FileStore) Save(col Collection) error {
	if col.Tickets == nil {
		col.Tickets = []models.Ticket{}
	}
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return apperrors.NewPersistenceError("serialize", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperrors.NewPersistenceError("write", err)
	}

	return nil
}
