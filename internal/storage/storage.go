// Package storage provides the durable backends for the ticket collection.
//
// Two adapters implement the same contract: LocalStore keeps the collection
// as a JSON array under a single key in an embedded SQLite database, and
// FileStore writes a pretty-printed JSON file with a sequential id counter.
package storage

import "github.com/sprintboard/sprintboard/internal/models"

// Collection is the unit of persistence: the full ticket set plus the
// counter for the next sequential ticket id. NextID is only meaningful for
// backends that assign integer ids; the local store ignores it.
type Collection struct {
	Tickets []models.Ticket `json:"tickets"`
	NextID  int             `json:"nextId"`
}

// Adapter reads and writes the serialized ticket collection.
//
// Load always returns a usable collection: when no prior state exists or
// the stored payload fails to parse, it falls back to the backend's default
// collection and reports the degradation through the returned error. The
// caller logs the error and carries on; it never aborts on it.
type Adapter interface {
	Load() (Collection, error)
	Save(Collection) error
}
