// Package store is the single entry point to the domain state: it owns the
// entity repositories, persists every mutation through the storage adapter
// and republishes the resulting snapshot to subscribers.
package store

import (
	"log"
	"sync"

	apperrors "github.com/sprintboard/sprintboard/internal/errors"
	"github.com/sprintboard/sprintboard/internal/models"
	"github.com/sprintboard/sprintboard/internal/repository"
	"github.com/sprintboard/sprintboard/internal/storage"
)

// IDPolicy selects the id-assignment strategy for new tickets. Sprint and
// epic ids are always opaque.
type IDPolicy string

const (
	// OpaqueIDs issues UUIDs; used with the local key-value backend.
	OpaqueIDs IDPolicy = "opaque"
	// SequentialIDs issues increasing integer ticket ids seeded from the
	// persisted nextId counter; used with the file backend.
	SequentialIDs IDPolicy = "sequential"
)

// Snapshot is the full, immutable state of all entity collections at a
// point in time. Snapshots are copies; holding one never observes later
// mutations.
type Snapshot struct {
	Tickets []models.Ticket
	Sprints []models.Sprint
	Epics   []models.Epic
}

// Subscriber receives the new snapshot after each successful mutation.
type Subscriber func(Snapshot)

// Store is the façade over the ticket, sprint and epic repositories.
//
// Mutations are write-through: the full collection is handed to the
// adapter before the call returns. A failed write is logged and the
// in-memory state stays authoritative for the session; the next
// successful mutation persists the full current state again.
type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter
	tickets *repository.TicketRepository
	sprints *repository.SprintRepository
	epics   *repository.EpicRepository
	seq     *repository.SequentialGenerator
	subs    map[int]Subscriber
	nextSub int
}

// New loads the persisted collection from the adapter and builds the
// store. Sprints and epics are not durably persisted; they initialize
// from the static seed set on every load.
func New(adapter storage.Adapter, policy IDPolicy) *Store {
	col, err := adapter.Load()
	if err != nil {
		log.Printf("store: falling back to default collection: %v", err)
	}

	s := &Store{
		adapter: adapter,
		subs:    make(map[int]Subscriber),
	}

	// The id policy covers tickets only: the persisted nextId counter is
	// the next ticket id. Sprints and epics always get opaque ids, which
	// cannot collide with the fixed ids of the seed set.
	var ticketIDs repository.IDGenerator = repository.UUIDGenerator{}
	if policy == SequentialIDs {
		s.seq = repository.NewSequentialGenerator(col.NextID)
		ticketIDs = s.seq
	}

	s.tickets = repository.NewTicketRepository(ticketIDs, col.Tickets)
	s.sprints = repository.NewSprintRepository(repository.UUIDGenerator{}, storage.SeedSprints())
	s.epics = repository.NewEpicRepository(repository.UUIDGenerator{}, storage.SeedEpics())
	return s
}

// Subscribe registers a callback invoked with the new snapshot after each
// successful mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Snapshot returns the current state of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Tickets returns the current ticket collection.
func (s *Store) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.All()
}

// Sprints returns the current sprint collection.
func (s *Store) Sprints() []models.Sprint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sprints.All()
}

// Epics returns the current epic collection.
func (s *Store) Epics() []models.Epic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epics.All()
}

// ActiveSprint returns the currently active sprint, if any.
func (s *Store) ActiveSprint() (models.Sprint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sprints.Active()
}

// FindTicket returns the ticket with the given id.
func (s *Store) FindTicket(id string) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.Find(id)
}

// CreateTicket creates a ticket and persists the collection.
func (s *Store) CreateTicket(input repository.CreateTicketInput) (models.Ticket, error) {
	var created models.Ticket
	err := s.mutate(func() error {
		t, err := s.tickets.Create(input)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	return created, err
}

// UpdateTicket applies a partial update and persists the collection.
func (s *Store) UpdateTicket(id string, input repository.UpdateTicketInput) (models.Ticket, error) {
	var updated models.Ticket
	err := s.mutate(func() error {
		t, err := s.tickets.Update(id, input)
		if err != nil {
			return err
		}
		updated = t
		return nil
	})
	return updated, err
}

// DeleteTicket removes a ticket and persists the collection.
func (s *Store) DeleteTicket(id string) error {
	return s.mutate(func() error {
		return s.tickets.Delete(id)
	})
}

// MoveTicketToSprint assigns the ticket to the given sprint, or back to
// the backlog when sprintID is empty. A non-empty target sprint must
// exist.
func (s *Store) MoveTicketToSprint(ticketID, sprintID string) (models.Ticket, error) {
	var moved models.Ticket
	err := s.mutate(func() error {
		if sprintID != "" && !s.sprints.Exists(sprintID) {
			return apperrors.NewNotFoundError("sprint", sprintID)
		}
		t, err := s.tickets.SetSprint(ticketID, sprintID)
		if err != nil {
			return err
		}
		moved = t
		return nil
	})
	return moved, err
}

// CreateSprint creates an inactive sprint.
func (s *Store) CreateSprint(input repository.CreateSprintInput) (models.Sprint, error) {
	var created models.Sprint
	err := s.mutate(func() error {
		sp, err := s.sprints.Create(input)
		if err != nil {
			return err
		}
		created = sp
		return nil
	})
	return created, err
}

// UpdateSprint applies a partial sprint update.
func (s *Store) UpdateSprint(id string, input repository.UpdateSprintInput) (models.Sprint, error) {
	var updated models.Sprint
	err := s.mutate(func() error {
		sp, err := s.sprints.Update(id, input)
		if err != nil {
			return err
		}
		updated = sp
		return nil
	})
	return updated, err
}

// SetActiveSprint activates the target sprint and deactivates all others
// in one atomic step.
func (s *Store) SetActiveSprint(id string) error {
	return s.mutate(func() error {
		return s.sprints.SetActive(id)
	})
}

// DeleteSprint removes the sprint and returns its tickets to the backlog
// in the same atomic step.
func (s *Store) DeleteSprint(id string) error {
	return s.mutate(func() error {
		if err := s.sprints.Delete(id); err != nil {
			return err
		}
		s.tickets.ClearSprint(id)
		return nil
	})
}

// CreateEpic creates an epic.
func (s *Store) CreateEpic(input repository.CreateEpicInput) (models.Epic, error) {
	var created models.Epic
	err := s.mutate(func() error {
		e, err := s.epics.Create(input)
		if err != nil {
			return err
		}
		created = e
		return nil
	})
	return created, err
}

// UpdateEpic applies a partial epic update.
func (s *Store) UpdateEpic(id string, input repository.UpdateEpicInput) (models.Epic, error) {
	var updated models.Epic
	err := s.mutate(func() error {
		e, err := s.epics.Update(id, input)
		if err != nil {
			return err
		}
		updated = e
		return nil
	})
	return updated, err
}

// DeleteEpic removes the epic and clears the epic reference on every
// ticket that pointed at it in the same atomic step.
func (s *Store) DeleteEpic(id string) error {
	return s.mutate(func() error {
		if err := s.epics.Delete(id); err != nil {
			return err
		}
		s.tickets.ClearEpic(id)
		return nil
	})
}

// mutate runs fn under the lock and, when it succeeds, persists the
// collection and notifies subscribers. Subscribers run outside the lock
// with an immutable snapshot, so they may call back into the store.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.persistLocked()
	snap := s.snapshotLocked()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return nil
}

// persistLocked writes the full current collection through the adapter.
// Failure degrades to in-memory only for this session.
func (s *Store) persistLocked() {
	col := storage.Collection{Tickets: s.tickets.All(), NextID: 1}
	if s.seq != nil {
		col.NextID = s.seq.Peek()
	}
	if err := s.adapter.Save(col); err != nil {
		log.Printf("store: save failed, changes are in-memory only: %v", err)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Tickets: s.tickets.All(),
		Sprints: s.sprints.All(),
		Epics:   s.epics.All(),
	}
}
