// Package repository holds the in-memory entity collections and enforces
// the cross-entity invariants of the domain store.
//
// Collections are ordered slices, not maps: views and persistence both
// require stable iteration order. Entities enter a collection only through
// Create, which assigns the id; ids are never reused or mutated.
package repository

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator is the pluggable id-assignment policy. The local backend uses
// opaque UUIDs, the file backend sequential integers persisted as the
// file's nextId counter.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues opaque unique ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequentialGenerator issues increasing integer ids starting from next.
type SequentialGenerator struct {
	next int
}

// NewSequentialGenerator creates a generator whose first id is next.
func NewSequentialGenerator(next int) *SequentialGenerator {
	if next < 1 {
		next = 1
	}
	return &SequentialGenerator{next: next}
}

func (g *SequentialGenerator) NextID() string {
	id := strconv.Itoa(g.next)
	g.next++
	return id
}

// Peek returns the id the next Create will receive, for persisting the
// counter alongside the records.
func (g *SequentialGenerator) Peek() int {
	return g.next
}

// touch returns the timestamp for a mutation. updatedAt never moves
// backward, so the previous stamp wins over a clock that stepped back.
func touch(previous time.Time) time.Time {
	now := time.Now()
	if now.Before(previous) {
		return previous
	}
	return now
}
