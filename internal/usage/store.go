// Package usage tracks the global count of formatting calls.
package usage

import (
	"log"
	"sync/atomic"
)

// Persistence is the storage port for the counter. Implementations must
// tolerate a missing or corrupt backing store on Load.
type Persistence interface {
	Load() (int64, error)
	Save(total int64) error
}

// Store is the process-wide usage counter. Increments are atomic in
// memory and flushed to the persistence port synchronously, best-effort:
// a failed save is logged but never surfaced to the caller, so a format
// request cannot fail on counter durability.
type Store struct {
	total atomic.Int64
	p     Persistence
}

// NewStore loads the persisted counter. A load failure is non-fatal and
// initializes the counter to zero.
func NewStore(p Persistence) *Store {
	s := &Store{p: p}
	total, err := p.Load()
	if err != nil {
		log.Printf("⚠️ Usage counter load failed, starting from 0: %v", err)
		total = 0
	}
	if total < 0 {
		total = 0
	}
	s.total.Store(total)
	return s
}

// Increment bumps the counter by one and flushes it to storage.
// Returns the new value.
func (s *Store) Increment() int64 {
	total := s.total.Add(1)
	if err := s.p.Save(total); err != nil {
		log.Printf("⚠️ Usage counter save failed at %d: %v", total, err)
	}
	return total
}

// Read returns the current in-memory counter value.
func (s *Store) Read() int64 {
	return s.total.Load()
}
