// Package store holds the in-memory snapshot of all clinic entities. Every
// successful mutation triggers a full reload that swaps in a new snapshot;
// readers always see a complete, internally consistent view and never a
// partially refreshed one.
package store

import (
	"sync"
	"time"

	"clinicpro-backend/models"
)

// Condition values reported alongside the snapshot.
const (
	ConditionMissingTables = "MISSING_TABLES"
	ConditionLoadError     = "LOAD_ERROR"
)

type Snapshot struct {
	Customers    []models.Customer         `json:"customers"`
	Services     []models.Service          `json:"services"`
	Courses      []models.CourseDefinition `json:"courses"`
	Inventory    []models.InventoryItem    `json:"inventory"`
	Appointments []models.Appointment      `json:"appointments"`
	Transactions []models.Transaction      `json:"transactions"`
	RefreshedAt  time.Time                 `json:"refreshedAt"`
}

// Empty returns a snapshot with non-nil collections so callers never need
// nil checks.
func Empty() Snapshot {
	return Snapshot{
		Customers:    []models.Customer{},
		Services:     []models.Service{},
		Courses:      []models.CourseDefinition{},
		Inventory:    []models.InventoryItem{},
		Appointments: []models.Appointment{},
		Transactions: []models.Transaction{},
	}
}

// Store owns the current snapshot. It is safe for concurrent use and is
// injected into services and controllers rather than held as a global.
type Store struct {
	mu        sync.RWMutex
	current   Snapshot
	condition string
	subs      map[int]chan Snapshot
	nextSub   int
}

func New() *Store {
	return &Store{
		current: Empty(),
		subs:    make(map[int]chan Snapshot),
	}
}

// Current returns the latest fully loaded snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Condition returns the outcome of the last refresh attempt: empty on
// success, or one of the Condition constants.
func (s *Store) Condition() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.condition
}

// Swap replaces the snapshot after a fully successful reload and notifies
// subscribers. Slow subscribers miss intermediate snapshots instead of
// blocking the writer.
func (s *Store) Swap(snap Snapshot) {
	snap.RefreshedAt = time.Now()
	s.mu.Lock()
	s.current = snap
	s.condition = ""
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	s.mu.Unlock()
}

// Fail records a refresh failure. The previous snapshot is retained so the
// cache never degrades to a partial view.
func (s *Store) Fail(condition string) {
	s.mu.Lock()
	s.condition = condition
	s.mu.Unlock()
}

// Subscribe registers for snapshot updates. The returned cancel function
// must be called to release the subscription.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}
