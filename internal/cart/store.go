package cart

import (
	"sync"

	"techstore-be/internal/logger"

	"go.uber.org/zap"
)

// Store owns the cart line collection. At most one line exists per product
// id; adding an existing id increments its quantity instead of duplicating.
// Every mutation persists the whole collection through the Repository, but
// only after Restore has run, so a not-yet-loaded saved cart is never
// clobbered with an empty default.
type Store struct {
	mu       sync.Mutex
	repo     Repository
	lines    []Line
	restored bool
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Restore loads the persisted collection. A missing or corrupt value starts
// an empty cart; corruption is logged, never fatal.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.repo.Load()
	if err != nil {
		logger.L().Warn("discarding unreadable saved cart", zap.Error(err))
		lines = nil
	}

	s.lines = lines
	s.restored = true
}

// Add appends a new line for the item, or increments the quantity of the
// existing line with the same id. Quantities below 1 count as 1. Stock
// limits are the caller's concern.
func (s *Store) Add(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity += quantity
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: quantity,
	})
	s.persist()
}

// Remove deletes the line with the given id; no-op when absent.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store) removeLocked(id int) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persist()
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value of
// zero or less removes the line.
func (s *Store) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Total sums unit price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count sums line quantities, not distinct lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a snapshot of the collection.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// persist writes the collection through; callers must hold the lock.
// Writes before the initial restore are dropped on purpose.
func (s *Store) persist() {
	if !s.restored {
		return
	}

	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)

	if err := s.repo.Save(snapshot); err != nil {
		logger.L().Error("failed to persist cart", zap.Error(err))
	}
}
