package store

import (
	"strconv"
	"sync"

	"github.com/fjod/vibe-cart/internal/domain"
)

// MemoryStore implements CartStore with in-memory storage. All state is
// volatile and lost on process restart.
//
// The id counter belongs to the instance, not the package, so separate stores
// (one per test, for example) never share ids.
type MemoryStore struct {
	mu     sync.Mutex
	lines  map[string]*domain.CartLine // line id -> line
	order  []string                    // line ids in insertion order
	nextID int64
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lines:  make(map[string]*domain.CartLine),
		nextID: 1,
	}
}

// Add creates a new line with the next id and appends it.
func (s *MemoryStore) Add(productID, name string, price float64, qty int) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.FormatInt(s.nextID, 10)
	s.nextID++

	line := &domain.CartLine{
		ID:        id,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Qty:       qty,
	}
	s.lines[id] = line
	s.order = append(s.order, id)
	return *line
}

// SetQty replaces the quantity of the line with the given id.
func (s *MemoryStore) SetQty(id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, exists := s.lines[id]
	if !exists {
		return ErrLineNotFound
	}
	line.Qty = qty
	return nil
}

// Remove deletes the line with the given id.
func (s *MemoryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.lines[id]; !exists {
		return ErrLineNotFound
	}
	delete(s.lines, id)
	for i, lineID := range s.order {
		if lineID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lines returns a copy of all lines in insertion order.
func (s *MemoryStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.lines[id])
	}
	return out
}

// Clear empties the store. The id counter keeps counting so line ids stay
// unique across checkouts.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make(map[string]*domain.CartLine)
	s.order = nil
}
