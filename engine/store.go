package engine

import (
	"sync"

	"github.com/lixenwraith/henshin/core"
)

// Store holds every component of type T as a sparse set
// Values and owners live in parallel dense slices; index maps an entity to its slot
// Removal swaps the last slot into the hole, so iteration order is not stable
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	dense    []T
	entities []core.Entity
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// Set inserts or overwrites the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get returns a copy of the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// Remove deletes the component of e, if present
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(e)
}

// RemoveBatch deletes the components of several entities under one lock
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		s.removeLocked(e)
	}
}

func (s *Store[T]) removeLocked(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}

	last := len(s.dense) - 1
	if i != last {
		moved := s.entities[last]
		s.dense[i] = s.dense[last]
		s.entities[i] = moved
		s.index[moved] = i
	}

	var zero T
	s.dense[last] = zero // Drop references held by T
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
}

// Has reports whether e has a component in this store
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns a snapshot of the owning entities
// Safe to mutate the store while ranging over the result
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of components
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}
