package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/henshin/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Type-erased registry, in registration order
	stores     map[reflect.Type]AnyStore
	storeOrder []AnyStore

	// Global resources
	Resources Resource

	// Cached typed stores
	Components ComponentStore

	commands *CommandBuffer

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		stores:       make(map[reflect.Type]AnyStore),
		systems:      make([]System, 0),
		Resources:    newResource(),
	}
	w.commands = NewCommandBuffer()
	w.Components = newComponentStore(w)
	return w
}

// GetStore returns the store for component type T, creating it on first use
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()

	w.mu.Lock()
	defer w.mu.Unlock()

	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.storeOrder = append(w.storeOrder, s)
	return s
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether the entity was created and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Commands returns the deferred structural mutation buffer
// Queued commands are applied after every system has run in the current tick
func (w *World) Commands() *CommandBuffer {
	return w.commands
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially, then applies queued structural commands
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs one tick assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
	w.commands.Flush(w)
}

// removeFromAllStores deletes entities from every store and the liveness set
func (w *World) removeFromAllStores(entities []core.Entity) {
	w.mu.Lock()
	for _, e := range entities {
		delete(w.alive, e)
	}
	stores := make([]AnyStore, len(w.storeOrder))
	copy(stores, w.storeOrder)
	w.mu.Unlock()

	for _, store := range stores {
		store.RemoveBatch(entities)
	}
}
