package engine

import "github.com/lixenwraith/henshin/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and allows components to be added before
// committing the entity to the world via Build().
//
// Example usage:
//
//	player := With(
//	    With(world.NewEntity(), world.Components.Player, component.PlayerComponent{}),
//	    world.Components.Cooldown, component.CooldownComponent{},
//	).Build()
type EntityBuilder struct {
	world    *World
	entity   core.Entity
	children []core.Entity
	built    bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// The store type must match the component type.
//
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// WithChild schedules an already built entity to be owned by this one on Build()
//
// Panics if called after Build().
func (eb *EntityBuilder) WithChild(child core.Entity) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add children after Build()")
	}
	eb.children = append(eb.children, child)
	return eb
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built")
	}
	eb.built = true
	for _, child := range eb.children {
		eb.world.AddChild(eb.entity, child)
	}
	return eb.entity
}
