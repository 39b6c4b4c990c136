package engine

import (
	"sort"

	"github.com/lixenwraith/henshin/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// It uses the sparse set pattern from stores to efficiently find entities that have all specified components.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	excluded []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() and Without() to add component filters, then Execute() to get the results.
//
// Example:
//
//	tiles := world.Query().
//	    With(world.Components.Tile).
//	    With(world.Components.Visibility).
//	    Without(world.Components.Player).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Without excludes entities that have a component in the given store.
//
// Panics if called after Execute().
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.excluded = append(qb.excluded, store)
	return qb
}

// Execute runs the query and returns all matching entities.
// Calling Execute() multiple times returns the cached result.
//
// Returns:
//   - Empty slice if no With() stores were specified
//   - Slice of entities that exist in ALL With() stores and in none of the Without() stores
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Sort stores by count (ascending) for optimal intersection performance
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0] // Reuse underlying array
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	if len(qb.excluded) > 0 {
		filtered := candidates[:0]
		for _, e := range candidates {
			keep := true
			for _, store := range qb.excluded {
				if store.Has(e) {
					keep = false
					break
				}
			}
			if keep {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	qb.results = candidates
	return qb.results
}
