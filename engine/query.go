package engine

import (
	"sort"

	"github.com/AidanMaskelyne/invaders/core"
)

// QueryableStore is the subset of Store behavior the query planner needs
type QueryableStore interface {
	All() []core.Entity
	Has(e core.Entity) bool
	Count() int
}

// QueryBuilder provides a fluent interface for querying entities based on
// component intersection. It uses the sparse set pattern from stores to find
// entities that have all specified components, starting with the smallest
// store and filtering through larger ones
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific
// component combinations
//
// Example:
//
//	entities := world.Query().
//	    With(world.Transforms).
//	    With(world.Colliders).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// The resulting query only returns entities present in ALL specified stores
//
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all matching entities
// Calling Execute() multiple times returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Sort stores by count (ascending) for optimal intersection performance
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0] // Reuse underlying array
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// ExecuteSorted runs the query and returns matches in ascending entity id
// order. Systems that need deterministic iteration (collision tie-breaks)
// use this instead of Execute()
func (qb *QueryBuilder) ExecuteSorted() []core.Entity {
	results := qb.Execute()
	sorted := make([]core.Entity, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
