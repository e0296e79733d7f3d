package component

import "github.com/AidanMaskelyne/invaders/core"

// ColliderComponent marks an entity as collision-participating with an
// axis-aligned bounding box centered on its transform.
// Invariant: every collider-bearing entity also carries a transform
type ColliderComponent struct {
	HalfWidth  float64
	HalfHeight float64

	// Owner is the entity that spawned this one (bullets record their
	// shooter). A bullet never collides with its own shooter
	Owner core.Entity
}
