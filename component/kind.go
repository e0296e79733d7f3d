package component

import "github.com/AidanMaskelyne/invaders/core"

// KindComponent tags an entity with exactly one gameplay kind.
// Collision-pair eligibility and despawn policy key off this tag
type KindComponent struct {
	Kind core.EntityKind
}
