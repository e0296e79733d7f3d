package event

import "github.com/AidanMaskelyne/invaders/core"

// ShootPayload records the bullet spawned by a shoot edge
type ShootPayload struct {
	Shooter core.Entity
	Bullet  core.Entity
}

// CollisionPayload records one resolved collider pair.
// Kinds are captured at resolution time so consumers never need to read
// entities that are already despawned by the drain phase
type CollisionPayload struct {
	Bullet     core.Entity
	Target     core.Entity
	TargetKind core.EntityKind
}
