package component

// DeathComponent tags an entity for deferred despawn.
// Systems mark entities during the tick; the cull system commits all marks
// at a single point so iterators never observe a half-removed world.
// Marking is idempotent: an entity both shot and out of bounds in the same
// tick is removed exactly once
type DeathComponent struct{}
