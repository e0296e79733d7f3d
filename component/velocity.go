package component

// VelocityComponent is a 2D vector in units/second.
// Present only on entities that move under integration (bullets).
// The player moves by direct intent and carries no velocity
type VelocityComponent struct {
	VX, VY float64
}
