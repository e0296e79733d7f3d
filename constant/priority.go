package constant

// System Execution Priorities (lower runs first)
// The order is a hard contract: collisions must see post-movement positions,
// and culling commits despawns only after collision has evaluated the tick
const (
	PriorityMovement  = 10
	PriorityCollision = 20
	PriorityCull      = 30
)
