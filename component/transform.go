package component

// TransformComponent holds position and scale in playfield coordinates.
// Mutated by the movement system; read by collision and rendering
type TransformComponent struct {
	X, Y float64

	// ScaleX/ScaleY are render-facing; collision geometry lives in the
	// collider half-extents, not here
	ScaleX, ScaleY float64
}
