package constant

import "time"

// Game Loop Timing Constants
const (
	// TickRate is the fixed simulation rate, independent of render rate
	TickRate = 60

	// TickInterval is the fixed simulation step (clock tick)
	TickInterval = time.Second / TickRate

	// FrameInterval is the rendering frame rate interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxTicksPerAdvance caps catch-up ticks after a long stall so the
	// accumulator cannot spiral; excess real time is discarded
	MaxTicksPerAdvance = 5

	// KeyHoldWindow is how long a key counts as held after its last event.
	// Terminals deliver no key-up, so autorepeat refreshes the window
	KeyHoldWindow = 150 * time.Millisecond
)
