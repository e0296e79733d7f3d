package input

// Intent represents the resolved semantic action for one tick
// Pure data struct with no engine dependencies
type Intent struct {
	// Direction is the horizontal movement axis in {-1, 0, +1}
	Direction int

	// Shoot is true on the rising edge of the shoot input only
	Shoot bool

	// Start requests Menu -> Running
	Start bool

	// Restart requests GameOver -> Menu
	Restart bool

	// Quit requests process shutdown from any state
	Quit bool
}
