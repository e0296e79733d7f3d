package core

// AppState represents the top-level application state
// Exactly one value is active at any time; owned by the clock scheduler
type AppState int32

const (
	StateMenu AppState = iota
	StateRunning
	StateGameOver
)

// String returns the state name for logs and overlays
func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
