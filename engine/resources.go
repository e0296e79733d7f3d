package engine

import (
	"sync/atomic"
	"time"

	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/input"
)

// Resources holds singleton game resources, initialized during GameContext
// creation and accessed via World.Resources. Nothing here is an ambient
// global: every field is owned by the scheduler and injected by construction
type Resources struct {
	Time   *TimeResource
	Config *ConfigResource
	Score  *ScoreResource
	Input  *InputResource
	State  *StateResource
	Audio  *AudioResource
}

// NewResources creates the resource set with zero values
func NewResources() *Resources {
	return &Resources{
		Time:   &TimeResource{},
		Config: &ConfigResource{},
		Score:  &ScoreResource{},
		Input:  &InputResource{},
		State:  &StateResource{},
		Audio:  &AudioResource{},
	}
}

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of every tick
type TimeResource struct {
	// GameTime is the logical simulation time, advanced by exactly one
	// fixed step per tick regardless of wall-clock jitter
	GameTime time.Time

	// DeltaTime is the fixed step duration
	DeltaTime time.Duration

	// Tick is the tick count since session start
	Tick uint64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under the world update lock
func (tr *TimeResource) Update(gameTime time.Time, delta time.Duration, tick uint64) {
	tr.GameTime = gameTime
	tr.DeltaTime = delta
	tr.Tick = tick
}

// ConfigResource holds the playfield geometry and movement tuning used by
// systems. Populated from config at startup and static afterwards
type ConfigResource struct {
	HalfWidth   float64
	HalfHeight  float64
	PlayerSpeed float64
	BulletSpeed float64
	ClampMargin float64
}

// ScoreResource is the process-wide scoreboard
// Atomic so the render goroutine can read it between ticks
type ScoreResource struct {
	score atomic.Int64
}

// Add increases the score by delta
func (sr *ScoreResource) Add(delta int) {
	sr.score.Add(int64(delta))
}

// Value returns the current score
func (sr *ScoreResource) Value() int {
	return int(sr.score.Load())
}

// Reset returns the score to zero, called on Running entry
func (sr *ScoreResource) Reset() {
	sr.score.Store(0)
}

// InputResource holds the intent resolved at the start of the current tick
// Written by the scheduler, read by the movement system
type InputResource struct {
	Intent input.Intent
}

// StateResource exposes the active application state
// Atomic so the render goroutine can read it between ticks; only the
// state machine writes it
type StateResource struct {
	state atomic.Int32
}

// Get returns the active application state
func (sr *StateResource) Get() core.AppState {
	return core.AppState(sr.state.Load())
}

// Set records a state transition
func (sr *StateResource) Set(s core.AppState) {
	sr.state.Store(int32(s))
}

// AudioPlayer is the minimal audio interface used by game systems
// A nil player plays nothing; playback failure is never an error
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// Play triggers a sound if a player is wired, reporting whether it played
func (ar *AudioResource) Play(st core.SoundType) bool {
	if ar.Player == nil {
		return false
	}
	return ar.Player.Play(st)
}
