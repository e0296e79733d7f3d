package event

import "time"

// Type represents the type of game event
type Type int

const (
	// EventShoot signals a bullet was spawned from a shoot edge
	// Trigger: MovementSystem on rising shoot input
	// Consumer: AudioSystem | Payload: *ShootPayload
	EventShoot Type = iota

	// EventCollision signals one resolved collider pair
	// Trigger: CollisionSystem, one event per resolved pair
	// Consumer: ScoreSystem, AudioSystem | Payload: *CollisionPayload
	EventCollision

	// EventPlayerDestroyed signals the player was removed by collision
	// Trigger: CollisionSystem when a resolved pair includes the player
	// Consumer: state machine (Running -> GameOver) | Payload: nil
	EventPlayerDestroyed

	// EventGameStart is the externally-sourced start trigger
	// Trigger: menu activation intent
	// Consumer: state machine (Menu -> Running) | Payload: nil
	EventGameStart

	// EventGameRestart is the externally-sourced back-to-menu trigger
	// Trigger: restart intent on the game-over screen
	// Consumer: state machine (GameOver -> Menu) | Payload: nil
	EventGameRestart
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      Type
	Payload   any
	Tick      uint64
	Timestamp time.Time
}
