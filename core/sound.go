package core

// SoundType represents different sound effects
// Values are opaque handles into the audio sound bank
type SoundType int

const (
	SoundShoot     SoundType = iota // Bullet fired
	SoundExplosion                  // Collision resolved
	SoundGameOver                   // Player destroyed
	SoundTypeCount
)
