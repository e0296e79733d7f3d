package constant

// Playfield dimensions in logical units, centered on the origin.
// X grows right, Y grows up
const (
	PlayfieldWidth  = 1280.0
	PlayfieldHeight = 720.0
)

// Player movement and geometry
const (
	// PlayerSpeed is horizontal movement in units/second under direct intent
	PlayerSpeed = 500.0

	// PlayerClampMargin keeps the player sprite inside the playfield edges
	PlayerClampMargin = 32.0

	// PlayerSpawnYOffset is the distance above the bottom edge at game start
	PlayerSpawnYOffset = 50.0

	// PlayerScale is applied uniformly to the player transform
	PlayerScale = 2.0

	PlayerColliderHalfWidth  = 32.0
	PlayerColliderHalfHeight = 16.0
)

// Bullet motion and geometry
const (
	// BulletSpeed is the fixed upward velocity magnitude in units/second
	BulletSpeed = 400.0

	BulletColliderHalfWidth  = 5.0
	BulletColliderHalfHeight = 12.5
)

// Enemy geometry. No spawner exists in this core; the kind is fully
// collision- and score-capable for the spawn extension point
const (
	EnemyColliderHalfWidth  = 32.0
	EnemyColliderHalfHeight = 16.0
)

// Scoring
const (
	// EnemyReward is added to the scoreboard per enemy destroyed by a bullet
	EnemyReward = 10
)
