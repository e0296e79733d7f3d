package core

// Entity is a unique identifier for an entity
// IDs are allocated monotonically and never reused within a session,
// which gives deterministic ascending-id tie-breaks in collision resolution
type Entity uint64

// EntityKind discriminates gameplay entity categories
// Drives collision-pair eligibility and despawn policy
type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindPlayer
	KindBullet
	KindEnemy
)

// String returns the kind name for logs and debug overlays
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "none"
	}
}
