package system

import (
	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
)

// CullSystem marks bullets that left the playfield vertically and then
// commits every pending despawn for the tick
//
// This system owns the single commit point: marks accumulated by collision
// and by culling itself all resolve here, so no system ever observes a
// half-despawned entity mid-tick
type CullSystem struct {
	world *engine.World
}

// NewCullSystem creates the boundary culling system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

func (s *CullSystem) Init() {}

// Priority runs last so the commit sees every mark from this tick
func (s *CullSystem) Priority() int {
	return constant.PriorityCull
}

// Update marks out-of-bounds bullets and commits all pending despawns
func (s *CullSystem) Update() {
	halfHeight := s.world.Resources.Config.HalfHeight

	entities := s.world.Query().
		With(s.world.Transforms).
		With(s.world.Kinds).
		ExecuteSorted()

	for _, e := range entities {
		k, ok := s.world.Kinds.Get(e)
		if !ok || k.Kind != core.KindBullet {
			continue
		}
		tf, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		if tf.Y > halfHeight || tf.Y < -halfHeight {
			s.world.MarkForDeath(e)
		}
	}

	s.world.CommitDeaths()
}
