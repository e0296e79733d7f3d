package system

import (
	"github.com/AidanMaskelyne/invaders/component"
	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// CollisionSystem detects axis-aligned box overlaps between bullets and
// destructible targets
//
// Determinism rules: bullets and targets are iterated in ascending entity id,
// a bullet resolves at most one collision per tick, death-marked entities are
// invisible to detection, and a bullet never hits its own shooter. Both
// parties of a hit are marked for deferred despawn; actual removal happens at
// the culling commit point
type CollisionSystem struct {
	world *engine.World
}

// NewCollisionSystem creates the collision system
func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Init() {}

// Priority runs after movement so overlap tests see this tick's positions
func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision
}

// Update resolves all bullet hits for this tick
func (s *CollisionSystem) Update() {
	candidates := s.world.Query().
		With(s.world.Transforms).
		With(s.world.Colliders).
		With(s.world.Kinds).
		ExecuteSorted()

	var bullets, targets []core.Entity
	for _, e := range candidates {
		k, ok := s.world.Kinds.Get(e)
		if !ok {
			continue
		}
		switch k.Kind {
		case core.KindBullet:
			bullets = append(bullets, e)
		case core.KindEnemy, core.KindPlayer:
			targets = append(targets, e)
		}
	}

	for _, bullet := range bullets {
		if s.world.MarkedForDeath(bullet) {
			continue
		}
		s.resolveBullet(bullet, targets)
	}
}

// resolveBullet tests one bullet against all live targets in ascending id
// order and stops at the first hit
func (s *CollisionSystem) resolveBullet(bullet core.Entity, targets []core.Entity) {
	btf, ok := s.world.Transforms.Get(bullet)
	if !ok {
		return
	}
	bcol, ok := s.world.Colliders.Get(bullet)
	if !ok {
		return
	}

	for _, target := range targets {
		if target == bcol.Owner || s.world.MarkedForDeath(target) {
			continue
		}
		ttf, ok := s.world.Transforms.Get(target)
		if !ok {
			continue
		}
		tcol, ok := s.world.Colliders.Get(target)
		if !ok {
			continue
		}
		if !overlaps(btf, bcol, ttf, tcol) {
			continue
		}

		kind, _ := s.world.Kinds.Get(target)

		s.world.MarkForDeath(bullet)
		s.world.MarkForDeath(target)

		// Kinds are captured now; consumers run after the despawn commit
		s.world.PushEvent(event.EventCollision, &event.CollisionPayload{
			Bullet:     bullet,
			Target:     target,
			TargetKind: kind.Kind,
		})
		if kind.Kind == core.KindPlayer {
			s.world.PushEvent(event.EventPlayerDestroyed, nil)
		}
		return
	}
}

// overlaps reports whether two axis-aligned boxes intersect
// Touching edges do not count as overlap
func overlaps(atf component.TransformComponent, acol component.ColliderComponent,
	btf component.TransformComponent, bcol component.ColliderComponent) bool {
	dx := atf.X - btf.X
	if dx < 0 {
		dx = -dx
	}
	dy := atf.Y - btf.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < acol.HalfWidth+bcol.HalfWidth && dy < acol.HalfHeight+bcol.HalfHeight
}
