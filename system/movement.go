package system

import (
	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// MovementSystem applies player movement intent and integrates velocities
//
// The player moves under direct intent with a hard clamp to the playfield
// (no bounce, no wrap). Everything carrying Transform+Velocity integrates
// pos += vel*dt unconditionally. A rising shoot edge spawns exactly one
// bullet at the player's position and emits one shoot event
type MovementSystem struct {
	world *engine.World
	res   *engine.Resources
}

// NewMovementSystem creates the movement system
func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{
		world: world,
		res:   world.Resources,
	}
}

func (s *MovementSystem) Init() {}

// Priority runs movement first so collision sees post-movement positions
func (s *MovementSystem) Priority() int {
	return constant.PriorityMovement
}

// Update advances one tick: player intent first, then integration, then
// the shoot edge
func (s *MovementSystem) Update() {
	dt := s.res.Time.DeltaTime.Seconds()
	intent := s.res.Input.Intent

	s.movePlayer(intent.Direction, dt)
	s.integrate(dt)

	if intent.Shoot {
		s.shoot()
	}
}

// movePlayer applies horizontal intent and clamps to the playfield
func (s *MovementSystem) movePlayer(direction int, dt float64) {
	player, ok := s.world.FirstOfKind(core.KindPlayer)
	if !ok {
		return
	}
	tf, ok := s.world.Transforms.Get(player)
	if !ok {
		return
	}

	cfg := s.res.Config
	tf.X += float64(direction) * cfg.PlayerSpeed * dt

	leftBound := -cfg.HalfWidth + cfg.ClampMargin
	rightBound := cfg.HalfWidth - cfg.ClampMargin
	if tf.X < leftBound {
		tf.X = leftBound
	}
	if tf.X > rightBound {
		tf.X = rightBound
	}

	s.world.Transforms.Set(player, tf)
}

// integrate advances every Transform+Velocity entity by one step
func (s *MovementSystem) integrate(dt float64) {
	entities := s.world.Query().
		With(s.world.Transforms).
		With(s.world.Velocities).
		ExecuteSorted()

	for _, e := range entities {
		tf, ok := s.world.Transforms.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.world.Velocities.Get(e)
		if !ok {
			continue
		}
		tf.X += vel.VX * dt
		tf.Y += vel.VY * dt
		s.world.Transforms.Set(e, tf)
	}
}

// shoot spawns one bullet at the player's position and emits the event
// Intent is edge-triggered upstream, so at most one bullet per tick
func (s *MovementSystem) shoot() {
	player, ok := s.world.FirstOfKind(core.KindPlayer)
	if !ok {
		return
	}
	tf, ok := s.world.Transforms.Get(player)
	if !ok {
		return
	}

	bullet := engine.SpawnBullet(s.world, tf.X, tf.Y, player)
	s.world.PushEvent(event.EventShoot, &event.ShootPayload{
		Shooter: player,
		Bullet:  bullet,
	})
}
