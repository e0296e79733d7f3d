package engine

import (
	"github.com/AidanMaskelyne/invaders/component"
	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
)

// SpawnPlayer creates the player entity at its starting position above the
// bottom edge. Called on Running entry; exactly one player exists while
// Running
func SpawnPlayer(w *World) core.Entity {
	cfg := w.Resources.Config
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{
		X:      0,
		Y:      -cfg.HalfHeight + constant.PlayerSpawnYOffset,
		ScaleX: constant.PlayerScale,
		ScaleY: constant.PlayerScale,
	})
	w.Colliders.Set(e, component.ColliderComponent{
		HalfWidth:  constant.PlayerColliderHalfWidth,
		HalfHeight: constant.PlayerColliderHalfHeight,
	})
	w.Kinds.Set(e, component.KindComponent{Kind: core.KindPlayer})
	return e
}

// SpawnBullet creates a bullet at the given position with the fixed upward
// velocity, recording its shooter so it never hits its own owner
func SpawnBullet(w *World, x, y float64, owner core.Entity) core.Entity {
	cfg := w.Resources.Config
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	w.Velocities.Set(e, component.VelocityComponent{VX: 0, VY: cfg.BulletSpeed})
	w.Colliders.Set(e, component.ColliderComponent{
		HalfWidth:  constant.BulletColliderHalfWidth,
		HalfHeight: constant.BulletColliderHalfHeight,
		Owner:      owner,
	})
	w.Kinds.Set(e, component.KindComponent{Kind: core.KindBullet})
	return e
}

// SpawnEnemy creates an enemy entity at the given position
// No spawner system is registered in this core; wave logic is the defined
// extension point and calls this builder
func SpawnEnemy(w *World, x, y float64) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	w.Colliders.Set(e, component.ColliderComponent{
		HalfWidth:  constant.EnemyColliderHalfWidth,
		HalfHeight: constant.EnemyColliderHalfHeight,
	})
	w.Kinds.Set(e, component.KindComponent{Kind: core.KindEnemy})
	return e
}
