package system

import (
	"testing"

	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
)

// TestCullBulletBeyondTop verifies upward exit despawns the bullet
func TestCullBulletBeyondTop(t *testing.T) {
	w, _ := newTestWorld(t)
	cull := NewCullSystem(w)
	halfHeight := w.Resources.Config.HalfHeight

	gone := engine.SpawnBullet(w, 0, halfHeight+1, 0)
	inside := engine.SpawnBullet(w, 0, halfHeight-1, 0)

	cull.Update()

	if w.HasAnyComponent(gone) {
		t.Error("Expected out-of-bounds bullet despawned")
	}
	if !w.Kinds.Has(inside) {
		t.Error("Expected in-bounds bullet alive")
	}
}

// TestCullBulletBeyondBottom verifies the lower edge culls too
func TestCullBulletBeyondBottom(t *testing.T) {
	w, _ := newTestWorld(t)
	cull := NewCullSystem(w)
	halfHeight := w.Resources.Config.HalfHeight

	gone := engine.SpawnBullet(w, 0, -halfHeight-1, 0)

	cull.Update()

	if w.HasAnyComponent(gone) {
		t.Error("Expected bullet below the playfield despawned")
	}
}

// TestCullIgnoresNonBullets verifies only bullets are boundary-culled
func TestCullIgnoresNonBullets(t *testing.T) {
	w, _ := newTestWorld(t)
	cull := NewCullSystem(w)
	halfHeight := w.Resources.Config.HalfHeight

	enemy := engine.SpawnEnemy(w, 0, halfHeight+100)

	cull.Update()

	if !w.Kinds.Has(enemy) {
		t.Error("Expected out-of-bounds enemy untouched")
	}
}

// TestCullCommitsCollisionMarks verifies the commit point removes entities
// marked earlier in the tick
func TestCullCommitsCollisionMarks(t *testing.T) {
	w, _ := newTestWorld(t)
	collision := NewCollisionSystem(w)
	cull := NewCullSystem(w)

	bullet := engine.SpawnBullet(w, 0, 0, 0)
	enemy := engine.SpawnEnemy(w, 0, 0)

	collision.Update()
	if !w.MarkedForDeath(bullet) || !w.MarkedForDeath(enemy) {
		t.Fatal("Expected collision marks")
	}

	cull.Update()

	if w.HasAnyComponent(bullet) || w.HasAnyComponent(enemy) {
		t.Error("Expected marked entities removed at commit")
	}
	if n := w.CountOfKind(core.KindBullet) + w.CountOfKind(core.KindEnemy); n != 0 {
		t.Errorf("Expected empty world, got %d entities", n)
	}
}
