package system

import (
	"testing"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// TestBulletHitsEnemy verifies a hit marks both parties and emits one event
func TestBulletHitsEnemy(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	bullet := engine.SpawnBullet(w, 0, 0, 0)
	enemy := engine.SpawnEnemy(w, 0, 0)

	collision.Update()

	if !w.MarkedForDeath(bullet) {
		t.Error("Expected bullet marked for death")
	}
	if !w.MarkedForDeath(enemy) {
		t.Error("Expected enemy marked for death")
	}

	// Marks are deferred; both stay live until the commit point
	if !w.Kinds.Has(bullet) || !w.Kinds.Has(enemy) {
		t.Error("Expected both entities live before commit")
	}

	hits := eventsOfType(q.Consume(), event.EventCollision)
	if len(hits) != 1 {
		t.Fatalf("Expected 1 collision event, got %d", len(hits))
	}
	payload, ok := hits[0].Payload.(*event.CollisionPayload)
	if !ok {
		t.Fatal("Expected collision payload")
	}
	if payload.Bullet != bullet || payload.Target != enemy {
		t.Errorf("Expected pair (%d,%d), got (%d,%d)", bullet, enemy, payload.Bullet, payload.Target)
	}
	if payload.TargetKind != core.KindEnemy {
		t.Errorf("Expected enemy target kind, got %v", payload.TargetKind)
	}
}

// TestBulletResolvesSingleCollision verifies a bullet overlapping two enemies
// hits only the lowest-id one
func TestBulletResolvesSingleCollision(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	bullet := engine.SpawnBullet(w, 0, 0, 0)
	first := engine.SpawnEnemy(w, 0, 0)
	second := engine.SpawnEnemy(w, 1, 0)

	collision.Update()

	if !w.MarkedForDeath(first) {
		t.Error("Expected lowest-id enemy hit")
	}
	if w.MarkedForDeath(second) {
		t.Error("Expected second enemy untouched")
	}
	if !w.MarkedForDeath(bullet) {
		t.Error("Expected bullet consumed")
	}

	hits := eventsOfType(q.Consume(), event.EventCollision)
	if len(hits) != 1 {
		t.Errorf("Expected 1 collision event, got %d", len(hits))
	}
}

// TestTwoBulletsOneEnemy verifies a dead enemy is invisible to later bullets
// in the same tick
func TestTwoBulletsOneEnemy(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	first := engine.SpawnBullet(w, 0, 0, 0)
	second := engine.SpawnBullet(w, 1, 0, 0)
	enemy := engine.SpawnEnemy(w, 0, 0)

	collision.Update()

	if !w.MarkedForDeath(first) {
		t.Error("Expected first bullet consumed")
	}
	if w.MarkedForDeath(second) {
		t.Error("Expected second bullet to pass through")
	}
	if !w.MarkedForDeath(enemy) {
		t.Error("Expected enemy marked")
	}

	hits := eventsOfType(q.Consume(), event.EventCollision)
	if len(hits) != 1 {
		t.Errorf("Expected exactly 1 collision event, got %d", len(hits))
	}
}

// TestBulletIgnoresOwner verifies a bullet never hits its shooter
func TestBulletIgnoresOwner(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	player := engine.SpawnPlayer(w)
	ptf, _ := w.Transforms.Get(player)
	bullet := engine.SpawnBullet(w, ptf.X, ptf.Y, player)

	collision.Update()

	if w.MarkedForDeath(bullet) || w.MarkedForDeath(player) {
		t.Error("Expected no collision between bullet and its shooter")
	}
	if events := q.Consume(); events != nil {
		t.Errorf("Expected no events, got %d", len(events))
	}
}

// TestBulletHitsPlayer verifies player hits emit the destroyed event
func TestBulletHitsPlayer(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	player := engine.SpawnPlayer(w)
	ptf, _ := w.Transforms.Get(player)
	enemy := engine.SpawnEnemy(w, 0, 0)
	bullet := engine.SpawnBullet(w, ptf.X, ptf.Y, enemy)

	collision.Update()

	if !w.MarkedForDeath(bullet) || !w.MarkedForDeath(player) {
		t.Error("Expected bullet and player marked")
	}

	events := q.Consume()
	hits := eventsOfType(events, event.EventCollision)
	if len(hits) != 1 {
		t.Fatalf("Expected 1 collision event, got %d", len(hits))
	}
	if payload := hits[0].Payload.(*event.CollisionPayload); payload.TargetKind != core.KindPlayer {
		t.Errorf("Expected player target kind, got %v", payload.TargetKind)
	}
	if destroyed := eventsOfType(events, event.EventPlayerDestroyed); len(destroyed) != 1 {
		t.Errorf("Expected 1 player destroyed event, got %d", len(destroyed))
	}
}

// TestNoOverlapNoCollision verifies separated and edge-touching boxes miss
func TestNoOverlapNoCollision(t *testing.T) {
	w, q := newTestWorld(t)
	collision := NewCollisionSystem(w)

	bullet := engine.SpawnBullet(w, 0, 0, 0)
	bcol, _ := w.Colliders.Get(bullet)

	// Enemy exactly touching on the x axis: half widths sum to the distance
	enemy := engine.SpawnEnemy(w, bcol.HalfWidth+constant.EnemyColliderHalfWidth, 0)
	// And one clearly apart
	far := engine.SpawnEnemy(w, 500, 300)

	collision.Update()

	if w.MarkedForDeath(bullet) || w.MarkedForDeath(enemy) || w.MarkedForDeath(far) {
		t.Error("Expected no collisions")
	}
	if events := q.Consume(); events != nil {
		t.Errorf("Expected no events, got %d", len(events))
	}
}
