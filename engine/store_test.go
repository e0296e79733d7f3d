package engine

import (
	"testing"

	"github.com/AidanMaskelyne/invaders/component"
	"github.com/AidanMaskelyne/invaders/core"
)

// TestStoreSetGet verifies basic insert, update, and lookup
func TestStoreSetGet(t *testing.T) {
	s := NewStore[component.TransformComponent]()
	e := core.Entity(1)

	s.Set(e, component.TransformComponent{X: 5})
	if tf, ok := s.Get(e); !ok || tf.X != 5 {
		t.Errorf("Expected x=5, got %v ok=%v", tf, ok)
	}

	s.Set(e, component.TransformComponent{X: 7})
	if tf, _ := s.Get(e); tf.X != 7 {
		t.Errorf("Expected update to x=7, got %f", tf.X)
	}
	if s.Count() != 1 {
		t.Errorf("Expected count 1 after update, got %d", s.Count())
	}
}

// TestStoreRemove verifies removal and unknown-entity no-op
func TestStoreRemove(t *testing.T) {
	s := NewStore[component.TransformComponent]()
	s.Set(1, component.TransformComponent{})

	s.Remove(99)
	if !s.Has(1) {
		t.Error("Expected unknown remove to be a no-op")
	}

	s.Remove(1)
	if s.Has(1) {
		t.Error("Expected entity removed")
	}
	if _, ok := s.Get(1); ok {
		t.Error("Expected get to miss after remove")
	}
}

// TestStoreRemoveBatch verifies batch removal compacts correctly
func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[component.TransformComponent]()
	for i := core.Entity(1); i <= 5; i++ {
		s.Set(i, component.TransformComponent{X: float64(i)})
	}

	s.RemoveBatch([]core.Entity{2, 4, 99})

	if s.Count() != 3 {
		t.Fatalf("Expected 3 remaining, got %d", s.Count())
	}
	for _, e := range []core.Entity{1, 3, 5} {
		if !s.Has(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}
	for _, e := range []core.Entity{2, 4} {
		if s.Has(e) {
			t.Errorf("Expected entity %d removed", e)
		}
	}
}

// TestStoreClear verifies clear empties everything
func TestStoreClear(t *testing.T) {
	s := NewStore[component.TransformComponent]()
	s.Set(1, component.TransformComponent{})
	s.Set(2, component.TransformComponent{})

	s.Clear()

	if s.Count() != 0 || len(s.All()) != 0 {
		t.Errorf("Expected empty store, got count %d", s.Count())
	}
}
