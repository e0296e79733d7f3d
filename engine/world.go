package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/AidanMaskelyne/invaders/component"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/event"
)

// AnyStore is the type-erased store interface used for uniform lifecycle
// operations (destroy, clear) across all component stores
type AnyStore interface {
	Remove(core.Entity)
	Has(core.Entity) bool
	Clear()
	Count() int
}

// System is the per-tick unit of simulation logic
type System interface {
	// Init is called once after registration, before the first tick
	Init()

	// Priority orders systems within a tick; lower values run first
	Priority() int

	// Update advances the system by one fixed tick
	Update()
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resources, initialized during GameContext creation
	Resources *Resources

	// Component Stores (public for direct system access)
	Transforms *Store[component.TransformComponent]
	Velocities *Store[component.VelocityComponent]
	Colliders  *Store[component.ColliderComponent]
	Kinds      *Store[component.KindComponent]
	Deaths     *Store[component.DeathComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Direct pointers for the PushEvent hot path
	eventQueue *event.Queue
	tickSource *atomic.Uint64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResources(),
		Transforms:   NewStore[component.TransformComponent](),
		Velocities:   NewStore[component.VelocityComponent](),
		Colliders:    NewStore[component.ColliderComponent](),
		Kinds:        NewStore[component.KindComponent](),
		Deaths:       NewStore[component.DeathComponent](),
		systems:      make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Transforms,
		w.Velocities,
		w.Colliders,
		w.Kinds,
		w.Deaths,
	}

	return w
}

// CreateEntity reserves a new entity ID
// IDs ascend monotonically within a session and are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Unknown entities are a no-op
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// MarkForDeath tags a live entity for deferred despawn
// Marking is idempotent; unknown entities are a no-op
func (w *World) MarkForDeath(e core.Entity) {
	if !w.Kinds.Has(e) {
		return
	}
	w.Deaths.Set(e, component.DeathComponent{})
}

// MarkedForDeath reports whether an entity carries a pending despawn mark
func (w *World) MarkedForDeath(e core.Entity) bool {
	return w.Deaths.Has(e)
}

// CommitDeaths destroys all death-marked entities and returns how many were
// removed. This is the single despawn commit point per tick
func (w *World) CommitDeaths() int {
	marked := w.Deaths.All()
	if len(marked) == 0 {
		return 0
	}
	sort.Slice(marked, func(i, j int) bool { return marked[i] < marked[j] })
	for _, e := range marked {
		w.DestroyEntity(e)
	}
	return len(marked)
}

// Clear removes all entities and components from the world
// Entity IDs restart from 1; the world is rebuilt on Running re-entry
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// FirstOfKind returns the lowest-id live entity of the given kind
// Returns 0, false when none exists
func (w *World) FirstOfKind(kind core.EntityKind) (core.Entity, bool) {
	var best core.Entity
	for _, e := range w.Kinds.All() {
		k, ok := w.Kinds.Get(e)
		if !ok || k.Kind != kind {
			continue
		}
		if best == 0 || e < best {
			best = e
		}
	}
	return best, best != 0
}

// CountOfKind returns the number of live entities of the given kind
func (w *World) CountOfKind(kind core.EntityKind) int {
	n := 0
	for _, e := range w.Kinds.All() {
		if k, ok := w.Kinds.Get(e); ok && k.Kind == kind {
			n++
		}
	}
	return n
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// InitSystems runs one-time initialization for all registered systems
func (w *World) InitSystems() {
	for _, system := range w.Systems() {
		system.Init()
	}
}

// RunSafe executes a function while holding the world's update lock
// The renderer uses this to read a consistent entity snapshot between ticks
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// UpdateLocked runs all systems in priority order, assuming the caller
// already holds the update mutex
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *event.Queue, tickSource *atomic.Uint64) {
	w.eventQueue = q
	w.tickSource = tickSource
}

// PushEvent emits a game event using direct cached pointers
// This is the hot path for all system communication
func (w *World) PushEvent(eventType event.Type, payload any) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}

	var tick uint64
	if w.tickSource != nil {
		tick = w.tickSource.Load()
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    tick,
	})
}
