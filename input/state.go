package input

import (
	"sync"
	"time"
)

// Snapshot is the immutable per-tick key state consumed by the resolver.
// Held reports keys currently down; Pressed reports the rising edge
// (not held on the previous tick, held on this one)
type Snapshot struct {
	held    [keyCount]bool
	pressed [keyCount]bool
}

// Held reports whether the key is currently down
func (s Snapshot) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.held[k]
}

// Pressed reports whether the key transitioned to down this tick
func (s Snapshot) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// KeyState accumulates raw key events from the terminal pump and
// synthesizes per-tick snapshots
//
// Terminals deliver key-down events only, with autorepeat while held and no
// key-up. A key therefore counts as held while its events keep arriving
// within the hold window; the window expiring is the synthetic release
type KeyState struct {
	mu         sync.Mutex
	lastSeen   [keyCount]time.Time
	prevHeld   [keyCount]bool
	holdWindow time.Duration
}

// NewKeyState creates key tracking with the given hold window
func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{holdWindow: holdWindow}
}

// Feed records a raw key event. Safe to call from the terminal pump
// goroutine concurrently with BeginTick
func (ks *KeyState) Feed(k Key, at time.Time) {
	if k == KeyNone || k >= keyCount {
		return
	}
	ks.mu.Lock()
	ks.lastSeen[k] = at
	ks.mu.Unlock()
}

// BeginTick computes the snapshot for the tick starting at now and advances
// the edge-detection state. Rising edges are consumed: holding a key across
// N ticks yields exactly one Pressed, not N
func (ks *KeyState) BeginTick(now time.Time) Snapshot {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	var snap Snapshot
	for k := Key(1); k < keyCount; k++ {
		held := !ks.lastSeen[k].IsZero() && now.Sub(ks.lastSeen[k]) <= ks.holdWindow
		snap.held[k] = held
		snap.pressed[k] = held && !ks.prevHeld[k]
		ks.prevHeld[k] = held
	}
	return snap
}

// Reset clears all key tracking, used on state re-entry so stale holds
// never leak into a new session
func (ks *KeyState) Reset() {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	for k := Key(0); k < keyCount; k++ {
		ks.lastSeen[k] = time.Time{}
		ks.prevHeld[k] = false
	}
}
