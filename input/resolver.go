package input

import "github.com/AidanMaskelyne/invaders/core"

// Resolver turns a per-tick key snapshot into a player intent
//
// Resolution is state-gated: gameplay movement and shooting resolve only
// while Running; menu and game-over screens resolve their activation keys
// only. Quit resolves in every state. Edge detection lives in KeyState, so
// the resolver itself is stateless
type Resolver struct{}

// NewResolver creates an intent resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps the snapshot to an intent for the given application state
func (r *Resolver) Resolve(snap Snapshot, state core.AppState) Intent {
	var intent Intent

	if snap.Pressed(KeyQuit) {
		intent.Quit = true
	}

	switch state {
	case core.StateMenu:
		if snap.Pressed(KeyConfirm) {
			intent.Start = true
		}

	case core.StateRunning:
		if snap.Held(KeyLeft) {
			intent.Direction--
		}
		if snap.Held(KeyRight) {
			intent.Direction++
		}
		intent.Shoot = snap.Pressed(KeyShoot)

	case core.StateGameOver:
		if snap.Pressed(KeyConfirm) {
			intent.Restart = true
		}
	}

	return intent
}
