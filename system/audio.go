package system

import (
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// AudioHandler maps gameplay events to sound effects during the drain phase
// Playback is fire-and-forget; a missing or saturated player drops the sound
type AudioHandler struct{}

// NewAudioHandler creates the audio event handler
func NewAudioHandler() *AudioHandler {
	return &AudioHandler{}
}

// EventTypes registers for shoot and collision events
func (h *AudioHandler) EventTypes() []event.Type {
	return []event.Type{event.EventShoot, event.EventCollision}
}

// HandleEvent plays the sound matching the event
func (h *AudioHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventShoot:
		w.Resources.Audio.Play(core.SoundShoot)
	case event.EventCollision:
		w.Resources.Audio.Play(core.SoundExplosion)
	}
}
