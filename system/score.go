package system

import (
	"go.uber.org/zap"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// ScoreHandler awards points for destroyed enemies during the event drain
//
// Score only ever increases within a session; the reset to zero happens on
// Running entry, outside this handler. Bullet-player hits award nothing
type ScoreHandler struct {
	logger *zap.Logger
}

// NewScoreHandler creates the score event handler
func NewScoreHandler(logger *zap.Logger) *ScoreHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreHandler{logger: logger}
}

// EventTypes registers for collision events only
func (h *ScoreHandler) EventTypes() []event.Type {
	return []event.Type{event.EventCollision}
}

// HandleEvent awards the enemy reward per destroyed enemy
func (h *ScoreHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.CollisionPayload)
	if !ok || payload.TargetKind != core.KindEnemy {
		return
	}
	w.Resources.Score.Add(constant.EnemyReward)
	h.logger.Debug("enemy destroyed",
		zap.Uint64("bullet", uint64(payload.Bullet)),
		zap.Uint64("enemy", uint64(payload.Target)),
		zap.Int("score", w.Resources.Score.Value()),
		zap.Uint64("tick", ev.Tick))
}
