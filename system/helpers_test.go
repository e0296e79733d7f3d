package system

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/event"
)

// newTestWorld builds a world with the default playfield and event plumbing
// but no registered systems, so tests drive each system directly
func newTestWorld(t *testing.T) (*engine.World, *event.Queue) {
	t.Helper()

	w := engine.NewWorld()
	*w.Resources.Config = engine.ConfigResource{
		HalfWidth:   constant.PlayfieldWidth / 2,
		HalfHeight:  constant.PlayfieldHeight / 2,
		PlayerSpeed: constant.PlayerSpeed,
		BulletSpeed: constant.BulletSpeed,
		ClampMargin: constant.PlayerClampMargin,
	}
	w.Resources.Time.Update(time.Unix(0, 0), constant.TickInterval, 1)
	w.Resources.State.Set(core.StateRunning)

	q := event.NewQueue()
	tick := &atomic.Uint64{}
	tick.Store(1)
	w.SetEventMetadata(q, tick)
	return w, q
}

// eventsOfType filters a drain result by type
func eventsOfType(events []event.GameEvent, t event.Type) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// fakePlayer records played sounds for assertions
type fakePlayer struct {
	played []core.SoundType
}

func (f *fakePlayer) Play(st core.SoundType) bool {
	f.played = append(f.played, st)
	return true
}
