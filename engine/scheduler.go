package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine/fsm"
	"github.com/AidanMaskelyne/invaders/event"
	"github.com/AidanMaskelyne/invaders/input"
)

// ClockScheduler drives the simulation at a fixed tick rate, decoupled from
// the render rate by a time accumulator: wall-clock delta is accumulated and
// the simulation advances in whole fixed steps, carrying the remainder
// forward, so results are reproducible across varying frame rates
//
// Per-tick ordering contract (strict):
//  1. input intent resolution
//  2. movement (player intent, then bullet integration)
//  3. collision detection
//  4. boundary culling + despawn commit
//  5. event drain (score and audio side effects)
//  6. state machine transition evaluation
//
// Steps 2-4 are registered world systems ordered by priority and run only
// while the application state is Running (hard gate)
type ClockScheduler struct {
	world    *World
	timeRes  *TimeResource
	stateRes *StateResource
	inputRes *InputResource

	queue    *event.Queue
	router   *event.Router[*World]
	machine  *fsm.Machine[*World]
	keys     *input.KeyState
	resolver *input.Resolver

	clock        TimeProvider
	tickInterval time.Duration
	tickCount    *atomic.Uint64
	gameTime     time.Time

	accumulator time.Duration
	lastAdvance time.Time

	logger *zap.Logger
	onQuit func()
}

// NewClockScheduler wires the scheduler over an initialized world
// The tick counter is shared with the world so pushed events carry the tick
// they were produced in
func NewClockScheduler(
	world *World,
	machine *fsm.Machine[*World],
	router *event.Router[*World],
	queue *event.Queue,
	keys *input.KeyState,
	resolver *input.Resolver,
	tickInterval time.Duration,
	clock TimeProvider,
	logger *zap.Logger,
	onQuit func(),
) *ClockScheduler {
	cs := &ClockScheduler{
		world:        world,
		timeRes:      world.Resources.Time,
		stateRes:     world.Resources.State,
		inputRes:     world.Resources.Input,
		queue:        queue,
		router:       router,
		machine:      machine,
		keys:         keys,
		resolver:     resolver,
		clock:        clock,
		tickInterval: tickInterval,
		tickCount:    &atomic.Uint64{},
		gameTime:     clock.Now(),
		logger:       logger,
	}
	cs.onQuit = onQuit
	world.SetEventMetadata(queue, cs.tickCount)
	return cs
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run drives the fixed-step loop until the context is cancelled
// The only suspension point is the sleep to the next step boundary; a tick
// in progress is never interrupted
func (cs *ClockScheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-timer.C:
			cs.Advance(now)

			sleep := cs.tickInterval - cs.accumulator
			if sleep < time.Millisecond {
				sleep = time.Millisecond
			}
			timer.Reset(sleep)
		}
	}
}

// Advance accumulates wall-clock time and runs whole fixed steps, carrying
// the remainder forward. Catch-up after a stall is capped; whole steps
// beyond the cap are discarded rather than replayed
// Returns the number of ticks executed
func (cs *ClockScheduler) Advance(now time.Time) int {
	if cs.lastAdvance.IsZero() {
		cs.lastAdvance = now
	}
	cs.accumulator += now.Sub(cs.lastAdvance)
	cs.lastAdvance = now

	ticks := 0
	for cs.accumulator >= cs.tickInterval {
		if ticks >= constant.MaxTicksPerAdvance {
			cs.accumulator %= cs.tickInterval
			break
		}
		cs.Tick()
		cs.accumulator -= cs.tickInterval
		ticks++
	}
	return ticks
}

// Tick executes exactly one fixed simulation step
// Exported so tests drive the simulation deterministically without a clock
func (cs *ClockScheduler) Tick() {
	cs.world.RunSafe(cs.tickLocked)
}

func (cs *ClockScheduler) tickLocked() {
	tick := cs.tickCount.Add(1)
	cs.gameTime = cs.gameTime.Add(cs.tickInterval)
	cs.timeRes.Update(cs.gameTime, cs.tickInterval, tick)

	state := cs.stateRes.Get()

	// 1. Input intent resolution. Control triggers (start/restart/quit)
	// resolve in every state; gameplay intent only while Running
	snap := cs.keys.BeginTick(cs.clock.Now())
	intent := cs.resolver.Resolve(snap, state)
	cs.inputRes.Intent = intent

	if intent.Quit {
		cs.logger.Info("quit requested", zap.Uint64("tick", tick))
		if cs.onQuit != nil {
			cs.onQuit()
		}
		return
	}

	// 2-4. Gameplay systems. Hard gate: nothing runs outside Running
	if state == core.StateRunning {
		cs.world.UpdateLocked()
	}

	// 5. Event drain: one pass, consumers invoked in FIFO order, queue
	// left unconditionally empty. Undelivered events never carry over
	drained := cs.queue.Consume()
	for _, ev := range drained {
		cs.router.Dispatch(cs.world, ev)
	}

	// 6. State machine evaluation sees the tick's final entity set:
	// gameplay-driven transitions first, then external control triggers
	for _, ev := range drained {
		cs.machine.HandleEvent(cs.world, ev.Type)
	}
	if intent.Start {
		cs.machine.HandleEvent(cs.world, event.EventGameStart)
	}
	if intent.Restart {
		cs.machine.HandleEvent(cs.world, event.EventGameRestart)
	}

	// Running requires the player singleton; a failed entry aborts back
	// to the menu rather than ticking a headless session
	if cs.stateRes.Get() == core.StateRunning && cs.world.CountOfKind(core.KindPlayer) != 1 {
		cs.logger.Error("player singleton missing on running entry, falling back to menu",
			zap.Uint64("tick", tick))
		_ = cs.machine.ForceTo(cs.world, fsm.StateID(core.StateMenu))
	}
}
