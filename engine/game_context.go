package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine/fsm"
	"github.com/AidanMaskelyne/invaders/event"
	"github.com/AidanMaskelyne/invaders/input"
)

// state machine node ids mirror the application states one-to-one
const (
	stateMenu     = fsm.StateID(core.StateMenu)
	stateRunning  = fsm.StateID(core.StateRunning)
	stateGameOver = fsm.StateID(core.StateGameOver)
)

// Params configures a GameContext
type Params struct {
	// Playfield geometry and tuning, copied into the ConfigResource
	HalfWidth   float64
	HalfHeight  float64
	PlayerSpeed float64
	BulletSpeed float64
	ClampMargin float64

	TickInterval  time.Duration
	KeyHoldWindow time.Duration

	// Audio may be nil; sounds then play nothing
	Audio AudioPlayer

	Clock  TimeProvider
	Logger *zap.Logger

	// OnQuit is invoked when a quit intent resolves; typically cancels
	// the run group
	OnQuit func()
}

// GameContext owns the world, the event plumbing, the state machine, and
// the scheduler. Systems and event handlers are registered by the caller
// (main or tests) before Start
type GameContext struct {
	World    *World
	Queue    *event.Queue
	Router   *event.Router[*World]
	Machine  *fsm.Machine[*World]
	Keys     *input.KeyState
	Resolver *input.Resolver

	Scheduler *ClockScheduler
	Logger    *zap.Logger
}

// NewGameContext creates a fully wired context in the Menu state
func NewGameContext(p Params) (*GameContext, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := p.Clock
	if clock == nil {
		clock = NewTimeProvider()
	}

	world := NewWorld()
	*world.Resources.Config = ConfigResource{
		HalfWidth:   p.HalfWidth,
		HalfHeight:  p.HalfHeight,
		PlayerSpeed: p.PlayerSpeed,
		BulletSpeed: p.BulletSpeed,
		ClampMargin: p.ClampMargin,
	}
	world.Resources.Audio.Player = p.Audio

	queue := event.NewQueue()
	router := event.NewRouter[*World]()
	machine := buildStateMachine(world.Resources, logger)

	ctx := &GameContext{
		World:    world,
		Queue:    queue,
		Router:   router,
		Machine:  machine,
		Keys:     input.NewKeyState(p.KeyHoldWindow),
		Resolver: input.NewResolver(),
		Logger:   logger,
	}

	ctx.Scheduler = NewClockScheduler(
		world, machine, router, queue,
		ctx.Keys, ctx.Resolver,
		p.TickInterval, clock, logger, p.OnQuit,
	)

	if err := machine.Init(world, stateMenu); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Start runs one-time system initialization; call after all systems and
// event handlers are registered
func (g *GameContext) Start() {
	g.World.InitSystems()
}

// buildStateMachine assembles the Menu / Running / GameOver graph
//
// Running entry is the session reset: clear-and-reinitialize, never a
// concurrent interrupt. Invalid transitions (no edge from the current
// state) are silent no-ops inside the machine
func buildStateMachine(res *Resources, logger *zap.Logger) *fsm.Machine[*World] {
	m := fsm.NewMachine[*World]()

	m.AddState(&fsm.State[*World]{
		ID:   stateMenu,
		Name: core.StateMenu.String(),
		OnEnter: []fsm.ActionFunc[*World]{
			func(w *World) {
				res.State.Set(core.StateMenu)
				// No player may exist outside Running; the menu world
				// holds no gameplay entities
				w.Clear()
				logger.Info("entered menu")
			},
		},
	})

	m.AddState(&fsm.State[*World]{
		ID:   stateRunning,
		Name: core.StateRunning.String(),
		OnEnter: []fsm.ActionFunc[*World]{
			func(w *World) {
				res.State.Set(core.StateRunning)
				res.Score.Reset()
				w.Clear()
				player := SpawnPlayer(w)
				logger.Info("entered running",
					zap.Uint64("player_entity", uint64(player)))
			},
		},
	})

	m.AddState(&fsm.State[*World]{
		ID:   stateGameOver,
		Name: core.StateGameOver.String(),
		OnEnter: []fsm.ActionFunc[*World]{
			func(w *World) {
				res.State.Set(core.StateGameOver)
				res.Audio.Play(core.SoundGameOver)
				logger.Info("entered game over",
					zap.Int("final_score", res.Score.Value()))
			},
		},
	})

	// Registered states cannot fail transition wiring
	_ = m.AddTransition(stateMenu, event.EventGameStart, stateRunning, nil)
	_ = m.AddTransition(stateRunning, event.EventPlayerDestroyed, stateGameOver, nil)
	_ = m.AddTransition(stateGameOver, event.EventGameRestart, stateMenu, nil)

	return m
}
