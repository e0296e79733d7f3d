package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/AidanMaskelyne/invaders/audio"
	"github.com/AidanMaskelyne/invaders/config"
	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
	"github.com/AidanMaskelyne/invaders/input"
	"github.com/AidanMaskelyne/invaders/render"
	"github.com/AidanMaskelyne/invaders/system"
)

func main() {
	configPath := flag.String("config", "invaders.yaml", "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session", sessionID))
	logger.Info("starting",
		zap.Float64("playfield_width", cfg.Playfield.Width),
		zap.Float64("playfield_height", cfg.Playfield.Height),
		zap.Bool("audio", cfg.Audio.Enabled))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.CrashCleanup = screen.Fini
	defer screen.Fini()

	var player engine.AudioPlayer
	if cfg.Audio.Enabled {
		manager := audio.NewManager(cfg.Audio.Volume)
		if err := manager.Initialize(); err != nil {
			return fmt.Errorf("init audio: %w", err)
		}
		defer manager.Cleanup()
		player = manager
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game, err := engine.NewGameContext(engine.Params{
		HalfWidth:     cfg.Playfield.Width / 2,
		HalfHeight:    cfg.Playfield.Height / 2,
		PlayerSpeed:   cfg.Player.Speed,
		BulletSpeed:   cfg.Bullet.Speed,
		ClampMargin:   cfg.Player.ClampMargin,
		TickInterval:  constant.TickInterval,
		KeyHoldWindow: constant.KeyHoldWindow,
		Audio:         player,
		Logger:        logger,
		OnQuit:        cancel,
	})
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	game.World.AddSystem(system.NewMovementSystem(game.World))
	game.World.AddSystem(system.NewCollisionSystem(game.World))
	game.World.AddSystem(system.NewCullSystem(game.World))
	game.Router.Register(system.NewScoreHandler(logger))
	game.Router.Register(system.NewAudioHandler())
	game.Start()

	renderer := render.NewTerminalRenderer(screen)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return game.Scheduler.Run(ctx)
	})

	// Terminal event pump; PollEvent blocks, so shutdown posts an interrupt
	g.Go(func() error {
		<-ctx.Done()
		return screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if key := input.MapTcellKey(ev); key != input.KeyNone {
					game.Keys.Feed(key, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventInterrupt:
				return nil
			case nil:
				return nil
			}
		}
	})

	// Render loop, decoupled from the fixed tick rate
	g.Go(func() error {
		ticker := time.NewTicker(constant.FrameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				renderer.RenderFrame(game)
			}
		}
	})

	err = g.Wait()
	logger.Info("stopped", zap.Uint64("ticks", game.Scheduler.TickCount()))
	return err
}

// newLogger builds a JSON file logger; the terminal is owned by the renderer
// so nothing may write to stdout or stderr while the game runs
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		level,
	)
	return zap.New(sink), nil
}
