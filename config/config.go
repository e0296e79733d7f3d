package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AidanMaskelyne/invaders/constant"
)

// Config holds the tunable game settings loaded at startup
// All values are static after load; systems read them through the world's
// config resource
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`
}

// PlayfieldConfig describes the logical simulation space
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig tunes player movement
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`
	ClampMargin float64 `yaml:"clamp_margin"`
}

// BulletConfig tunes bullet movement
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig controls the file sink
// Logging goes to a file because the terminal is owned by the renderer
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Playfield: PlayfieldConfig{
			Width:  constant.PlayfieldWidth,
			Height: constant.PlayfieldHeight,
		},
		Player: PlayerConfig{
			Speed:       constant.PlayerSpeed,
			ClampMargin: constant.PlayerClampMargin,
		},
		Bullet: BulletConfig{
			Speed: constant.BulletSpeed,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Log: LogConfig{
			Path:  "invaders.log",
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, overlaying the defaults
// A missing file is not an error; a malformed or invalid one is
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects geometry and tuning values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield dimensions must be positive, got %gx%g",
			c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %g", c.Player.Speed)
	}
	if c.Player.ClampMargin < 0 || c.Player.ClampMargin*2 >= c.Playfield.Width {
		return fmt.Errorf("clamp margin %g does not fit playfield width %g",
			c.Player.ClampMargin, c.Playfield.Width)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %g", c.Bullet.Speed)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0,1], got %g", c.Audio.Volume)
	}
	return nil
}
