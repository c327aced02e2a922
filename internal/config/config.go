package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Window  WindowConfig  `toml:"window" envPrefix:"WINDOW_"`
	Assets  AssetsConfig  `toml:"assets" envPrefix:"ASSETS_"`
	Player  PlayerConfig  `toml:"player" envPrefix:"PLAYER_"`
	Hazard  HazardConfig  `toml:"hazard" envPrefix:"HAZARD_"`
	Frame   FrameConfig   `toml:"frame" envPrefix:"FRAME_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOG_"`
}

type WindowConfig struct {
	Title  string `toml:"title" env:"TITLE"`
	Width  int    `toml:"width" env:"WIDTH"`
	Height int    `toml:"height" env:"HEIGHT"`
	TPS    int    `toml:"tps" env:"TPS"` // ticks per second requested from the backend
}

type AssetsConfig struct {
	Root        string `toml:"root" env:"ROOT"`
	Map         string `toml:"map" env:"MAP"` // relative to Root
	PlayerSheet string `toml:"player_sheet" env:"PLAYER_SHEET"`
	HazardSheet string `toml:"hazard_sheet" env:"HAZARD_SHEET"`
}

type PlayerConfig struct {
	Speed            float64 `toml:"speed" env:"SPEED"` // world units per second
	SprintMultiplier float64 `toml:"sprint_multiplier" env:"SPRINT_MULTIPLIER"`
	// Spawn position; negative values mean the level centre.
	SpawnX float64 `toml:"spawn_x" env:"SPAWN_X"`
	SpawnY float64 `toml:"spawn_y" env:"SPAWN_Y"`
}

type HazardConfig struct {
	TTL       time.Duration `toml:"ttl" env:"TTL"`
	Proximity float64       `toml:"proximity" env:"PROXIMITY"` // box half-size, world units
}

type FrameConfig struct {
	MinDelta   time.Duration `toml:"min_delta" env:"MIN_DELTA"`
	Background string        `toml:"background" env:"BACKGROUND"` // "#rrggbb"
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults, then applies
// TILEFALL_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TILEFALL_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Player.Speed < 0 || c.Player.SprintMultiplier < 1 {
		return fmt.Errorf("player speed %v / sprint multiplier %v out of range", c.Player.Speed, c.Player.SprintMultiplier)
	}
	if c.Hazard.TTL < 0 || c.Hazard.Proximity <= 0 {
		return fmt.Errorf("hazard ttl %v / proximity %v out of range", c.Hazard.TTL, c.Hazard.Proximity)
	}
	if c.Frame.MinDelta <= 0 {
		return fmt.Errorf("frame min_delta %v must be positive", c.Frame.MinDelta)
	}
	if _, err := ParseColor(c.Frame.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed clear colour. Load has already
// validated it.
func (c *Config) BackgroundColor() color.RGBA {
	rgba, _ := ParseColor(c.Frame.Background)
	return rgba
}

// ParseColor parses "#rrggbb" into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "tilefall",
			Width:  960,
			Height: 640,
			TPS:    60,
		},
		Assets: AssetsConfig{
			Root:        "assets",
			Map:         "maps/level1.yaml",
			PlayerSheet: "player",
			HazardSheet: "explosion",
		},
		Player: PlayerConfig{
			Speed:            120,
			SprintMultiplier: 1.8,
			SpawnX:           -1,
			SpawnY:           -1,
		},
		Hazard: HazardConfig{
			TTL:       1500 * time.Millisecond,
			Proximity: 32,
		},
		Frame: FrameConfig{
			MinDelta:   10 * time.Millisecond,
			Background: "#1e1e28",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
