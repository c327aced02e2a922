package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frame.MinDelta != 10*time.Millisecond {
		t.Fatalf("min_delta = %v", cfg.Frame.MinDelta)
	}
	if cfg.Hazard.Proximity != 32 {
		t.Fatalf("proximity = %v", cfg.Hazard.Proximity)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("format = %q", cfg.Logging.Format)
	}
}

func TestLoadOverlaysFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tilefall.toml")
	body := `
[window]
title = "test"

[player]
speed = 200.0

[hazard]
ttl = "3s"

[frame]
background = "#102030"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TILEFALL_LOG_FORMAT", "json")
	t.Setenv("TILEFALL_PLAYER_SPRINT_MULTIPLIER", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "test" || cfg.Window.Width != 960 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Player.Speed != 200 || cfg.Player.SprintMultiplier != 3 {
		t.Fatalf("player = %+v", cfg.Player)
	}
	if cfg.Hazard.TTL != 3*time.Second {
		t.Fatalf("ttl = %v", cfg.Hazard.TTL)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if got := cfg.BackgroundColor(); got != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Fatalf("background = %+v", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":     "[window\n",
		"background": "[frame]\nbackground = \"blue\"\n",
		"min_delta":  "[frame]\nmin_delta = \"0s\"\n",
		"sprint":     "[player]\nsprint_multiplier = 0.5\n",
		"proximity":  "[hazard]\nproximity = 0.0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load succeeded, want error")
			}
		})
	}
}
