package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tilefall/game/internal/config"
	"github.com/tilefall/game/internal/data"
	"github.com/tilefall/game/internal/game"
	platform "github.com/tilefall/game/internal/platform/ebiten"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

var numbers = message.NewPrinter(language.English)

func printBanner(title string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              tilefall  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mwindow:\033[0m %s\n\n", title)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := numbers.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main game logic ────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/tilefall.toml"
	if p := os.Getenv("TILEFALL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Window.Title)

	// 3. Backend: textures must be loaded through it before the loop starts
	host := platform.New(cfg.Window, log)

	// 4. Load level and sprite sheets
	printSection("assets")

	tilesets := data.NewTileSetCache(cfg.Assets.Root, host, log)
	level, err := data.LoadLevel(cfg.Assets.Root, cfg.Assets.Map, tilesets, log)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	printStat("layers", len(level.Layers))
	printStat("tilesets", tilesets.Count())
	printStat("cells", level.Cells())

	playerSheet := data.LoadSpriteSheetOrNil(cfg.Assets.Root, cfg.Assets.PlayerSheet, host, log)
	hazardSheet := data.LoadSpriteSheetOrNil(cfg.Assets.Root, cfg.Assets.HazardSheet, host, log)
	sheets := 0
	for _, s := range []*world.SpriteSheet{playerSheet, hazardSheet} {
		if s != nil {
			sheets++
		}
	}
	printStat("sprite sheets", sheets)
	fmt.Println()

	// 5. Player and engine
	printSection("session")

	x, y := level.Center()
	if cfg.Player.SpawnX >= 0 && cfg.Player.SpawnY >= 0 {
		x, y = cfg.Player.SpawnX, cfg.Player.SpawnY
	}
	player := world.NewPlayer(x, y, playerSheet, world.PlayerTuning{
		Speed:            cfg.Player.Speed,
		SprintMultiplier: cfg.Player.SprintMultiplier,
	})

	eng, err := game.New(game.Options{
		Level:       level,
		Player:      player,
		HazardSheet: hazardSheet,
		Renderer:    host,
		Input:       host,
		Log:         log,
		HazardTTL:   cfg.Hazard.TTL,
		Reach:       cfg.Hazard.Proximity,
		MinDelta:    cfg.Frame.MinDelta,
		Background:  cfg.BackgroundColor(),
	})
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	printOK(fmt.Sprintf("player at (%.0f, %.0f)", x, y))
	printReady(fmt.Sprintf("%dx%d @ %d tps", cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS))
	fmt.Println()

	log.Info("game starting",
		zap.String("map", cfg.Assets.Map),
		zap.Duration("hazard_ttl", cfg.Hazard.TTL),
	)

	// 6. Run until the window closes
	if err := host.Run(eng); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("game stopped", zap.Uint64("frames", eng.Frames()))
	return nil
}

// newLogger builds the process logger. "json" selects zap's production
// encoder; "console" (or empty) a coloured, caller-free development one.
// An unparsable level falls back to info.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
		zapCfg.InitialFields = map[string]any{"app": "tilefall"}
	case "console", "":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("log format %q: want json or console", cfg.Format)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
