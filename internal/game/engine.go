package game

import (
	"errors"
	"image/color"
	"time"

	"github.com/tilefall/game/internal/core/event"
	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/input"
	"github.com/tilefall/game/internal/system"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
)

// Clock is the wall-clock source for frame timing and object lifetimes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures an Engine.
type Options struct {
	Level       *world.Level
	Player      *world.Player
	HazardSheet *world.SpriteSheet

	Renderer gfx.Renderer
	Input    input.Source
	Clock    Clock // nil means the system clock
	Log      *zap.Logger

	HazardTTL  time.Duration // zero means DefaultHazardTTL
	Reach      float64       // hazard box half-size on each axis; zero means DefaultReach
	MinDelta   time.Duration // lower bound of the movement delta; zero means DefaultMinDelta
	Background color.Color
}

const (
	DefaultMinDelta  = 10 * time.Millisecond
	DefaultReach     = 32.0
	DefaultHazardTTL = 1500 * time.Millisecond
)

// Engine owns the session aggregate (level, player, object registry) and
// drives it one frame at a time. It is not safe for concurrent use; the
// host calls ProcessFrame then RenderFrame once per tick.
type Engine struct {
	level   *world.Level
	player  *world.Player
	objects *world.Objects

	renderer gfx.Renderer
	clock    Clock
	log      *zap.Logger
	bus      *event.Bus
	runner   *coresys.Runner
	spawner  *system.Spawner
	frame    system.Frame

	minDelta   time.Duration
	background color.Color
	last       time.Time
	frames     uint64
}

// New wires the frame systems around the given world. The level, renderer
// and input are required; zero tuning values take the Default constants.
// Without a player an inert stand-in is placed at the level centre as the
// camera target: it ignores input and hazards cannot defeat it.
func New(opts Options) (*Engine, error) {
	if opts.Level == nil {
		return nil, errors.New("engine: level is required")
	}
	if opts.Renderer == nil || opts.Input == nil {
		return nil, errors.New("engine: renderer and input are required")
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.MinDelta <= 0 {
		opts.MinDelta = DefaultMinDelta
	}
	if opts.Reach <= 0 {
		opts.Reach = DefaultReach
	}
	if opts.HazardTTL <= 0 {
		opts.HazardTTL = DefaultHazardTTL
	}

	e := &Engine{
		level:      opts.Level,
		player:     opts.Player,
		objects:    world.NewObjects(),
		renderer:   opts.Renderer,
		clock:      opts.Clock,
		log:        opts.Log,
		bus:        event.NewBus(),
		runner:     coresys.NewRunner(),
		minDelta:   opts.MinDelta,
		background: opts.Background,
	}
	// controlled stays nil for the stand-in so no system acts on it.
	controlled := opts.Player
	if e.player == nil {
		x, y := e.level.Center()
		e.player = world.NewPlayer(x, y, nil, world.PlayerTuning{})
	}
	e.spawner = system.NewSpawner(e.objects, system.HazardSpec{Sheet: opts.HazardSheet, TTL: opts.HazardTTL}, e.bus)

	e.runner.Register(system.NewInputSystem(opts.Input, &e.frame))
	if controlled != nil {
		e.runner.Register(system.NewPlayerSystem(controlled, e.level.Bounds(), &e.frame, e.log))
	}
	e.runner.Register(system.NewSpawnSystem(e.spawner, controlled, e.renderer, &e.frame))
	e.runner.Register(system.NewAnimationSystem(e.objects, controlled))
	e.runner.Register(system.NewHazardSystem(e.objects, controlled, opts.Reach, &e.frame, e.bus, e.log))
	e.runner.Register(system.NewCleanupSystem(e.objects))

	e.subscribe()
	e.log.Debug("frame systems registered",
		zap.Int("count", e.runner.Len()),
		zap.Stringers("phases", e.runner.Phases()),
	)
	e.last = e.clock.Now()
	return e, nil
}

func (e *Engine) subscribe() {
	event.Subscribe(e.bus, func(ev event.HazardSpawned) {
		e.log.Debug("hazard spawned",
			zap.Uint64("id", uint64(ev.ID)),
			zap.String("source", string(ev.Source)),
			zap.Float64("x", ev.X),
			zap.Float64("y", ev.Y),
		)
	})
	event.Subscribe(e.bus, func(ev event.HazardExpired) {
		e.log.Debug("hazard expired", zap.Uint64("id", uint64(ev.ID)))
	})
	event.Subscribe(e.bus, func(ev event.PlayerDefeated) {
		e.log.Info("game over",
			zap.Uint64("frame", e.frames),
			zap.Uint64("hazard", uint64(ev.HazardID)),
		)
	})
}

// ProcessFrame advances the simulation by the wall-clock time since the
// previous call. The delta handed to movement is never below MinDelta.
func (e *Engine) ProcessFrame() {
	now := e.clock.Now()
	dt := ClampDelta(now.Sub(e.last), e.minDelta)
	e.last = now
	e.frames++

	e.bus.SwapBuffers()
	e.bus.DispatchAll()

	e.frame.Reset(now)
	e.runner.Tick(dt)
}

// RenderFrame draws terrain, registry objects in insertion order, and the
// player on top, centred on the player.
func (e *Engine) RenderFrame() {
	r := e.renderer
	r.Clear(e.background)

	r.FocusCamera(e.player.X, e.player.Y)

	e.level.RenderTerrain(r)
	for o := range e.objects.OfCapability(world.CapRenderable) {
		o.Sprite.Draw(r, o.X, o.Y)
	}
	e.player.Sprite.Draw(r, e.player.X, e.player.Y)
	r.Present()
}

// SpawnHazard places a hazard at a world position outside the input path.
func (e *Engine) SpawnHazard(x, y float64) *world.Object {
	return e.spawner.Spawn(x, y, e.clock.Now(), event.SourceManual)
}

func (e *Engine) Player() *world.Player   { return e.player }
func (e *Engine) Objects() *world.Objects { return e.objects }
func (e *Engine) Level() *world.Level     { return e.level }
func (e *Engine) Frames() uint64          { return e.frames }

// LastFrame exposes the scratch state of the most recent frame.
func (e *Engine) LastFrame() system.Frame { return e.frame }

// ClampDelta returns elapsed, raised to floor when smaller. Very short
// frames still move the player by at least floor worth of velocity.
func ClampDelta(elapsed, floor time.Duration) time.Duration {
	if elapsed < floor {
		return floor
	}
	return elapsed
}
