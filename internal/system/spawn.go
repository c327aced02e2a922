package system

import (
	"time"

	"github.com/tilefall/game/internal/core/event"
	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/world"
)

// HazardSpec describes the hazards a Spawner creates.
type HazardSpec struct {
	Sheet *world.SpriteSheet
	TTL   time.Duration
}

// Spawner adds hazards to the registry and announces them on the bus.
type Spawner struct {
	objects *world.Objects
	spec    HazardSpec
	bus     *event.Bus
}

func NewSpawner(objects *world.Objects, spec HazardSpec, bus *event.Bus) *Spawner {
	return &Spawner{objects: objects, spec: spec, bus: bus}
}

// Spawn registers a hazard at world position (x, y) and returns it.
func (s *Spawner) Spawn(x, y float64, now time.Time, src event.SpawnSource) *world.Object {
	h := world.NewHazard(s.spec.Sheet, x, y, now, s.spec.TTL)
	s.objects.Add(h)
	event.Emit(s.bus, event.HazardSpawned{ID: h.ID, X: x, Y: y, Source: src})
	return h
}

// SpawnSystem turns the frame's spawn triggers into hazards. Phase 2 (Spawn).
//
// The secondary action spawns at the player's position, which is already in
// world space. A click arrives in screen space and is translated first.
type SpawnSystem struct {
	spawner *Spawner
	player  *world.Player
	screen  gfx.ScreenMapper
	frame   *Frame
}

func NewSpawnSystem(spawner *Spawner, player *world.Player, screen gfx.ScreenMapper, frame *Frame) *SpawnSystem {
	return &SpawnSystem{spawner: spawner, player: player, screen: screen, frame: frame}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	if s.frame.Input.Secondary && s.player != nil {
		s.spawner.Spawn(s.player.X, s.player.Y, s.frame.Now, event.SourcePlayer)
	}
	if s.frame.Clicked {
		x, y := s.screen.ScreenToWorld(s.frame.Click.X, s.frame.Click.Y)
		s.spawner.Spawn(x, y, s.frame.Now, event.SourcePointer)
	}
}
