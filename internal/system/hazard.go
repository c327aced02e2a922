package system

import (
	"time"

	"github.com/tilefall/game/internal/core/ecs"
	"github.com/tilefall/game/internal/core/event"
	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
)

// HazardSystem finds expired temporary objects, ends the game if one
// expires within reach of the player on both axes, and queues every expired
// object for removal. Phase 4 (Reap).
//
// Expired objects are collected first and only then acted on, so the
// registry is never mutated while it is being ranged over.
type HazardSystem struct {
	objects *world.Objects
	player  *world.Player
	reach   float64
	frame   *Frame
	bus     *event.Bus
	log     *zap.Logger

	expired []*world.Object
}

func NewHazardSystem(objects *world.Objects, player *world.Player, reach float64, frame *Frame, bus *event.Bus, log *zap.Logger) *HazardSystem {
	return &HazardSystem{
		objects: objects,
		player:  player,
		reach:   reach,
		frame:   frame,
		bus:     bus,
		log:     log,
		expired: make([]*world.Object, 0, 8),
	}
}

func (s *HazardSystem) Phase() coresys.Phase { return coresys.PhaseReap }

func (s *HazardSystem) Update(_ time.Duration) {
	s.expired = s.expired[:0]
	for o := range s.objects.OfCapability(world.CapTemporary) {
		if o.Lifetime.Expired(s.frame.Now) {
			s.expired = append(s.expired, o)
		}
	}

	for _, o := range s.expired {
		if s.player != nil && o.Near(s.player.X, s.player.Y, s.reach) {
			s.defeat(o.ID)
		}
		s.objects.MarkForRemoval(o.ID)
		event.Emit(s.bus, event.HazardExpired{ID: o.ID, X: o.X, Y: o.Y})
	}
}

func (s *HazardSystem) defeat(hazard ecs.EntityID) {
	if !s.player.GameOver() {
		return
	}
	s.frame.Defeated = true
	s.log.Info("player defeated",
		zap.Uint64("hazard", uint64(hazard)),
		zap.Float64("x", s.player.X),
		zap.Float64("y", s.player.Y),
	)
	event.Emit(s.bus, event.PlayerDefeated{HazardID: hazard, X: s.player.X, Y: s.player.Y})
}
