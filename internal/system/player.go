package system

import (
	"time"

	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
)

// PlayerSystem applies the frame's input to the player controller.
// Phase 1 (Update).
//
// An attack with at most one direction held is accepted and replaces
// movement for the frame. With two or more directions held the attack is
// ambiguous and dropped, and the frame falls through to movement.
type PlayerSystem struct {
	player *world.Player
	bounds world.Bounds
	frame  *Frame
	log    *zap.Logger
}

func NewPlayerSystem(player *world.Player, bounds world.Bounds, frame *Frame, log *zap.Logger) *PlayerSystem {
	return &PlayerSystem{player: player, bounds: bounds, frame: frame, log: log}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

// Update receives the clamped frame delta.
func (s *PlayerSystem) Update(dt time.Duration) {
	in := s.frame.Input
	dir := world.Directions{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}

	if in.Attack {
		if in.Directions() <= 1 {
			s.player.Attack(dir)
			s.frame.Attacked = true
			return
		}
		s.log.Debug("ambiguous attack dropped", zap.Int("directions", in.Directions()))
	}
	s.player.Move(dir, in.Sprint, s.bounds, dt)
}
