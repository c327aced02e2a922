package system

import (
	"time"

	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/world"
)

// AnimationSystem advances sprite playback for every renderable object and
// the player. Phase 3 (Animate).
type AnimationSystem struct {
	objects *world.Objects
	player  *world.Player
}

func NewAnimationSystem(objects *world.Objects, player *world.Player) *AnimationSystem {
	return &AnimationSystem{objects: objects, player: player}
}

func (s *AnimationSystem) Phase() coresys.Phase { return coresys.PhaseAnimate }

func (s *AnimationSystem) Update(dt time.Duration) {
	for o := range s.objects.OfCapability(world.CapRenderable) {
		o.Sprite.Advance(dt)
	}
	if s.player != nil {
		s.player.Sprite.Advance(dt)
	}
}
