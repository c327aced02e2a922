package system

import (
	"time"

	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/world"
)

// CleanupSystem flushes the deferred removal queue at frame end.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	objects *world.Objects
	removed int
}

func NewCleanupSystem(objects *world.Objects) *CleanupSystem {
	return &CleanupSystem{objects: objects}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.removed += s.objects.Flush()
}

// Removed returns the total number of objects removed so far.
func (s *CleanupSystem) Removed() int { return s.removed }
