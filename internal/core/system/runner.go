package system

import (
	"slices"
	"sort"
	"time"
)

// Runner executes systems in phase order each frame. Systems are kept
// sorted on Register; within a phase, registration order holds.
type Runner struct {
	systems []System
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	i := sort.Search(len(r.systems), func(i int) bool {
		return r.systems[i].Phase() > s.Phase()
	})
	r.systems = slices.Insert(r.systems, i, s)
}

func (r *Runner) Len() int { return len(r.systems) }

// Phases lists the phase of every registered system in run order.
func (r *Runner) Phases() []Phase {
	out := make([]Phase, len(r.systems))
	for i, s := range r.systems {
		out[i] = s.Phase()
	}
	return out
}

func (r *Runner) Tick(dt time.Duration) {
	for _, s := range r.systems {
		s.Update(dt)
	}
}

// TickPhase runs only the systems registered for phase.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(dt)
		}
	}
}
