package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput   Phase = iota // 0: snapshot input
	PhaseUpdate               // 1: player attack / movement
	PhaseSpawn                // 2: spawn requested hazards
	PhaseAnimate              // 3: advance sprite animations
	PhaseReap                 // 4: expiry scan + hazard check
	PhaseCleanup              // 5: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseSpawn:
		return "spawn"
	case PhaseAnimate:
		return "animate"
	case PhaseReap:
		return "reap"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
