package event

import "github.com/tilefall/game/internal/core/ecs"

// SpawnSource says which input produced a hazard.
type SpawnSource string

const (
	SourcePlayer  SpawnSource = "player"  // secondary action at the player's position
	SourcePointer SpawnSource = "pointer" // click translated from screen space
	SourceManual  SpawnSource = "manual"  // placed directly in world space by the host
)

type HazardSpawned struct {
	ID     ecs.EntityID
	X, Y   float64
	Source SpawnSource
}

type HazardExpired struct {
	ID   ecs.EntityID
	X, Y float64
}

// PlayerDefeated is emitted once, on the frame the player enters game over.
type PlayerDefeated struct {
	HazardID ecs.EntityID
	X, Y     float64
}
