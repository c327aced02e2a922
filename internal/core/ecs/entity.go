package ecs

import "sync/atomic"

// EntityID identifies a game object for the lifetime of the process.
// IDs are handed out monotonically and never reused; 0 is never assigned.
type EntityID uint64

func (id EntityID) IsZero() bool { return id == 0 }

// entityIDCounter backs NewEntityID. Package-level so that ids stay unique
// across every registry in the process, not just within one.
var entityIDCounter atomic.Uint64

// NewEntityID returns the next process-unique id.
func NewEntityID() EntityID {
	return EntityID(entityIDCounter.Add(1))
}
