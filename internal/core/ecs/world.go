package ecs

// World groups the component stores of one registry and a deferred
// destruction queue flushed by CleanupSystem each frame. Systems that find
// entities to delete while iterating mark them here instead of removing
// them mid-iteration.
type World struct {
	stores       []Removable
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		stores:       make([]Removable, 0, 4),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

// Register adds a component store so destruction clears it too.
func (w *World) Register(store Removable) {
	w.stores = append(w.stores, store)
}

// Destroy clears id from every registered store immediately.
func (w *World) Destroy(id EntityID) {
	for _, s := range w.stores {
		s.Remove(id)
	}
}

// MarkForDestruction queues an entity for end-of-frame cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending returns how many entities are queued for destruction.
func (w *World) Pending() int {
	return len(w.destroyQueue)
}

// FlushDestroyQueue destroys all queued entities and returns how many were
// processed. Ids queued twice, or already gone, are harmless.
func (w *World) FlushDestroyQueue() int {
	n := len(w.destroyQueue)
	for _, id := range w.destroyQueue {
		w.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
