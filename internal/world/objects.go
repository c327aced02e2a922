package world

import (
	"fmt"
	"iter"

	"github.com/tilefall/game/internal/core/ecs"
)

// Objects is the registry of all non-player game objects. A primary store
// holds every object; each capability has its own index store so
// per-capability iteration never inspects types. All stores keep insertion
// order.
type Objects struct {
	ecs   *ecs.World
	all   *ecs.PtrComponentStore[Object]
	byCap map[Capability]*ecs.PtrComponentStore[Object]
}

func NewObjects() *Objects {
	r := &Objects{
		ecs: ecs.NewWorld(),
		all: ecs.NewPtrComponentStore[Object](),
		byCap: map[Capability]*ecs.PtrComponentStore[Object]{
			CapRenderable: ecs.NewPtrComponentStore[Object](),
			CapTemporary:  ecs.NewPtrComponentStore[Object](),
		},
	}
	r.ecs.Register(r.all)
	for _, s := range r.byCap {
		r.ecs.Register(s)
	}
	return r
}

// Add inserts o. A zero or already registered id is a programming error
// and panics.
func (r *Objects) Add(o *Object) {
	if o == nil || o.ID.IsZero() {
		panic("world: Objects.Add with nil object or zero id")
	}
	if r.all.Has(o.ID) {
		panic(fmt.Sprintf("world: duplicate object id %d", o.ID))
	}
	r.all.Set(o.ID, o)
	for c, s := range r.byCap {
		if o.Has(c) {
			s.Set(o.ID, o)
		}
	}
}

// Remove deletes id from every index. Absent ids are ignored.
func (r *Objects) Remove(id ecs.EntityID) {
	r.ecs.Destroy(id)
}

// MarkForRemoval queues id for the next Flush.
func (r *Objects) MarkForRemoval(id ecs.EntityID) {
	r.ecs.MarkForDestruction(id)
}

// Flush removes every queued id and returns how many were queued.
func (r *Objects) Flush() int {
	return r.ecs.FlushDestroyQueue()
}

func (r *Objects) Get(id ecs.EntityID) (*Object, bool) {
	return r.all.Get(id)
}

func (r *Objects) Len() int { return r.all.Len() }

// All yields every object in insertion order.
func (r *Objects) All() iter.Seq[*Object] {
	return values(r.all)
}

// OfCapability yields the objects carrying c in insertion order. The
// sequence is lazy and may be ranged over repeatedly.
func (r *Objects) OfCapability(c Capability) iter.Seq[*Object] {
	s, ok := r.byCap[c]
	if !ok {
		return func(func(*Object) bool) {}
	}
	return values(s)
}

func values(s *ecs.PtrComponentStore[Object]) iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for _, o := range s.All() {
			if !yield(o) {
				return
			}
		}
	}
}
