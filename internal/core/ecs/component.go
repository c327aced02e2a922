package ecs

import (
	"iter"
	"slices"
)

// Removable is implemented by all component stores so the World can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// PtrComponentStore is a generic typed store keyed by EntityID.
// Unlike a plain map it remembers insertion order, so iteration is stable
// from frame to frame and draw order follows spawn order.
type PtrComponentStore[T any] struct {
	index map[EntityID]int
	ids   []EntityID
	data  []*T
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		index: make(map[EntityID]int, 64),
		ids:   make([]EntityID, 0, 64),
		data:  make([]*T, 0, 64),
	}
}

// Set stores c under id. An existing entry is replaced in place and keeps
// its position in the iteration order.
func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

// Remove deletes id from the store. Removing an absent id is a no-op.
func (s *PtrComponentStore[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.ids = slices.Delete(s.ids, i, i+1)
	s.data = slices.Delete(s.data, i, i+1)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.ids)
}

// All yields entries in insertion order. The sequence reads the store when
// it is ranged over, so it can be restarted and always sees current contents.
// Callers must not Set or Remove while ranging; collect ids first.
func (s *PtrComponentStore[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i, id := range s.ids {
			if !yield(id, s.data[i]) {
				return
			}
		}
	}
}

// Each calls fn for every entry in insertion order.
func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.All() {
		fn(id, c)
	}
}
