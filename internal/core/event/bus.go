package event

import (
	"reflect"
	"sync"
)

// Bus is a double-buffered event bus. Events emitted in frame N are
// delivered in frame N+1, in emission order, when the frame loop calls
// SwapBuffers followed by DispatchAll.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    []any
	back     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]any, 0, 16),
		back:     make([]any, 0, 16),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer (delivered next frame).
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, event)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers rotates back to front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// Pending returns the number of events waiting for the next swap.
func (b *Bus) Pending() int { return len(b.back) }

// DispatchAll delivers every front-buffer event to its handlers and returns
// how many events were delivered. Events without handlers are dropped.
func (b *Bus) DispatchAll() int {
	n := 0
	for _, ev := range b.front {
		hs := b.handlers[reflect.TypeOf(ev)]
		for _, h := range hs {
			h(ev)
		}
		if len(hs) > 0 {
			n++
		}
	}
	return n
}
