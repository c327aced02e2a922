package world

import (
	"math"
	"time"

	"github.com/tilefall/game/internal/core/ecs"
)

// Capability is a behavioural facet an object may have.
type Capability uint8

const (
	CapRenderable Capability = iota + 1
	CapTemporary
)

func (c Capability) String() string {
	switch c {
	case CapRenderable:
		return "renderable"
	case CapTemporary:
		return "temporary"
	}
	return "unknown"
}

// AnimExplode is played by hazards on spawn.
const AnimExplode = "Explode"

// Lifetime gives an object a time to live measured from its spawn time.
type Lifetime struct {
	Spawned time.Time
	TTL     time.Duration
}

// Expired reports whether now is at or past spawn time plus TTL.
func (l *Lifetime) Expired(now time.Time) bool {
	return now.Sub(l.Spawned) >= l.TTL
}

// Object is a registry entry. Capability fields are nil when the object
// lacks that capability.
type Object struct {
	ID   ecs.EntityID
	X, Y float64

	Sprite   *Animator // renderable
	Lifetime *Lifetime // temporary
}

// Has reports whether the object carries capability c.
func (o *Object) Has(c Capability) bool {
	switch c {
	case CapRenderable:
		return o.Sprite != nil
	case CapTemporary:
		return o.Lifetime != nil
	}
	return false
}

// Near reports whether (x, y) lies strictly within reach of the object on
// both axes. This is a box test, not a radius.
func (o *Object) Near(x, y, reach float64) bool {
	return math.Abs(o.X-x) < reach && math.Abs(o.Y-y) < reach
}

// NewHazard builds a renderable temporary object that plays the Explode
// animation from now until now+ttl.
func NewHazard(sheet *SpriteSheet, x, y float64, now time.Time, ttl time.Duration) *Object {
	anim := NewAnimator(sheet)
	anim.Play(AnimExplode)
	return &Object{
		ID:       ecs.NewEntityID(),
		X:        x,
		Y:        y,
		Sprite:   anim,
		Lifetime: &Lifetime{Spawned: now, TTL: ttl},
	}
}
