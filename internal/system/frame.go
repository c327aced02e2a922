package system

import (
	"time"

	"github.com/tilefall/game/internal/input"
)

// Frame is the per-frame scratch state the systems share. The frame loop
// resets it before each tick; systems read and write it in phase order.
type Frame struct {
	Now     time.Time
	Input   input.State
	Click   input.Click
	Clicked bool

	// Attacked is set by PlayerSystem when an attack was accepted this frame.
	Attacked bool
	// Defeated is set by HazardSystem on the frame the player dies.
	Defeated bool
}

// Reset prepares f for a new frame at now.
func (f *Frame) Reset(now time.Time) {
	*f = Frame{Now: now}
}
