package system

import (
	"time"

	coresys "github.com/tilefall/game/internal/core/system"
	"github.com/tilefall/game/internal/input"
)

// InputSystem snapshots the input port into the frame. Phase 0 (Input).
type InputSystem struct {
	src   input.Source
	frame *Frame
}

func NewInputSystem(src input.Source, frame *Frame) *InputSystem {
	return &InputSystem{src: src, frame: frame}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.frame.Input = s.src.Poll()
	s.frame.Click, s.frame.Clicked = s.src.Click()
}
