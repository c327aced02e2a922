// Package inputtest provides a scripted input.Source for tests.
package inputtest

import "github.com/tilefall/game/internal/input"

// Script returns Held on every Poll. A queued click is reported once.
type Script struct {
	Held   input.State
	clicks []input.Click
	Polls  int
}

func (s *Script) Poll() input.State {
	s.Polls++
	return s.Held
}

func (s *Script) Click() (input.Click, bool) {
	if len(s.clicks) == 0 {
		return input.Click{}, false
	}
	c := s.clicks[0]
	s.clicks = s.clicks[1:]
	return c, true
}

// QueueClick schedules a click for the next frame that asks for one.
func (s *Script) QueueClick(x, y float64) {
	s.clicks = append(s.clicks, input.Click{X: x, Y: y})
}
