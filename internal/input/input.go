package input

// State is an instantaneous snapshot of the controls polled once per frame.
type State struct {
	Up, Down, Left, Right bool
	Attack                bool
	Sprint                bool
	Secondary             bool // spawn a hazard at the player
}

// Directions returns how many of the four directional controls are held.
func (s State) Directions() int {
	n := 0
	for _, d := range [4]bool{s.Up, s.Down, s.Left, s.Right} {
		if d {
			n++
		}
	}
	return n
}

// Click is a pointer press in screen coordinates.
type Click struct {
	X, Y float64
}

// Source is the input port. Poll never blocks.
type Source interface {
	Poll() State
	// Click reports a pointer press since the previous frame, if any.
	Click() (Click, bool)
}
