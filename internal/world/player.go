package world

import (
	"math"
	"time"

	"github.com/tilefall/game/internal/core/ecs"
)

// PlayerState is the controller state. GameOver is terminal.
type PlayerState uint8

const (
	StateIdle PlayerState = iota
	StateMoving
	StateAttacking
	StateGameOver
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateAttacking:
		return "attacking"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Facing is the direction the player looks in.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "Up"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	}
	return "Down"
}

// AnimDead is played once on game over.
const AnimDead = "Dead"

// Directions is the four-way control input. World y grows downward, so Up
// moves towards y = 0.
type Directions struct {
	Up, Down, Left, Right bool
}

// PlayerTuning holds the movement constants.
type PlayerTuning struct {
	Speed            float64 // world units per second along one axis
	SprintMultiplier float64
}

// Player is the single player-controlled object of a session.
type Player struct {
	Object

	VX, VY    float64
	Sprinting bool

	tuning PlayerTuning
	state  PlayerState
	facing Facing
}

func NewPlayer(x, y float64, sheet *SpriteSheet, tuning PlayerTuning) *Player {
	p := &Player{
		Object: Object{
			ID:     ecs.NewEntityID(),
			X:      x,
			Y:      y,
			Sprite: NewAnimator(sheet),
		},
		tuning: tuning,
	}
	p.playPose("Idle")
	return p
}

func (p *Player) State() PlayerState { return p.state }
func (p *Player) Facing() Facing     { return p.facing }
func (p *Player) IsGameOver() bool   { return p.state == StateGameOver }

// Move integrates one frame of movement and clamps the result to bounds.
// Opposing directions cancel; diagonal speed equals axis speed.
func (p *Player) Move(dir Directions, sprint bool, bounds Bounds, dt time.Duration) {
	if p.IsGameOver() {
		return
	}

	dx, dy := axis(dir.Left, dir.Right), axis(dir.Up, dir.Down)
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	speed := p.tuning.Speed
	if sprint {
		speed *= p.tuning.SprintMultiplier
	}
	p.VX, p.VY = dx*speed, dy*speed
	p.Sprinting = sprint

	secs := dt.Seconds()
	x := clamp(p.X+p.VX*secs, 0, bounds.W)
	y := clamp(p.Y+p.VY*secs, 0, bounds.H)
	if isFinite(x) && isFinite(y) {
		p.X, p.Y = x, y
	}

	if p.VX == 0 && p.VY == 0 {
		p.state = StateIdle
		p.playPose("Idle")
		return
	}
	p.facing = facingFor(dx, dy, p.facing)
	p.state = StateMoving
	p.playPose("Walk")
}

// Attack switches to the attack pose. At most one direction may be set;
// with none the current facing is kept. Position does not change.
func (p *Player) Attack(dir Directions) {
	if p.IsGameOver() {
		return
	}
	switch {
	case dir.Up:
		p.facing = FacingUp
	case dir.Down:
		p.facing = FacingDown
	case dir.Left:
		p.facing = FacingLeft
	case dir.Right:
		p.facing = FacingRight
	}
	p.VX, p.VY = 0, 0
	p.state = StateAttacking
	p.playPose("Attack")
}

// GameOver enters the terminal state. Repeated calls are no-ops.
func (p *Player) GameOver() bool {
	if p.IsGameOver() {
		return false
	}
	p.state = StateGameOver
	p.VX, p.VY = 0, 0
	p.Sprinting = false
	p.Sprite.Play(AnimDead)
	return true
}

func (p *Player) playPose(pose string) {
	p.Sprite.Play(pose + p.facing.String())
}

func axis(neg, pos bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// facingFor prefers the horizontal component when moving diagonally.
func facingFor(dx, dy float64, cur Facing) Facing {
	switch {
	case dx < 0:
		return FacingLeft
	case dx > 0:
		return FacingRight
	case dy < 0:
		return FacingUp
	case dy > 0:
		return FacingDown
	}
	return cur
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
