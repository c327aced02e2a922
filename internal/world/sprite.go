package world

import (
	"time"

	"github.com/tilefall/game/internal/gfx"
)

// Animation is a named frame sequence within a sprite sheet.
type Animation struct {
	Name          string
	Frames        []int // frame indices, row-major over the sheet grid
	FrameDuration time.Duration
	Loop          bool
}

// SpriteSheet is a grid of equally sized frames in one image.
type SpriteSheet struct {
	Name        string
	Image       string
	FrameWidth  int
	FrameHeight int
	Columns     int
	Texture     gfx.Texture
	Animations  map[string]*Animation
}

// FrameRect returns the source rectangle of frame index i.
func (s *SpriteSheet) FrameRect(i int) gfx.Rect {
	cols := s.Columns
	if cols <= 0 {
		cols = 1
	}
	return gfx.Rect{
		X: float64((i % cols) * s.FrameWidth),
		Y: float64((i / cols) * s.FrameHeight),
		W: float64(s.FrameWidth),
		H: float64(s.FrameHeight),
	}
}

// Animator is the per-object playback state for a sprite sheet.
// A nil sheet is allowed and draws nothing.
type Animator struct {
	Sheet    *SpriteSheet
	current  *Animation
	frame    int
	elapsed  time.Duration
	finished bool
}

func NewAnimator(sheet *SpriteSheet) *Animator {
	return &Animator{Sheet: sheet}
}

// Play switches to the named animation and restarts it. Playing the
// animation that is already running is a no-op. Unknown names keep the
// current animation and report false.
func (a *Animator) Play(name string) bool {
	if a.Sheet == nil {
		return false
	}
	anim, ok := a.Sheet.Animations[name]
	if !ok {
		return false
	}
	if a.current == anim {
		return true
	}
	a.current = anim
	a.frame = 0
	a.elapsed = 0
	a.finished = false
	return true
}

// Current returns the name of the playing animation, or "".
func (a *Animator) Current() string {
	if a.current == nil {
		return ""
	}
	return a.current.Name
}

// Frame returns the cursor within the current animation.
func (a *Animator) Frame() int { return a.frame }

// Finished reports whether a non-looping animation reached its last frame.
func (a *Animator) Finished() bool { return a.finished }

// Advance moves playback forward by dt.
func (a *Animator) Advance(dt time.Duration) {
	anim := a.current
	if anim == nil || a.finished || len(anim.Frames) <= 1 || anim.FrameDuration <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= anim.FrameDuration {
		a.elapsed -= anim.FrameDuration
		if a.frame+1 < len(anim.Frames) {
			a.frame++
			continue
		}
		if !anim.Loop {
			a.finished = true
			a.elapsed = 0
			return
		}
		a.frame = 0
	}
}

// Draw blits the current frame centred on (x, y).
func (a *Animator) Draw(b gfx.Blitter, x, y float64) bool {
	if a.Sheet == nil || a.current == nil || !a.Sheet.Texture.Valid() || len(a.current.Frames) == 0 {
		return false
	}
	src := a.Sheet.FrameRect(a.current.Frames[a.frame])
	b.Blit(a.Sheet.Texture, src, gfx.Rect{
		X: x - src.W/2,
		Y: y - src.H/2,
		W: src.W,
		H: src.H,
	})
	return true
}
