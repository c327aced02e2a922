// Package gfxtest provides a recording gfx.Renderer for tests.
package gfxtest

import (
	"fmt"
	"image/color"

	"github.com/tilefall/game/internal/gfx"
)

// Blit is one recorded draw call.
type Blit struct {
	Tex      gfx.Texture
	Src, Dst gfx.Rect
}

// Recorder records every call made through the gfx.Renderer port. Screen
// coordinates map to world coordinates by adding Offset.
type Recorder struct {
	Textures map[string]gfx.Texture
	Fail     map[string]bool // paths whose LoadTexture fails

	Blits    []Blit
	Cleared  []color.Color
	Focus    [][2]float64
	Presents int
	OffsetX  float64
	OffsetY  float64

	next gfx.Texture
}

func NewRecorder() *Recorder {
	return &Recorder{
		Textures: make(map[string]gfx.Texture),
		Fail:     make(map[string]bool),
	}
}

func (r *Recorder) LoadTexture(path string) (gfx.Texture, error) {
	if r.Fail[path] {
		return gfx.NoTexture, fmt.Errorf("load %s: not found", path)
	}
	if t, ok := r.Textures[path]; ok {
		return t, nil
	}
	r.next++
	r.Textures[path] = r.next
	return r.next, nil
}

func (r *Recorder) Blit(tex gfx.Texture, src, dst gfx.Rect) {
	r.Blits = append(r.Blits, Blit{Tex: tex, Src: src, Dst: dst})
}

func (r *Recorder) FocusCamera(x, y float64) {
	r.Focus = append(r.Focus, [2]float64{x, y})
}

func (r *Recorder) Clear(c color.Color) {
	r.Cleared = append(r.Cleared, c)
}

func (r *Recorder) Present() { r.Presents++ }

func (r *Recorder) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + r.OffsetX, sy + r.OffsetY
}

// Reset forgets recorded draw calls but keeps loaded textures.
func (r *Recorder) Reset() {
	r.Blits = r.Blits[:0]
	r.Cleared = r.Cleared[:0]
	r.Focus = r.Focus[:0]
	r.Presents = 0
}
