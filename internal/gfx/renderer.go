// Package gfx defines the drawing port consumed by the simulation core.
// Concrete backends live under internal/platform.
package gfx

import "image/color"

// Texture is an opaque handle issued by a Renderer. NoTexture marks an
// asset whose image failed to load; draws with it are skipped.
type Texture int

const NoTexture Texture = 0

func (t Texture) Valid() bool { return t != NoTexture }

// Rect is an axis-aligned rectangle in pixels (source) or world units (destination).
type Rect struct {
	X, Y, W, H float64
}

// TextureLoader uploads an image file and returns its handle.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
}

// Blitter copies a source rectangle of a texture to a destination
// rectangle in world space.
type Blitter interface {
	Blit(tex Texture, src, dst Rect)
}

// ScreenMapper converts screen coordinates into world coordinates using
// the current camera.
type ScreenMapper interface {
	ScreenToWorld(sx, sy float64) (x, y float64)
}

// Renderer is the full drawing port.
type Renderer interface {
	TextureLoader
	Blitter
	ScreenMapper
	FocusCamera(x, y float64)
	Clear(c color.Color)
	Present()
}
