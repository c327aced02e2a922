package world

import "github.com/tilefall/game/internal/gfx"

// Tile is one image in a tileset. Texture is assigned once at load.
type Tile struct {
	ID      int
	Image   string // path relative to the asset root
	Width   int
	Height  int
	Texture gfx.Texture
}

// TileSet is loaded at most once per source and shared by every level
// that references it.
type TileSet struct {
	Source string
	Tiles  []Tile
}

// TileSetRef is a level's reference to a shared tileset.
type TileSetRef struct {
	Source  string
	TileSet *TileSet
}

// Layer holds one tile index per grid cell, row-major: data[row*width+col].
// Index 0 is empty; any other index is tile id + 1.
type Layer struct {
	Name string
	Data []int
}

// Bounds is the rectangle [0,W] x [0,H] in world units.
type Bounds struct {
	W, H float64
}

// Level is the static tile world. Dimensions are fixed after load.
type Level struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []Layer
	TileSets   []TileSetRef
}

// Cells returns width*height, the required length of every layer.
func (l *Level) Cells() int {
	return l.Width * l.Height
}

// Bounds returns the world-space size of the level.
func (l *Level) Bounds() Bounds {
	return Bounds{
		W: float64(l.Width * l.TileWidth),
		H: float64(l.Height * l.TileHeight),
	}
}

// TileAt finds a tile by id across all tilesets, in reference order.
// A missing id reports false; terrain rendering skips such cells.
func (l *Level) TileAt(id int) (Tile, bool) {
	for _, ref := range l.TileSets {
		if ref.TileSet == nil {
			continue
		}
		for _, t := range ref.TileSet.Tiles {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Tile{}, false
}

// Center returns the middle of the level in world units.
func (l *Level) Center() (x, y float64) {
	b := l.Bounds()
	return b.W / 2, b.H / 2
}
