package world

import "github.com/tilefall/game/internal/gfx"

// RenderTerrain draws every layer bottom-to-top, one blit per visible cell,
// and returns the number of blits issued. Empty cells, unknown tile ids and
// tiles without a texture are skipped.
func (l *Level) RenderTerrain(b gfx.Blitter) int {
	tw, th := float64(l.TileWidth), float64(l.TileHeight)
	src := gfx.Rect{W: tw, H: th}

	n := 0
	for _, layer := range l.Layers {
		if len(layer.Data) != l.Cells() {
			continue
		}
		for i, idx := range layer.Data {
			if idx == 0 {
				continue
			}
			tile, ok := l.TileAt(idx - 1)
			if !ok || !tile.Texture.Valid() {
				continue
			}
			col, row := i%l.Width, i/l.Width
			b.Blit(tile.Texture, src, gfx.Rect{
				X: float64(col) * tw,
				Y: float64(row) * th,
				W: tw,
				H: th,
			})
			n++
		}
	}
	return n
}
