package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// tileEntry is one tile record in a tileset document.
type tileEntry struct {
	ID          int    `yaml:"id"`
	Image       string `yaml:"image"`
	ImageWidth  int    `yaml:"imagewidth"`
	ImageHeight int    `yaml:"imageheight"`
}

type tileSetFile struct {
	Tiles []tileEntry `yaml:"tiles"`
}

// TileSetCache loads each tileset source at most once. Every level that
// references the same source gets the same *world.TileSet.
type TileSetCache struct {
	root     string
	textures gfx.TextureLoader
	log      *zap.Logger
	sets     map[string]*world.TileSet
}

func NewTileSetCache(root string, textures gfx.TextureLoader, log *zap.Logger) *TileSetCache {
	return &TileSetCache{
		root:     root,
		textures: textures,
		log:      log,
		sets:     make(map[string]*world.TileSet, 4),
	}
}

// Count returns the number of distinct tilesets loaded.
func (c *TileSetCache) Count() int {
	return len(c.sets)
}

// Get returns the tileset for source, loading it on first use. Tiles with
// an empty image or an image that fails to load are logged and left out.
func (c *TileSetCache) Get(source string) (*world.TileSet, error) {
	key := filepath.ToSlash(filepath.Clean(source))
	if ts, ok := c.sets[key]; ok {
		return ts, nil
	}

	path := filepath.Join(c.root, key)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tileset %s: %w", path, err)
	}
	var f tileSetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse tileset %s: %w", path, err)
	}

	ts := &world.TileSet{Source: key, Tiles: make([]world.Tile, 0, len(f.Tiles))}
	for _, e := range f.Tiles {
		if e.Image == "" {
			c.log.Warn("tile without image skipped",
				zap.String("tileset", key),
				zap.Int("tile_id", e.ID),
			)
			continue
		}
		tex, err := c.textures.LoadTexture(filepath.Join(c.root, e.Image))
		if err != nil {
			c.log.Warn("tile image unusable, skipped",
				zap.String("tileset", key),
				zap.Int("tile_id", e.ID),
				zap.String("image", e.Image),
				zap.Error(err),
			)
			continue
		}
		ts.Tiles = append(ts.Tiles, world.Tile{
			ID:      e.ID,
			Image:   e.Image,
			Width:   e.ImageWidth,
			Height:  e.ImageHeight,
			Texture: tex,
		})
	}
	c.sets[key] = ts
	return ts, nil
}
