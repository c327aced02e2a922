package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// levelFile mirrors the tile-map description. JSON documents parse too,
// since yaml.v3 accepts JSON input.
type levelFile struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	TileWidth  int `yaml:"tilewidth"`
	TileHeight int `yaml:"tileheight"`
	TileSets   []struct {
		Source string `yaml:"source"`
	} `yaml:"tilesets"`
	Layers []struct {
		Name string `yaml:"name"`
		Data []int  `yaml:"data"`
	} `yaml:"layers"`
}

// LoadLevel reads a tile-map description at root/path and resolves its
// tilesets through cache. An unreadable document or non-positive
// dimensions fail the load; bad tilesets and layers are logged and skipped.
func LoadLevel(root, path string, cache *TileSetCache, log *zap.Logger) (*world.Level, error) {
	full := filepath.Join(root, path)
	raw, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", full, err)
	}
	var f levelFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", full, err)
	}
	if f.Width <= 0 || f.Height <= 0 || f.TileWidth <= 0 || f.TileHeight <= 0 {
		return nil, fmt.Errorf("level %s: invalid dimensions %dx%d tiles of %dx%d",
			full, f.Width, f.Height, f.TileWidth, f.TileHeight)
	}

	lvl := &world.Level{
		Width:      f.Width,
		Height:     f.Height,
		TileWidth:  f.TileWidth,
		TileHeight: f.TileHeight,
		TileSets:   make([]world.TileSetRef, 0, len(f.TileSets)),
		Layers:     make([]world.Layer, 0, len(f.Layers)),
	}

	for _, ref := range f.TileSets {
		if ref.Source == "" {
			log.Warn("tileset reference without source skipped", zap.String("level", path))
			continue
		}
		ts, err := cache.Get(ref.Source)
		if err != nil {
			log.Warn("tileset skipped", zap.String("level", path), zap.Error(err))
			continue
		}
		lvl.TileSets = append(lvl.TileSets, world.TileSetRef{Source: ts.Source, TileSet: ts})
	}

	for i, l := range f.Layers {
		if len(l.Data) != lvl.Cells() {
			log.Warn("layer size mismatch, skipped",
				zap.String("level", path),
				zap.Int("layer", i),
				zap.String("name", l.Name),
				zap.Int("cells", len(l.Data)),
				zap.Int("want", lvl.Cells()),
			)
			continue
		}
		lvl.Layers = append(lvl.Layers, world.Layer{Name: l.Name, Data: l.Data})
	}

	log.Info("level loaded",
		zap.String("level", path),
		zap.Int("width", lvl.Width),
		zap.Int("height", lvl.Height),
		zap.Int("layers", len(lvl.Layers)),
		zap.Int("tilesets", len(lvl.TileSets)),
	)
	return lvl, nil
}
