package data

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type animationEntry struct {
	Name          string        `yaml:"name"`
	Frames        []int         `yaml:"frames"`
	FrameDuration time.Duration `yaml:"frame_duration"`
	Loop          bool          `yaml:"loop"`
}

type spriteSheetFile struct {
	Image       string           `yaml:"image"`
	FrameWidth  int              `yaml:"frame_width"`
	FrameHeight int              `yaml:"frame_height"`
	Columns     int              `yaml:"columns"`
	Animations  []animationEntry `yaml:"animations"`
}

// SpritePath returns the description path for a named sheet, relative to
// the asset root.
func SpritePath(name string) string {
	return filepath.Join("sprites", name+".yaml")
}

// LoadSpriteSheet reads the named sheet from root/sprites/<name>.yaml and
// uploads its image.
func LoadSpriteSheet(root, name string, textures gfx.TextureLoader) (*world.SpriteSheet, error) {
	path := filepath.Join(root, SpritePath(name))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite sheet %s: %w", path, err)
	}
	var f spriteSheetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse sprite sheet %s: %w", path, err)
	}
	if f.Image == "" || f.FrameWidth <= 0 || f.FrameHeight <= 0 {
		return nil, fmt.Errorf("sprite sheet %s: image and frame size are required", path)
	}

	tex, err := textures.LoadTexture(filepath.Join(root, f.Image))
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", name, err)
	}

	sheet := &world.SpriteSheet{
		Name:        name,
		Image:       f.Image,
		FrameWidth:  f.FrameWidth,
		FrameHeight: f.FrameHeight,
		Columns:     f.Columns,
		Texture:     tex,
		Animations:  make(map[string]*world.Animation, len(f.Animations)),
	}
	for _, a := range f.Animations {
		if a.Name == "" || len(a.Frames) == 0 {
			continue
		}
		sheet.Animations[a.Name] = &world.Animation{
			Name:          a.Name,
			Frames:        a.Frames,
			FrameDuration: a.FrameDuration,
			Loop:          a.Loop,
		}
	}
	return sheet, nil
}

// LoadSpriteSheetOrNil loads a sheet and degrades to nil on any error.
// Objects drawn with a nil sheet are invisible but otherwise behave normally.
func LoadSpriteSheetOrNil(root, name string, textures gfx.TextureLoader, log *zap.Logger) *world.SpriteSheet {
	sheet, err := LoadSpriteSheet(root, name, textures)
	if err != nil {
		log.Warn("sprite sheet unavailable", zap.String("sheet", name), zap.Error(err))
		return nil
	}
	log.Debug("sprite sheet loaded",
		zap.String("sheet", name),
		zap.Int("animations", len(sheet.Animations)),
	)
	return sheet
}
