// Package ebiten implements the drawing and input ports on top of Ebiten
// and hosts the frame loop inside ebiten.RunGame.
package ebiten

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/tilefall/game/internal/config"
	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/input"
)

// Frame is the per-tick contract of the simulation core.
type Frame interface {
	ProcessFrame()
	RenderFrame()
}

// Adapter is a gfx.Renderer, an input.Source and an ebiten.Game.
// Ebiten calls Update and Draw on one goroutine, so no locking is needed.
type Adapter struct {
	cfg      config.WindowConfig
	log      *zap.Logger
	textures []*ebiten.Image // handle h lives at textures[h-1]

	frame  Frame
	screen *ebiten.Image // set only while Draw runs
	camX   float64
	camY   float64
}

var (
	_ gfx.Renderer = (*Adapter)(nil)
	_ input.Source = (*Adapter)(nil)
	_ ebiten.Game  = (*Adapter)(nil)
)

func New(cfg config.WindowConfig, log *zap.Logger) *Adapter {
	return &Adapter{
		cfg:      cfg,
		log:      log,
		textures: make([]*ebiten.Image, 0, 32),
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (a *Adapter) Run(f Frame) error {
	a.frame = f
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetWindowTitle(a.cfg.Title)
	if a.cfg.TPS > 0 {
		ebiten.SetTPS(a.cfg.TPS)
	}
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// ── ebiten.Game ──────────────────────────────────────────────────

func (a *Adapter) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		a.log.Info("quit requested")
		return ebiten.Termination
	}
	a.frame.ProcessFrame()
	return nil
}

func (a *Adapter) Draw(screen *ebiten.Image) {
	a.screen = screen
	a.frame.RenderFrame()
	a.screen = nil
}

func (a *Adapter) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// ── gfx.Renderer ─────────────────────────────────────────────────

func (a *Adapter) LoadTexture(path string) (gfx.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return gfx.NoTexture, fmt.Errorf("load texture %s: %w", path, err)
	}
	a.textures = append(a.textures, img)
	return gfx.Texture(len(a.textures)), nil
}

func (a *Adapter) Blit(tex gfx.Texture, src, dst gfx.Rect) {
	if a.screen == nil || !tex.Valid() || int(tex) > len(a.textures) || src.W <= 0 || src.H <= 0 {
		return
	}
	img := a.textures[tex-1]
	sub := img.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.W), int(src.Y+src.H),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	sx, sy := a.worldToScreen(dst.X, dst.Y)
	op.GeoM.Translate(sx, sy)
	a.screen.DrawImage(sub, op)
}

// FocusCamera centres the view on a world position.
func (a *Adapter) FocusCamera(x, y float64) {
	a.camX, a.camY = x, y
}

func (a *Adapter) Clear(c color.Color) {
	if a.screen != nil {
		a.screen.Fill(c)
	}
}

// Present is a no-op: Ebiten presents the screen when Draw returns.
func (a *Adapter) Present() {}

func (a *Adapter) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - float64(a.cfg.Width)/2 + a.camX, sy - float64(a.cfg.Height)/2 + a.camY
}

func (a *Adapter) worldToScreen(x, y float64) (float64, float64) {
	return x - a.camX + float64(a.cfg.Width)/2, y - a.camY + float64(a.cfg.Height)/2
}

// ── input.Source ─────────────────────────────────────────────────

func (a *Adapter) Poll() input.State {
	return input.State{
		Up:        anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:      anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:      anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:     anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Attack:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Sprint:    anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		Secondary: inpututil.IsKeyJustPressed(ebiten.KeyE),
	}
}

func (a *Adapter) Click() (input.Click, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return input.Click{}, false
	}
	x, y := ebiten.CursorPosition()
	return input.Click{X: float64(x), Y: float64(y)}, true
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
