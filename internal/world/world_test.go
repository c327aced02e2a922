package world

import (
	"slices"
	"testing"
	"time"

	"github.com/tilefall/game/internal/core/ecs"
	"github.com/tilefall/game/internal/gfx"
	"github.com/tilefall/game/internal/gfx/gfxtest"
)

func testSheet() *SpriteSheet {
	s := &SpriteSheet{
		Name:        "test",
		Image:       "sprites/test.png",
		FrameWidth:  16,
		FrameHeight: 16,
		Columns:     4,
		Texture:     1,
		Animations:  make(map[string]*Animation),
	}
	add := func(name string, loop bool, frames ...int) {
		s.Animations[name] = &Animation{Name: name, Frames: frames, FrameDuration: 100 * time.Millisecond, Loop: loop}
	}
	for _, f := range []string{"Up", "Down", "Left", "Right"} {
		add("Idle"+f, true, 0)
		add("Walk"+f, true, 1, 2)
		add("Attack"+f, false, 3, 4)
	}
	add(AnimDead, false, 5)
	add(AnimExplode, false, 6, 7, 8)
	return s
}

// testLevel is 4x4 with two layers and one tileset of ids 0..2.
func testLevel() *Level {
	ts := &TileSet{Source: "tilesets/terrain.yaml", Tiles: []Tile{
		{ID: 0, Image: "tiles/grass.png", Width: 32, Height: 32, Texture: 1},
		{ID: 1, Image: "tiles/rock.png", Width: 32, Height: 32, Texture: 2},
		{ID: 2, Image: "tiles/water.png", Width: 32, Height: 32, Texture: 3},
	}}
	ground := make([]int, 16)
	for i := range ground {
		ground[i] = 1 + i%3
	}
	return &Level{
		Width: 4, Height: 4, TileWidth: 32, TileHeight: 32,
		TileSets: []TileSetRef{{Source: ts.Source, TileSet: ts}},
		Layers: []Layer{
			{Name: "ground", Data: ground},
			{Name: "detail", Data: []int{
				0, 2, 0, 0,
				0, 0, 0, 9, // 9 -> id 8, unresolved
				3, 0, 0, 0,
				0, 0, 1, 0,
			}},
		},
	}
}

func TestLevelBounds(t *testing.T) {
	l := testLevel()
	if b := l.Bounds(); b.W != 128 || b.H != 128 {
		t.Fatalf("bounds = %+v", b)
	}
	if x, y := l.Center(); x != 64 || y != 64 {
		t.Fatalf("center = (%v, %v)", x, y)
	}
}

func TestTileAt(t *testing.T) {
	l := testLevel()
	tile, ok := l.TileAt(2)
	if !ok || tile.Image != "tiles/water.png" {
		t.Fatalf("TileAt(2) = %+v, %v", tile, ok)
	}
	if _, ok := l.TileAt(99); ok {
		t.Fatal("TileAt(99) should not be found")
	}

	l.TileSets = append([]TileSetRef{{Source: "broken"}}, l.TileSets...)
	if _, ok := l.TileAt(0); !ok {
		t.Fatal("nil tileset reference must be skipped, not fatal")
	}
}

func TestRenderTerrainCounts(t *testing.T) {
	l := testLevel()
	rec := gfxtest.NewRecorder()

	// 16 ground cells + 4 non-empty detail cells, one of them unresolved.
	n := l.RenderTerrain(rec)
	if n != 19 || len(rec.Blits) != 19 {
		t.Fatalf("blits = %d (returned %d), want 19", len(rec.Blits), n)
	}

	// Cell (col 1, row 0) of the detail layer follows all ground blits.
	b := rec.Blits[16]
	want := gfxtest.Blit{
		Tex: 2,
		Src: gfx.Rect{W: 32, H: 32},
		Dst: gfx.Rect{X: 32, Y: 0, W: 32, H: 32},
	}
	if b != want {
		t.Fatalf("blit = %+v, want %+v", b, want)
	}
	// Row-major mapping: index 8 is col 0, row 2.
	if got := rec.Blits[17].Dst; got.X != 0 || got.Y != 64 {
		t.Fatalf("dst = %+v, want (0, 64)", got)
	}
}

func TestRenderTerrainSkipsBadLayersAndTextures(t *testing.T) {
	l := testLevel()
	l.Layers = append(l.Layers, Layer{Name: "short", Data: []int{1, 1}})
	l.TileSets[0].TileSet.Tiles[1].Texture = gfx.NoTexture

	rec := gfxtest.NewRecorder()
	n := l.RenderTerrain(rec)
	// Tile id 1 (index 2) loses its texture: 5 ground cells + 1 detail cell.
	if n != 19-6 {
		t.Fatalf("blits = %d, want %d", n, 19-6)
	}
}

func TestObjectsAddRemoveAndCapabilities(t *testing.T) {
	objs := NewObjects()
	now := time.Unix(100, 0)

	static := &Object{ID: ecs.NewEntityID(), X: 1, Y: 1, Sprite: NewAnimator(testSheet())}
	marker := &Object{ID: ecs.NewEntityID()}
	h1 := NewHazard(testSheet(), 10, 10, now, time.Second)
	h2 := NewHazard(testSheet(), 20, 20, now, time.Second)
	for _, o := range []*Object{h1, static, marker, h2} {
		objs.Add(o)
	}

	if objs.Len() != 4 {
		t.Fatalf("Len = %d", objs.Len())
	}
	if got := collectIDs(objs.OfCapability(CapRenderable)); !slices.Equal(got, []ecs.EntityID{h1.ID, static.ID, h2.ID}) {
		t.Fatalf("renderables = %v", got)
	}
	if got := collectIDs(objs.OfCapability(CapTemporary)); !slices.Equal(got, []ecs.EntityID{h1.ID, h2.ID}) {
		t.Fatalf("temporaries = %v", got)
	}
	if got := collectIDs(objs.OfCapability(Capability(99))); len(got) != 0 {
		t.Fatalf("unknown capability yielded %v", got)
	}

	objs.Remove(h1.ID)
	objs.Remove(h1.ID)
	if _, ok := objs.Get(h1.ID); ok {
		t.Fatal("h1 still registered")
	}
	if got := collectIDs(objs.OfCapability(CapTemporary)); !slices.Equal(got, []ecs.EntityID{h2.ID}) {
		t.Fatalf("temporaries after remove = %v", got)
	}
	if got := collectIDs(objs.All()); !slices.Equal(got, []ecs.EntityID{static.ID, marker.ID, h2.ID}) {
		t.Fatalf("all = %v", got)
	}
}

func TestObjectsAddDuplicatePanics(t *testing.T) {
	objs := NewObjects()
	o := &Object{ID: ecs.NewEntityID()}
	objs.Add(o)

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Add did not panic")
		}
	}()
	objs.Add(&Object{ID: o.ID})
}

func TestObjectsAddZeroIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("zero id Add did not panic")
		}
	}()
	NewObjects().Add(&Object{})
}

func TestObjectsDeferredRemoval(t *testing.T) {
	objs := NewObjects()
	h := NewHazard(nil, 0, 0, time.Unix(0, 0), 0)
	objs.Add(h)

	objs.MarkForRemoval(h.ID)
	if objs.Len() != 1 {
		t.Fatal("MarkForRemoval removed immediately")
	}
	if n := objs.Flush(); n != 1 || objs.Len() != 0 {
		t.Fatalf("flush = %d, len = %d", n, objs.Len())
	}
}

func TestLifetimeExpired(t *testing.T) {
	spawn := time.Unix(50, 0)
	l := Lifetime{Spawned: spawn, TTL: 2 * time.Second}
	if l.Expired(spawn.Add(2*time.Second - time.Nanosecond)) {
		t.Fatal("expired before TTL")
	}
	if !l.Expired(spawn.Add(2 * time.Second)) {
		t.Fatal("not expired at TTL")
	}
}

func TestObjectNearIsBoxTest(t *testing.T) {
	o := &Object{X: 100, Y: 100}
	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 100, true},
		{131.9, 68.1, true},
		{132, 100, false},
		{100, 68, false},
		{125, 125, true}, // farther than 32 by radius, still inside the box
	}
	for _, tt := range tests {
		if got := o.Near(tt.x, tt.y, 32); got != tt.want {
			t.Errorf("Near(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAnimatorPlayback(t *testing.T) {
	a := NewAnimator(testSheet())
	if !a.Play(AnimExplode) {
		t.Fatal("Play(Explode) failed")
	}
	if a.Play("Nope") {
		t.Fatal("unknown animation reported success")
	}
	if a.Current() != AnimExplode {
		t.Fatalf("current = %q", a.Current())
	}

	a.Advance(150 * time.Millisecond)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
	a.Advance(time.Second)
	if !a.Finished() || a.Frame() != 2 {
		t.Fatalf("finished=%v frame=%d", a.Finished(), a.Frame())
	}

	rec := gfxtest.NewRecorder()
	if !a.Draw(rec, 50, 50) {
		t.Fatal("Draw returned false")
	}
	// Frame index 8 on a 4-column sheet: col 0, row 2.
	want := gfxtest.Blit{
		Tex: 1,
		Src: gfx.Rect{X: 0, Y: 32, W: 16, H: 16},
		Dst: gfx.Rect{X: 42, Y: 42, W: 16, H: 16},
	}
	if rec.Blits[0] != want {
		t.Fatalf("blit = %+v, want %+v", rec.Blits[0], want)
	}

	loop := NewAnimator(testSheet())
	loop.Play("WalkDown")
	loop.Advance(250 * time.Millisecond)
	if loop.Frame() != 0 || loop.Finished() {
		t.Fatalf("looping frame = %d finished=%v", loop.Frame(), loop.Finished())
	}
}

func TestAnimatorNilSheetDrawsNothing(t *testing.T) {
	a := NewAnimator(nil)
	a.Play(AnimExplode)
	a.Advance(time.Second)
	if a.Draw(gfxtest.NewRecorder(), 0, 0) {
		t.Fatal("nil sheet drew")
	}
}

func collectIDs(seq func(func(*Object) bool)) []ecs.EntityID {
	var ids []ecs.EntityID
	for o := range seq {
		ids = append(ids, o.ID)
	}
	return ids
}
