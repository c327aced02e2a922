package system

import (
	"testing"
	"time"

	"github.com/tilefall/game/internal/core/event"
	"github.com/tilefall/game/internal/gfx/gfxtest"
	"github.com/tilefall/game/internal/input"
	"github.com/tilefall/game/internal/world"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPlayerSystemAttackRules(t *testing.T) {
	tests := []struct {
		name      string
		in        input.State
		wantState world.PlayerState
		attacked  bool
	}{
		{"attack alone", input.State{Attack: true}, world.StateAttacking, true},
		{"attack with one direction", input.State{Attack: true, Left: true}, world.StateAttacking, true},
		{"attack with two directions moves", input.State{Attack: true, Left: true, Up: true}, world.StateMoving, false},
		{"no attack", input.State{Right: true}, world.StateMoving, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := world.NewPlayer(100, 100, nil, world.PlayerTuning{Speed: 100, SprintMultiplier: 2})
			frame := &Frame{Input: tt.in}
			s := NewPlayerSystem(p, world.Bounds{W: 500, H: 500}, frame, zaptest.NewLogger(t))

			s.Update(100 * time.Millisecond)

			if p.State() != tt.wantState {
				t.Errorf("state = %v, want %v", p.State(), tt.wantState)
			}
			if frame.Attacked != tt.attacked {
				t.Errorf("Attacked = %v, want %v", frame.Attacked, tt.attacked)
			}
		})
	}
}

func TestSpawnSystemSources(t *testing.T) {
	objects := world.NewObjects()
	bus := event.NewBus()
	var sources []event.SpawnSource
	event.Subscribe(bus, func(e event.HazardSpawned) { sources = append(sources, e.Source) })

	rec := gfxtest.NewRecorder()
	rec.OffsetX, rec.OffsetY = 10, 20
	p := world.NewPlayer(50, 60, nil, world.PlayerTuning{})
	frame := &Frame{
		Now:     epoch,
		Input:   input.State{Secondary: true},
		Click:   input.Click{X: 1, Y: 2},
		Clicked: true,
	}
	s := NewSpawnSystem(NewSpawner(objects, HazardSpec{TTL: time.Second}, bus), p, rec, frame)

	s.Update(0)

	var got [][2]float64
	for o := range objects.All() {
		got = append(got, [2]float64{o.X, o.Y})
	}
	if len(got) != 2 || got[0] != [2]float64{50, 60} || got[1] != [2]float64{11, 22} {
		t.Fatalf("spawned at %v, want [[50 60] [11 22]]", got)
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(sources) != 2 || sources[0] != event.SourcePlayer || sources[1] != event.SourcePointer {
		t.Fatalf("sources = %v", sources)
	}
}

func TestHazardSystemReapsAndDefeats(t *testing.T) {
	objects := world.NewObjects()
	bus := event.NewBus()
	p := world.NewPlayer(100, 100, nil, world.PlayerTuning{})
	frame := &Frame{}
	log := zaptest.NewLogger(t)

	near := world.NewHazard(nil, 110, 90, epoch, time.Second)
	far := world.NewHazard(nil, 300, 300, epoch, time.Second)
	fresh := world.NewHazard(nil, 100, 100, epoch.Add(time.Second), time.Second)
	for _, o := range []*world.Object{near, far, fresh} {
		objects.Add(o)
	}

	var defeated []event.PlayerDefeated
	event.Subscribe(bus, func(e event.PlayerDefeated) { defeated = append(defeated, e) })

	hazards := NewHazardSystem(objects, p, 32, frame, bus, log)
	cleanup := NewCleanupSystem(objects)

	frame.Reset(epoch.Add(time.Second))
	hazards.Update(0)
	cleanup.Update(0)

	if !frame.Defeated || !p.IsGameOver() {
		t.Fatal("expected game over from the near hazard")
	}
	if objects.Len() != 1 {
		t.Fatalf("objects left = %d, want 1", objects.Len())
	}
	if _, ok := objects.Get(fresh.ID); !ok {
		t.Fatal("unexpired hazard was removed")
	}
	if cleanup.Removed() != 2 {
		t.Fatalf("Removed = %d, want 2", cleanup.Removed())
	}

	// The fresh hazard expires later on top of the player: no second defeat.
	frame.Reset(epoch.Add(2 * time.Second))
	hazards.Update(0)
	cleanup.Update(0)
	if frame.Defeated {
		t.Fatal("Defeated set twice")
	}

	bus.SwapBuffers()
	bus.DispatchAll()
	if len(defeated) != 1 || defeated[0].HazardID != near.ID {
		t.Fatalf("defeat events = %+v", defeated)
	}
}
