package system

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/henshin/asset"
	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/logger"
	"github.com/lixenwraith/henshin/parameter"
)

func TestSetup_Scene(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	if got := w.Components.Tile.Count(); got != 400 {
		t.Errorf("Expected 400 tiles, got %d", got)
	}
	if got := playerPos(w); got.X() != 0 || got.Y() != 0 || got.Z() != parameter.LayerPlayer {
		t.Errorf("Unexpected player position %v", got)
	}
	if got := cameraZoom(w); got != parameter.PlayerZoomDefault {
		t.Errorf("Expected default zoom, got %v", got)
	}

	systems := w.Systems()
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("Systems out of order: %s before %s", systems[i-1].Name(), systems[i].Name())
		}
	}
}

func TestSetup_DuplicatePlayer(t *testing.T) {
	ctx := engine.NewGameContext(logger.Discard(), 800, 600, nil)
	SpawnPlayer(ctx.World)

	if err := Setup(ctx.World); !errors.Is(err, engine.ErrSingletonAmbiguous) {
		t.Errorf("Expected ErrSingletonAmbiguous, got %v", err)
	}
}

func TestSetup_BadSpriteRejected(t *testing.T) {
	ctx := engine.NewGameContext(logger.Discard(), 800, 600, nil)
	w := ctx.World
	engine.With(w.NewEntity(), w.Components.Sprite, component.SpriteComponent{Atlas: asset.AtlasBase, Index: 5000}).Build()

	if err := Setup(w); err == nil {
		t.Error("Expected out-of-range sprite to fail setup")
	}
}

func TestQuit_RequestsExit(t *testing.T) {
	ctx, _ := newScene(t)

	step(ctx, 16*time.Millisecond, nil)
	if ctx.ExitRequested() {
		t.Fatal("Exit requested without input")
	}

	step(ctx, 16*time.Millisecond, nil, input.Quit)
	if !ctx.ExitRequested() {
		t.Error("Expected exit request after quit edge")
	}
}

func TestPresentMode_Toggle(t *testing.T) {
	ctx, presenter := newScene(t)

	step(ctx, 16*time.Millisecond, []input.Action{input.ToggleVsync})
	if presenter.toggles != 0 {
		t.Fatalf("Held without edge must not toggle, got %d", presenter.toggles)
	}

	step(ctx, 16*time.Millisecond, nil, input.ToggleVsync)
	step(ctx, 16*time.Millisecond, nil, input.ToggleVsync)

	if presenter.toggles != 2 {
		t.Errorf("Expected 2 toggles, got %d", presenter.toggles)
	}
	if presenter.mode != engine.PresentModeAutoVsync {
		t.Errorf("Expected mode back to vsync, got %v", presenter.mode)
	}
}
