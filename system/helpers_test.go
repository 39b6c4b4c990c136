package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/logger"
)

// fakePresenter counts toggles
type fakePresenter struct {
	mode    engine.PresentMode
	toggles int
}

func (p *fakePresenter) PresentMode() engine.PresentMode { return p.mode }

func (p *fakePresenter) TogglePresentMode() engine.PresentMode {
	p.mode = p.mode.Toggled()
	p.toggles++
	return p.mode
}

// newScene builds the startup scene with every system registered
func newScene(t *testing.T) (*engine.GameContext, *fakePresenter) {
	t.Helper()
	presenter := &fakePresenter{}
	ctx := engine.NewGameContext(logger.Discard(), 800, 600, presenter)
	if err := Setup(ctx.World); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	Register(ctx.World)
	return ctx, presenter
}

// step runs one tick with the given held and pressed actions
func step(ctx *engine.GameContext, dt time.Duration, held []input.Action, pressed ...input.Action) {
	ctx.Tick(dt, input.NewSnapshot(held, pressed))
}

func playerPos(w *engine.World) mgl32.Vec3 {
	tr, _ := w.Components.Transform.Get(w.MustPlayer())
	return tr.Translation
}

func setPlayerPos(w *engine.World, x, y float32) {
	p := w.MustPlayer()
	tr, _ := w.Components.Transform.Get(p)
	tr.Translation[0], tr.Translation[1] = x, y
	w.Components.Transform.Set(p, tr)
}

func playerCooldown(w *engine.World) float32 {
	cd, _ := w.Components.Cooldown.Get(w.MustPlayer())
	return cd.Remaining
}

func setPlayerCooldown(w *engine.World, v float32) {
	w.Components.Cooldown.Set(w.MustPlayer(), component.CooldownComponent{Remaining: v})
}

func cameraZoom(w *engine.World) float32 {
	cam, _ := w.Components.Camera.Get(w.MustCamera())
	return cam.Zoom
}

func headOf(t *testing.T, w *engine.World, owner core.Entity) core.Entity {
	t.Helper()
	children := w.Children(owner)
	if len(children) != 1 {
		t.Fatalf("Expected exactly one child on %d, got %v", owner, children)
	}
	eq, ok := w.Components.Equipment.Get(children[0])
	if !ok || eq.Slot != component.SlotHead {
		t.Fatalf("Expected head slot child, got %+v (ok=%v)", eq, ok)
	}
	return children[0]
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}
