package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
	"github.com/lixenwraith/henshin/vmath"
)

func TestZoom_InClampsAtMin(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	want := []float32{0.25, 0.25, 0.25}
	for i, z := range want {
		step(ctx, 16*time.Millisecond, nil, input.ZoomIn)
		if got := cameraZoom(w); got != z {
			t.Fatalf("step %d: expected zoom %v, got %v", i, z, got)
		}
	}
}

func TestZoom_OutClampsAtMax(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	for i := 0; i < 4; i++ {
		step(ctx, 16*time.Millisecond, nil, input.ZoomOut)
	}
	if got := cameraZoom(w); got != parameter.PlayerMaxZoom {
		t.Errorf("Expected zoom %v, got %v", parameter.PlayerMaxZoom, got)
	}
}

// TestZoom_StaysInRange drives a fixed pseudo-random edge sequence
func TestZoom_StaysInRange(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	seq := uint32(12345)
	for i := 0; i < 200; i++ {
		seq = seq*1103515245 + 12345
		var pressed []input.Action
		switch (seq >> 16) % 4 {
		case 0:
			pressed = []input.Action{input.ZoomIn}
		case 1:
			pressed = []input.Action{input.ZoomOut}
		case 2:
			pressed = []input.Action{input.ZoomIn, input.ZoomOut}
		}
		step(ctx, 16*time.Millisecond, nil, pressed...)

		z := cameraZoom(w)
		if z < parameter.PlayerMinZoom || z > parameter.PlayerMaxZoom {
			t.Fatalf("step %d: zoom %v left [%v, %v]", i, z, parameter.PlayerMinZoom, parameter.PlayerMaxZoom)
		}
	}
}

func TestZoom_InWinsOverOut(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	step(ctx, 16*time.Millisecond, nil, input.ZoomIn, input.ZoomOut)

	if got := cameraZoom(w); got != 0.25 {
		t.Errorf("Expected zoom-in to take precedence, got %v", got)
	}
}

func TestFollowStep(t *testing.T) {
	tests := []struct {
		name   string
		from   mgl32.Vec3
		target mgl32.Vec3
		t      float32
		want   mgl32.Vec3
	}{
		{"no time", mgl32.Vec3{0, 0, 999}, mgl32.Vec3{32, 32, 20}, 0, mgl32.Vec3{0, 0, 999}},
		{"partial floors", mgl32.Vec3{0, 0, 999}, mgl32.Vec3{0, 32, 20}, 0.16, mgl32.Vec3{0, 5, 999}},
		{"negative floors down", mgl32.Vec3{0, 0, 999}, mgl32.Vec3{-32, 0, 20}, 0.16, mgl32.Vec3{-6, 0, 999}},
		{"arrive", mgl32.Vec3{10, 10, 999}, mgl32.Vec3{64, -32, 20}, 1, mgl32.Vec3{64, -32, 999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := followStep(tt.from, tt.target, tt.t); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHalfExtents(t *testing.T) {
	vp := &engine.ViewportResource{Width: 800, Height: 600}
	hw, hh := halfExtents(vp, 0.5)
	if hw != 200 || hh != 150 {
		t.Errorf("Expected (200, 150), got (%v, %v)", hw, hh)
	}
}

func TestCamera_ViewRectFollowsPlayer(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World
	setPlayerPos(w, 64, -32)

	// Full step at t = 1
	step(ctx, 100*time.Millisecond, nil)

	cam, _ := w.Components.Transform.Get(w.MustCamera())
	if cam.Translation != (mgl32.Vec3{64, -32, parameter.LayerCamera}) {
		t.Fatalf("Expected camera on player, got %v", cam.Translation)
	}

	want := vmath.Rect{Min: mgl32.Vec2{-136, -182}, Max: mgl32.Vec2{264, 118}}
	if got := w.Resources.View.Rect; got != want {
		t.Errorf("Expected view %v, got %v", want, got)
	}
}
