package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

func TestMovement_UpFromOrigin(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	step(ctx, 16*time.Millisecond, []input.Action{input.MoveUp})

	want := mgl32.Vec3{0, parameter.GridSize, parameter.LayerPlayer}
	if got := playerPos(w); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := playerCooldown(w); got != parameter.PlayerMovementBaseCooldown {
		t.Errorf("Expected cooldown %v, got %v", parameter.PlayerMovementBaseCooldown, got)
	}
}

// TestMovement_CooldownExpiresSameTick covers the decrement-before-gate ordering
func TestMovement_CooldownExpiresSameTick(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World
	setPlayerCooldown(w, 0.05)

	step(ctx, 100*time.Millisecond, []input.Action{input.MoveRight})

	if got := playerPos(w); got.X() != parameter.GridSize || got.Y() != 0 {
		t.Errorf("Expected (%v, 0), got %v", parameter.GridSize, got)
	}
	if got := playerCooldown(w); got != parameter.PlayerMovementBaseCooldown {
		t.Errorf("Expected cooldown %v, got %v", parameter.PlayerMovementBaseCooldown, got)
	}
}

func TestMovement_BlockedWhileCoolingDown(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World
	setPlayerCooldown(w, parameter.PlayerMovementBaseCooldown)

	held := []input.Action{input.MoveUp, input.MoveLeft}
	for i := 0; i < 5; i++ {
		step(ctx, 16*time.Millisecond, held)
		if got := playerPos(w); got.X() != 0 || got.Y() != 0 {
			t.Fatalf("tick %d: player moved to %v while cooling down", i, got)
		}
	}
}

// TestMovement_DiagonalSingleCooldown verifies two axes cost one reset
func TestMovement_DiagonalSingleCooldown(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	step(ctx, 16*time.Millisecond, []input.Action{input.MoveDown, input.MoveLeft})

	if got := playerPos(w); got.X() != -parameter.GridSize || got.Y() != -parameter.GridSize {
		t.Errorf("Expected (-32, -32), got %v", got)
	}
	if got := playerCooldown(w); got != parameter.PlayerMovementBaseCooldown {
		t.Errorf("Expected cooldown %v, got %v", parameter.PlayerMovementBaseCooldown, got)
	}
}

func TestMovement_VerticalPrecedence(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	step(ctx, 16*time.Millisecond, []input.Action{input.MoveUp, input.MoveDown, input.MoveRight, input.MoveLeft})

	// Up wins over Down, Right wins over Left
	if got := playerPos(w); got.X() != parameter.GridSize || got.Y() != parameter.GridSize {
		t.Errorf("Expected (32, 32), got %v", got)
	}
}

func TestMovement_NoInputKeepsCooldown(t *testing.T) {
	ctx, _ := newScene(t)
	w := ctx.World

	step(ctx, 16*time.Millisecond, nil)

	if got := playerCooldown(w); got != 0 {
		t.Errorf("Expected cooldown 0 without movement, got %v", got)
	}
}
