package engine

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/henshin/input"
)

// GameContext holds all game state including the ECS world
type GameContext struct {
	// ===== Immutable After Init =====

	World *World
	Log   logrus.FieldLogger

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Tick counter; incremented by Tick
}

// NewGameContext creates a GameContext with a fresh world
// Resources are wired here so systems constructed afterwards capture them
func NewGameContext(log logrus.FieldLogger, viewportWidth, viewportHeight float32, presenter Presenter) *GameContext {
	world := NewWorld()
	world.Resources.Log = log
	world.Resources.Viewport.Width = viewportWidth
	world.Resources.Viewport.Height = viewportHeight
	world.Resources.Present.Presenter = presenter

	return &GameContext{
		World: world,
		Log:   log,
	}
}

// Tick runs one simulation step with the elapsed time and input of this frame
// A negative elapsed time (clock step back) is treated as zero
func (ctx *GameContext) Tick(dt time.Duration, snapshot input.Snapshot) {
	if dt < 0 {
		dt = 0
	}

	frame := ctx.FrameNumber.Add(1)

	ctx.World.RunSafe(func() {
		ctx.World.Resources.Time.Update(dt, frame)
		ctx.World.Resources.Input.Snapshot = snapshot
		ctx.World.UpdateLocked()
	})
}

// ExitRequested reports whether a system asked the host to exit
func (ctx *GameContext) ExitRequested() bool {
	return ctx.World.Resources.Exit.Requested
}
