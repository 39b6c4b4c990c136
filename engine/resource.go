package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/henshin/asset"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/vmath"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	// Per-tick inputs, written by the host before Update
	Time  *TimeResource
	Input *InputResource

	// Simulation state shared between systems
	View      *ViewResource
	Viewport  *ViewportResource
	Singleton *SingletonResource
	Exit      *ExitResource

	// Collaborators
	Present *PresentResource
	Assets  *asset.Registry
	Log     logrus.FieldLogger
}

func newResource() Resource {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Resource{
		Time:      &TimeResource{},
		Input:     &InputResource{Snapshot: input.NewSnapshot(nil, nil)},
		View:      &ViewResource{},
		Viewport:  &ViewportResource{},
		Singleton: &SingletonResource{},
		Exit:      &ExitResource{},
		Present:   &PresentResource{},
		Assets:    asset.NewRegistry(),
		Log:       discard,
	}
}

// GetResources returns the world's resource bundle
func GetResources(w *World) Resource {
	return w.Resources
}

// TimeResource wraps time data for systems
// It is updated by the GameContext at the start of a tick
type TimeResource struct {
	// DeltaTime is the wall-clock duration since the last tick
	DeltaTime time.Duration

	// Delta is DeltaTime in seconds
	Delta float32

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(dt time.Duration, frameNumber int64) {
	tr.DeltaTime = dt
	tr.Delta = float32(dt.Seconds())
	tr.FrameNumber = frameNumber
}

// InputResource holds this tick's input snapshot
type InputResource struct {
	Snapshot input.Snapshot
}

// ViewResource is the camera view rectangle computed this tick
type ViewResource struct {
	Rect       vmath.Rect
	HalfWidth  float32
	HalfHeight float32
}

// ViewportResource is the unzoomed window size in world units
type ViewportResource struct {
	Width  float32
	Height float32
}

// SingletonResource caches the handles resolved once at startup
type SingletonResource struct {
	Player core.Entity
	Camera core.Entity
}

// ExitResource is raised when the process should exit after the current tick
type ExitResource struct {
	Requested bool
}

// PresentResource gives systems access to the presentation collaborator
type PresentResource struct {
	Presenter Presenter
}
