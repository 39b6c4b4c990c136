package system

import (
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

// PresentModeSystem forwards the vsync toggle to the presenter
type PresentModeSystem struct {
	engine.SystemBase
}

// NewPresentModeSystem creates a new present mode toggle system
func NewPresentModeSystem(world *engine.World) engine.System {
	s := &PresentModeSystem{
		SystemBase: engine.NewSystemBase(world, "present"),
	}
	s.Init()
	return s
}

// Init
func (s *PresentModeSystem) Init() {}

// Name returns system's name
func (s *PresentModeSystem) Name() string {
	return "present"
}

// Priority returns the system's priority
func (s *PresentModeSystem) Priority() int {
	return parameter.PriorityPresentMode
}

// Update toggles vsync on the edge
func (s *PresentModeSystem) Update() {
	if !s.Resource.Input.Snapshot.Pressed(input.ToggleVsync) {
		return
	}

	presenter := s.Resource.Present.Presenter
	if presenter == nil {
		return
	}

	mode := presenter.TogglePresentMode()
	s.Log.WithField("mode", mode.String()).Debug("present mode")
}
