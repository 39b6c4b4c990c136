package system

import (
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

// QuitSystem raises the exit request on the quit edge
// The host exits after the tick; nothing is saved
type QuitSystem struct {
	engine.SystemBase
}

// NewQuitSystem creates a new quit system
func NewQuitSystem(world *engine.World) engine.System {
	s := &QuitSystem{
		SystemBase: engine.NewSystemBase(world, "quit"),
	}
	s.Init()
	return s
}

// Init clears a stale exit request
func (s *QuitSystem) Init() {
	s.Resource.Exit.Requested = false
}

// Name returns system's name
func (s *QuitSystem) Name() string {
	return "quit"
}

// Priority returns the system's priority
func (s *QuitSystem) Priority() int {
	return parameter.PriorityQuit
}

// Update raises the exit request
func (s *QuitSystem) Update() {
	if s.Resource.Input.Snapshot.Pressed(input.Quit) {
		s.Resource.Exit.Requested = true
		s.Log.Info("quit requested")
	}
}
