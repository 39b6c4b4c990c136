package system

import (
	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/parameter"
)

// VisibilitySystem marks every floor tile visible iff it lies in the camera view
// Recomputed in full every tick; the tile set is small and static
type VisibilitySystem struct {
	engine.SystemBase
}

// NewVisibilitySystem creates a new tile culling system
func NewVisibilitySystem(world *engine.World) engine.System {
	s := &VisibilitySystem{
		SystemBase: engine.NewSystemBase(world, "visibility"),
	}
	s.Init()
	return s
}

// Init
func (s *VisibilitySystem) Init() {}

// Name returns system's name
func (s *VisibilitySystem) Name() string {
	return "visibility"
}

// Priority returns the system's priority
func (s *VisibilitySystem) Priority() int {
	return parameter.PriorityVisibility
}

// Update recomputes tile visibility from the view rectangle
func (s *VisibilitySystem) Update() {
	view := s.Resource.View.Rect

	tiles := s.World.Query().
		With(s.Component.Tile).
		With(s.Component.Transform).
		Execute()

	for _, e := range tiles {
		tr, _ := s.Component.Transform.Get(e)
		s.Component.Visibility.Set(e, component.VisibilityComponent{
			Visible: view.Contains(tr.Translation.Vec2()),
		})
	}
}
