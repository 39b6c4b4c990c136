package system

import (
	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

// HenshinSystem drives the player's one-way Normal -> Transformed state machine
// Runs before movement so the transformation cooldown gates movement in the same tick
type HenshinSystem struct {
	engine.SystemBase
}

// NewHenshinSystem creates a new transformation system
func NewHenshinSystem(world *engine.World) engine.System {
	s := &HenshinSystem{
		SystemBase: engine.NewSystemBase(world, "henshin"),
	}
	s.Init()
	return s
}

// Init
func (s *HenshinSystem) Init() {}

// Name returns system's name
func (s *HenshinSystem) Name() string {
	return "henshin"
}

// Priority returns the system's priority
func (s *HenshinSystem) Priority() int {
	return parameter.PriorityHenshin
}

// Update transitions on the activate edge
func (s *HenshinSystem) Update() {
	if !s.Resource.Input.Snapshot.Pressed(input.Activate) {
		return
	}

	player := s.World.MustPlayer()
	p, ok := s.Component.Player.Get(player)
	if !ok {
		panic("startup contract violated: player component missing")
	}

	switch p.State {
	case component.StateNormal:
		s.transform(player, p)
	case component.StateTransformed:
		// Terminal state
	default:
		panic("unreachable: unknown transform state")
	}
}

// transform applies the whole transition within the current tick
func (s *HenshinSystem) transform(player core.Entity, p component.PlayerComponent) {
	p.State = component.StateTransformed
	s.Component.Player.Set(player, p)

	s.Component.Cooldown.Set(player, component.CooldownComponent{
		Remaining: parameter.PlayerHenshinBaseCooldown,
	})

	for _, child := range s.World.Children(player) {
		eq, ok := s.Component.Equipment.Get(child)
		if !ok {
			panic("unreachable: player child without equipment slot")
		}

		switch eq.Slot {
		case component.SlotHead:
			sprite, ok := s.Component.Sprite.Get(child)
			if !ok {
				panic("startup contract violated: head slot without sprite")
			}
			sprite.Index = parameter.HeadTransformedSprite
			s.Component.Sprite.Set(child, sprite)
		default:
			panic("unreachable: unknown equipment slot")
		}
	}

	s.Log.WithField("cooldown", parameter.PlayerHenshinBaseCooldown).Debug("henshin")
}
