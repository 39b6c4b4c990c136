package system

import (
	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/parameter"
)

// CooldownSystem decrements every remaining cooldown by the tick's elapsed time
// Runs first so gating systems observe the post-decrement value of the same tick
type CooldownSystem struct {
	engine.SystemBase
}

// NewCooldownSystem creates a new cooldown system
func NewCooldownSystem(world *engine.World) engine.System {
	s := &CooldownSystem{
		SystemBase: engine.NewSystemBase(world, "cooldown"),
	}
	s.Init()
	return s
}

// Init
func (s *CooldownSystem) Init() {}

// Name returns system's name
func (s *CooldownSystem) Name() string {
	return "cooldown"
}

// Priority returns the system's priority
func (s *CooldownSystem) Priority() int {
	return parameter.PriorityCooldown
}

// Update floors every cooldown at zero
func (s *CooldownSystem) Update() {
	dt := s.Resource.Time.Delta
	if dt <= 0 {
		return
	}

	for _, e := range s.Component.Cooldown.All() {
		cd, ok := s.Component.Cooldown.Get(e)
		if !ok || cd.Remaining == 0 {
			continue
		}
		s.Component.Cooldown.Set(e, decrementCooldown(cd, dt))
	}
}

// decrementCooldown subtracts dt and clamps at zero
func decrementCooldown(cd component.CooldownComponent, dt float32) component.CooldownComponent {
	cd.Remaining -= dt
	if cd.Remaining <= 0 {
		cd.Remaining = 0
	}
	return cd
}
