package system

import (
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

// MovementSystem steps the player one grid cell per ready tick
// Vertical input is resolved before horizontal; both axes may move in the same
// tick and together cost a single movement cooldown
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates a new grid movement system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		SystemBase: engine.NewSystemBase(world, "movement"),
	}
	s.Init()
	return s
}

// Init
func (s *MovementSystem) Init() {}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update moves the player when its cooldown is ready and a direction is held
func (s *MovementSystem) Update() {
	player := s.World.MustPlayer()

	cd, _ := s.Component.Cooldown.Get(player)
	if !cd.Ready() {
		return
	}

	snap := s.Resource.Input.Snapshot
	tr, ok := s.Component.Transform.Get(player)
	if !ok {
		panic("startup contract violated: player without transform")
	}

	moved := false

	if snap.Held(input.MoveUp) {
		tr.Translation[1] += parameter.GridSize
		moved = true
	} else if snap.Held(input.MoveDown) {
		tr.Translation[1] -= parameter.GridSize
		moved = true
	}

	if snap.Held(input.MoveRight) {
		tr.Translation[0] += parameter.GridSize
		moved = true
	} else if snap.Held(input.MoveLeft) {
		tr.Translation[0] -= parameter.GridSize
		moved = true
	}

	if !moved {
		return
	}

	s.Component.Transform.Set(player, tr)
	cd.Remaining = parameter.PlayerMovementBaseCooldown
	s.Component.Cooldown.Set(player, cd)
}
