package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
	"github.com/lixenwraith/henshin/vmath"
)

// NPCSystem spawns an NPC on the player's cell and despawns all NPCs on command
// Both requests go through the command buffer and apply at the end of the tick
type NPCSystem struct {
	engine.SystemBase
}

// NewNPCSystem creates a new NPC lifecycle system
func NewNPCSystem(world *engine.World) engine.System {
	s := &NPCSystem{
		SystemBase: engine.NewSystemBase(world, "npc"),
	}
	s.Init()
	return s
}

// Init
func (s *NPCSystem) Init() {}

// Name returns system's name
func (s *NPCSystem) Name() string {
	return "npc"
}

// Priority returns the system's priority
func (s *NPCSystem) Priority() int {
	return parameter.PriorityNPC
}

// Update queues spawn and despawn requests
func (s *NPCSystem) Update() {
	snap := s.Resource.Input.Snapshot
	commands := s.World.Commands()

	if snap.Pressed(input.SpawnNPC) {
		tr, _ := s.Component.Transform.Get(s.World.MustPlayer())
		at := mgl32.Vec2{vmath.Floor(tr.Translation.X()), vmath.Floor(tr.Translation.Y())}

		commands.Spawn(func(w *engine.World) core.Entity {
			return SpawnNPC(w, at)
		})
		s.Log.WithField("at", at).Debug("npc spawn queued")
	}

	if snap.Pressed(input.DespawnNPCs) {
		npcs := s.Component.NPC.All()
		for _, e := range npcs {
			commands.DespawnRecursive(e)
		}
		s.Log.WithField("count", len(npcs)).Debug("npc despawn queued")
	}
}
