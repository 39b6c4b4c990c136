package input

import "fmt"

// actionNames holds canonical names, indexed by Action
// Used by the key binding config to resolve YAML action strings
var actionNames = [ActionCount]string{
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	Activate:    "activate",
	ZoomIn:      "zoom_in",
	ZoomOut:     "zoom_out",
	SpawnNPC:    "spawn_npc",
	DespawnNPCs: "despawn_npcs",
	ToggleVsync: "toggle_vsync",
	Quit:        "quit",
}

// actionRegistry maps canonical action names to actions
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, ActionCount)
	for a := Action(0); a < ActionCount; a++ {
		actionRegistry[actionNames[a]] = a
	}
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return 0, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// Actions returns every defined action in declaration order
func Actions() []Action {
	result := make([]Action, 0, ActionCount)
	for a := Action(0); a < ActionCount; a++ {
		result = append(result, a)
	}
	return result
}
