package input

// Action is a logical input the simulation reacts to, independent of device and key
type Action uint8

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Activate
	ZoomIn
	ZoomOut
	SpawnNPC
	DespawnNPCs
	ToggleVsync
	Quit

	// ActionCount is the number of defined actions, not an action
	ActionCount
)

// String returns the canonical action name
func (a Action) String() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "unknown"
}
