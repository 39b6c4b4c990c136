package parameter

// Depth layers (z), higher draws on top
const (
	LayerFloor   float32 = 0
	LayerNPC     float32 = 10
	LayerNPCHead float32 = 11
	LayerPlayer  float32 = 20
	LayerHead    float32 = 21

	// LayerCamera keeps the camera outside depth sorting with game objects
	LayerCamera float32 = 999
)
