package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityCooldown    = 10 // Decrement before any gating read
	PriorityHenshin     = 20 // Cooldown override must be visible to movement
	PriorityMovement    = 30
	PriorityCamera      = 40 // After movement so the view follows the new cell
	PriorityVisibility  = 50 // Consumes the camera view rectangle
	PriorityNPC         = 60
	PriorityPresentMode = 900
	PriorityQuit        = 910
)
