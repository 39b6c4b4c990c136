package parameter

// Player cooldowns, in seconds
const (
	// PlayerMovementBaseCooldown gates consecutive grid steps
	PlayerMovementBaseCooldown float32 = 0.15

	// PlayerHenshinBaseCooldown is imposed by the transformation and overrides any movement cooldown
	PlayerHenshinBaseCooldown float32 = 1.0
)
