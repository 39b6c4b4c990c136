package component

// CooldownComponent is the remaining time, in seconds, before the entity may act again
// Never negative; zero means ready
type CooldownComponent struct {
	Remaining float32
}

// Ready reports whether the cooldown has elapsed
func (c CooldownComponent) Ready() bool {
	return c.Remaining <= 0
}
