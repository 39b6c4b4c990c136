package component

// TransformState is the player's transformation state
// Normal is initial, Transformed is terminal; there is no transition back
type TransformState uint8

const (
	StateNormal TransformState = iota
	StateTransformed
)

// String implements fmt.Stringer
func (s TransformState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateTransformed:
		return "transformed"
	}
	panic("unreachable: unknown transform state")
}

// PlayerComponent marks the singleton player and holds its henshin state
type PlayerComponent struct {
	State TransformState
}

// Henshin reports whether the player has transformed
func (p PlayerComponent) Henshin() bool {
	return p.State == StateTransformed
}
