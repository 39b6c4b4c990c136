package input

import "github.com/bits-and-blooms/bitset"

// Snapshot is the input state for one tick
// Held is level-triggered, Pressed is the edge for actions that went down this tick
type Snapshot struct {
	held    *bitset.BitSet
	pressed *bitset.BitSet
}

// NewSnapshot builds a snapshot; pressed actions are also held
func NewSnapshot(held, pressed []Action) Snapshot {
	s := Snapshot{
		held:    bitset.New(uint(ActionCount)),
		pressed: bitset.New(uint(ActionCount)),
	}
	for _, a := range held {
		s.held.Set(uint(a))
	}
	for _, a := range pressed {
		s.held.Set(uint(a))
		s.pressed.Set(uint(a))
	}
	return s
}

// Held reports whether the action is currently down
func (s Snapshot) Held(a Action) bool {
	return s.held != nil && s.held.Test(uint(a))
}

// Pressed reports whether the action went down this tick
func (s Snapshot) Pressed(a Action) bool {
	return s.pressed != nil && s.pressed.Test(uint(a))
}
