package component

// EquipmentSlot is the closed set of equipment overlay positions
// Every switch over it must be exhaustive and panic on unknown values
type EquipmentSlot uint8

const (
	SlotHead EquipmentSlot = iota + 1
)

// String implements fmt.Stringer
func (s EquipmentSlot) String() string {
	switch s {
	case SlotHead:
		return "head"
	}
	panic("unreachable: unknown equipment slot")
}

// EquipmentComponent tags a child entity with its slot
type EquipmentComponent struct {
	Slot EquipmentSlot
}
