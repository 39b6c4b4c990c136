package engine

// PresentMode is the frame presentation mode of the host window or terminal
type PresentMode uint8

const (
	PresentModeAutoVsync PresentMode = iota
	PresentModeAutoNoVsync
)

// String implements fmt.Stringer
func (m PresentMode) String() string {
	switch m {
	case PresentModeAutoVsync:
		return "AutoVsync"
	case PresentModeAutoNoVsync:
		return "AutoNoVsync"
	}
	return "unknown"
}

// Toggled returns the other mode
func (m PresentMode) Toggled() PresentMode {
	if m == PresentModeAutoVsync {
		return PresentModeAutoNoVsync
	}
	return PresentModeAutoVsync
}

// Presenter is the presentation collaborator the simulation may poke
// The simulation never draws; it only asks for mode changes
type Presenter interface {
	PresentMode() PresentMode
	TogglePresentMode() PresentMode
}
