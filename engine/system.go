package engine

// System is an interface that all systems must implement
type System interface {
	// Init resets session state
	Init()

	// Name returns the system's name for logs
	Name() string

	// Priority orders execution; lower values run first
	Priority() int

	// Update runs once per tick
	Update()
}
