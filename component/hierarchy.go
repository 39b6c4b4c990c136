package component

import "github.com/lixenwraith/henshin/core"

// ChildrenComponent is the owned list of child handles
// Destroying the owner destroys every listed child
type ChildrenComponent struct {
	Entities []core.Entity
}

// ParentComponent points a child back to its owner
type ParentComponent struct {
	Entity core.Entity
}
