package engine

import (
	"slices"

	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/core"
)

// AddChild appends child to parent's owned list and records the back-reference
// A child already owned elsewhere is moved
func (w *World) AddChild(parent, child core.Entity) {
	if parent == child {
		panic("entity cannot own itself")
	}
	w.detachFromParent(child)

	children, _ := w.Components.Children.Get(parent)
	children.Entities = append(children.Entities, child)
	w.Components.Children.Set(parent, children)
	w.Components.Parent.Set(child, component.ParentComponent{Entity: parent})
}

// Children returns a copy of the entity's owned child list
func (w *World) Children(e core.Entity) []core.Entity {
	children, ok := w.Components.Children.Get(e)
	if !ok {
		return nil
	}
	return slices.Clone(children.Entities)
}

// DestroyRecursive destroys an entity and, transitively, everything it owns
// The whole subtree is removed in one batch so no child outlives its owner
func (w *World) DestroyRecursive(e core.Entity) {
	if !w.Alive(e) {
		return
	}

	w.detachFromParent(e)
	w.removeFromAllStores(w.subtree(e))
}

// subtree collects e and all of its descendants, breadth first
func (w *World) subtree(e core.Entity) []core.Entity {
	result := []core.Entity{e}
	for i := 0; i < len(result); i++ {
		if children, ok := w.Components.Children.Get(result[i]); ok {
			result = append(result, children.Entities...)
		}
	}
	return result
}

// detachFromParent removes e from its owner's child list, if any
func (w *World) detachFromParent(e core.Entity) {
	parent, ok := w.Components.Parent.Get(e)
	if !ok {
		return
	}
	w.Components.Parent.Remove(e)

	children, ok := w.Components.Children.Get(parent.Entity)
	if !ok {
		return
	}
	children.Entities = slices.DeleteFunc(slices.Clone(children.Entities), func(c core.Entity) bool {
		return c == e
	})
	w.Components.Children.Set(parent.Entity, children)
}
