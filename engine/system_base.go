package engine

import "github.com/sirupsen/logrus"

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
	Log       logrus.FieldLogger
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetResources(w),
		Component: w.Components,
		Log:       w.Resources.Log.WithField("system", name),
	}
}
