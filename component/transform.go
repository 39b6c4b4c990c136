package component

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent holds world-space translation and uniform scale
// Translation.Z is the depth layer; for child entities it is relative to the parent
type TransformComponent struct {
	Translation mgl32.Vec3
	Scale       float32
}
