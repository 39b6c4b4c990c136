package vmath

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in world space
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// RectFromCenterSize builds a rectangle of the given full size centered on center
func RectFromCenterSize(center, size mgl32.Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Contains reports whether p lies inside the rectangle, edges included
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Max.X() <= r.Min.X() || r.Max.Y() <= r.Min.Y()
}
