package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp3 interpolates from a toward b by t; t is not clamped
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Floor3 floors every component
func Floor3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Floor(v.X()), Floor(v.Y()), Floor(v.Z())}
}

// Floor rounds toward negative infinity
func Floor(f float32) float32 {
	return float32(math.Floor(float64(f)))
}

// Trunc2 truncates toward zero at two decimal places
func Trunc2(f float32) float32 {
	return float32(math.Trunc(float64(f)*100)) / 100
}
