package parameter

// World grid
const (
	// GridSize is the world-space distance of one grid cell
	GridSize float32 = 32.0

	// SpriteScale is the uniform scale applied to root sprites
	SpriteScale float32 = 2.0

	// FloorMin and FloorMax bound the floor tile grid, in cells, [min, max)
	FloorMin = -10
	FloorMax = 10
)
