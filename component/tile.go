package component

// TileComponent marks static floor tiles
type TileComponent struct{}

// VisibilityComponent is the render visibility flag computed by culling
type VisibilityComponent struct {
	Visible bool
}
