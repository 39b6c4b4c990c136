package component

// CameraComponent marks the singleton camera and holds its projection scale
// Zoom stays within [PlayerMinZoom, PlayerMaxZoom]
type CameraComponent struct {
	Zoom float32
}
