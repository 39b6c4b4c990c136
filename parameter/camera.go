package parameter

// Camera follow and zoom
const (
	// CameraBaseSpeed scales the per-second lerp factor toward the player
	CameraBaseSpeed float32 = 10.0

	// PlayerZoomDefault is the projection scale at startup
	PlayerZoomDefault float32 = 0.5

	// PlayerZoomStep is added or removed on each zoom edge
	PlayerZoomStep float32 = 0.25

	// PlayerMinZoom and PlayerMaxZoom bound the projection scale
	PlayerMinZoom float32 = 0.25
	PlayerMaxZoom float32 = 0.75
)
