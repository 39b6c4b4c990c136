package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
	"github.com/lixenwraith/henshin/vmath"
)

// CameraSystem steps zoom on input edges, eases the camera toward the player
// and publishes the view rectangle consumed by culling and rendering
type CameraSystem struct {
	engine.SystemBase
}

// NewCameraSystem creates camera following system
func NewCameraSystem(world *engine.World) engine.System {
	s := &CameraSystem{
		SystemBase: engine.NewSystemBase(world, "camera"),
	}
	s.Init()
	return s
}

// Init
func (s *CameraSystem) Init() {}

// Name returns system's name
func (s *CameraSystem) Name() string {
	return "camera"
}

// Priority returns the system's priority
func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera // After movement, before visibility
}

// Update runs zoom, follow and view computation in that order
func (s *CameraSystem) Update() {
	camera := s.World.MustCamera()
	player := s.World.MustPlayer()

	cam, ok := s.Component.Camera.Get(camera)
	if !ok {
		panic("startup contract violated: camera component missing")
	}
	cam.Zoom = s.stepZoom(cam.Zoom)
	s.Component.Camera.Set(camera, cam)

	tr, _ := s.Component.Transform.Get(camera)
	target, _ := s.Component.Transform.Get(player)
	tr.Translation = followStep(tr.Translation, target.Translation, parameter.CameraBaseSpeed*s.Resource.Time.Delta)
	s.Component.Transform.Set(camera, tr)

	view := s.Resource.View
	view.HalfWidth, view.HalfHeight = halfExtents(s.Resource.Viewport, cam.Zoom)
	view.Rect = vmath.RectFromCenterSize(
		tr.Translation.Vec2(),
		mgl32.Vec2{view.HalfWidth * 2, view.HalfHeight * 2},
	)
}

// stepZoom applies at most one zoom step per tick
// Bounds are compared on the zoom truncated to two decimals so float drift cannot block a legal step
func (s *CameraSystem) stepZoom(zoom float32) float32 {
	snap := s.Resource.Input.Snapshot

	if snap.Pressed(input.ZoomIn) {
		if vmath.Trunc2(zoom) > parameter.PlayerMinZoom {
			zoom -= parameter.PlayerZoomStep
			s.Log.WithField("zoom", zoom).Debug("zoom in")
		}
	} else if snap.Pressed(input.ZoomOut) {
		if vmath.Trunc2(zoom) < parameter.PlayerMaxZoom {
			zoom += parameter.PlayerZoomStep
			s.Log.WithField("zoom", zoom).Debug("zoom out")
		}
	}
	return zoom
}

// followStep eases from toward target, floors to whole pixels and pins the camera layer
func followStep(from, target mgl32.Vec3, t float32) mgl32.Vec3 {
	pos := vmath.Floor3(vmath.Lerp3(from, target, t))
	pos[2] = parameter.LayerCamera
	return pos
}

// halfExtents returns the visible half-width and half-height at the given zoom
func halfExtents(viewport *engine.ViewportResource, zoom float32) (float32, float32) {
	return viewport.Width / 2 * zoom, viewport.Height / 2 * zoom
}
