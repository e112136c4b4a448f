package components

import (
	"math"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders the scene from its object's world position and converts
// screen points into world rays for picking.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection

	// LookAt is the object the camera aims at. When nil the camera looks at
	// its parent, or along its own yaw if it has no parent.
	LookAt *engine.GameObject

	// Screen reports the viewport size in pixels.
	Screen func() (width, height int32)
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.01,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		Screen:     raylibScreenSize,
	}
}

func raylibScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// ViewportSize returns the current viewport extents in pixels.
func (c *Camera) ViewportSize() (int32, int32) {
	if c.Screen == nil {
		return raylibScreenSize()
	}
	return c.Screen()
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var target rl.Vector3
	switch {
	case c.LookAt != nil:
		target = c.LookAt.WorldPosition()
	case g.Parent != nil:
		target = g.Parent.WorldPosition()
	default:
		yawRad := float64(g.WorldRotation().Y) * math.Pi / 180.0
		forward := rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Y: 0,
			Z: float32(-math.Cos(yawRad)),
		}
		target = rl.Vector3Add(eyePos, forward)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// ScreenPointToRay builds a world-space ray through the given pixel. It
// follows raylib's GetScreenToWorldRayEx but is computed on raymath alone, so
// it needs no window.
func (c *Camera) ScreenPointToRay(pos rl.Vector2) rl.Ray {
	cam := c.GetRaylibCamera()
	width, height := c.ViewportSize()
	if width <= 0 || height <= 0 {
		return rl.Ray{Position: cam.Position, Direction: rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))}
	}

	// Normalized device coordinates
	x := (2.0*pos.X)/float32(width) - 1.0
	y := 1.0 - (2.0*pos.Y)/float32(height)

	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	aspect := float32(width) / float32(height)

	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := cam.Fovy / 2.0
		right := top * aspect
		proj = rl.MatrixOrtho(-right, right, -top, top, c.Near, c.Far)
	} else {
		proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, c.Near, c.Far)
	}

	nearPoint := rl.Vector3Unproject(rl.Vector3{X: x, Y: y, Z: 0}, proj, view)
	farPoint := rl.Vector3Unproject(rl.Vector3{X: x, Y: y, Z: 1}, proj, view)
	direction := rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint))

	origin := cam.Position
	if cam.Projection == rl.CameraOrthographic {
		origin = rl.Vector3Unproject(rl.Vector3{X: x, Y: y, Z: -1}, proj, view)
	}

	return rl.Ray{Position: origin, Direction: direction}
}
