package targeting

import (
	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeView encodes the screen point in the ray origin so fakeWorld can look
// up a scripted hit for it.
type fakeView struct {
	width, height int32
}

func (v fakeView) ScreenPointToRay(pos rl.Vector2) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: pos.X, Y: 100, Z: pos.Y}, Direction: rl.Vector3{Y: -1}}
}

func (v fakeView) ViewportSize() (int32, int32) { return v.width, v.height }

type fakeWorld struct {
	hits     map[rl.Vector2]rl.Vector3
	lastMask engine.LayerMask
	lastMax  float32
	calls    int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{hits: map[rl.Vector2]rl.Vector3{}}
}

func (w *fakeWorld) Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (engine.RaycastResult, bool) {
	w.calls++
	w.lastMask = mask
	w.lastMax = maxDistance
	p, ok := w.hits[rl.Vector2{X: ray.Position.X, Y: ray.Position.Z}]
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Point: p, Normal: rl.Vector3{Y: 1}, Distance: 100 - p.Y}, true
}

type fakeInput struct {
	samples []PointerSample
	hidden  bool
}

func (f *fakeInput) Sample() PointerSample {
	if len(f.samples) == 0 {
		return PointerSample{}
	}
	s := f.samples[0]
	f.samples = f.samples[1:]
	return s
}

func (f *fakeInput) HideCursor() { f.hidden = true }

type fakeMarker struct {
	pos        rl.Vector3
	active     bool
	activated  int
	positioned int
}

func (m *fakeMarker) SetPosition(pos rl.Vector3) {
	m.pos = pos
	m.positioned++
}

func (m *fakeMarker) SetActive(active bool) {
	if active && !m.active {
		m.activated++
	}
	m.active = active
}

func at(x, y float32) rl.Vector2 {
	return rl.Vector2{X: x, Y: y}
}

func vec(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}
