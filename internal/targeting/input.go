package targeting

import rl "github.com/gen2brain/raylib-go/raylib"

// PointerSample is one frame of pointer input.
type PointerSample struct {
	Position rl.Vector2 // pixels
	Delta    rl.Vector2 // pixels since last frame
	Select   bool       // true only on the frame select went down
}

// InputSource supplies pointer samples and owns the system cursor.
type InputSource interface {
	Sample() PointerSample
	HideCursor()
}

// EdgeDetector turns a held/not-held button state into a press edge.
type EdgeDetector struct {
	down bool
}

// Step records this frame's state and reports whether it is a press edge.
func (e *EdgeDetector) Step(down bool) bool {
	pressed := down && !e.down
	e.down = down
	return pressed
}

// RaylibInput reads the mouse through raylib. Select is edge-triggered on
// SelectButton.
type RaylibInput struct {
	SelectButton rl.MouseButton
	edge         EdgeDetector
}

func NewRaylibInput() *RaylibInput {
	return &RaylibInput{SelectButton: rl.MouseButtonLeft}
}

func (r *RaylibInput) Sample() PointerSample {
	return PointerSample{
		Position: rl.GetMousePosition(),
		Delta:    rl.GetMouseDelta(),
		Select:   r.edge.Step(rl.IsMouseButtonDown(r.SelectButton)),
	}
}

func (r *RaylibInput) HideCursor() {
	rl.HideCursor()
}

// GuardedInput drops select presses that land where Blocked reports true,
// such as over an overlay panel. Position and delta pass through.
type GuardedInput struct {
	Source  InputSource
	Blocked func(pos rl.Vector2) bool
}

func (g *GuardedInput) Sample() PointerSample {
	s := g.Source.Sample()
	if s.Select && g.Blocked != nil && g.Blocked(s.Position) {
		s.Select = false
	}
	return s
}

func (g *GuardedInput) HideCursor() {
	g.Source.HideCursor()
}
