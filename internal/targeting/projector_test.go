package targeting

import (
	"math"
	"testing"

	"marblenav/internal/engine"
)

var view800x600 = fakeView{width: 800, height: 600}

func TestProjectLegacy(t *testing.T) {
	world := newFakeWorld()
	world.hits[at(400, 300)] = vec(2, 0, 5)
	p := NewProjector(world, engine.MaskOf(engine.LayerGround))

	got, ok := p.Project(at(400, 300), view800x600)
	if !ok {
		t.Fatal("Expected a projection")
	}
	if got != vec(2, 0.5, 5) {
		t.Errorf("Expected (2, 0.5, 5), got %v", got)
	}
}

func TestProjectUsesSurfaceMaskAndUnboundedRay(t *testing.T) {
	world := newFakeWorld()
	mask := engine.MaskOf(engine.LayerGround)
	p := NewProjector(world, mask)

	p.Project(at(1, 1), view800x600)

	if world.lastMask != mask {
		t.Errorf("Expected mask %b, got %b", mask, world.lastMask)
	}
	if !math.IsInf(float64(world.lastMax), 1) {
		t.Errorf("Expected unbounded ray, got max distance %f", world.lastMax)
	}
	if p.Surface() != mask {
		t.Errorf("Surface() should return the construction mask")
	}
}

func TestProjectClamped(t *testing.T) {
	world := newFakeWorld()
	world.hits[at(400, 300)] = vec(2, 0, 5)
	world.hits[at(790, 300)] = vec(50, 0, 5)
	world.hits[at(10, 590)] = vec(-30, 0, -12)
	p := NewProjector(world, engine.LayerAll)
	p.Mode = ModeClamped
	p.Bounds = SymmetricBounds(10, 10)

	cases := []struct {
		screen [2]float32
		want   [3]float32
	}{
		{[2]float32{400, 300}, [3]float32{2, 0.5, 5}},
		{[2]float32{790, 300}, [3]float32{10, 0.5, 5}},
		{[2]float32{10, 590}, [3]float32{-10, 0.5, -10}},
	}
	for _, c := range cases {
		got, ok := p.Project(at(c.screen[0], c.screen[1]), view800x600)
		if !ok {
			t.Errorf("%v: expected a projection", c.screen)
			continue
		}
		if got != vec(c.want[0], c.want[1], c.want[2]) {
			t.Errorf("%v: expected %v, got %v", c.screen, c.want, got)
		}
	}
}

func TestProjectLegacyDoesNotClamp(t *testing.T) {
	world := newFakeWorld()
	world.hits[at(790, 300)] = vec(50, 0, 5)
	p := NewProjector(world, engine.LayerAll)

	got, _ := p.Project(at(790, 300), view800x600)
	if got != vec(50, 0.5, 5) {
		t.Errorf("Legacy mode should not clamp, got %v", got)
	}
}

func TestProjectGroundOffsetIgnoresHitHeight(t *testing.T) {
	world := newFakeWorld()
	heights := []float32{-3, 0, 0.25, 7.5, 42}
	for i, h := range heights {
		world.hits[at(float32(i), 0)] = vec(1, h, 1)
	}
	for _, mode := range []Mode{ModeLegacy, ModeClamped} {
		p := NewProjector(world, engine.LayerAll)
		p.Mode = mode
		for i := range heights {
			got, ok := p.Project(at(float32(i), 0), view800x600)
			if !ok {
				t.Fatalf("%v: expected a projection", mode)
			}
			if got.Y != DefaultGroundOffset {
				t.Errorf("%v: hit height %f gave Y=%f, want %f", mode, heights[i], got.Y, DefaultGroundOffset)
			}
		}
	}
}

func TestProjectMiss(t *testing.T) {
	p := NewProjector(newFakeWorld(), engine.LayerAll)
	if _, ok := p.Project(at(5, 5), view800x600); ok {
		t.Error("Expected no projection without a hit")
	}
}

func TestProjectNilCollaborators(t *testing.T) {
	p := NewProjector(nil, engine.LayerAll)
	if _, ok := p.Project(at(0, 0), view800x600); ok {
		t.Error("Projector without a world should not project")
	}

	p = NewProjector(newFakeWorld(), engine.LayerAll)
	if _, ok := p.Project(at(0, 0), nil); ok {
		t.Error("Projector without a viewpoint should not project")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"legacy":   ModeLegacy,
		"Clamped":  ModeClamped,
		" clamped": ModeClamped,
		"":         ModeLegacy,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseMode("pixel"); err == nil {
		t.Error("Expected error for unknown mode")
	}

	if ModeClamped.String() != "clamped" || ModeLegacy.String() != "legacy" {
		t.Error("Mode.String mismatch")
	}
}
