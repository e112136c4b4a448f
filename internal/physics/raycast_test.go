package physics

import (
	"math"
	"testing"

	"marblenav/internal/components"
	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var inf = float32(math.Inf(1))

func addBox(w *PhysicsWorld, name string, pos, size rl.Vector3, layer engine.Layer) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	col := components.NewBoxCollider(size)
	col.Layer = layer
	g.AddComponent(col)
	w.AddObject(g)
	return g
}

func down(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 20, Z: z}, Direction: rl.Vector3{Y: -1}}
}

func TestRaycastHitsGround(t *testing.T) {
	w := NewPhysicsWorld(nil)
	floor := addBox(w, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40}, engine.LayerGround)

	hit, ok := w.Raycast(down(2, 5), engine.MaskOf(engine.LayerGround), inf)
	if !ok {
		t.Fatal("Expected a hit on the floor")
	}
	if hit.GameObject != floor {
		t.Errorf("Expected Floor, got %v", hit.GameObject)
	}
	want := rl.Vector3{X: 2, Y: 0, Z: 5}
	if hit.Point != want {
		t.Errorf("Expected point %v, got %v", want, hit.Point)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
	if hit.Distance != 20 {
		t.Errorf("Expected distance 20, got %f", hit.Distance)
	}
}

func TestRaycastRespectsMask(t *testing.T) {
	w := NewPhysicsWorld(nil)
	addBox(w, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 40, Y: 1, Z: 40}, engine.LayerGround)
	addBox(w, "Wall", rl.Vector3{Y: 2}, rl.Vector3{X: 2, Y: 4, Z: 2}, engine.LayerWall)

	hit, ok := w.Raycast(down(0, 0), engine.MaskOf(engine.LayerGround), inf)
	if !ok || hit.GameObject.Name != "Floor" {
		t.Fatalf("Ground-only ray should pass through the wall, got %+v", hit)
	}

	hit, ok = w.Raycast(down(0, 0), engine.LayerAll, inf)
	if !ok || hit.GameObject.Name != "Wall" {
		t.Fatalf("Unfiltered ray should stop at the wall, got %+v", hit)
	}
	if hit.Point.Y != 4 {
		t.Errorf("Expected wall top at Y=4, got %f", hit.Point.Y)
	}
}

func TestRaycastMiss(t *testing.T) {
	w := NewPhysicsWorld(nil)
	addBox(w, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, engine.LayerGround)

	if _, ok := w.Raycast(down(50, 50), engine.LayerAll, inf); ok {
		t.Error("Ray outside the floor should miss")
	}

	up := rl.Ray{Position: rl.Vector3{Y: 5}, Direction: rl.Vector3{Y: 1}}
	if _, ok := w.Raycast(up, engine.LayerAll, inf); ok {
		t.Error("Ray pointing away should miss")
	}

	zero := rl.Ray{Position: rl.Vector3{Y: 5}}
	if _, ok := w.Raycast(zero, engine.LayerAll, inf); ok {
		t.Error("Zero-direction ray should miss")
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	w := NewPhysicsWorld(nil)
	addBox(w, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, engine.LayerGround)

	if _, ok := w.Raycast(down(0, 0), engine.LayerAll, 10); ok {
		t.Error("Floor is 20 units away; a 10-unit ray should miss")
	}
}

func TestRaycastSkipsInactive(t *testing.T) {
	w := NewPhysicsWorld(nil)
	floor := addBox(w, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, engine.LayerGround)
	floor.SetActive(false)

	if _, ok := w.Raycast(down(0, 0), engine.LayerAll, inf); ok {
		t.Error("Inactive colliders should not be hit")
	}
}

func TestRaycastSphere(t *testing.T) {
	w := NewPhysicsWorld(nil)
	g := engine.NewGameObject("Marble")
	g.Transform.Position = rl.Vector3{X: 0, Y: 0.5, Z: 0}
	sphere := components.NewSphereCollider(0.5)
	sphere.Layer = engine.LayerAgent
	g.AddComponent(sphere)
	w.AddObject(g)

	hit, ok := w.Raycast(down(0, 0), engine.MaskOf(engine.LayerAgent), inf)
	if !ok {
		t.Fatal("Expected to hit the marble")
	}
	if math.Abs(float64(hit.Point.Y-1)) > 1e-4 {
		t.Errorf("Expected hit at top of sphere (Y=1), got %v", hit.Point)
	}

	if _, ok := w.Raycast(down(0, 0), engine.MaskOf(engine.LayerGround), inf); ok {
		t.Error("Agent layer should be filtered out of ground rays")
	}
}

func TestRaycastClosestWins(t *testing.T) {
	w := NewPhysicsWorld(nil)
	addBox(w, "Low", rl.Vector3{Y: 0}, rl.Vector3{X: 4, Y: 1, Z: 4}, engine.LayerGround)
	addBox(w, "High", rl.Vector3{Y: 3}, rl.Vector3{X: 4, Y: 1, Z: 4}, engine.LayerGround)

	hit, ok := w.Raycast(down(0, 0), engine.LayerAll, inf)
	if !ok || hit.GameObject.Name != "High" {
		t.Errorf("Expected closest box High, got %+v", hit)
	}
}

func TestAddObjectRequiresCollider(t *testing.T) {
	w := NewPhysicsWorld(nil)
	if w.AddObject(engine.NewGameObject("Empty")) {
		t.Error("Object without collider should not be added")
	}

	g := addBox(w, "Floor", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, engine.LayerGround)
	if w.AddObject(g) {
		t.Error("Duplicate AddObject should return false")
	}
	if len(w.Colliders) != 1 {
		t.Errorf("Expected 1 collider, got %d", len(w.Colliders))
	}

	w.RemoveObject(g)
	if len(w.Colliders) != 0 {
		t.Errorf("Expected 0 colliders after removal, got %d", len(w.Colliders))
	}
}

func TestAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: -2, Y: 2, Z: 2})
	if box.Min != (rl.Vector3{X: 0, Y: -1, Z: -1}) || box.Max != (rl.Vector3{X: 2, Y: 1, Z: 1}) {
		t.Errorf("Unexpected box %+v", box)
	}
	if !box.Contains(rl.Vector3{X: 1}) || box.Contains(rl.Vector3{X: 3}) {
		t.Error("Contains gave the wrong answer")
	}
}
