package world

import (
	"marblenav/internal/components"
	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders the level in the current 3D mode: every mesh, then gizmos
// when showGizmos is set.
func (w *World) Draw(showGizmos bool) {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			if mr, ok := c.(*components.MeshRenderer); ok {
				mr.Draw()
			}
		}
	}
	if showGizmos {
		w.Scene.DrawGizmos()
		w.drawColliders()
	}
}

func (w *World) drawColliders() {
	for _, g := range w.Physics.Colliders {
		if !g.Active {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
			rl.DrawCubeWiresV(box.GetCenter(), box.GetWorldSize(), rl.Green)
		}
		if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.Radius, 8, 8, rl.Green)
		}
	}
}
