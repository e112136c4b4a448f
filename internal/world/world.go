package world

import (
	"fmt"
	"log"

	"marblenav/internal/components"
	"marblenav/internal/engine"
	"marblenav/internal/physics"
)

// Names of the objects every level must define.
const (
	MarbleName    = "Marble"
	CrosshairName = "Crosshair"
	TargetName    = "Target"
)

type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld

	// Resolved by ParseLevel.
	Marble    *engine.GameObject
	Crosshair *engine.GameObject
	Target    *engine.GameObject
	Camera    *components.Camera
}

func New(logger *log.Logger) *World {
	return &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(logger),
	}
}

// resolve finds the marble, the two markers and the main camera. A level
// without a camera has no viewpoint to project from, so it is rejected
// here rather than on the first frame.
func (w *World) resolve() error {
	for _, name := range []string{MarbleName, CrosshairName, TargetName} {
		if w.Scene.FindByName(name) == nil {
			return fmt.Errorf("level has no %q object", name)
		}
	}
	w.Marble = w.Scene.FindByName(MarbleName)
	w.Crosshair = w.Scene.FindByName(CrosshairName)
	w.Target = w.Scene.FindByName(TargetName)

	w.Camera = nil
	for _, g := range w.Scene.GameObjects {
		if cam := engine.GetComponent[*components.Camera](g); cam != nil {
			if w.Camera != nil {
				return fmt.Errorf("level has more than one camera (%q and %q)", w.Camera.GetGameObject().Name, g.Name)
			}
			w.Camera = cam
		}
	}
	if w.Camera == nil {
		return fmt.Errorf("level has no camera")
	}
	return nil
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
