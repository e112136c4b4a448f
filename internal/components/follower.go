package components

import (
	"log"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("PositionFollower", positionFollowerFactory)
}

func positionFollowerFactory(props map[string]any) (engine.Component, error) {
	target, err := engine.PropString(props, "target", "")
	if err != nil {
		return nil, err
	}
	radius, err := engine.PropFloat(props, "gizmoRadius", 1)
	if err != nil {
		return nil, err
	}
	f := NewPositionFollower(nil)
	f.TargetName = target
	f.GizmoRadius = radius
	return f, nil
}

// PositionFollower copies the world position of a tracked object onto its
// own object every frame. It runs after the rest of the scene so it sees
// the tracked object's final position for the frame.
type PositionFollower struct {
	engine.BaseComponent
	Target      *engine.GameObject
	TargetName  string // resolved in Start when Target is nil
	GizmoRadius float32
	GizmoColor  rl.Color
}

func NewPositionFollower(target *engine.GameObject) *PositionFollower {
	return &PositionFollower{
		Target:      target,
		GizmoRadius: 1,
		GizmoColor:  rl.Yellow,
	}
}

func (f *PositionFollower) ExecutionOrder() int { return 100 }

func (f *PositionFollower) Start() {
	if f.Target != nil || f.TargetName == "" {
		return
	}
	g := f.GetGameObject()
	if g == nil || g.Scene == nil {
		log.Printf("PositionFollower: no scene to resolve %q", f.TargetName)
		return
	}
	f.Target = g.Scene.FindByName(f.TargetName)
	if f.Target == nil {
		log.Printf("PositionFollower: %q not found in scene %q", f.TargetName, g.Scene.Name)
	}
}

func (f *PositionFollower) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.Target == nil {
		return
	}
	g.Transform.Position = f.Target.WorldPosition()
}

// DrawGizmo draws a wire sphere at the follower's position.
func (f *PositionFollower) DrawGizmo() {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	rl.DrawSphereWires(g.WorldPosition(), f.GizmoRadius, 8, 8, f.GizmoColor)
}
