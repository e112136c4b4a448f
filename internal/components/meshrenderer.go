package components

import (
	"fmt"
	"strings"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
	MeshCylinder
)

var meshTypeNames = map[string]MeshType{
	"cube":     MeshCube,
	"sphere":   MeshSphere,
	"plane":    MeshPlane,
	"cylinder": MeshCylinder,
}

// ParseMeshType maps a level-file mesh name to a MeshType.
func ParseMeshType(name string) (MeshType, error) {
	m, ok := meshTypeNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown mesh %q", name)
	}
	return m, nil
}

// MeshRenderer draws a primitive at its object's world position. Size is the
// full extent for cubes and planes; spheres use Size.X as radius, cylinders
// Size.X as radius and Size.Y as height.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		if m.Wires {
			rl.DrawCubeWiresV(pos, size, m.Color)
		} else {
			rl.DrawCubeV(pos, size, m.Color)
		}
	case MeshSphere:
		if m.Wires {
			rl.DrawSphereWires(pos, size.X, 8, 8, m.Color)
		} else {
			rl.DrawSphere(pos, size.X, m.Color)
		}
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	case MeshCylinder:
		if m.Wires {
			rl.DrawCylinderWires(pos, size.X, size.X, size.Y, 16, m.Color)
		} else {
			rl.DrawCylinder(pos, size.X, size.X, size.Y, 16, m.Color)
		}
	}
}
