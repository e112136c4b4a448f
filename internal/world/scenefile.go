package world

import (
	"errors"
	"fmt"
	"os"

	"marblenav/internal/components"
	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type LevelFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string      `yaml:"name"`
	Tags       []string    `yaml:"tags,omitempty"`
	Parent     string      `yaml:"parent,omitempty"`
	Active     *bool       `yaml:"active,omitempty"`
	Position   [3]float32  `yaml:"position"`
	Rotation   [3]float32  `yaml:"rotation"`
	Scale      [3]float32  `yaml:"scale"`
	Components []yaml.Node `yaml:"components"`
}

type componentHeader struct {
	Type string `yaml:"type"`
}

type meshDef struct {
	Mesh  string     `yaml:"mesh"`
	Size  [3]float32 `yaml:"size"`
	Color string     `yaml:"color"`
	Wires bool       `yaml:"wires,omitempty"`
}

type boxColliderDef struct {
	Size   [3]float32 `yaml:"size"`
	Offset [3]float32 `yaml:"offset,omitempty"`
	Layer  string     `yaml:"layer"`
}

type sphereColliderDef struct {
	Radius float32    `yaml:"radius"`
	Offset [3]float32 `yaml:"offset,omitempty"`
	Layer  string     `yaml:"layer"`
}

type cameraDef struct {
	FOV    float32 `yaml:"fov,omitempty"`
	LookAt string  `yaml:"look_at,omitempty"`
}

type scriptDef struct {
	Name  string         `yaml:"name"`
	Props map[string]any `yaml:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

// LoadLevel reads a level file into the world.
func (w *World) LoadLevel(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}
	if err := w.ParseLevel(data); err != nil {
		return fmt.Errorf("level %s: %w", path, err)
	}
	return nil
}

// ParseLevel builds scene objects from level YAML, registers their colliders
// and resolves the well-known objects the game needs.
func (w *World) ParseLevel(data []byte) error {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return fmt.Errorf("parse level: %w", err)
	}
	if lf.Name != "" {
		w.Scene.Name = lf.Name
	}

	// Camera look targets and parents can point at objects defined later.
	type pendingLookAt struct {
		cam  *components.Camera
		name string
	}
	var lookAts []pendingLookAt
	parents := map[*engine.GameObject]string{}

	for _, objDef := range lf.Objects {
		if objDef.Name == "" {
			return errors.New("object without a name")
		}
		if w.Scene.FindByName(objDef.Name) != nil {
			return fmt.Errorf("duplicate object %q", objDef.Name)
		}

		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)
		if objDef.Active != nil {
			g.Active = *objDef.Active
		}

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for i := range objDef.Components {
			node := &objDef.Components[i]
			var header componentHeader
			if err := node.Decode(&header); err != nil {
				return fmt.Errorf("%s: component %d: %w", objDef.Name, i, err)
			}

			var err error
			switch header.Type {
			case "Mesh":
				err = loadMesh(g, node)
			case "BoxCollider":
				err = loadBoxCollider(g, node)
			case "SphereCollider":
				err = loadSphereCollider(g, node)
			case "Camera":
				var cam *components.Camera
				var lookAt string
				cam, lookAt, err = loadCamera(g, node)
				if lookAt != "" {
					lookAts = append(lookAts, pendingLookAt{cam: cam, name: lookAt})
				}
			case "Script":
				err = loadScript(g, node)
			default:
				err = fmt.Errorf("unknown component type %q", header.Type)
			}
			if err != nil {
				return fmt.Errorf("%s: %s: %w", objDef.Name, header.Type, err)
			}
		}

		if objDef.Parent != "" {
			parents[g] = objDef.Parent
		}
		w.Scene.AddGameObject(g)
		w.Physics.AddObject(g)
	}

	for _, g := range w.Scene.GameObjects {
		name, ok := parents[g]
		if !ok {
			continue
		}
		parent := w.Scene.FindByName(name)
		if parent == nil {
			return fmt.Errorf("%s: parent %q not found", g.Name, name)
		}
		parent.AddChild(g)
	}

	for _, la := range lookAts {
		target := w.Scene.FindByName(la.name)
		if target == nil {
			return fmt.Errorf("camera look_at %q not found", la.name)
		}
		la.cam.LookAt = target
	}

	// Colliders are axis-aligned: a rotated box would pick as its unrotated
	// bounds.
	for _, g := range w.Physics.Colliders {
		if g.WorldRotation() != (rl.Vector3{}) {
			return fmt.Errorf("%s: colliders cannot be rotated", g.Name)
		}
	}

	return w.resolve()
}

func loadMesh(g *engine.GameObject, node *yaml.Node) error {
	var def meshDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	meshType, err := components.ParseMeshType(def.Mesh)
	if err != nil {
		return err
	}
	renderer := components.NewMeshRenderer(meshType, lookupColor(def.Color), vec3(def.Size))
	renderer.Wires = def.Wires
	g.AddComponent(renderer)
	return nil
}

func loadBoxCollider(g *engine.GameObject, node *yaml.Node) error {
	var def boxColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	if def.Layer != "" {
		layer, err := engine.ParseLayer(def.Layer)
		if err != nil {
			return err
		}
		col.Layer = layer
	}
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, node *yaml.Node) error {
	var def sphereColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	if def.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", def.Radius)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	if def.Layer != "" {
		layer, err := engine.ParseLayer(def.Layer)
		if err != nil {
			return err
		}
		col.Layer = layer
	}
	g.AddComponent(col)
	return nil
}

func loadCamera(g *engine.GameObject, node *yaml.Node) (*components.Camera, string, error) {
	var def cameraDef
	if err := node.Decode(&def); err != nil {
		return nil, "", err
	}
	cam := components.NewCamera()
	if def.FOV > 0 {
		cam.FOV = def.FOV
	}
	g.AddComponent(cam)
	return cam, def.LookAt, nil
}

func loadScript(g *engine.GameObject, node *yaml.Node) error {
	var def scriptDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	comp, err := engine.CreateScript(def.Name, def.Props)
	if err != nil {
		return err
	}
	g.AddComponent(comp)
	return nil
}
