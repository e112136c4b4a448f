package engine

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layer is a single collider classification bit.
type Layer uint32

// LayerMask is a set of layers. Raycasts only consider colliders whose
// layer is in the mask.
type LayerMask uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerWall
	LayerAgent
	LayerProp
)

// LayerAll matches every layer.
const LayerAll LayerMask = ^LayerMask(0)

var layerNames = map[string]Layer{
	"default": LayerDefault,
	"ground":  LayerGround,
	"wall":    LayerWall,
	"agent":   LayerAgent,
	"prop":    LayerProp,
}

// ParseLayer looks up a layer by name (case-insensitive).
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// MaskOf builds a mask from layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= LayerMask(l)
	}
	return m
}

// ParseLayerMask builds a mask from layer names.
func ParseLayerMask(names []string) (LayerMask, error) {
	var m LayerMask
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return 0, err
		}
		m |= LayerMask(l)
	}
	return m, nil
}

func (m LayerMask) Contains(l Layer) bool {
	return m&LayerMask(l) != 0
}

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycaster answers ray queries against world geometry.
type Raycaster interface {
	Raycast(ray rl.Ray, mask LayerMask, maxDistance float32) (RaycastResult, bool)
}
