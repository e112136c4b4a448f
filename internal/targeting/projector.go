package targeting

import (
	"fmt"
	"math"
	"strings"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewpoint turns screen points into world rays.
type Viewpoint interface {
	ScreenPointToRay(pos rl.Vector2) rl.Ray
	ViewportSize() (width, height int32)
}

// Mode selects how a surface hit becomes a cursor position.
type Mode int

const (
	// ModeLegacy uses the hit point as is, snapped to the ground offset.
	ModeLegacy Mode = iota
	// ModeClamped additionally clamps X and Z into Bounds.
	ModeClamped
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeClamped:
		return "clamped"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "":
		return ModeLegacy, nil
	case "clamped":
		return ModeClamped, nil
	default:
		return 0, fmt.Errorf("unknown projection mode %q", s)
	}
}

// Bounds limits the cursor on the ground plane, in world units.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// SymmetricBounds returns bounds of ±halfX by ±halfZ around the origin.
func SymmetricBounds(halfX, halfZ float32) Bounds {
	return Bounds{MinX: -halfX, MaxX: halfX, MinZ: -halfZ, MaxZ: halfZ}
}

const DefaultGroundOffset = 0.5

// Projector maps a pointer position to a point on the navigable surface.
type Projector struct {
	Mode         Mode
	GroundOffset float32 // cursor height above the surface
	Bounds       Bounds

	world   engine.Raycaster
	surface engine.LayerMask
}

// NewProjector returns a legacy-mode projector casting against surface.
// The surface mask is fixed for the projector's lifetime.
func NewProjector(world engine.Raycaster, surface engine.LayerMask) *Projector {
	return &Projector{
		Mode:         ModeLegacy,
		GroundOffset: DefaultGroundOffset,
		Bounds:       SymmetricBounds(10, 10),
		world:        world,
		surface:      surface,
	}
}

func (p *Projector) Surface() engine.LayerMask {
	return p.surface
}

// Project casts a ray from view through screen and returns the cursor
// position for the hit. It reports false when nothing on the surface is hit.
func (p *Projector) Project(screen rl.Vector2, view Viewpoint) (rl.Vector3, bool) {
	if p.world == nil || view == nil {
		return rl.Vector3{}, false
	}
	ray := view.ScreenPointToRay(screen)
	hit, ok := p.world.Raycast(ray, p.surface, float32(math.Inf(1)))
	if !ok {
		return rl.Vector3{}, false
	}

	pos := hit.Point
	if p.Mode == ModeClamped {
		pos.X = rl.Clamp(pos.X, p.Bounds.MinX, p.Bounds.MaxX)
		pos.Z = rl.Clamp(pos.Z, p.Bounds.MinZ, p.Bounds.MaxZ)
	}
	// The cursor always sits GroundOffset above the plane, whatever was hit.
	pos.Y = p.GroundOffset
	return pos, true
}
