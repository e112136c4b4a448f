package physics

import (
	"math"

	"marblenav/internal/components"
	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast checks the ray against every active collider whose layer is in
// mask and returns the closest hit within maxDistance. Pass
// float32(math.Inf(1)) for an unbounded ray.
func (p *PhysicsWorld) Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (engine.RaycastResult, bool) {
	if ray.Direction == (rl.Vector3{}) {
		return engine.RaycastResult{}, false
	}
	origin := ray.Position
	direction := rl.Vector3Normalize(ray.Direction)

	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Colliders {
		if !obj.Active {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && mask.Contains(box.Layer) {
			if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok {
				if !hit || hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && mask.Contains(sphere.Layer) {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, maxDistance); ok {
				if !hit || hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

// slab narrows [tmin, tmax] to the interval where the ray is between lo and
// hi on one axis.
func slab(origin, dir, lo, hi float32, tmin, tmax *float32) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	t1 := (lo - origin) / dir
	t2 := (hi - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tmin {
		*tmin = t1
	}
	if t2 < *tmax {
		*tmax = t2
	}
	return *tmin <= *tmax
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (engine.RaycastResult, bool) {
	bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
	min, max := bounds.Min, bounds.Max

	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	if !slab(origin.X, direction.X, min.X, max.X, &tmin, &tmax) ||
		!slab(origin.Y, direction.Y, min.Y, max.Y, &tmin, &tmax) ||
		!slab(origin.Z, direction.Z, min.Z, max.Z, &tmin, &tmax) {
		return engine.RaycastResult{}, false
	}

	if tmax < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	// Origin inside the box: report the exit point.
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (engine.RaycastResult, bool) {
	center := sphere.GetCenter()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
