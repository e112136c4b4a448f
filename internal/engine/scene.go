package engine

import "sort"

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

type boundComponent struct {
	owner *GameObject
	c     Component
	order int
}

// ordered returns every component in the scene sorted by execution order.
// Ties keep scene order, then component order on the object.
func (s *Scene) ordered(includeInactive bool) []boundComponent {
	var out []boundComponent
	for _, g := range s.GameObjects {
		if !includeInactive && !g.Active {
			continue
		}
		for _, c := range g.components {
			out = append(out, boundComponent{owner: g, c: c, order: executionOrder(c)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}

// Start starts every component that hasn't started yet, lowest execution
// order first across the whole scene. Inactive objects are started too so
// that markers hidden at load still get initialized.
func (s *Scene) Start() {
	for _, bc := range s.ordered(true) {
		if bc.owner.started {
			continue
		}
		bc.c.Start()
	}
	for _, g := range s.GameObjects {
		g.started = true
	}
}

// Update ticks the components of active objects in execution order.
func (s *Scene) Update(deltaTime float32) {
	for _, bc := range s.ordered(false) {
		bc.c.Update(deltaTime)
	}
}

// DrawGizmos calls DrawGizmo on every active component that has one.
func (s *Scene) DrawGizmos() {
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.components {
			if d, ok := c.(GizmoDrawer); ok {
				d.DrawGizmo()
			}
		}
	}
}
