package physics

import (
	"log"

	"marblenav/internal/components"
	"marblenav/internal/engine"
)

// PhysicsWorld holds the collidable objects of a level and answers ray
// queries against them. It does no simulation; the agent's locomotion lives
// elsewhere.
type PhysicsWorld struct {
	Colliders []*engine.GameObject
	logger    *log.Logger
}

func NewPhysicsWorld(logger *log.Logger) *PhysicsWorld {
	if logger == nil {
		logger = log.Default()
	}
	return &PhysicsWorld{
		Colliders: make([]*engine.GameObject, 0),
		logger:    logger,
	}
}

// AddObject registers g if it carries a collider. Objects without one are
// ignored and AddObject returns false.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if engine.GetComponent[*components.BoxCollider](g) == nil &&
		engine.GetComponent[*components.SphereCollider](g) == nil {
		return false
	}
	for _, existing := range p.Colliders {
		if existing == g {
			p.logger.Printf("Physics: %q already registered", g.Name)
			return false
		}
	}
	p.Colliders = append(p.Colliders, g)
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Colliders {
		if obj == g {
			p.Colliders = append(p.Colliders[:i], p.Colliders[i+1:]...)
			return
		}
	}
}
