package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// ExecutionOrderer is implemented by components that must start and update
// before or after the rest of the scene. Lower values run first; components
// that don't implement it run at order 0.
type ExecutionOrderer interface {
	ExecutionOrder() int
}

// GizmoDrawer is implemented by components that draw debug shapes in the
// 3D pass.
type GizmoDrawer interface {
	DrawGizmo()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

func executionOrder(c Component) int {
	if o, ok := c.(ExecutionOrderer); ok {
		return o.ExecutionOrder()
	}
	return 0
}
