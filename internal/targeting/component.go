package targeting

import "marblenav/internal/engine"

// SelectorExecutionOrder runs the selector ahead of every default-order
// component, so the broadcaster exists and has ticked before subscribers
// start or update.
const SelectorExecutionOrder = -100

// Selector drives a Broadcaster from the scene's frame loop.
type Selector struct {
	engine.BaseComponent
	broadcaster *Broadcaster

	// Err holds the last tick's listener failures, if any.
	Err error
}

func NewSelector(b *Broadcaster) *Selector {
	return &Selector{broadcaster: b}
}

func (s *Selector) ExecutionOrder() int { return SelectorExecutionOrder }

func (s *Selector) Update(deltaTime float32) {
	s.Err = s.broadcaster.Poll()
}

func (s *Selector) Broadcaster() *Broadcaster {
	return s.broadcaster
}
