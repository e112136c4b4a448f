package components

import (
	"math"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("Pulse", pulseFactory)
}

func pulseFactory(props map[string]any) (engine.Component, error) {
	speed, err := engine.PropFloat(props, "speed", 1)
	if err != nil {
		return nil, err
	}
	amount, err := engine.PropFloat(props, "amount", 0.15)
	if err != nil {
		return nil, err
	}
	return NewPulse(speed, amount), nil
}

// Pulse breathes its object's horizontal scale around 1. It only touches
// Scale, so markers positioned by other code can carry it.
type Pulse struct {
	engine.BaseComponent
	Speed  float32 // cycles per second
	Amount float32 // peak deviation from scale 1
	time   float32
}

func NewPulse(speed, amount float32) *Pulse {
	return &Pulse{Speed: speed, Amount: amount}
}

func (p *Pulse) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}

	p.time += deltaTime
	if p.Speed > 0 {
		// Keep time within one period so float precision holds up over long sessions.
		period := 1 / p.Speed
		for p.time >= period {
			p.time -= period
		}
	}

	s := 1 + p.Amount*float32(math.Sin(2*math.Pi*float64(p.time*p.Speed)))
	g.Transform.Scale = rl.Vector3{X: s, Y: 1, Z: s}
}
