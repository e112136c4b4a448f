package game

import (
	"fmt"

	"marblenav/internal/targeting"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD palette, dark with an indigo accent.
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 220)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

const hudPanelW, hudPanelH = 300, 190

// hudPanel is the targeting panel's screen rectangle, top right.
func hudPanel(screenWidth int32) rl.Rectangle {
	return rl.Rectangle{X: float32(screenWidth - hudPanelW - 10), Y: 10, Width: hudPanelW, Height: hudPanelH}
}

// overHUD reports whether pos is on the targeting panel. Clicks there work
// the panel controls and must not select a target.
func (g *Game) overHUD(pos rl.Vector2) bool {
	if g.Broadcaster() == nil {
		return false
	}
	return inRect(pos, hudPanel(g.screenWidth()))
}

func inRect(p rl.Vector2, r rl.Rectangle) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// DrawUI draws the targeting readout and the projector controls. Changing
// the mode or the ground offset takes effect on the next tick.
func (g *Game) DrawUI() {
	rl.DrawText("Click to set a target, F1 to toggle gizmos", 10, 10, 20, rl.LightGray)
	rl.DrawFPS(10, 35)

	b := g.Broadcaster()
	if b == nil {
		return
	}
	p := b.Projector()

	panel := hudPanel(g.screenWidth())
	x, y := int32(panel.X), int32(panel.Y)
	rl.DrawRectangleRec(panel, colorBgPanel)
	rl.DrawRectangleLinesEx(panel, 1, colorAccent)

	line := func(text string, color rl.Color) {
		y += 20
		rl.DrawText(text, x+10, y, 16, color)
	}

	y -= 10
	line("Targeting", colorTextPrimary)

	cursor := b.Cursor()
	line(fmt.Sprintf("Cursor: (%.2f, %.2f, %.2f)", cursor.X, cursor.Y, cursor.Z), colorTextSecondary)

	if target, ok := b.Target(); ok {
		line(fmt.Sprintf("Target: (%.2f, %.2f, %.2f)", target.X, target.Y, target.Z), colorTextSecondary)
	} else {
		line("Target: none", colorTextMuted)
	}

	sample := b.LastSample()
	line(fmt.Sprintf("Pointer delta: (%.1f, %.1f)", sample.Delta.X, sample.Delta.Y), colorTextMuted)
	line(fmt.Sprintf("Subscribers: %d  Moves: %d", b.SubscriberCount(), g.moveCount), colorTextMuted)

	y += 26
	clamped := gui.CheckBox(rl.Rectangle{X: float32(x + 10), Y: float32(y), Width: 16, Height: 16},
		"Clamp to bounds", p.Mode == targeting.ModeClamped)
	if clamped {
		p.Mode = targeting.ModeClamped
	} else {
		p.Mode = targeting.ModeLegacy
	}

	y += 26
	rl.DrawText("Offset", x+10, y+2, 16, colorTextMuted)
	sliderBounds := rl.Rectangle{X: float32(x + 80), Y: float32(y), Width: 150, Height: 18}
	p.GroundOffset = gui.Slider(sliderBounds, "", fmt.Sprintf("%.2f", p.GroundOffset), p.GroundOffset, 0, 3)
}
