package game

import (
	"errors"
	"fmt"
	"log"

	"marblenav/internal/config"
	"marblenav/internal/engine"
	"marblenav/internal/targeting"
	"marblenav/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Session   *targeting.Session
	Selector  *targeting.Selector
	DebugMode bool

	logger      *log.Logger
	lastMove    rl.Vector3
	moveCount   int
	setupCalled bool
}

func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		Config:  cfg,
		World:   world.New(logger),
		Session: targeting.NewSession(logger),
		logger:  logger,
	}
}

// Run opens the window, builds the level and drives the frame loop until the
// window is closed.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	input := &targeting.GuardedInput{Source: targeting.NewRaylibInput(), Blocked: g.overHUD}
	if err := g.Setup(input); err != nil {
		return err
	}
	defer g.Session.Close()

	initHUDStyle()

	for !rl.WindowShouldClose() {
		g.handleKeys()
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Setup loads the configured level and wires targeting into it: projector,
// broadcaster, session and the selector that ticks it each frame. input is
// the pointer source; Run passes the raylib mouse guarded by overHUD.
func (g *Game) Setup(input targeting.InputSource) error {
	if g.setupCalled {
		return errors.New("game: setup called twice")
	}
	g.setupCalled = true

	if err := g.World.LoadLevel(g.Config.Level); err != nil {
		return err
	}
	g.World.Camera.FOV = g.Config.Camera.FOV

	projector, err := g.Config.Targeting.NewProjector(g.World.Physics)
	if err != nil {
		return fmt.Errorf("targeting: %w", err)
	}

	b, err := targeting.NewBroadcaster(targeting.BroadcasterOptions{
		Projector: projector,
		Viewpoint: g.World.Camera,
		Input:     input,
		Crosshair: g.World.Crosshair,
		Target:    g.World.Target,
		Logger:    g.logger,
	})
	if err != nil {
		return err
	}
	if _, err := g.Session.Install(b); err != nil {
		return err
	}

	g.Selector = targeting.NewSelector(b)
	ui := engine.NewGameObject("UIManager")
	ui.AddComponent(g.Selector)
	g.World.Scene.AddGameObject(ui)

	b.Subscribe("marble-log", g.onTargetSelected)

	g.World.Start()
	g.logger.Printf("Game: level %q ready, %d colliders, mode %s",
		g.World.Scene.Name, len(g.World.Physics.Colliders), projector.Mode)
	return nil
}

func (g *Game) onTargetSelected(pos rl.Vector3) {
	g.lastMove = pos
	g.moveCount++
	g.logger.Printf("Marble: moving to (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z)
}

func (g *Game) screenWidth() int32 {
	w, _ := g.World.Camera.ViewportSize()
	return w
}

// Broadcaster returns the session's broadcaster, or nil before Setup.
func (g *Game) Broadcaster() *targeting.Broadcaster {
	return g.Session.Broadcaster()
}

// Update advances the scene one frame. The selector ticks first, so the
// cursor, markers and subscribers see this frame's pointer.
func (g *Game) Update(deltaTime float32) {
	g.World.Update(deltaTime)
}

func (g *Game) handleKeys() {
	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
}

func (g *Game) Draw() {
	camera := g.World.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	g.World.Draw(g.DebugMode)
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}
