package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/orbit"
)

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	World   *orbit.World
	render  *Renderer
	pointer orbit.Point
	Paused  bool
	ShowHUD bool
}

func initWindow(w config.WindowConfig) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// Run opens the window, loads the assets and blocks until the window is
// closed. Asset failures close the window and are returned.
func Run(cfg *config.Config, log *slog.Logger) error {
	initWindow(cfg.Window)
	defer rl.CloseWindow()

	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	app := NewApp(cfg, r, log)
	log.Info("window open",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"fps", cfg.Window.FPS,
		"trail_cap", cfg.Physics.TrailCap,
	)
	app.RunLoop()
	log.Info("window closed", "frames", app.World.Frame(), "launched", app.World.Stats().Launched)
	return nil
}

func NewApp(cfg *config.Config, r *Renderer, log *slog.Logger) *App {
	a := &App{
		cfg:     cfg,
		log:     log,
		World:   orbit.NewWorld(cfg.Params()),
		render:  r,
		ShowHUD: true,
	}
	a.World.OnRemove = func(s *orbit.Satellite, fate orbit.Fate) {
		a.log.Debug("satellite removed",
			"id", s.ID,
			"fate", fate.String(),
			"trail", len(s.Trail),
			"frame", a.World.Frame(),
		)
	}
	return a
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update handles this frame's input and then advances the world once.
func (a *App) Update() {
	mouse := rl.GetMousePosition()
	a.pointer = orbit.Point{X: float64(mouse.X), Y: float64(mouse.Y)}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if id, ok := a.World.Press(a.pointer); ok {
			s := a.World.Satellites()[len(a.World.Satellites())-1]
			a.log.Debug("satellite launched", "id", id, "x", s.X, "y", s.Y, "vx", s.VX, "vy", s.VY)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsKeyPressed(rl.KeyEscape) {
		a.World.Cancel()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Paused = !a.Paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.World.Reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if !a.Paused {
		a.World.Tick()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.render.DrawWorld(a.World, a.pointer)
	if a.ShowHUD {
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	st := a.World.Stats()
	rl.DrawText(fmt.Sprintf("live %d  launched %d  escaped %d  collided %d",
		len(a.World.Satellites()), st.Launched, st.Escaped, st.Collided), 12, 12, 16, ColText)

	if a.Paused {
		rl.DrawText("PAUSED", int32(a.cfg.Window.Width)-80, 12, 16, ColText)
	}

	h := int32(a.cfg.Window.Height)
	rl.DrawText("[CLICK] MARK / LAUNCH  [RMB] CANCEL  [SPACE] PAUSE  [R] RESET  [H] HUD", 12, h-24, 14, ColDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(a.cfg.Window.Width)-70, h-24, 14, ColDim)
}
