package app

import (
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"slotgrid/internal/catalog"
	"slotgrid/internal/config"
	"slotgrid/internal/graphics/renderables/hud"
	renderer "slotgrid/internal/graphics/renderer"
	"slotgrid/internal/input"
	"slotgrid/internal/inventory"
	"slotgrid/internal/logging"
	"slotgrid/internal/profiling"
)

// slowFrame is the processing time above which a frame gets logged.
const slowFrame = 16 * time.Millisecond

// App drives one window showing one inventory grid.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	hud          *hud.HUD

	grid    *inventory.Grid
	catalog *catalog.Catalog
	log     *slog.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// New builds the renderer stack for grid and installs the window callbacks.
// cat is used for rerolls.
func New(window *glfw.Window, cfg config.Config, grid *inventory.Grid, cat *catalog.Catalog, log *slog.Logger) (*App, error) {
	screen := hud.NewSlotGridScreen(grid, cfg.Columns)
	h := hud.NewHUD(hud.Options{
		FontPath: cfg.Asset(cfg.FontPath),
		FontSize: cfg.FontSize,
	}, screen)

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height, h)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		renderer:     r,
		hud:          h,
		grid:         grid,
		catalog:      cat,
		log:          log,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	a.setupInputHandlers()

	// Framebuffer and window size differ on HiDPI displays.
	fbW, fbH := window.GetFramebufferSize()
	r.SetViewport(fbW, fbH, width, height)
	return a, nil
}

// Run loops until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

// Close releases GL resources. The window is left to the caller.
func (a *App) Close() {
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	a.handleActions()
	a.render(dt)

	func() {
		defer profiling.Track("glfw.SwapBuffers")()
		a.window.SwapBuffers()
	}()

	if d := time.Since(startTick); d > slowFrame {
		a.log.Debug("Slow frame", slog.Duration("duration", d), slog.String("top", profiling.TopN(5)))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) render(dt float64) {
	mx, my := a.inputManager.CursorPos()
	defer profiling.Track("renderer.Render")()
	a.renderer.Render(renderer.RenderContext{DT: dt, MouseX: mx, MouseY: my})
}

func (a *App) handleActions() {
	im := a.inputManager
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.log.Debug("Profiler toggled", slog.Bool("visible", config.ToggleShowProfiler()))
	}
	if im.JustPressed(input.ActionReroll) {
		if err := a.catalog.Restock(a.grid); err != nil {
			a.log.Error("Reroll failed", logging.Error(err))
		}
	}
}
