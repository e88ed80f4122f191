package hud

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"slotgrid/internal/graphics"
	renderer "slotgrid/internal/graphics/renderer"
	"slotgrid/internal/graphics/renderables/ui"
	"slotgrid/internal/profiling"
)

// Options configures the HUD's text.
type Options struct {
	FontPath string
	FontSize int
}

// HUD draws the active screen and the profiling overlay.
type HUD struct {
	opts Options

	uiRenderer   *ui.UI
	fontRenderer *graphics.FontRenderer
	textures     *graphics.TextureCache

	screen  Screen
	overlay *ProfilingOverlay

	width, height float32
}

// NewHUD creates a HUD that will show screen once initialised.
func NewHUD(opts Options, screen Screen) *HUD {
	return &HUD{
		opts:    opts,
		screen:  screen,
		overlay: NewProfilingOverlay(),
	}
}

// Init implements renderer.Renderable
func (h *HUD) Init(width, height int) error {
	h.width, h.height = float32(width), float32(height)

	h.uiRenderer = ui.NewUI()
	if err := h.uiRenderer.Init(width, height); err != nil {
		return err
	}

	atlas, err := graphics.BuildFontAtlas(h.opts.FontPath, h.opts.FontSize)
	if err != nil {
		h.uiRenderer.Dispose()
		return err
	}
	h.fontRenderer, err = graphics.NewFontRenderer(atlas, h.width, h.height)
	if err != nil {
		h.uiRenderer.Dispose()
		return err
	}

	h.textures = graphics.NewTextureCache()
	h.screen.Init(h)
	return nil
}

// Render implements renderer.Renderable
func (h *HUD) Render(ctx renderer.RenderContext) {
	func() {
		defer profiling.Track("hud.Screen")()
		h.screen.Render(ctx.MouseX, ctx.MouseY)
	}()
	h.overlay.Render(h, ctx.DT)
}

// SetViewport implements renderer.Renderable
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = float32(width), float32(height)
	h.uiRenderer.SetViewport(width, height)
	h.fontRenderer.SetViewport(h.width, h.height)
	h.screen.Resize(h.width, h.height)
}

// Dispose implements renderer.Renderable
func (h *HUD) Dispose() {
	h.screen.Close()
	h.textures.Delete()
	h.fontRenderer.Dispose()
	h.uiRenderer.Dispose()
}

// HandleClick forwards a mouse button event to the active screen.
func (h *HUD) HandleClick(x, y float64, button glfw.MouseButton, action glfw.Action) bool {
	return h.screen.HandleClick(x, y, button, action)
}
