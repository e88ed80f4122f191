package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (a *App) setupInputHandlers() {
	window := a.window
	im := a.inputManager

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})

	// Clicks go to the HUD directly so a press and release inside one poll
	// are both seen.
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := im.CursorPos()
		a.hud.HandleClick(x, y, button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Layout uses window coordinates, the GL viewport uses framebuffer pixels.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		winW, winH := w.GetSize()
		a.renderer.SetViewport(fbWidth, fbHeight, winW, winH)
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		a.render(0)
		w.SwapBuffers()
	})
}
