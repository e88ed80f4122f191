package hud

import "github.com/go-gl/glfw/v3.3/glfw"

// Screen represents a GUI screen drawn by the HUD
type Screen interface {
	// Init binds the screen to the HUD that draws it
	Init(h *HUD)
	// Resize lays the screen out for a new window size
	Resize(width, height float32)
	// Render draws the screen
	Render(mouseX, mouseY float64)
	// HandleClick handles a mouse button event and reports whether it was consumed
	HandleClick(x, y float64, button glfw.MouseButton, action glfw.Action) bool
	// Close releases anything the screen holds
	Close()
}
