package hud

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"slotgrid/internal/graphics/layout"
	"slotgrid/internal/inventory"
)

// SlotGridScreen draws an inventory grid and turns clicks on it into
// Grid.Click calls.
type SlotGridScreen struct {
	hud     *HUD
	grid    *inventory.Grid
	columns int

	metrics layout.Metrics
	palette layout.Palette
	layout  layout.Grid
	press   *layout.PressTracker

	hoveredSlotIndex int
}

func NewSlotGridScreen(grid *inventory.Grid, columns int) *SlotGridScreen {
	return &SlotGridScreen{
		grid:             grid,
		columns:          columns,
		metrics:          layout.DefaultMetrics,
		palette:          layout.DefaultPalette,
		press:            layout.NewPressTracker(),
		hoveredSlotIndex: -1,
	}
}

func (s *SlotGridScreen) Init(h *HUD) {
	s.hud = h
	s.Resize(h.width, h.height)
}

func (s *SlotGridScreen) Resize(width, height float32) {
	s.layout = layout.NewGrid(s.grid.Len(), s.columns, s.metrics, width, height)
}

func (s *SlotGridScreen) Render(mouseX, mouseY float64) {
	mx, my := float32(mouseX), float32(mouseY)
	s.hoveredSlotIndex = s.layout.CellAt(mx, my)

	ui := s.hud.uiRenderer
	ui.DrawRect(s.layout.Panel, s.palette.Panel, 1)

	for _, v := range s.grid.Views() {
		state := layout.StateOf(v.Index, s.hoveredSlotIndex, s.press.Pressed())
		bg, border := s.palette.Colors(state)
		ui.DrawFramedRect(s.layout.Cell(v.Index), bg, border, s.metrics.Border)

		if v.IsEmpty {
			continue
		}
		s.drawIcon(v.TexturePath, s.layout.Icon(v.Index))

		label := v.Label()
		w, _ := s.hud.fontRenderer.Measure(label, 1)
		x, y := s.layout.LabelBaseline(v.Index, w)
		s.hud.fontRenderer.Render(label, x, y, 1, s.palette.Text)
	}

	// The held item follows the cursor, drawn last so it sits on top.
	held := s.grid.HeldView()
	if held.IsEmpty {
		return
	}
	size := s.metrics.IconSize
	s.drawIcon(held.TexturePath, layout.Rect{X: mx - size/2, Y: my - size/2, W: size, H: size})
	label := held.Label()
	w, _ := s.hud.fontRenderer.Measure(label, 1)
	s.hud.fontRenderer.Render(label, mx-w/2, my+size/2+s.hud.fontRenderer.LineHeight(), 1, mgl32.Vec3{1, 1, 1})
}

func (s *SlotGridScreen) drawIcon(path string, r layout.Rect) {
	if tex, ok := s.hud.textures.Get(path); ok {
		s.hud.uiRenderer.DrawTexturedRect(r.X, r.Y, r.W, r.H, tex, mgl32.Vec3{1, 1, 1}, 1)
		return
	}
	s.hud.uiRenderer.DrawRect(r.Inset(r.W/8), s.palette.Placeholder, 1)
}

// HandleClick fires one Grid.Click per press and release over the same slot.
func (s *SlotGridScreen) HandleClick(x, y float64, button glfw.MouseButton, action glfw.Action) bool {
	if button != glfw.MouseButtonLeft {
		return false
	}
	cell := s.layout.CellAt(float32(x), float32(y))

	switch action {
	case glfw.Press:
		s.press.Press(cell)
		return cell >= 0
	case glfw.Release:
		index, ok := s.press.Release(cell)
		if !ok {
			return false
		}
		s.grid.Click(index)
		return true
	}
	return false
}

func (s *SlotGridScreen) Close() {}
