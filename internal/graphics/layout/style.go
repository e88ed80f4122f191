package layout

import "github.com/go-gl/mathgl/mgl32"

// State is a slot's interaction state for drawing.
type State int

const (
	StateNormal State = iota
	StateHovered
	StatePressed
)

// Palette holds the colours of the slot grid.
type Palette struct {
	Panel mgl32.Vec3
	Text  mgl32.Vec3
	// Background and Border are indexed by State.
	Background [3]mgl32.Vec3
	Border     [3]mgl32.Vec3
	// Placeholder fills the icon area when a texture is missing.
	Placeholder mgl32.Vec3
}

var DefaultPalette = Palette{
	Panel: mgl32.Vec3{0.85, 0.85, 0.55},
	Text:  mgl32.Vec3{0.9, 0.9, 0.9},
	Background: [3]mgl32.Vec3{
		StateNormal:  {0.15, 0.15, 0.15},
		StateHovered: {0.2, 0.2, 0.2},
		StatePressed: {0.1, 0.1, 0.1},
	},
	Border: [3]mgl32.Vec3{
		StateNormal:  {0.1, 0.1, 0.1},
		StateHovered: {0.25, 0.25, 0.1},
		StatePressed: {0.15, 0.15, 0.15},
	},
	Placeholder: mgl32.Vec3{0.35, 0.75, 0.35},
}

// Colors returns the background and border for a state.
func (p Palette) Colors(s State) (bg, border mgl32.Vec3) {
	if s < StateNormal || s > StatePressed {
		s = StateNormal
	}
	return p.Background[s], p.Border[s]
}

// StateOf derives a cell's state from the hovered and pressed indices.
func StateOf(i, hovered, pressed int) State {
	switch {
	case i == pressed && i == hovered:
		return StatePressed
	case i == hovered:
		return StateHovered
	default:
		return StateNormal
	}
}
