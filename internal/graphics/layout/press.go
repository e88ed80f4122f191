package layout

// PressTracker turns raw press and release events into discrete clicks.
// A click fires only when the release lands on the cell that was pressed.
type PressTracker struct {
	pressed int
}

func NewPressTracker() *PressTracker {
	return &PressTracker{pressed: -1}
}

// Pressed returns the cell currently held down, or -1.
func (p *PressTracker) Pressed() int {
	return p.pressed
}

// Press records a button press over cell (or -1).
func (p *PressTracker) Press(cell int) {
	p.pressed = cell
}

// Release ends the press and returns the clicked cell, if any.
func (p *PressTracker) Release(cell int) (int, bool) {
	pressed := p.pressed
	p.pressed = -1
	if pressed < 0 || pressed != cell {
		return -1, false
	}
	return cell, true
}
