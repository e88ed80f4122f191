package inventory

// Event type identifiers for the dispatcher.
const (
	TypeClickResolved uint32 = iota + 0x10
	TypeGridRestocked
)

// ClickResolved is published after every click that changed something.
type ClickResolved struct {
	Result
}

// Type returns the event type
func (ClickResolved) Type() uint32 {
	return TypeClickResolved
}

// GridRestocked is published when the grid contents are replaced wholesale.
type GridRestocked struct {
	Slots []SlotView
	Held  SlotView
}

// Type returns the event type
func (GridRestocked) Type() uint32 {
	return TypeGridRestocked
}
