package inventory

import "fmt"

// Slot is the content record for a single inventory position.
// IsEmpty is authoritative; the other fields only mean something while it is false.
type Slot struct {
	ItemName     string
	ItemQuantity uint32
	CanStack     bool
	IsEmpty      bool
	// IsSelected is only ever set on the held register.
	IsSelected  bool
	TexturePath string
}

// Empty returns a slot in the canonical empty state.
func Empty() Slot {
	var s Slot
	s.Clear()
	return s
}

// Clear resets every field to the canonical empty state.
// All emptying must go through here so the empty invariant holds.
func (s *Slot) Clear() {
	s.ItemName = ""
	s.ItemQuantity = 0
	s.CanStack = false
	s.IsEmpty = true
	s.IsSelected = false
	s.TexturePath = ""
}

// swapContents exchanges item data with other. Selection is left alone.
func (s *Slot) swapContents(other *Slot) {
	s.ItemName, other.ItemName = other.ItemName, s.ItemName
	s.ItemQuantity, other.ItemQuantity = other.ItemQuantity, s.ItemQuantity
	s.CanStack, other.CanStack = other.CanStack, s.CanStack
	s.IsEmpty, other.IsEmpty = other.IsEmpty, s.IsEmpty
	s.TexturePath, other.TexturePath = other.TexturePath, s.TexturePath
}

// copyContents overwrites s with other's item data and marks it occupied.
func (s *Slot) copyContents(other Slot) {
	s.ItemName = other.ItemName
	s.ItemQuantity = other.ItemQuantity
	s.CanStack = other.CanStack
	s.TexturePath = other.TexturePath
	s.IsEmpty = false
}

// View returns the render snapshot of this slot at the given grid index.
func (s Slot) View(index int) SlotView {
	return SlotView{
		Index:        index,
		ItemName:     s.ItemName,
		ItemQuantity: s.ItemQuantity,
		TexturePath:  s.TexturePath,
		IsEmpty:      s.IsEmpty,
	}
}

// SlotView is what the presentation layer needs to draw a slot.
type SlotView struct {
	Index        int
	ItemName     string
	ItemQuantity uint32
	TexturePath  string
	IsEmpty      bool
}

// Label formats the slot caption, e.g. "Health Potion: 3".
func (v SlotView) Label() string {
	if v.IsEmpty {
		return ""
	}
	return fmt.Sprintf("%s: %d", v.ItemName, v.ItemQuantity)
}
