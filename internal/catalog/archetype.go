package catalog

import (
	"path/filepath"

	"slotgrid/internal/inventory"
)

// Archetype is an immutable item template used to fill slots at startup.
type Archetype struct {
	Name        string
	TexturePath string
	Quantity    uint32
	CanStack    bool
}

// Default is the built-in archetype table.
var Default = []Archetype{
	{Name: "Health Potion", TexturePath: "Keeney_Dungeon_Asssets/Tiles/tile_0113.png", Quantity: 1, CanStack: true},
	{Name: "Weird Dagger", TexturePath: "Keeney_Dungeon_Asssets/Tiles/tile_0130.png", Quantity: 1, CanStack: false},
	{Name: "Dagger", TexturePath: "Keeney_Dungeon_Asssets/Tiles/tile_0131.png", Quantity: 1, CanStack: false},
}

// Slot builds an occupied slot holding this archetype.
func (a Archetype) Slot() inventory.Slot {
	return inventory.Slot{
		ItemName:     a.Name,
		ItemQuantity: a.Quantity,
		CanStack:     a.CanStack,
		TexturePath:  a.TexturePath,
	}
}

// WithTextureRoot returns a copy whose texture path lives under dir.
func (a Archetype) WithTextureRoot(dir string) Archetype {
	if dir == "" || filepath.IsAbs(a.TexturePath) {
		return a
	}
	a.TexturePath = filepath.Join(dir, a.TexturePath)
	return a
}

// Rooted applies WithTextureRoot to every archetype in list.
func Rooted(list []Archetype, dir string) []Archetype {
	out := make([]Archetype, len(list))
	for i, a := range list {
		out[i] = a.WithTextureRoot(dir)
	}
	return out
}
