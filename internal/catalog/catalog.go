package catalog

import (
	"errors"
	"fmt"

	"slotgrid/internal/inventory"
)

var (
	ErrEmptyCatalog = errors.New("catalog: no archetypes")
	ErrNoRoller     = errors.New("catalog: nil roller")
)

// Catalog draws archetypes uniformly at random, with replacement.
type Catalog struct {
	archetypes []Archetype
	roller     Roller
}

// New copies archetypes into a catalog that draws with roller.
func New(archetypes []Archetype, roller Roller) (*Catalog, error) {
	if len(archetypes) == 0 {
		return nil, ErrEmptyCatalog
	}
	if roller == nil {
		return nil, ErrNoRoller
	}
	return &Catalog{
		archetypes: append([]Archetype(nil), archetypes...),
		roller:     roller,
	}, nil
}

// Draw picks one archetype.
func (c *Catalog) Draw() (Archetype, error) {
	n := len(c.archetypes)
	v, err := c.roller.Roll(n)
	if err != nil {
		return Archetype{}, fmt.Errorf("draw archetype: %w", err)
	}
	if v < 1 || v > n {
		return Archetype{}, fmt.Errorf("draw archetype: roll %d outside 1..%d", v, n)
	}
	return c.archetypes[v-1], nil
}

// Fill draws n independent slots.
func (c *Catalog) Fill(n int) ([]inventory.Slot, error) {
	if n < 0 {
		return nil, fmt.Errorf("fill: negative slot count %d", n)
	}
	slots := make([]inventory.Slot, n)
	for i := range slots {
		a, err := c.Draw()
		if err != nil {
			return nil, fmt.Errorf("fill slot %d: %w", i, err)
		}
		slots[i] = a.Slot()
	}
	return slots, nil
}

// Restock refills every slot of g with fresh draws. The held register is
// not touched.
func (c *Catalog) Restock(g *inventory.Grid) error {
	slots, err := c.Fill(g.Len())
	if err != nil {
		return err
	}
	return g.Restock(slots)
}
