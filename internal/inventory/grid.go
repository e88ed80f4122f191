package inventory

import (
	"fmt"
	"log/slog"

	"github.com/kelindar/event"

	"slotgrid/internal/logging"
)

// Option configures a Grid.
type Option func(*Grid)

// WithDispatcher publishes ClickResolved and GridRestocked events on d.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Grid) {
		g.bus = d
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		g.log = l
	}
}

// WithResolverOptions passes options through to the grid's resolver.
func WithResolverOptions(opts ...ResolverOption) Option {
	return func(g *Grid) {
		g.resolverOpts = append(g.resolverOpts, opts...)
	}
}

// Grid owns a fixed row of slots and the held register shared by all of them.
// It is the entry point the presentation layer calls on every click.
type Grid struct {
	slots    []Slot
	held     *Held
	resolver *Resolver

	resolverOpts []ResolverOption
	bus          *event.Dispatcher
	log          *slog.Logger
}

// NewGrid takes ownership of slots and creates an empty register.
func NewGrid(slots []Slot, opts ...Option) *Grid {
	g := &Grid{
		slots: slots,
		held:  NewHeld(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.resolver = NewResolver(g.held, g.resolverOpts...)
	return g
}

// Len returns the number of slots. It never changes.
func (g *Grid) Len() int {
	return len(g.slots)
}

// Click resolves one discrete click on the slot at index.
// Indices outside the grid are absorbed as no-ops.
func (g *Grid) Click(index int) Result {
	if index < 0 || index >= len(g.slots) {
		g.log.Debug("Click outside grid", logging.Slot(index))
		return Result{
			Outcome: OutcomeNoOp,
			Target:  Empty().View(index),
			Held:    g.held.View(),
		}
	}

	res := g.resolver.Resolve(index, &g.slots[index])
	g.report(res)
	return res
}

func (g *Grid) report(res Result) {
	attrs := []any{logging.Slot(res.Target.Index), logging.Outcome(res.Outcome)}
	switch res.Outcome {
	case OutcomeNoOp:
		g.log.Debug("Click absorbed", attrs...)
		return
	case OutcomePickUp:
		g.log.Info("Picked up item", append(attrs, logging.Item(res.Held.ItemName, res.Held.ItemQuantity))...)
	case OutcomeStack:
		g.log.Info("Stacked items", append(attrs, slog.Uint64("quantity", uint64(res.Target.ItemQuantity)), slog.Uint64("moved", uint64(res.Moved)))...)
	case OutcomePlace:
		g.log.Info("Transferred item to inventory", append(attrs, logging.Item(res.Target.ItemName, res.Target.ItemQuantity))...)
	case OutcomeSwap:
		g.log.Info("Swapped different items between slots",
			append(attrs, logging.Item(res.Target.ItemName, res.Target.ItemQuantity), slog.String("held", res.Held.Label()))...)
	}

	if g.bus != nil {
		event.Publish(g.bus, ClickResolved{Result: res})
	}
}

// Views returns a render snapshot of every slot, in grid order.
func (g *Grid) Views() []SlotView {
	var out []SlotView
	g.held.transact(func(*Slot) {
		out = g.viewsLocked()
	})
	return out
}

func (g *Grid) viewsLocked() []SlotView {
	out := make([]SlotView, len(g.slots))
	for i, s := range g.slots {
		out[i] = s.View(i)
	}
	return out
}

// HeldView returns the cursor indicator snapshot.
func (g *Grid) HeldView() SlotView {
	return g.held.View()
}

// Engaged reports whether an item is currently on the cursor.
func (g *Grid) Engaged() bool {
	return g.held.Engaged()
}

// Restock replaces every slot's contents. The held register is left alone,
// so an in-progress gesture continues against the new contents.
func (g *Grid) Restock(slots []Slot) error {
	if len(slots) != len(g.slots) {
		return fmt.Errorf("restock: got %d slots, grid has %d", len(slots), len(g.slots))
	}

	var ev GridRestocked
	g.held.transact(func(held *Slot) {
		copy(g.slots, slots)
		ev = GridRestocked{Slots: g.viewsLocked(), Held: held.View(HeldIndex)}
	})
	g.log.Info("Grid restocked", slog.Int("slots", len(slots)))

	if g.bus != nil {
		event.Publish(g.bus, ev)
	}
	return nil
}
