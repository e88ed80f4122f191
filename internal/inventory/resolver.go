package inventory

import "math"

// Outcome is what a single click did.
type Outcome int

const (
	OutcomeNoOp Outcome = iota
	OutcomePickUp
	OutcomeStack
	OutcomePlace
	OutcomeSwap
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoOp:
		return "noop"
	case OutcomePickUp:
		return "pickup"
	case OutcomeStack:
		return "stack"
	case OutcomePlace:
		return "place"
	case OutcomeSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Result reports the slots touched by one click, after the click.
type Result struct {
	Outcome Outcome
	Target  SlotView
	Held    SlotView
	// Moved is the quantity that changed hands. For a capped stack it can be
	// less than what was held.
	Moved uint32
}

// Changed reports whether the click mutated anything.
func (r Result) Changed() bool {
	return r.Outcome != OutcomeNoOp
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStackCap limits how many units a stack may hold. Zero means no limit
// below math.MaxUint32.
func WithStackCap(n uint32) ResolverOption {
	return func(r *Resolver) {
		r.stackCap = n
	}
}

// Resolver applies the pick-up / stack / place / swap rules between the held
// register and a clicked slot.
type Resolver struct {
	held     *Held
	stackCap uint32
}

// NewResolver binds a resolver to the register it drives.
func NewResolver(held *Held, opts ...ResolverOption) *Resolver {
	r := &Resolver{held: held}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve handles a click on target, which sits at index in its grid.
// The register stays locked for the whole call, so target must only be
// mutated by callers that go through the same register.
func (r *Resolver) Resolve(index int, target *Slot) Result {
	var res Result
	r.held.transact(func(held *Slot) {
		res = r.resolveLocked(index, held, target)
	})
	return res
}

func (r *Resolver) resolveLocked(index int, held, target *Slot) Result {
	outcome, moved := r.apply(held, target)
	return Result{
		Outcome: outcome,
		Target:  target.View(index),
		Held:    held.View(HeldIndex),
		Moved:   moved,
	}
}

func (r *Resolver) apply(held, target *Slot) (Outcome, uint32) {
	if !held.IsSelected {
		if target.IsEmpty {
			return OutcomeNoOp, 0
		}
		// Pick-up is a swap against the idle register, so the target ends
		// up with whatever the register held (normally nothing).
		held.swapContents(target)
		held.IsSelected = true
		return OutcomePickUp, held.ItemQuantity
	}

	if held.IsEmpty {
		return OutcomeNoOp, 0
	}

	// Only the held side's stackability is consulted.
	if !target.IsEmpty && target.ItemName == held.ItemName && held.CanStack {
		if moved, ok := r.stack(held, target); ok {
			return OutcomeStack, moved
		}
	}

	if target.IsEmpty {
		moved := held.ItemQuantity
		target.copyContents(*held)
		held.Clear()
		return OutcomePlace, moved
	}

	moved := held.ItemQuantity
	held.swapContents(target)
	target.IsEmpty = false
	held.IsSelected = true
	return OutcomeSwap, moved
}

// stack merges held into target. It reports false when the cap leaves no
// room, in which case nothing has been touched. Without a configured cap the
// limit is what a uint32 quantity can count to.
func (r *Resolver) stack(held, target *Slot) (uint32, bool) {
	limit := r.stackCap
	if limit == 0 {
		limit = math.MaxUint32
	}

	if target.ItemQuantity >= limit {
		return 0, false
	}
	moved := min(held.ItemQuantity, limit-target.ItemQuantity)
	target.ItemQuantity += moved
	held.ItemQuantity -= moved
	if held.ItemQuantity == 0 {
		held.Clear()
	}
	return moved, true
}
