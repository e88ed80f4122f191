package inventory

import (
	"errors"
	"sync"
)

// ErrPoisoned is the panic value raised when the held register is used after
// a transaction panicked half-way through.
var ErrPoisoned = errors.New("inventory: held register poisoned by an earlier panic")

// HeldIndex is the view index used for the held register.
const HeldIndex = -1

// Held is the register for the item carried on the cursor.
// One mutex covers a whole click transaction.
type Held struct {
	mu       sync.Mutex
	slot     Slot
	poisoned bool
}

// NewHeld creates an empty, idle register.
func NewHeld() *Held {
	return &Held{slot: Empty()}
}

// transact runs fn with the register locked. A panic inside fn poisons the
// register and is re-raised.
func (h *Held) transact(fn func(held *Slot)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.poisoned {
		panic(ErrPoisoned)
	}

	ok := false
	defer func() {
		if !ok {
			h.poisoned = true
		}
	}()
	fn(&h.slot)
	ok = true
}

// Snapshot returns a copy of the register.
func (h *Held) Snapshot() Slot {
	var s Slot
	h.transact(func(held *Slot) { s = *held })
	return s
}

// Engaged reports whether a pick-up gesture is in progress.
func (h *Held) Engaged() bool {
	return h.Snapshot().IsSelected
}

// View returns the cursor indicator snapshot.
func (h *Held) View() SlotView {
	return h.Snapshot().View(HeldIndex)
}
