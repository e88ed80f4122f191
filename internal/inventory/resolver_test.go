package inventory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

func potion(qty uint32) Slot {
	return Slot{ItemName: "Potion", ItemQuantity: qty, CanStack: true, TexturePath: "potion.png"}
}

func dagger(qty uint32) Slot {
	return Slot{ItemName: "Dagger", ItemQuantity: qty, TexturePath: "dagger.png"}
}

type ResolverSuite struct {
	suite.Suite
	held     *Held
	resolver *Resolver
}

func (s *ResolverSuite) SetupTest() {
	s.held = NewHeld()
	s.resolver = NewResolver(s.held)
}

// engage puts item on the cursor as if it had just been picked up.
func (s *ResolverSuite) engage(item Slot) {
	s.held.transact(func(h *Slot) {
		*h = item
		h.IsEmpty = false
		h.IsSelected = true
	})
}

func (s *ResolverSuite) TestClearRestoresEmptyInvariant() {
	sl := potion(7)
	sl.IsSelected = true
	sl.Clear()

	s.True(sl.IsEmpty)
	s.Zero(sl.ItemQuantity)
	s.Empty(sl.ItemName)
	s.False(sl.CanStack)
	s.Empty(sl.TexturePath)
	s.False(sl.IsSelected)
	s.Equal(Empty(), sl)
}

func (s *ResolverSuite) TestIdleClickOnEmptyIsNoOp() {
	target := Empty()
	before := s.held.Snapshot()

	for range 2 {
		res := s.resolver.Resolve(0, &target)
		s.Equal(OutcomeNoOp, res.Outcome)
		s.False(res.Changed())
		s.Equal(Empty(), target)
		s.Equal(before, s.held.Snapshot())
	}
}

func (s *ResolverSuite) TestPickUp() {
	target := potion(3)

	res := s.resolver.Resolve(4, &target)

	s.Equal(OutcomePickUp, res.Outcome)
	s.EqualValues(3, res.Moved)

	held := s.held.Snapshot()
	s.True(held.IsSelected)
	s.False(held.IsEmpty)
	s.Equal("Potion", held.ItemName)
	s.EqualValues(3, held.ItemQuantity)
	s.True(held.CanStack)
	s.Equal("potion.png", held.TexturePath)

	// The target receives the register's previous content.
	s.Equal(Empty(), target)
	s.Equal(SlotView{Index: 4, IsEmpty: true}, res.Target)
	s.Equal(HeldIndex, res.Held.Index)
}

func (s *ResolverSuite) TestStack() {
	s.engage(potion(2))
	target := potion(3)

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeStack, res.Outcome)
	s.EqualValues(5, target.ItemQuantity)
	s.EqualValues(2, res.Moved)
	s.False(target.IsEmpty)
	s.Equal(Empty(), s.held.Snapshot())
	s.False(s.held.Engaged())
}

func (s *ResolverSuite) TestStackChecksOnlyHeldStackability() {
	// The target claims it cannot stack, the held item says it can.
	s.engage(potion(2))
	target := potion(3)
	target.CanStack = false

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeStack, res.Outcome)
	s.EqualValues(5, target.ItemQuantity)

	// The reverse does not stack: held side is not stackable.
	s.SetupTest()
	held := potion(2)
	held.CanStack = false
	s.engage(held)
	target = potion(3)

	res = s.resolver.Resolve(0, &target)
	s.Equal(OutcomeSwap, res.Outcome)
}

func (s *ResolverSuite) TestSameNameNotStackableSwaps() {
	s.engage(dagger(1))
	target := dagger(1)
	target.TexturePath = "other.png"

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeSwap, res.Outcome)
	s.Equal("dagger.png", target.TexturePath)
	s.Equal("other.png", s.held.Snapshot().TexturePath)
	s.True(s.held.Engaged())
}

func (s *ResolverSuite) TestPlaceIntoEmpty() {
	s.engage(dagger(1))
	target := Empty()

	res := s.resolver.Resolve(2, &target)

	s.Equal(OutcomePlace, res.Outcome)
	s.Equal(Slot{ItemName: "Dagger", ItemQuantity: 1, TexturePath: "dagger.png"}, target)
	s.Equal(SlotView{Index: 2, ItemName: "Dagger", ItemQuantity: 1, TexturePath: "dagger.png"}, res.Target)
	s.Equal(Empty(), s.held.Snapshot())
	s.True(res.Held.IsEmpty)
}

func (s *ResolverSuite) TestSwap() {
	s.engage(dagger(1))
	target := potion(3)

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeSwap, res.Outcome)
	s.Equal("Dagger", target.ItemName)
	s.EqualValues(1, target.ItemQuantity)
	s.False(target.CanStack)
	s.False(target.IsEmpty)
	s.False(target.IsSelected)

	held := s.held.Snapshot()
	s.Equal("Potion", held.ItemName)
	s.EqualValues(3, held.ItemQuantity)
	s.True(held.CanStack)
	s.True(held.IsSelected)
	s.Equal("Potion: 3", res.Held.Label())
}

func (s *ResolverSuite) TestEngagedButEmptyIsNoOp() {
	s.held.transact(func(h *Slot) {
		h.Clear()
		h.IsSelected = true
	})
	target := potion(3)

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeNoOp, res.Outcome)
	s.Equal(potion(3), target)
	s.True(s.held.Snapshot().IsSelected)
}

func (s *ResolverSuite) TestFullGesture() {
	a, b := potion(2), potion(3)

	s.Equal(OutcomePickUp, s.resolver.Resolve(0, &a).Outcome)
	s.Equal(OutcomeStack, s.resolver.Resolve(1, &b).Outcome)

	s.True(a.IsEmpty)
	s.EqualValues(5, b.ItemQuantity)
	s.False(s.held.Engaged())
}

func (s *ResolverSuite) TestStackCap() {
	s.resolver = NewResolver(s.held, WithStackCap(5))

	// Partial move: remainder stays held and the gesture continues.
	s.engage(potion(4))
	target := potion(3)
	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeStack, res.Outcome)
	s.EqualValues(2, res.Moved)
	s.EqualValues(5, target.ItemQuantity)
	held := s.held.Snapshot()
	s.EqualValues(2, held.ItemQuantity)
	s.True(held.IsSelected)

	// Full target: nothing can move, so the stacks trade places.
	res = s.resolver.Resolve(0, &target)
	s.Equal(OutcomeSwap, res.Outcome)
	s.EqualValues(2, target.ItemQuantity)
	s.EqualValues(5, s.held.Snapshot().ItemQuantity)

	// Exact fit clears the register.
	s.SetupTest()
	s.resolver = NewResolver(s.held, WithStackCap(5))
	s.engage(potion(2))
	target = potion(3)
	res = s.resolver.Resolve(0, &target)
	s.Equal(OutcomeStack, res.Outcome)
	s.EqualValues(5, target.ItemQuantity)
	s.False(s.held.Engaged())
}

func (s *ResolverSuite) TestUncappedStackHoldsLargeQuantities() {
	s.engage(potion(1_000_000))
	target := potion(1_000_000)

	s.resolver.Resolve(0, &target)

	s.EqualValues(2_000_000, target.ItemQuantity)
}

func (s *ResolverSuite) TestUncappedStackStopsAtMaxUint32() {
	s.engage(potion(5))
	target := potion(math.MaxUint32 - 2)

	res := s.resolver.Resolve(0, &target)

	s.Equal(OutcomeStack, res.Outcome)
	s.EqualValues(2, res.Moved)
	s.EqualValues(uint32(math.MaxUint32), target.ItemQuantity)
	held := s.held.Snapshot()
	s.EqualValues(3, held.ItemQuantity)
	s.True(held.IsSelected)

	// A full stack trades places with the remainder, nothing is lost.
	res = s.resolver.Resolve(0, &target)
	s.Equal(OutcomeSwap, res.Outcome)
	s.EqualValues(3, target.ItemQuantity)
	s.EqualValues(uint32(math.MaxUint32), s.held.Snapshot().ItemQuantity)
}

func (s *ResolverSuite) TestPanicPoisonsRegister() {
	s.Panics(func() {
		s.held.transact(func(*Slot) { panic("boom") })
	})
	s.PanicsWithValue(ErrPoisoned, func() { s.held.Snapshot() })

	target := potion(1)
	s.PanicsWithValue(ErrPoisoned, func() { s.resolver.Resolve(0, &target) })
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeNoOp:   "noop",
		OutcomePickUp: "pickup",
		OutcomeStack:  "stack",
		OutcomePlace:  "place",
		OutcomeSwap:   "swap",
		Outcome(99):   "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}

func TestSlotViewLabel(t *testing.T) {
	if got := potion(3).View(0).Label(); got != "Potion: 3" {
		t.Fatalf("label = %q", got)
	}
	if got := Empty().View(0).Label(); got != "" {
		t.Fatalf("empty label = %q", got)
	}
}

func BenchmarkResolve(b *testing.B) {
	held := NewHeld()
	r := NewResolver(held)
	slots := []Slot{potion(1), potion(1), dagger(1), Empty()}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % len(slots)
		_ = r.Resolve(idx, &slots[idx])
	}
}
