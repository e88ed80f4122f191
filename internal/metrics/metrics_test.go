package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kelindar/event"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"slotgrid/internal/inventory"
	"slotgrid/internal/logging"
)

func TestObserve(t *testing.T) {
	r := NewRecorder()

	r.Observe(inventory.Result{Outcome: inventory.OutcomePickUp, Moved: 3, Held: inventory.SlotView{ItemName: "Dagger"}})
	r.Observe(inventory.Result{Outcome: inventory.OutcomeStack, Moved: 3, Held: inventory.SlotView{IsEmpty: true}})
	r.Observe(inventory.Result{Outcome: inventory.OutcomeStack, Moved: 1, Held: inventory.SlotView{IsEmpty: true}})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Clicks.WithLabelValues("pickup")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Clicks.WithLabelValues("stack")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.Moved.WithLabelValues("stack")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.HeldActive))
}

// shutdown unsubscribes, waits for every consumer goroutine to exit while
// the dispatcher is still ticking, then closes the dispatcher.
func shutdown(t *testing.T, bus *event.Dispatcher, baseline goleak.Option, unsubscribe ...context.CancelFunc) {
	t.Helper()
	for _, fn := range unsubscribe {
		fn()
	}
	ticking := goleak.IgnoreAnyFunction("github.com/kelindar/event.(*group[...]).Process")
	require.NoError(t, goleak.Find(baseline, ticking))
	require.NoError(t, bus.Close())
	goleak.VerifyNone(t, baseline)
}

func TestRecorderFollowsGridEvents(t *testing.T) {
	baseline := goleak.IgnoreCurrent()
	bus := event.NewDispatcher()

	r := NewRecorder()
	unsubscribe := r.Subscribe(bus)

	slots := []inventory.Slot{
		{ItemName: "Health Potion", ItemQuantity: 1, CanStack: true},
		{ItemName: "Health Potion", ItemQuantity: 1, CanStack: true},
	}
	g := inventory.NewGrid(slots, inventory.WithDispatcher(bus), inventory.WithLogger(logging.Discard()))

	g.Click(0)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(r.HeldActive) == 1
	}, 2*time.Second, 10*time.Millisecond)

	g.Click(1)
	require.NoError(t, g.Restock([]inventory.Slot{inventory.Empty(), inventory.Empty()}))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(r.Clicks.WithLabelValues("stack")) == 1 &&
			testutil.ToFloat64(r.Restocks) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.HeldActive))

	shutdown(t, bus, baseline, unsubscribe)
}

func TestRestockDoesNotTouchHeldGauge(t *testing.T) {
	r := NewRecorder()

	r.Observe(inventory.Result{Outcome: inventory.OutcomePickUp, Moved: 1, Held: inventory.SlotView{ItemName: "Dagger"}})
	// A restock event built before the pick-up may be delivered after it.
	r.ObserveRestock(inventory.GridRestocked{Held: inventory.SlotView{IsEmpty: true}})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.HeldActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Restocks))

	r.Observe(inventory.Result{Outcome: inventory.OutcomePlace, Moved: 1, Held: inventory.SlotView{IsEmpty: true}})
	r.ObserveRestock(inventory.GridRestocked{Held: inventory.SlotView{ItemName: "Dagger"}})
	assert.Equal(t, 0.0, testutil.ToFloat64(r.HeldActive))
}

func TestHandler(t *testing.T) {
	r := NewRecorder()
	r.Observe(inventory.Result{Outcome: inventory.OutcomeSwap, Moved: 1})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `slotgrid_clicks_total{outcome="swap"} 1`)
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewRecorder().Serve(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
