package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kelindar/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"slotgrid/internal/inventory"
	"slotgrid/internal/logging"
)

// Recorder turns inventory events into Prometheus series.
type Recorder struct {
	Clicks     *prometheus.CounterVec
	Moved      *prometheus.CounterVec
	HeldActive prometheus.Gauge
	Restocks   prometheus.Counter

	registry *prometheus.Registry
}

// NewRecorder creates the collectors and registers them on a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		Clicks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slotgrid_clicks_total",
				Help: "Resolved slot clicks by outcome",
			},
			[]string{"outcome"},
		),
		Moved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slotgrid_items_moved_total",
				Help: "Item units moved between slots and the cursor, by outcome",
			},
			[]string{"outcome"},
		),
		HeldActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "slotgrid_held_engaged",
				Help: "1 while an item is on the cursor",
			}),
		Restocks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "slotgrid_restocks_total",
				Help: "Times the grid contents were replaced",
			}),
		registry: prometheus.NewRegistry(),
	}
	r.registry.MustRegister(r.Clicks, r.Moved, r.HeldActive, r.Restocks)
	return r
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one click result.
func (r *Recorder) Observe(res inventory.Result) {
	label := res.Outcome.String()
	r.Clicks.WithLabelValues(label).Inc()
	r.Moved.WithLabelValues(label).Add(float64(res.Moved))
	r.setHeld(res.Held)
}

// ObserveRestock records a wholesale grid replacement. The held gauge only
// follows clicks, since a restock never touches the register.
func (r *Recorder) ObserveRestock(inventory.GridRestocked) {
	r.Restocks.Inc()
}

func (r *Recorder) setHeld(v inventory.SlotView) {
	if v.IsEmpty {
		r.HeldActive.Set(0)
	} else {
		r.HeldActive.Set(1)
	}
}

// Subscribe wires the recorder to bus. The returned func unsubscribes.
func (r *Recorder) Subscribe(bus *event.Dispatcher) context.CancelFunc {
	clicks := event.Subscribe(bus, func(ev inventory.ClickResolved) {
		r.Observe(ev.Result)
	})
	restocks := event.Subscribe(bus, func(ev inventory.GridRestocked) {
		r.ObserveRestock(ev)
	})
	return func() {
		clicks()
		restocks()
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Metrics server shutdown", logging.Error(err))
		}
	}()

	slog.Info("Serving metrics", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
