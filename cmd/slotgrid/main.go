package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kelindar/event"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"slotgrid/internal/app"
	"slotgrid/internal/catalog"
	"slotgrid/internal/config"
	"slotgrid/internal/inventory"
	"slotgrid/internal/logging"
	"slotgrid/internal/metrics"
)

const appName = "slotgrid"

var version = "dev"

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		cfg     config.Config
		closers []logging.CleanupFunc
	)

	cmd := &cli.Command{
		Name:    appName,
		Usage:   "Click to pick up, stack, place and swap items in a slot grid",
		Version: version,
		Flags:   config.Flags(),
	}

	cmd.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		var err error
		cfg, err = config.FromCommand(c)
		if err != nil {
			return ctx, err
		}
		closer, err := logging.InitDefaultLogger(cfg.Logging)
		if err != nil {
			return ctx, err
		}
		closers = append(closers, closer)
		return ctx, nil
	}

	cmd.After = func(_ context.Context, _ *cli.Command) error {
		for _, closer := range closers {
			_ = closer()
		}
		return nil
	}

	cmd.Action = func(ctx context.Context, _ *cli.Command) error {
		return run(ctx, cfg)
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log := slog.Default()

	bus := event.NewDispatcher()
	defer bus.Close()

	rec := metrics.NewRecorder()
	defer rec.Subscribe(bus)()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		eg.Go(func() error {
			return rec.Serve(ctx, cfg.MetricsAddr)
		})
	}

	cat, err := catalog.New(catalog.Rooted(catalog.Default, cfg.AssetsDir), newRoller(cfg.Seed))
	if err != nil {
		return err
	}
	slots, err := cat.Fill(cfg.Slots)
	if err != nil {
		return err
	}
	grid := inventory.NewGrid(slots,
		inventory.WithDispatcher(bus),
		inventory.WithLogger(log),
		inventory.WithResolverOptions(inventory.WithStackCap(cfg.StackCap)),
	)
	config.SetFPSLimit(cfg.FPSLimit)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(cfg.Width, cfg.Height, appName)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	a, err := app.New(window, cfg, grid, cat, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("Grid ready",
		slog.Int("slots", grid.Len()),
		slog.Int("columns", cfg.Columns),
		slog.Uint64("seed", cfg.Seed),
		slog.Uint64("stack_cap", uint64(cfg.StackCap)),
	)
	a.Run()

	cancel()
	return eg.Wait()
}

func newRoller(seed uint64) catalog.Roller {
	if seed == 0 {
		return catalog.ToolkitRoller{}
	}
	return catalog.NewSeededRoller(seed)
}
