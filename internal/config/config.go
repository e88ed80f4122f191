package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"slotgrid/internal/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultSlots    = 12
	DefaultColumns  = 4
	DefaultFontSize = 16
	DefaultWidth    = 900
	DefaultHeight   = 600
	DefaultFPS      = 60
	DefaultFont     = "Fonts/Kenney Pixel.ttf"
	DefaultAssets   = "assets"
)

// Config is everything the demo reads at startup.
type Config struct {
	Slots    int
	Columns  int
	Seed     uint64 // zero draws from the toolkit roller
	StackCap uint32 // zero means unlimited

	AssetsDir string
	FontPath  string // relative paths resolve under AssetsDir
	FontSize  int

	Width    int
	Height   int
	FPSLimit int

	MetricsAddr string
	Logging     logging.Options
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Slots:     DefaultSlots,
		Columns:   DefaultColumns,
		AssetsDir: DefaultAssets,
		FontPath:  DefaultFont,
		FontSize:  DefaultFontSize,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FPSLimit:  DefaultFPS,
		Logging:   logging.Options{Level: "info", Format: "text"},
	}
}

// Flags declares the command line surface.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.IntFlag{Name: "slots", Value: DefaultSlots, Usage: "Number of inventory slots"},
		&cli.IntFlag{Name: "columns", Value: DefaultColumns, Usage: "Slots per grid row"},
		&cli.IntFlag{Name: "seed", Usage: "Seed for a reproducible grid (0 picks a random one)"},
		&cli.IntFlag{Name: "stack-cap", Usage: "Maximum stack size (0 means unlimited)"},
		&cli.StringFlag{Name: "assets", Value: DefaultAssets, Usage: "Directory holding item icons and fonts"},
		&cli.StringFlag{Name: "font", Value: DefaultFont, Usage: "Label font, relative to the assets directory"},
		&cli.IntFlag{Name: "font-size", Value: DefaultFontSize, Usage: "Label font size in pixels"},
		&cli.IntFlag{Name: "width", Value: DefaultWidth, Usage: "Window width"},
		&cli.IntFlag{Name: "height", Value: DefaultHeight, Usage: "Window height"},
		&cli.IntFlag{Name: "fps", Value: DefaultFPS, Usage: "Frame rate cap (0 means uncapped)"},
		&cli.StringFlag{Name: "metrics-addr", Usage: "Serve Prometheus metrics on this address"},
		&cli.StringFlag{Name: "log-level", Value: d.Logging.Level, Usage: "Log level (debug, info, warn, error)"},
		&cli.StringFlag{Name: "log-format", Value: d.Logging.Format, Usage: "Log format (text, json)"},
		&cli.StringFlag{Name: "log-file", Usage: "Log file path"},
		&cli.BoolFlag{Name: "no-color", Usage: "Disable colors in log output"},
	}
}

// FromCommand reads the flags declared by Flags, then validates.
func FromCommand(c *cli.Command) (Config, error) {
	if c.Int("seed") < 0 {
		return Config{}, fmt.Errorf("%w: seed must not be negative", ErrInvalid)
	}
	if c.Int("stack-cap") < 0 {
		return Config{}, fmt.Errorf("%w: stack-cap must not be negative", ErrInvalid)
	}

	cfg := Config{
		Slots:       int(c.Int("slots")),
		Columns:     int(c.Int("columns")),
		Seed:        uint64(c.Int("seed")),
		StackCap:    uint32(c.Int("stack-cap")),
		AssetsDir:   c.String("assets"),
		FontPath:    c.String("font"),
		FontSize:    int(c.Int("font-size")),
		Width:       int(c.Int("width")),
		Height:      int(c.Int("height")),
		FPSLimit:    int(c.Int("fps")),
		MetricsAddr: c.String("metrics-addr"),
		Logging: logging.Options{
			Level:   c.String("log-level"),
			Format:  c.String("log-format"),
			File:    c.String("log-file"),
			NoColor: c.Bool("no-color"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unusable values and clamps the rest in place.
func (c *Config) Validate() error {
	if c.Slots < 1 {
		return fmt.Errorf("%w: slots must be at least 1, got %d", ErrInvalid, c.Slots)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalid, c.Columns)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font-size must be positive, got %d", ErrInvalid, c.FontSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}

	c.Columns = min(c.Columns, c.Slots)
	c.FPSLimit = clampFPS(c.FPSLimit)
	return nil
}

// Rows is the number of grid rows needed for Slots at Columns per row.
func (c Config) Rows() int {
	if c.Columns <= 0 {
		return 0
	}
	return (c.Slots + c.Columns - 1) / c.Columns
}

// Asset resolves a path relative to AssetsDir.
func (c Config) Asset(path string) string {
	if path == "" || filepath.IsAbs(path) || c.AssetsDir == "" {
		return path
	}
	return filepath.Join(c.AssetsDir, path)
}
