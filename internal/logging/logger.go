package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// logLevels maps log level names to slog.Level values.
var logLevels = map[string]slog.Level{
	"trace":   slog.LevelDebug,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
	"fatal":   slog.LevelError,
}

// Options selects the default logger's handler.
type Options struct {
	Level   string
	Format  string // text or json
	File    string // empty logs to stderr
	NoColor bool
}

// CleanupFunc is a function that can be deferred to clean up resources.
type CleanupFunc func() error

// ParseLevel resolves a level name, case-insensitively.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}

// InitDefaultLogger installs the default slog logger described by opts.
func InitDefaultLogger(opts Options) (CleanupFunc, error) {
	deferred := io.NopCloser(nil).Close

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return deferred, err
	}

	w := os.Stderr
	if opts.File != "" {
		w, err = os.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return deferred, fmt.Errorf("open log file: %w", err)
		}
		deferred = w.Close
	}

	switch strings.ToLower(opts.Format) {
	case "json":
		SetDefaultJSONLogger(w, level)
	case "text", "":
		SetColoredLogger(w, level, opts.NoColor)
	default:
		return deferred, fmt.Errorf("invalid log format: %s", opts.Format)
	}
	return deferred, nil
}

func SetColoredLogger(w *os.File, level slog.Level, forceNoColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(
			colorable.NewColorable(w),
			&tint.Options{
				Level:      level,
				TimeFormat: time.TimeOnly,
				NoColor:    !isatty.IsTerminal(w.Fd()) || os.Getenv("NO_COLOR") != "" || forceNoColor,
				AddSource:  level == slog.LevelDebug,
			},
		),
	))
}

func SetDefaultJSONLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: level == slog.LevelDebug,
			Level:     level,
		}),
	))
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
