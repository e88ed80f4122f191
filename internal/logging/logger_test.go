package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"trace", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"fatal", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitDefaultLoggerRejectsBadOptions(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := InitDefaultLogger(Options{Level: "nope", Format: "text"})
	assert.Error(t, err)

	_, err = InitDefaultLogger(Options{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestInitDefaultLoggerWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "slotgrid.log")
	cleanup, err := InitDefaultLogger(Options{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	slog.Info("hello", Slot(3))
	require.NoError(t, cleanup())
	assert.FileExists(t, path)
}

func TestAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	l.Info("click", Slot(2), Item("Dagger", 1), Error(errors.New("boom")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 2, got["slot"])
	assert.Equal(t, "boom", got["error"])
	item, ok := got["item"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dagger", item["name"])
	assert.EqualValues(t, 1, item["quantity"])
}
