package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var (
		cfg     Config
		readErr error
	)
	cmd := &cli.Command{
		Name:  "slotgrid",
		Flags: Flags(),
		Action: func(_ context.Context, c *cli.Command) error {
			cfg, readErr = FromCommand(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"slotgrid"}, args...)))
	return cfg, readErr
}

func TestFromCommandDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	want := Default()
	require.NoError(t, want.Validate())
	assert.Equal(t, want, cfg)
	assert.Equal(t, 3, cfg.Rows())
}

func TestFromCommandOverrides(t *testing.T) {
	cfg, err := parse(t,
		"--slots", "7",
		"--columns", "3",
		"--seed", "99",
		"--stack-cap", "10",
		"--log-format", "json",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Slots)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, 3, cfg.Rows())
	assert.EqualValues(t, 99, cfg.Seed)
	assert.EqualValues(t, 10, cfg.StackCap)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.NoColor)
}

func TestFromCommandRejects(t *testing.T) {
	tests := map[string][]string{
		"zero slots":    {"--slots", "0"},
		"zero columns":  {"--columns", "0"},
		"bad font size": {"--font-size", "0"},
		"negative seed": {"--seed", "-1"},
		"negative cap":  {"--stack-cap", "-5"},
		"flat window":   {"--height", "0"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, args...)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := Default()
	cfg.Slots = 2
	cfg.Columns = 8
	cfg.FPSLimit = 5000
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, 1, cfg.Rows())
	assert.Equal(t, 1000, cfg.FPSLimit)

	cfg.FPSLimit = -3
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.FPSLimit)
}

func TestAsset(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "assets/Fonts/Kenney Pixel.ttf", cfg.Asset(cfg.FontPath))
	assert.Equal(t, "/abs/font.ttf", cfg.Asset("/abs/font.ttf"))

	cfg.AssetsDir = ""
	assert.Equal(t, "x.png", cfg.Asset("x.png"))
}

func TestRuntimeSettings(t *testing.T) {
	prevFPS, prevShow := GetFPSLimit(), GetShowProfiler()
	t.Cleanup(func() {
		SetFPSLimit(prevFPS)
		SetShowProfiler(prevShow)
	})

	SetFPSLimit(2000)
	assert.Equal(t, 1000, GetFPSLimit())
	SetFPSLimit(-1)
	assert.Equal(t, 0, GetFPSLimit())

	SetShowProfiler(false)
	assert.True(t, ToggleShowProfiler())
	assert.True(t, GetShowProfiler())
	assert.False(t, ToggleShowProfiler())
}
