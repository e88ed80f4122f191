package glyphs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBakeGoRegular(t *testing.T) {
	a, err := Bake(goregular.TTF, 16)
	require.NoError(t, err)

	assert.Len(t, a.Glyphs, int(Last-First+1))
	assert.Equal(t, 512, a.Image.Bounds().Dx())
	h := a.Image.Bounds().Dy()
	assert.Equal(t, 0, h&(h-1), "atlas height %d is not a power of two", h)
	assert.Positive(t, a.LineHeight)

	space := a.Glyphs[' ']
	assert.Zero(t, space.Width)
	assert.Positive(t, space.Advance)

	bounds := a.Image.Bounds()
	for r, g := range a.Glyphs {
		if g.Width == 0 {
			continue
		}
		assert.LessOrEqual(t, int(g.AtlasX+g.Width), bounds.Max.X, "glyph %q", r)
		assert.LessOrEqual(t, int(g.AtlasY+g.Height), bounds.Max.Y, "glyph %q", r)
	}
}

func TestMeasure(t *testing.T) {
	a, err := Bake(goregular.TTF, 16)
	require.NoError(t, err)

	w1, h1 := a.Measure("Dagger: 1", 1)
	w2, _ := a.Measure("Dagger: 1", 2)
	assert.Positive(t, w1)
	assert.Positive(t, h1)
	assert.InDelta(t, 2*w1, w2, 0.001)

	// Unknown runes advance like a space.
	wu, _ := a.Measure("é", 1)
	ws, _ := a.Measure(" ", 1)
	assert.Equal(t, ws, wu)
}

func TestBakeRejects(t *testing.T) {
	_, err := Bake(goregular.TTF, 0)
	assert.Error(t, err)

	_, err = Bake([]byte("not a font"), 16)
	assert.Error(t, err)
}

func TestReadFontFallsBack(t *testing.T) {
	data, err := ReadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
	assert.Equal(t, goregular.TTF, data)
}
