// Package glyphs bakes a TrueType font into a single-channel atlas image.
// It does no GL work, so the packing can be tested on its own.
package glyphs

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// First and Last bound the baked rune range (printable ASCII).
const (
	First rune = 32
	Last  rune = 126
)

const (
	atlasWidth = 512
	padding    = 1
)

// Glyph describes one character's placement in the atlas and its metrics.
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX, AtlasY float32
	Width, Height  float32
	// Offset from the pen position to the glyph's top-left, baseline relative
	BearingX, BearingY float32
	Advance            int
}

// Atlas is a baked glyph sheet.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight int
}

// ReadFont returns the font file at path. If it cannot be read, the embedded
// Go Regular face is returned together with the read error.
func ReadFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return goregular.TTF, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}

// Bake rasterises First..Last at px pixels.
func Bake(ttf []byte, px int) (*Atlas, error) {
	if px <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", px)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type placed struct {
		r      rune
		dr     image.Rectangle
		mask   *image.Alpha
		adv    fixed.Int26_6
		x, y   int
		hasBox bool
	}

	// First pass: shelf-pack every glyph to learn the atlas height.
	var (
		list             []placed
		offX, offY, rowH int
	)
	for r := First; r <= Last; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		p := placed{r: r, dr: dr, adv: adv}
		if mask != nil && dr.Dx() > 0 && dr.Dy() > 0 {
			// The face reuses its mask buffer on the next Glyph call.
			cp := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			draw.Draw(cp, cp.Bounds(), mask, maskp, draw.Src)
			p.mask = cp
			if offX+dr.Dx() > atlasWidth {
				offX = 0
				offY += rowH + padding
				rowH = 0
			}
			p.x, p.y, p.hasBox = offX, offY, true
			offX += dr.Dx() + padding
			rowH = max(rowH, dr.Dy())
		}
		list = append(list, p)
	}
	height := nextPow2(offY + rowH + padding)

	// Second pass: draw into the sheet and record metrics.
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	glyphs := make(map[rune]Glyph, len(list))
	for _, p := range list {
		g := Glyph{
			BearingX: float32(p.dr.Min.X),
			BearingY: float32(-p.dr.Min.Y),
			Advance:  int(math.Round(float64(p.adv) / 64.0)),
		}
		if p.hasBox {
			dst := image.Rect(p.x, p.y, p.x+p.dr.Dx(), p.y+p.dr.Dy())
			draw.Draw(img, dst, p.mask, image.Point{}, draw.Src)
			g.AtlasX, g.AtlasY = float32(p.x), float32(p.y)
			g.Width, g.Height = float32(p.dr.Dx()), float32(p.dr.Dy())
		}
		glyphs[p.r] = g
	}

	metrics := face.Metrics()
	return &Atlas{
		Image:      img,
		Glyphs:     glyphs,
		LineHeight: metrics.Height.Ceil(),
	}, nil
}

// Measure returns the width and tallest glyph height of text at scale.
// Runes outside the atlas advance like a space.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	var w, h float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		w += float32(g.Advance) * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
