package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepair-labs/sigplot/pkg/plot"
)

var _ plot.Canvas = (*Canvas)(nil)

// countDark counts clearly non-white pixels inside the region.
func countDark(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if int(c.R)+int(c.G)+int(c.B) < 600 {
				n++
			}
		}
	}
	return n
}

func TestNew(t *testing.T) {
	c, err := New(400, 200)
	require.NoError(t, err)

	w, h := c.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 200, h)

	// Fresh canvases are white.
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, c.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, c.Image().RGBAAt(399, 199))
}

func TestNewRejectsEmptySize(t *testing.T) {
	_, err := New(0, 100)
	assert.Error(t, err)
	_, err = New(100, -1)
	assert.Error(t, err)
}

func TestFillRect(t *testing.T) {
	c, err := New(100, 100)
	require.NoError(t, err)

	red := color.RGBA{R: 0xFF, A: 0xFF}
	c.FillRect(10, 10, 20, 20, red)

	assert.Equal(t, red, c.Image().RGBAAt(15, 15))
	assert.Equal(t, red, c.Image().RGBAAt(29, 29))
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, c.Image().RGBAAt(35, 35))
}

func TestFillRectClipsToCanvas(t *testing.T) {
	c, err := New(50, 50)
	require.NoError(t, err)

	// Partially off-canvas rectangles must not panic.
	c.FillRect(-10, -10, 30, 30, color.RGBA{A: 0xFF})
	c.FillRect(40, 40, 30, 30, color.RGBA{A: 0xFF})

	assert.Equal(t, color.RGBA{A: 0xFF}, c.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{A: 0xFF}, c.Image().RGBAAt(45, 45))
}

func TestLine(t *testing.T) {
	c, err := New(100, 100)
	require.NoError(t, err)
	black := color.RGBA{A: 0xFF}

	t.Run("vertical", func(t *testing.T) {
		c.Line(50, 10, 50, 30, black, 2)
		assert.Equal(t, black, c.Image().RGBAAt(50, 20))
		assert.Equal(t, black, c.Image().RGBAAt(50, 10))
	})

	t.Run("horizontal", func(t *testing.T) {
		c.Line(10, 70, 40, 70, black, 2)
		assert.Equal(t, black, c.Image().RGBAAt(25, 70))
	})

	t.Run("diagonal", func(t *testing.T) {
		c.Line(60, 60, 90, 90, black, 2)
		assert.Equal(t, black, c.Image().RGBAAt(75, 75))
	})
}

func TestText(t *testing.T) {
	c, err := New(300, 120)
	require.NoError(t, err)

	c.Text(20, 30, "Hello", plot.TextStyle{
		Font: plot.FontRegular, Size: 24,
		HAlign: plot.AnchorStart, VAlign: plot.VAlignTop,
	})

	// Glyphs land below and right of the top-left anchor.
	ink := countDark(c.Image(), image.Rect(20, 30, 120, 60))
	assert.Greater(t, ink, 20)
	assert.Zero(t, countDark(c.Image(), image.Rect(0, 0, 300, 28)), "nothing above the anchor")
}

func TestTextAlignment(t *testing.T) {
	c, err := New(200, 100)
	require.NoError(t, err)

	c.Text(100, 50, "W", plot.TextStyle{
		Font: plot.FontBold, Size: 20,
		HAlign: plot.AnchorEnd, VAlign: plot.VAlignBaseline,
	})

	// End-anchored text finishes at the anchor.
	assert.Greater(t, countDark(c.Image(), image.Rect(80, 30, 101, 52)), 10)
	assert.Zero(t, countDark(c.Image(), image.Rect(103, 0, 200, 100)))
}

func TestRotatedText(t *testing.T) {
	c, err := New(120, 300)
	require.NoError(t, err)

	// End-anchored rotated text hangs below its anchor, reading
	// bottom-to-top toward it.
	c.Text(60, 40, "ACA", plot.TextStyle{
		Font: plot.FontMono, Size: 20,
		HAlign: plot.AnchorEnd, VAlign: plot.VAlignMiddle, Rotation: 90,
	})

	below := countDark(c.Image(), image.Rect(40, 40, 80, 110))
	above := countDark(c.Image(), image.Rect(0, 0, 120, 39))
	assert.Greater(t, below, 20)
	assert.Zero(t, above)
}

func TestMeasureText(t *testing.T) {
	c, err := New(10, 10)
	require.NoError(t, err)

	style := plot.TextStyle{Font: plot.FontMono, Size: 14}
	short := c.MeasureText("AC", style)
	long := c.MeasureText("ACGT", style)

	assert.Greater(t, short, 0.0)
	assert.InDelta(t, 2*short, long, 0.5, "monospace advances are uniform")
}

func TestEncodePNG(t *testing.T) {
	c, err := New(64, 32)
	require.NoError(t, err)
	c.FillRect(0, 0, 64, 32, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
}
