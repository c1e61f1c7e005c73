package svgcanvas

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepair-labs/sigplot/pkg/plot"
)

var _ plot.Canvas = (*Canvas)(nil)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 800, 400)

	w, h := c.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `fill="#FFFFFF"`, "white background rect")
}

func TestFillRect(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)

	c.FillRect(10.4, 20.6, 30, 40, color.RGBA{R: 0xE3, G: 0x29, B: 0x26, A: 0xFF})

	out := buf.String()
	assert.Contains(t, out, `fill="#E32926"`)
	assert.Contains(t, out, `x="10"`)
	assert.Contains(t, out, `y="21"`)
}

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)

	c.Line(0, 50, 100, 50, color.RGBA{A: 0xFF}, 2)

	out := buf.String()
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, `stroke="#000000"`)
	assert.Contains(t, out, `stroke-width="2"`)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 400, 200)

	c.Text(100, 50, "ACA", plot.TextStyle{
		Font: plot.FontMono, Size: 14,
		HAlign: plot.AnchorMiddle, VAlign: plot.VAlignMiddle,
	})

	out := buf.String()
	assert.Contains(t, out, ">ACA</text>")
	assert.Contains(t, out, `font-family="monospace"`)
	assert.Contains(t, out, `font-size="14"`)
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `dy=".3em"`)
	assert.NotContains(t, out, "transform")
}

func TestTextBold(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 400, 200)

	c.Text(10, 10, "SBS5", plot.TextStyle{Font: plot.FontBold, Size: 33})

	out := buf.String()
	assert.Contains(t, out, `font-weight="bold"`)
	assert.Contains(t, out, `font-family="sans-serif"`)
	assert.NotContains(t, out, "dy=", "baseline alignment needs no offset")
}

func TestTextRotated(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 400, 200)

	c.Text(100.2, 150.4, "TTT", plot.TextStyle{
		Font: plot.FontMono, Size: 14,
		HAlign: plot.AnchorEnd, VAlign: plot.VAlignMiddle, Rotation: 90,
	})

	out := buf.String()
	assert.Contains(t, out, `transform="rotate(-90 100 150)"`)
	assert.Contains(t, out, `text-anchor="end"`)
}

func TestTextSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)
	before := buf.Len()

	c.Text(10, 10, "", plot.TextStyle{Size: 14})
	assert.Equal(t, before, buf.Len())
}

func TestEnd(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)
	c.End()
	c.End()

	assert.Equal(t, 1, strings.Count(buf.String(), "</svg>"), "End is idempotent")
}

func TestMeasureText(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 100, 100)

	mono := c.MeasureText("ACGT", plot.TextStyle{Font: plot.FontMono, Size: 14})
	regular := c.MeasureText("ACGT", plot.TextStyle{Font: plot.FontRegular, Size: 14})

	assert.Greater(t, mono, regular, "monospace glyphs run wider")
	assert.InDelta(t, 4*14*0.6, mono, 1e-9)
}

func TestHexColor(t *testing.T) {
	require.Equal(t, "#03BCEE", hexColor(color.RGBA{R: 0x03, G: 0xBC, B: 0xEE, A: 0xFF}))
	require.Equal(t, "#000000", hexColor(color.Black))
	require.Equal(t, "#FFFFFF", hexColor(color.White))
}
