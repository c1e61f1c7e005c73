// Package svgcanvas renders chart pages as SVG documents.
package svgcanvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/basepair-labs/sigplot/pkg/plot"
)

// Canvas is a plot.Canvas writing SVG elements to an underlying
// writer. Call End once drawing is complete to close the document.
type Canvas struct {
	svg    *svg.SVG
	width  int
	height int
	ended  bool
}

// New starts an SVG document of the given pixel size with a white
// background.
func New(w io.Writer, width, height int) *Canvas {
	s := svg.New(w)
	s.Start(width, height)
	s.Rect(0, 0, width, height, `fill="#FFFFFF"`)
	return &Canvas{svg: s, width: width, height: height}
}

// Size returns the page dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// End closes the SVG document. Further drawing is discarded by the
// reader, not by us, so callers should draw first and End once.
func (c *Canvas) End() {
	if c.ended {
		return
	}
	c.ended = true
	c.svg.End()
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.svg.Rect(round(x), round(y), round(w), round(h), fmt.Sprintf(`fill="%s"`, hexColor(col)))
}

// Line draws a stroked line.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	c.svg.Line(round(x1), round(y1), round(x2), round(y2),
		fmt.Sprintf(`stroke="%s" stroke-width="%g"`, hexColor(col), width))
}

// Text draws s anchored at (x, y). Alignment uses text-anchor and em
// offsets; rotated text pivots on the anchor so it reads bottom-to-top.
func (c *Canvas) Text(x, y float64, s string, style plot.TextStyle) {
	if s == "" {
		return
	}
	xi, yi := round(x), round(y)

	var b strings.Builder
	fmt.Fprintf(&b, `font-family="%s" font-size="%g" fill="#000000"`, fontFamily(style.Font), style.Size)
	if style.Font == plot.FontBold {
		b.WriteString(` font-weight="bold"`)
	}
	fmt.Fprintf(&b, ` text-anchor="%s"`, anchorName(style.HAlign))
	if dy := baselineOffset(style.VAlign); dy != "" {
		fmt.Fprintf(&b, ` dy="%s"`, dy)
	}
	if style.Rotation != 0 {
		fmt.Fprintf(&b, ` transform="rotate(-90 %d %d)"`, xi, yi)
	}

	c.svg.Text(xi, yi, s, b.String())
}

// MeasureText estimates the advance width of s. SVG rendering has no
// font metrics available, so this uses per-family width factors; it is
// only used to size the legend box.
func (c *Canvas) MeasureText(s string, style plot.TextStyle) float64 {
	factor := 0.52
	switch style.Font {
	case plot.FontMono:
		factor = 0.6
	case plot.FontBold:
		factor = 0.56
	}
	return float64(len(s)) * style.Size * factor
}

func fontFamily(kind plot.FontKind) string {
	if kind == plot.FontMono {
		return "monospace"
	}
	return "sans-serif"
}

func anchorName(a plot.Anchor) string {
	switch a {
	case plot.AnchorMiddle:
		return "middle"
	case plot.AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// baselineOffset maps a vertical alignment to a dy attribute, the
// usual SVG idiom for baseline adjustment.
func baselineOffset(v plot.VAlign) string {
	switch v {
	case plot.VAlignTop:
		return ".9em"
	case plot.VAlignMiddle:
		return ".3em"
	case plot.VAlignBottom:
		return "-.2em"
	default:
		return ""
	}
}

func hexColor(col color.Color) string {
	r, g, b, _ := col.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func round(v float64) int { return int(math.Round(v)) }
