package plot

import (
	"errors"
	"image/color"
)

// FontKind selects one of the chart fonts.
type FontKind int

const (
	FontRegular FontKind = iota
	FontBold
	FontMono
)

// Anchor positions text along its reading direction.
type Anchor int

const (
	// AnchorStart places the beginning of the text at the anchor point.
	AnchorStart Anchor = iota
	// AnchorMiddle centers the text on the anchor point.
	AnchorMiddle
	// AnchorEnd places the end of the text at the anchor point.
	AnchorEnd
)

// VAlign positions text across its reading direction.
type VAlign int

const (
	VAlignBaseline VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// TextStyle describes how a string is drawn. Size is in pixels.
// Rotation is either 0 or 90; rotated text reads bottom-to-top, with
// HAlign applying along the upward reading direction and VAlign
// across it.
type TextStyle struct {
	Font     FontKind
	Size     float64
	HAlign   Anchor
	VAlign   VAlign
	Rotation int
}

// Canvas is one drawable page. Coordinates are pixels with the origin
// at the top left. Backends: a raster canvas encoding to PNG and an
// SVG canvas.
type Canvas interface {
	// Size returns the page dimensions in pixels.
	Size() (w, h int)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)
	// Line draws a straight line with the given stroke width.
	Line(x1, y1, x2, y2 float64, c color.Color, width float64)
	// Text draws s anchored at (x, y) according to the style.
	Text(x, y float64, s string, style TextStyle)
	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string, style TextStyle) float64
}

// Layout metrics, expressed on a reference page 1000 pixels tall and
// scaled by the actual page height.
const (
	refHeight       = 1000.0
	refMarginLeft   = 110.0
	refMarginRight  = 30.0
	refMarginTop    = 80.0
	refMarginBottom = 130.0

	refTickFont   = 14.0
	refAxisFont   = 17.0
	refBlockFont  = 28.0
	refTitleFont  = 33.0
	refLegendFont = 14.0

	// Corner title position in axis units, matching the reference
	// charts: just right of the x minimum, just under the y maximum.
	cornerTitleX = -0.05
	cornerTitleY = 0.99
)

var (
	black      = color.RGBA{A: 0xFF}
	white      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	legendGray = color.RGBA{R: 0x78, G: 0x78, B: 0x78, A: 0xFF}
)

// RenderPanel draws a complete panel onto the canvas: bars, frame,
// class dividers and labels, corner title, tick labels, axis titles
// and legend.
func RenderPanel(c Canvas, spec *PanelSpec) error {
	if spec == nil {
		return errors.New("nil panel spec")
	}
	if spec.XMax <= spec.XMin || spec.YMax <= spec.YMin {
		return errors.New("panel spec has degenerate axis ranges")
	}

	w, h := c.Size()
	pageW, pageH := float64(w), float64(h)
	scale := pageH / refHeight

	left := refMarginLeft * scale
	top := refMarginTop * scale
	plotW := pageW - left - refMarginRight*scale
	plotH := pageH - top - refMarginBottom*scale
	bottom := top + plotH
	right := left + plotW

	xPix := func(x float64) float64 {
		return left + (x-spec.XMin)/(spec.XMax-spec.XMin)*plotW
	}
	yPix := func(y float64) float64 {
		return top + (1-(y-spec.YMin)/(spec.YMax-spec.YMin))*plotH
	}

	// Bars.
	for _, b := range spec.Bars {
		if b.Height <= 0 {
			continue
		}
		x0 := xPix(b.X - b.Width/2)
		x1 := xPix(b.X + b.Width/2)
		y0 := yPix(b.Bottom + b.Height)
		y1 := yPix(b.Bottom)
		c.FillRect(x0, y0, x1-x0, y1-y0, b.Color)
	}

	// Frame.
	frameW := 1 * scale
	c.Line(left, top, right, top, black, frameW)
	c.Line(left, bottom, right, bottom, black, frameW)
	c.Line(left, top, left, bottom, black, frameW)
	c.Line(right, top, right, bottom, black, frameW)

	// Class dividers and block labels.
	labelY := yPix(spec.YMax + 0.05*(spec.YMax-spec.YMin))
	for _, blk := range spec.Blocks {
		if blk.HasDivider {
			c.Line(xPix(blk.DividerX), top, xPix(blk.DividerX), bottom, black, 2*scale)
		}
		c.Text(xPix(blk.CenterX), labelY, blk.Label, TextStyle{
			Font: FontBold, Size: refBlockFont * scale,
			HAlign: AnchorMiddle, VAlign: VAlignMiddle,
		})
	}

	// Corner title.
	c.Text(xPix(cornerTitleX), yPix(cornerTitleY), spec.Title, TextStyle{
		Font: FontBold, Size: refTitleFont * scale,
		HAlign: AnchorStart, VAlign: VAlignTop,
	})

	// X ticks: small marks plus rotated monospace labels reading
	// toward the axis.
	for _, t := range spec.Ticks {
		tx := xPix(t.X)
		c.Line(tx, bottom, tx, bottom+4*scale, black, frameW)
		c.Text(tx, bottom+7*scale, t.Label, TextStyle{
			Font: FontMono, Size: refTickFont * scale,
			HAlign: AnchorEnd, VAlign: VAlignMiddle, Rotation: 90,
		})
	}

	// Y ticks.
	for _, t := range spec.YTicks {
		ty := yPix(t.Y)
		c.Line(left-4*scale, ty, left, ty, black, frameW)
		c.Text(left-8*scale, ty, t.Label, TextStyle{
			Font: FontRegular, Size: refTickFont * scale,
			HAlign: AnchorEnd, VAlign: VAlignMiddle,
		})
	}

	// Axis titles.
	c.Text(left+plotW/2, bottom+55*scale, spec.XLabel, TextStyle{
		Font: FontBold, Size: refAxisFont * scale,
		HAlign: AnchorMiddle, VAlign: VAlignTop,
	})
	c.Text(26*scale, top+plotH/2, spec.YLabel, TextStyle{
		Font: FontBold, Size: refAxisFont * scale,
		HAlign: AnchorMiddle, VAlign: VAlignMiddle, Rotation: 90,
	})

	renderLegend(c, spec.Legend, left, top, plotW, scale)
	return nil
}

// renderLegend draws the legend box in the top right corner of the
// plot area.
func renderLegend(c Canvas, entries []LegendEntry, left, top, plotW, scale float64) {
	if len(entries) == 0 {
		return
	}

	pad := 10 * scale
	entryH := 22 * scale
	swatch := 14 * scale
	gap := 6 * scale
	style := TextStyle{Font: FontRegular, Size: refLegendFont * scale, HAlign: AnchorStart, VAlign: VAlignMiddle}

	var maxW float64
	for _, e := range entries {
		if w := c.MeasureText(e.Label, style); w > maxW {
			maxW = w
		}
	}

	boxW := pad + swatch + gap + maxW + pad
	boxH := 2*pad + entryH*float64(len(entries))
	x0 := left + plotW - boxW - 10*scale
	y0 := top + 10*scale

	c.FillRect(x0, y0, boxW, boxH, white)
	lw := 1 * scale
	c.Line(x0, y0, x0+boxW, y0, legendGray, lw)
	c.Line(x0, y0+boxH, x0+boxW, y0+boxH, legendGray, lw)
	c.Line(x0, y0, x0, y0+boxH, legendGray, lw)
	c.Line(x0+boxW, y0, x0+boxW, y0+boxH, legendGray, lw)

	for i, e := range entries {
		rowY := y0 + pad + float64(i)*entryH
		c.FillRect(x0+pad, rowY+(entryH-swatch)/2, swatch, swatch, e.Color)
		c.Text(x0+pad+swatch+gap, rowY+entryH/2, e.Label, style)
	}
}
