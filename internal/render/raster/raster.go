// Package raster renders chart pages into RGBA images encoded as PNG,
// using the Go fonts for all text.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/basepair-labs/sigplot/pkg/plot"
)

type faceKey struct {
	kind plot.FontKind
	size float64
}

// Canvas is a plot.Canvas drawing into an in-memory RGBA image.
type Canvas struct {
	img   *image.RGBA
	fonts map[plot.FontKind]*opentype.Font
	faces map[faceKey]font.Face
	err   error
}

// New returns a white canvas of the given pixel size.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	fonts := make(map[plot.FontKind]*opentype.Font, 3)
	for kind, ttf := range map[plot.FontKind][]byte{
		plot.FontRegular: goregular.TTF,
		plot.FontBold:    gobold.TTF,
		plot.FontMono:    gomono.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse builtin font: %w", err)
		}
		fonts[kind] = f
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	return &Canvas{
		img:   img,
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Err reports any drawing error accumulated so far, such as a font
// face that could not be built.
func (c *Canvas) Err() error { return c.err }

// EncodePNG writes the canvas as a PNG. It fails if any prior drawing
// call failed.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}
	return nil
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

// Line draws a stroked line. Horizontal and vertical lines render as
// exact rectangles; anything else falls back to pixel stepping.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	half := width / 2
	switch {
	case x1 == x2:
		y1, y2 = math.Min(y1, y2), math.Max(y1, y2)
		c.FillRect(x1-half, y1-half, width, y2-y1+width, col)
	case y1 == y2:
		x1, x2 = math.Min(x1, x2), math.Max(x1, x2)
		c.FillRect(x1-half, y1-half, x2-x1+width, width, col)
	default:
		steps := int(math.Hypot(x2-x1, y2-y1)) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			c.FillRect(x1+t*(x2-x1)-half, y1+t*(y2-y1)-half, width, width, col)
		}
	}
}

// MeasureText returns the advance width of s in pixels.
func (c *Canvas) MeasureText(s string, style plot.TextStyle) float64 {
	face := c.face(style)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s))
}

// Text draws s anchored at (x, y). Rotated text is laid out
// horizontally in a scratch image and composited through a 90-degree
// counterclockwise view, so it reads bottom-to-top.
func (c *Canvas) Text(x, y float64, s string, style plot.TextStyle) {
	if s == "" {
		return
	}
	face := c.face(style)
	if face == nil {
		return
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	advance := fixedToFloat(font.MeasureString(face, s))

	if style.Rotation == 0 {
		dot := fixed.Point26_6{
			X: floatToFixed(x - hShift(style.HAlign, advance)),
			Y: floatToFixed(y + baselineShift(style.VAlign, ascent, descent)),
		}
		d := font.Drawer{Dst: c.img, Src: image.NewUniform(color.Black), Face: face, Dot: dot}
		d.DrawString(s)
		return
	}

	// Scratch holds the string drawn horizontally on a transparent
	// background.
	sw := int(math.Ceil(advance)) + 2
	sh := int(math.Ceil(ascent+descent)) + 2
	scratch := image.NewRGBA(image.Rect(0, 0, sw, sh))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(1), Y: floatToFixed(1 + ascent)},
	}
	d.DrawString(s)

	// The rotated box is sh wide and sw tall. Along the upward reading
	// direction the anchor picks the box bottom (start), middle or top
	// (end). Across it, glyph tops face left, so the baseline sits
	// ascent pixels right of the box edge.
	var top float64
	switch style.HAlign {
	case plot.AnchorStart:
		top = y - float64(sw)
	case plot.AnchorMiddle:
		top = y - float64(sw)/2
	default:
		top = y
	}
	left := x + baselineShift(style.VAlign, ascent, descent) - ascent - 1

	dst := image.Rect(round(left), round(top), round(left)+sh, round(top)+sw)
	draw.Draw(c.img, dst.Intersect(c.img.Bounds()), rotatedCCW{scratch}, image.Point{}, draw.Over)
}

func (c *Canvas) face(style plot.TextStyle) font.Face {
	key := faceKey{kind: style.Font, size: style.Size}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src, ok := c.fonts[style.Font]
	if !ok {
		src = c.fonts[plot.FontRegular]
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		c.err = errors.Join(c.err, fmt.Errorf("failed to build %.1fpx face: %w", style.Size, err))
		return nil
	}
	c.faces[key] = f
	return f
}

// hShift is the distance from the anchor to the string start for a
// horizontal alignment.
func hShift(a plot.Anchor, advance float64) float64 {
	switch a {
	case plot.AnchorMiddle:
		return advance / 2
	case plot.AnchorEnd:
		return advance
	default:
		return 0
	}
}

// baselineShift converts a vertical alignment into an offset from the
// anchor y to the baseline.
func baselineShift(v plot.VAlign, ascent, descent float64) float64 {
	switch v {
	case plot.VAlignTop:
		return ascent
	case plot.VAlignMiddle:
		return (ascent - descent) / 2
	case plot.VAlignBottom:
		return -descent
	default:
		return 0
	}
}

// rotatedCCW exposes a source image rotated 90 degrees
// counterclockwise: the source's left edge becomes the bottom.
type rotatedCCW struct {
	src *image.RGBA
}

func (r rotatedCCW) ColorModel() color.Model { return r.src.ColorModel() }

func (r rotatedCCW) Bounds() image.Rectangle {
	b := r.src.Bounds()
	return image.Rect(0, 0, b.Dy(), b.Dx())
}

func (r rotatedCCW) At(x, y int) color.Color {
	b := r.src.Bounds()
	return r.src.At(b.Min.X+b.Dx()-1-y, b.Min.Y+x)
}

func round(v float64) int { return int(math.Round(v)) }

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
