package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/basepair-labs/sigplot/pkg/mutation"
)

// Palette maps flanking bases and substitution classes to bar colors.
// It is passed explicitly into panel building so renderers carry no
// ambient color state and tests can use synthetic palettes.
type Palette struct {
	// Bases colors the stacked segments of extended-context charts.
	Bases map[byte]color.RGBA
	// Classes colors the bars of standard 96-context charts.
	Classes map[mutation.Class]color.RGBA
}

// DefaultPalette returns the stock colors: the COSMIC signature-plot
// class palette and a fixed base palette.
func DefaultPalette() Palette {
	return Palette{
		Bases: map[byte]color.RGBA{
			'A': {R: 0x10, G: 0x96, B: 0x48, A: 0xFF},
			'C': {R: 0x25, G: 0x5C, B: 0x99, A: 0xFF},
			'G': {R: 0xF7, G: 0xB3, B: 0x2B, A: 0xFF},
			'T': {R: 0xD6, G: 0x28, B: 0x39, A: 0xFF},
		},
		Classes: map[mutation.Class]color.RGBA{
			mutation.ClassCA: {R: 0x03, G: 0xBC, B: 0xEE, A: 0xFF},
			mutation.ClassCG: {R: 0x01, G: 0x01, B: 0x01, A: 0xFF},
			mutation.ClassCT: {R: 0xE3, G: 0x29, B: 0x26, A: 0xFF},
			mutation.ClassTA: {R: 0xCA, G: 0xC9, B: 0xC9, A: 0xFF},
			mutation.ClassTC: {R: 0xA1, G: 0xCE, B: 0x63, A: 0xFF},
			mutation.ClassTG: {R: 0xEB, G: 0xC6, B: 0xC4, A: 0xFF},
		},
	}
}

// Validate checks that the palette covers all four bases and all six
// substitution classes.
func (p Palette) Validate() error {
	for _, b := range mutation.Bases() {
		if _, ok := p.Bases[b]; !ok {
			return fmt.Errorf("palette is missing a color for base %c", b)
		}
	}
	for _, cl := range mutation.Classes() {
		if _, ok := p.Classes[cl]; !ok {
			return fmt.Errorf("palette is missing a color for class %s", cl)
		}
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" (or "RRGGBB") into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}
