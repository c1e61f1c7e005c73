package plot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/basepair-labs/sigplot/pkg/mutation"
)

// Axis titles shared by both chart modes.
const (
	XAxisTitle = "Context"
	YAxisTitle = "Percentage OF Single Base Substitution"
)

// Tick is one x-axis tick with its compact context label.
type Tick struct {
	X     float64
	Label string
}

// YTick is a y-axis tick with its percentage label.
type YTick struct {
	Y     float64
	Label string
}

// Bar is one rectangle of the chart, in axis units. X is the bar
// center.
type Bar struct {
	X      float64
	Width  float64
	Bottom float64
	Height float64
	Color  color.RGBA
}

// Block is a contiguous run of ticks sharing a substitution class. A
// centered label is drawn above it and, unless it is the last block, a
// vertical divider after it.
type Block struct {
	Label      string
	CenterX    float64
	DividerX   float64
	HasDivider bool
}

// LegendEntry pairs a legend label with its swatch color, in display
// order.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// PanelSpec fully describes one chart page independent of any
// rendering backend.
type PanelSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	XMin, XMax float64
	YMin, YMax float64
	Ticks      []Tick
	YTicks     []YTick
	Bars       []Bar
	Blocks     []Block
	Legend     []LegendEntry
}

// FormatPercent renders a proportion in [0,1] as a whole percentage:
// 0.2 becomes "20%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func percentTicks() []YTick {
	ticks := make([]YTick, 0, 6)
	for i := 0; i <= 5; i++ {
		v := float64(i) / 5
		ticks = append(ticks, YTick{Y: v, Label: FormatPercent(v)})
	}
	return ticks
}

// BuildExtendedPanel lays out one extended-context page from the
// long-form rows of a single sample. The x-axis carries the contexts
// in first-seen order; each tick holds one cluster per flanking
// position, stacked by base; the axis is split into six equal blocks
// labeled by substitution class with dividers between them.
func BuildExtendedPanel(rows []LongFormRow, pal Palette) (*PanelSpec, error) {
	if len(rows) == 0 {
		return nil, errors.New("no long-form rows to plot")
	}
	if err := pal.Validate(); err != nil {
		return nil, err
	}

	// Unique contexts and position names, first-seen order.
	var contexts []string
	ctxIndex := make(map[string]int)
	var names []string
	nameIndex := make(map[string]int)
	for _, r := range rows {
		if _, ok := ctxIndex[r.Context]; !ok {
			ctxIndex[r.Context] = len(contexts)
			contexts = append(contexts, r.Context)
		}
		if _, ok := nameIndex[r.Name]; !ok {
			nameIndex[r.Name] = len(names)
			names = append(names, r.Name)
		}
	}

	offsets, width, err := ClusterOffsets(len(names))
	if err != nil {
		return nil, err
	}

	// Value vector per (position, base), aligned with the context order.
	vectors := make(map[string]map[byte][]float64, len(names))
	for _, name := range names {
		vectors[name] = make(map[byte][]float64, len(stackBases))
		for _, base := range stackBases {
			vectors[name][base] = make([]float64, len(contexts))
		}
	}
	for _, r := range rows {
		byBase, ok := vectors[r.Name]
		if !ok {
			continue
		}
		vec, ok := byBase[r.Base]
		if !ok {
			return nil, fmt.Errorf("unexpected base %c in long-form rows", r.Base)
		}
		vec[ctxIndex[r.Context]] = r.Value
	}

	spec := &PanelSpec{
		Title:  rows[0].Sample,
		XLabel: XAxisTitle,
		YLabel: YAxisTitle,
		XMin:   -1,
		XMax:   float64(len(contexts)),
		YMin:   0,
		YMax:   1,
		YTicks: percentTicks(),
	}

	for i, ctx := range contexts {
		spec.Ticks = append(spec.Ticks, Tick{X: float64(i), Label: mutation.CompactLabel(ctx)})
	}

	for ti := range contexts {
		for gi, name := range names {
			x := float64(ti) + offsets[gi]
			bottom := 0.0
			for _, base := range stackBases {
				h := vectors[name][base][ti]
				spec.Bars = append(spec.Bars, Bar{
					X:      x,
					Width:  width,
					Bottom: bottom,
					Height: h,
					Color:  pal.Bases[base],
				})
				bottom += h
			}
		}
	}

	for _, base := range stackBases {
		spec.Legend = append(spec.Legend, LegendEntry{Label: string(base), Color: pal.Bases[base]})
	}

	blocks, err := equalBlocks(contexts)
	if err != nil {
		return nil, err
	}
	spec.Blocks = blocks

	return spec, nil
}

// equalBlocks splits the context axis into six equal-width blocks (the
// last absorbs any integer-division remainder) labeled by the class of
// their contexts.
func equalBlocks(contexts []string) ([]Block, error) {
	blockLen := len(contexts) / 6
	if blockLen == 0 {
		return nil, fmt.Errorf("%d contexts cannot form six class blocks", len(contexts))
	}

	blocks := make([]Block, 0, 6)
	for bi := 0; bi < 6; bi++ {
		start := bi * blockLen
		end := start + blockLen
		if bi == 5 {
			end = len(contexts)
		}
		typ, err := mutation.Parse(contexts[start])
		if err != nil {
			return nil, fmt.Errorf("context %q: %w", contexts[start], err)
		}
		b := Block{
			Label:   string(typ.Class()),
			CenterX: float64(start + (end-start)/2),
		}
		if bi < 5 {
			b.DividerX = float64(end-1) + 0.5
			b.HasDivider = true
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
