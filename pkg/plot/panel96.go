package plot

import (
	"fmt"

	"github.com/basepair-labs/sigplot/pkg/mutation"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

// standardBarWidth is the bar width of the one-bar-per-type standard
// chart, in axis units.
const standardBarWidth = 0.8

// Build96Panel lays out one standard 96-context page for a sample
// column. Each mutation type gets a single bar in matrix row order,
// colored by its substitution class; class blocks follow class
// membership (variable width), with dividers between consecutive
// blocks and none after the last.
func Build96Panel(m *sigdata.Matrix, sample string, pal Palette) (*PanelSpec, error) {
	values, ok := m.Sample(sample)
	if !ok {
		return nil, fmt.Errorf("unknown sample column %q", sample)
	}
	if len(values) != len(m.Keys) {
		return nil, fmt.Errorf("sample %q has %d values for %d keys", sample, len(values), len(m.Keys))
	}
	if err := pal.Validate(); err != nil {
		return nil, err
	}

	classes := make([]mutation.Class, len(m.Keys))
	for i, key := range m.Keys {
		typ, err := mutation.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if typ.Width() != 3 {
			return nil, fmt.Errorf("row %d: key %q is not a trinucleotide type", i+1, key)
		}
		classes[i] = typ.Class()
	}

	spec := &PanelSpec{
		Title:  sample,
		XLabel: XAxisTitle,
		YLabel: YAxisTitle,
		XMin:   -1,
		XMax:   float64(len(m.Keys)),
		YMin:   0,
		YMax:   1,
		YTicks: percentTicks(),
	}

	seen := make(map[mutation.Class]bool, 6)
	for i, key := range m.Keys {
		spec.Ticks = append(spec.Ticks, Tick{X: float64(i), Label: mutation.CompactLabel(key)})
		spec.Bars = append(spec.Bars, Bar{
			X:      float64(i),
			Width:  standardBarWidth,
			Bottom: 0,
			Height: values[i],
			Color:  pal.Classes[classes[i]],
		})
		if !seen[classes[i]] {
			seen[classes[i]] = true
			spec.Legend = append(spec.Legend, LegendEntry{Label: string(classes[i]), Color: pal.Classes[classes[i]]})
		}
	}

	spec.Blocks = classBlocks(classes)
	return spec, nil
}

// classBlocks groups row indexes by substitution class, in canonical
// class order, labeling each group over its middle occurrence and
// placing the divider after its last occurrence.
func classBlocks(classes []mutation.Class) []Block {
	byClass := make(map[mutation.Class][]int, 6)
	for i, cl := range classes {
		byClass[cl] = append(byClass[cl], i)
	}

	var present []mutation.Class
	for _, cl := range mutation.Classes() {
		if len(byClass[cl]) > 0 {
			present = append(present, cl)
		}
	}

	blocks := make([]Block, 0, len(present))
	for i, cl := range present {
		idxs := byClass[cl]
		b := Block{
			Label:   string(cl),
			CenterX: float64(idxs[len(idxs)/2]),
		}
		if i < len(present)-1 {
			b.DividerX = float64(idxs[len(idxs)-1]) + 0.5
			b.HasDivider = true
		}
		blocks = append(blocks, b)
	}
	return blocks
}
