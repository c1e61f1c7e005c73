// Package plot turns signature matrices into fully specified bar-chart
// pages. It owns the long-form aggregation, bar-cluster geometry,
// panel layout and color configuration, and defines the Canvas and
// Document contracts rendering backends implement.
package plot

import (
	"errors"
	"fmt"

	"github.com/basepair-labs/sigplot/pkg/mutation"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

// LongFormRow is the flattened aggregation unit consumed by the panel
// builder: one value for one flanking position and base within one
// trinucleotide context of one sample column.
type LongFormRow struct {
	// Name labels the flanking position, e.g. "-1" or "+2".
	Name string
	// Context is the trinucleotide core, e.g. "A[C>A]A".
	Context string
	// Base is the nucleotide occupying the position.
	Base byte
	// Sample is the matrix column the value was aggregated from.
	Sample string
	// Value is the summed column value.
	Value float64
}

// stackBases is the order bar segments stack bottom-to-top within a
// cluster, and the order base legend entries appear. It is not the
// alphabet order.
var stackBases = []byte{'A', 'C', 'T', 'G'}

// StackBases returns the bases in stacking order: A, C, T, G.
func StackBases() []byte {
	out := make([]byte, len(stackBases))
	copy(out, stackBases)
	return out
}

// ParseExtendedContext aggregates one sample column of an
// extended-context matrix into long-form rows.
//
// For each of the 96 canonical trinucleotide cores, in catalog order:
// the core total is the sum of the column over rows whose key reduces
// to that core; then for every flanking position beyond the core
// (5' to 3') and every base in stacking order, the emitted value is the
// sum over the core's rows carrying that base at that position, or
// exactly zero when the core total is zero. Cores absent from the
// matrix emit zeros, so the output always covers the full catalog.
//
// The emission order (core, then position, then base) is a contract:
// it fixes tick, cluster and stacking order in the rendered chart.
func ParseExtendedContext(m *sigdata.Matrix, sample string) ([]LongFormRow, error) {
	values, ok := m.Sample(sample)
	if !ok {
		return nil, fmt.Errorf("unknown sample column %q", sample)
	}
	if len(values) != len(m.Keys) {
		return nil, fmt.Errorf("sample %q has %d values for %d keys", sample, len(values), len(m.Keys))
	}

	types := make([]mutation.Type, len(m.Keys))
	var errs []error
	for i, key := range m.Keys {
		typ, err := mutation.Parse(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		types[i] = typ
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	width := types[0].Width()
	for i, typ := range types {
		if typ.Width() != width {
			return nil, fmt.Errorf("row %d: key %q has context width %d, want %d", i+1, typ, typ.Width(), width)
		}
	}
	if width < 5 {
		return nil, fmt.Errorf("context width %d has no flanking positions beyond the trinucleotide core", width)
	}

	byCore := make(map[string][]int, 96)
	for i, typ := range types {
		core := typ.Core()
		byCore[core] = append(byCore[core], i)
	}

	flanks := mutation.FlankIndexes(width)
	labels := mutation.PositionLabels(width)

	rows := make([]LongFormRow, 0, 96*len(flanks)*len(stackBases))
	for _, core := range mutation.Catalog96() {
		coreRows := byCore[core]
		var total float64
		for _, ri := range coreRows {
			total += values[ri]
		}
		for p, si := range flanks {
			for _, base := range stackBases {
				var v float64
				if total != 0 {
					for _, ri := range coreRows {
						if types[ri].BaseAt(si) == base {
							v += values[ri]
						}
					}
				}
				rows = append(rows, LongFormRow{
					Name:    labels[p],
					Context: core,
					Base:    base,
					Sample:  sample,
					Value:   v,
				})
			}
		}
	}

	return rows, nil
}
