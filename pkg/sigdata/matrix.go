// Package sigdata models wide mutational-signature matrices: one row
// per mutation key, one numeric column per sample or signature. It
// loads them from SigProfiler-style TSV/CSV files and prepares them
// for plotting.
package sigdata

import (
	"errors"
	"fmt"

	"github.com/basepair-labs/sigplot/pkg/mutation"
)

// Sample is one named numeric column of a matrix.
type Sample struct {
	Name   string
	Values []float64
}

// Matrix is a wide signature table. Keys holds the mutation-type
// column; every Sample carries one value per key, in key order.
type Matrix struct {
	Keys    []string
	Samples []Sample
}

// Rows returns the number of mutation keys.
func (m *Matrix) Rows() int { return len(m.Keys) }

// SampleNames returns the sample column names in declaration order.
func (m *Matrix) SampleNames() []string {
	names := make([]string, len(m.Samples))
	for i, s := range m.Samples {
		names[i] = s.Name
	}
	return names
}

// SortedSampleNames returns the sample column names in natural order,
// so SBS10 sorts after SBS2. Page order in rendered reports follows
// this ordering.
func (m *Matrix) SortedSampleNames() []string {
	names := m.SampleNames()
	mutation.SortNatural(names)
	return names
}

// Sample returns the values of the named column.
func (m *Matrix) Sample(name string) ([]float64, bool) {
	for _, s := range m.Samples {
		if s.Name == name {
			return s.Values, true
		}
	}
	return nil, false
}

// Width returns the context width of the matrix derived from its first
// key (3 for a standard SBS-96 matrix), or 0 for an empty matrix.
// Validate checks that all keys share this width.
func (m *Matrix) Width() int {
	if len(m.Keys) == 0 {
		return 0
	}
	return len(m.Keys[0]) - 4
}

// Normalize rescales every sample column in place so its values sum
// to 1. Columns that sum to zero are left untouched.
func (m *Matrix) Normalize() {
	for _, s := range m.Samples {
		var total float64
		for _, v := range s.Values {
			total += v
		}
		if total == 0 {
			continue
		}
		for i := range s.Values {
			s.Values[i] /= total
		}
	}
}

// Validate checks the matrix invariants the renderer depends on:
// at least one key and one sample, every key parseable with a uniform
// context width, no duplicate keys, no duplicate sample names, and
// every column the same length as the key list. All row-level problems
// are reported together.
func (m *Matrix) Validate() error {
	if len(m.Keys) == 0 {
		return errors.New("matrix has no rows")
	}
	if len(m.Samples) == 0 {
		return errors.New("matrix has no sample columns")
	}

	var errs []error
	width := 0
	seen := make(map[string]int, len(m.Keys))
	for i, key := range m.Keys {
		typ, err := mutation.Parse(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if width == 0 {
			width = typ.Width()
		} else if typ.Width() != width {
			errs = append(errs, fmt.Errorf("row %d: key %q has context width %d, want %d", i+1, key, typ.Width(), width))
		}
		if prev, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("row %d: duplicate key %q (first at row %d)", i+1, key, prev))
		} else {
			seen[key] = i + 1
		}
	}

	names := make(map[string]bool, len(m.Samples))
	for _, s := range m.Samples {
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate sample column %q", s.Name))
		}
		names[s.Name] = true
		if len(s.Values) != len(m.Keys) {
			errs = append(errs, fmt.Errorf("sample %q has %d values, want %d", s.Name, len(s.Values), len(m.Keys)))
		}
	}

	return errors.Join(errs...)
}
