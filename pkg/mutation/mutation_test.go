package mutation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantWidth int
		wantClass Class
		wantCore  string
	}{
		{
			name:      "trinucleotide",
			key:       "A[C>A]A",
			wantWidth: 3,
			wantClass: ClassCA,
			wantCore:  "A[C>A]A",
		},
		{
			name:      "trinucleotide T class",
			key:       "G[T>G]C",
			wantWidth: 3,
			wantClass: ClassTG,
			wantCore:  "G[T>G]C",
		},
		{
			name:      "pentanucleotide",
			key:       "AT[C>T]GA",
			wantWidth: 5,
			wantClass: ClassCT,
			wantCore:  "T[C>T]G",
		},
		{
			name:      "heptanucleotide",
			key:       "ACT[T>A]GCA",
			wantWidth: 7,
			wantClass: ClassTA,
			wantCore:  "T[T>A]G",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := Parse(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.key, typ.String())
			assert.Equal(t, tt.wantWidth, typ.Width())
			assert.Equal(t, tt.wantClass, typ.Class())
			assert.Equal(t, tt.wantCore, typ.Core())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"no brackets", "ACGT"},
		{"bracket first", "[C>A]A"},
		{"asymmetric flanks", "AA[C>A]A"},
		{"missing arrow", "A[CA]A"},
		{"purine reference", "A[G>A]A"},
		{"identity substitution", "A[C>C]A"},
		{"bad alternate", "A[C>X]A"},
		{"bad flank", "N[C>A]A"},
		{"bad right flank", "A[C>A]N"},
		{"garbage in flank", "A][C>A]A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.key)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.key, perr.Key)
			assert.Contains(t, err.Error(), "malformed mutation type")
		})
	}
}

func TestTypeBaseAt(t *testing.T) {
	typ, err := Parse("AT[C>T]GA")
	require.NoError(t, err)

	assert.Equal(t, byte('A'), typ.BaseAt(0))
	assert.Equal(t, byte('T'), typ.BaseAt(1))
	assert.Equal(t, byte('G'), typ.BaseAt(-2))
	assert.Equal(t, byte('A'), typ.BaseAt(-1))
}

func TestCompactLabel(t *testing.T) {
	// The literal mappings the chart axis depends on.
	assert.Equal(t, "ACA", CompactLabel("A[C>A]A"))
	assert.Equal(t, "TGT", CompactLabel("T[G>C]T"))
	assert.Equal(t, "GCT", CompactLabel("G[C>G]T"))
}

func TestClasses(t *testing.T) {
	want := []Class{ClassCA, ClassCG, ClassCT, ClassTA, ClassTC, ClassTG}
	assert.Equal(t, want, Classes())
}
