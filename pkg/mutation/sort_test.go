package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"SBS1", "SBS2", true},
		{"SBS2", "SBS10", true},
		{"SBS10", "SBS2", false},
		{"SBS3", "SBS10", true},
		{"SBS1", "SBS1", false},
		{"SBS1A", "SBS1B", true},
		{"SBS2A", "SBS10", true},
		{"SBS01", "SBS1", false},
		{"SBS1", "SBS01", false},
		{"Signature.1", "Signature.2", true},
		{"a", "ab", true},
		{"", "a", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NaturalLess(tt.a, tt.b), "NaturalLess(%q, %q)", tt.a, tt.b)
	}
}

func TestSortNatural(t *testing.T) {
	names := []string{"SBS1", "SBS2", "SBS10", "SBS3"}
	SortNatural(names)
	assert.Equal(t, []string{"SBS1", "SBS2", "SBS3", "SBS10"}, names)
}
