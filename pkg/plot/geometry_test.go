package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterOffsets(t *testing.T) {
	tests := []struct {
		name        string
		k           int
		wantOffsets []float64
		wantWidth   float64
	}{
		{
			name:        "single group fills the cluster",
			k:           1,
			wantOffsets: []float64{0},
			wantWidth:   0.9,
		},
		{
			name:        "two groups straddle the tick",
			k:           2,
			wantOffsets: []float64{-0.225, 0.225},
			wantWidth:   0.45,
		},
		{
			name:        "odd group counts center on the tick",
			k:           3,
			wantOffsets: []float64{-0.3, 0, 0.3},
			wantWidth:   0.3,
		},
		{
			name:        "four groups",
			k:           4,
			wantOffsets: []float64{-0.3375, -0.1125, 0.1125, 0.3375},
			wantWidth:   0.225,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets, width, err := ClusterOffsets(tt.k)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantWidth, width, 1e-12)
			require.Len(t, offsets, tt.k)
			for i, want := range tt.wantOffsets {
				assert.InDelta(t, want, offsets[i], 1e-12, "offset %d", i)
			}
		})
	}
}

func TestClusterOffsetsInvariants(t *testing.T) {
	for k := 1; k <= 12; k++ {
		offsets, width, err := ClusterOffsets(k)
		require.NoError(t, err)

		// Adjacent bars touch without overlapping, the whole cluster
		// spans exactly ClusterWidth, and it is centered on the tick.
		var sum float64
		for i, off := range offsets {
			sum += off
			if i > 0 {
				assert.InDelta(t, width, off-offsets[i-1], 1e-12, "k=%d", k)
			}
		}
		assert.InDelta(t, 0, sum, 1e-9, "k=%d cluster not centered", k)
		span := offsets[k-1] - offsets[0] + width
		assert.InDelta(t, ClusterWidth, span, 1e-12, "k=%d", k)
	}
}

func TestClusterOffsetsRejectsEmpty(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, _, err := ClusterOffsets(k)
		assert.Error(t, err, "k=%d", k)
	}
}
