package plot

import "fmt"

// ClusterWidth is the total x-axis width allotted to the bar cluster
// at each tick, in axis units. With two groups per tick this yields
// bar width 0.45 and offsets of ±0.225 around the tick.
const ClusterWidth = 0.9

// ClusterOffsets spreads k groups evenly inside the cluster width:
// group i is centered at (i - (k-1)/2) * (ClusterWidth / k) relative
// to the tick. It returns the per-group center offsets and the bar
// width ClusterWidth / k. Any k >= 1 is defined.
func ClusterOffsets(k int) ([]float64, float64, error) {
	if k < 1 {
		return nil, 0, fmt.Errorf("bar cluster needs at least one group, got %d", k)
	}
	w := ClusterWidth / float64(k)
	offsets := make([]float64, k)
	for i := range offsets {
		offsets[i] = (float64(i) - float64(k-1)/2) * w
	}
	return offsets, w, nil
}
