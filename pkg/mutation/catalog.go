package mutation

import (
	"fmt"
	"strconv"
)

// bases is the nucleotide alphabet in the order used to enumerate
// flanking combinations in the canonical catalog.
var bases = []byte{'A', 'C', 'G', 'T'}

// Bases returns the nucleotide alphabet A, C, G, T.
func Bases() []byte {
	out := make([]byte, len(bases))
	copy(out, bases)
	return out
}

// Catalog96 returns the 96 canonical trinucleotide mutation keys in
// COSMIC order: substitution classes in canonical order, then the 5'
// flanking base, then the 3' flanking base, both alphabetical. The
// first 16 entries are therefore the C>A block, and so on.
func Catalog96() []string {
	keys := make([]string, 0, 96)
	for _, cl := range Classes() {
		for _, five := range bases {
			for _, three := range bases {
				keys = append(keys, fmt.Sprintf("%c[%s]%c", five, cl, three))
			}
		}
	}
	return keys
}

// FlankIndexes returns the string indexes of the flanking positions
// beyond the trinucleotide core in a mutation key of the given context
// width: the 5' positions as non-negative indexes from the start, then
// the 3' positions as negative indexes from the end. Width 5 yields
// [0, -1]; width 7 yields [0, 1, -2, -1]. The core's own flanking
// bases are part of the grouping key, not positions, so width 3 yields
// an empty slice. Returns nil unless width is odd and at least 3.
func FlankIndexes(width int) []int {
	if width < 3 || width%2 == 0 {
		return nil
	}
	n := (width - 3) / 2
	idx := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		idx = append(idx, i)
	}
	for i := -n; i < 0; i++ {
		idx = append(idx, i)
	}
	return idx
}

// PositionLabels returns the display labels for the flanking positions
// beyond the trinucleotide core, as signed offsets counted outward from
// the core: width 5 yields ["-1", "+1"], width 7 yields
// ["-2", "-1", "+1", "+2"]. Labels pair index-for-index with
// FlankIndexes. Returns nil unless width is odd and at least 3.
func PositionLabels(width int) []string {
	if width < 3 || width%2 == 0 {
		return nil
	}
	n := (width - 3) / 2
	labels := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		labels = append(labels, "-"+strconv.Itoa(n-i))
	}
	for i := 0; i < n; i++ {
		labels = append(labels, "+"+strconv.Itoa(i+1))
	}
	return labels
}
