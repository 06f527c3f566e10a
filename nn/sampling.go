package nn

import (
	"math/rand"
	"sort"
)

// Permutation returns a uniformly shuffled permutation of [0..n-1]. Each
// index is assigned an independent uniform key and the indices are sorted by
// key; under collision-free draws this is unbiased. The caller owns rng and
// must serialize access if it is shared across goroutines.
func Permutation(rng *rand.Rand, n int) []int {
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = ToUnitFloat64(rng.Uint32())
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})
	return idx
}

// PermuteRows returns m with its rows reordered by a fresh Permutation,
// shuffling training examples between epochs.
func PermuteRows(rng *rand.Rand, m Matrix) Matrix {
	perm := Permutation(rng, m.Rows)
	out := NewMatrix(m.Rows, m.Cols)
	for i, src := range perm {
		copy(out.Data[i*m.Cols:(i+1)*m.Cols], m.Data[src*m.Cols:(src+1)*m.Cols])
	}
	return out
}

// BatchesOf partitions items into consecutive runs of size n, preserving
// order within and across runs. The final run is short when len(items) is
// not a multiple of n; empty input yields no batches.
func BatchesOf[T any](n int, items []T) [][]T {
	var batches [][]T
	for i := 0; i < len(items); i += n {
		end := i + n
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end:end])
	}
	return batches
}
