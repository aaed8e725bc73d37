// Package entropy - frequency counting primitives.
//
// Frequencies is the single collaborator every estimator builds on: one pass
// over a sample, one map from distinct value to occurrence count. Iteration
// order over the resulting map never influences a numeric result, because
// every downstream computation folds the counts with commutative sums.
package entropy

import "slices"

// Frequencies groups a sample into occurrence counts per distinct value.
//
// Contract: order-insensitive — permuting the sample yields the same map.
//
// Complexity: O(n) time, O(k) space (k distinct values).
func Frequencies[T comparable](sample []T) map[T]int {
	counts := make(map[T]int, len(sample))
	for _, v := range sample {
		counts[v]++
	}
	return counts
}

// countWeights flattens a frequency map into FrequencyWeights. The weights
// are sorted so that Go's randomized map iteration order can never reorder
// a floating-point fold: the same multiset of counts always produces
// bit-identical estimates.
func countWeights[T comparable](counts map[T]int) FrequencyWeights {
	w := make(FrequencyWeights, 0, len(counts))
	for _, c := range counts {
		w = append(w, c)
	}
	slices.Sort(w)
	return w
}
