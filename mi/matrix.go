// SPDX-License-Identifier: MIT

package mi

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/infotheo/entropy"
)

// panicRaggedData reports a non-rectangular data matrix (programmer error).
const panicRaggedData = "mi: Matrix: all rows must have the same length"

// Matrix — full pairwise mutual-information matrix over a dataset.
//
// Description:
//
//	data holds one row per observation and one column per variable; the
//	result is an M×M MIMatrix over the M columns. Two phases, both fanned
//	out on a bounded errgroup with one task per cell and a single writer
//	per cell (no cell ever depends on another cell's result):
//	  1. diagonal[i] = marginal entropy of column i            — O(M·N)
//	  2. for each unordered pair i<j: MI via the precomputed marginals,
//	     snapped to 0 below epsClamp, mirrored into [i][j] and [j][i]
//	                                                           — O(M²·N)
//
// Adjusted runs derive an independent permutation stream per pair from
// opts.Seed, so the result is identical for every Workers value and every
// goroutine schedule.
//
// An empty dataset yields an empty matrix. Rows of differing lengths are a
// programmer error and panic with panicRaggedData.
//
// Errors:
//   - entropy.ErrInvalidMethod — unknown opts.Method.
//
// Complexity: O(M²·N) time across min(Workers, cells) goroutines, O(M·N)
// extra space for the column views.
func Matrix[T comparable](data [][]T, opts Options) (MIMatrix, error) {
	if len(data) == 0 {
		return MIMatrix{}, nil
	}

	m := len(data[0])
	for _, row := range data {
		if len(row) != m {
			panic(panicRaggedData)
		}
	}

	// Column views: cols[j][i] = data[i][j].
	cols := make([][]T, m)
	for j := 0; j < m; j++ {
		col := make([]T, len(data))
		for i, row := range data {
			col[i] = row[j]
		}
		cols[j] = col
	}

	result := make(MIMatrix, m)
	for i := range result {
		result[i] = make([]float64, m)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Phase 1: one task per diagonal cell.
	var diag errgroup.Group
	diag.SetLimit(workers)
	for i := 0; i < m; i++ {
		i := i
		diag.Go(func() error {
			h, err := entropy.Estimate(cols[i], opts.Method)
			if err != nil {
				return err
			}
			result[i][i] = h
			return nil
		})
	}
	if err := diag.Wait(); err != nil {
		return nil, err
	}

	// Phase 2: one task per unordered pair; marginals reused from phase 1.
	baseSeed := opts.Seed
	if baseSeed == 0 {
		baseSeed = defaultRNGSeed
	}

	var pairs errgroup.Group
	pairs.SetLimit(workers)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			i, j := i, j
			pairs.Go(func() error {
				cellOpts := opts
				cellOpts.Seed = deriveSeed(baseSeed, uint64(i)*uint64(m)+uint64(j))

				v, err := MutualInformationWithMarginals(cols[i], cols[j], result[i][i], result[j][j], cellOpts)
				if err != nil {
					return err
				}
				if v < epsClamp {
					v = 0
				}
				result[i][j] = v
				result[j][i] = v
				return nil
			})
		}
	}
	if err := pairs.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
