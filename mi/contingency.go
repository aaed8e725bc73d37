// SPDX-License-Identifier: MIT

package mi

import (
	"math"

	"github.com/katalvlaran/infotheo/entropy"
)

// panicRaggedTable reports a non-rectangular joint table (programmer error).
const panicRaggedTable = "mi: Contingency: all rows must have the same length"

// Contingency — mutual information from a precomputed joint distribution.
//
// Description:
//
//	joint is a rectangular table of non-negative probabilities summing to 1
//	(rows = X outcomes, columns = Y outcomes); the sum contract is the
//	caller's responsibility, as with ProbabilityWeights. Sampling is
//	bypassed entirely:
//	  ee = H(flattened table), hx = H(row sums), hy = H(column sums),
//	  mi = hx + hy − ee; with normalize, min(mi/min(hx,hy), 1).
//
// An empty table yields 0. Ragged tables and negative entries are
// programmer errors and panic (the latter via the ProbabilityWeights
// constructor). Division by zero under normalize (a degenerate marginal)
// propagates as NaN or ±Inf.
//
// Complexity: O(r·c) time, O(r·c) space.
func Contingency(joint [][]float64, normalize bool) float64 {
	rows := len(joint)
	if rows == 0 {
		return 0
	}
	cols := len(joint[0])
	for _, row := range joint {
		if len(row) != cols {
			panic(panicRaggedTable)
		}
	}

	flat := make([]float64, 0, rows*cols)
	rowSum := make([]float64, rows)
	colSum := make([]float64, cols)
	for i, row := range joint {
		for j, p := range row {
			flat = append(flat, p)
			rowSum[i] += p
			colSum[j] += p
		}
	}

	ee := entropy.Entropy(entropy.NewProbabilityWeights(flat))
	hx := entropy.Entropy(entropy.NewProbabilityWeights(rowSum))
	hy := entropy.Entropy(entropy.NewProbabilityWeights(colSum))

	v := hx + hy - ee
	if normalize {
		return math.Min(v/math.Min(hx, hy), 1)
	}
	return v
}
