// SPDX-License-Identifier: MIT

package mi

import "github.com/montanaflynn/stats"

// MatrixSummary aggregates the off-diagonal cells of an MIMatrix: the
// distribution of pairwise dependence strengths across a dataset.
type MatrixSummary struct {
	// Pairs is the number of unordered variable pairs summarized.
	Pairs int

	// Mean, Median, Min, Max and StdDev describe the MI values of those
	// pairs. StdDev is the population standard deviation.
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summary computes descriptive statistics over the upper triangle of m.
// Matrices of order < 2 have no pairs and yield a zero MatrixSummary.
//
// Complexity: O(M²) time plus the sort behind the median.
func Summary(m MIMatrix) (MatrixSummary, error) {
	var vals []float64
	for i := 0; i < m.Dim(); i++ {
		for j := i + 1; j < m.Dim(); j++ {
			vals = append(vals, m[i][j])
		}
	}
	if len(vals) == 0 {
		return MatrixSummary{}, nil
	}

	mean, err := stats.Mean(vals)
	if err != nil {
		return MatrixSummary{}, err
	}
	median, err := stats.Median(vals)
	if err != nil {
		return MatrixSummary{}, err
	}
	minV, err := stats.Min(vals)
	if err != nil {
		return MatrixSummary{}, err
	}
	maxV, err := stats.Max(vals)
	if err != nil {
		return MatrixSummary{}, err
	}
	stdDev, err := stats.StandardDeviationPopulation(vals)
	if err != nil {
		return MatrixSummary{}, err
	}

	return MatrixSummary{
		Pairs:  len(vals),
		Mean:   mean,
		Median: median,
		Min:    minV,
		Max:    maxV,
		StdDev: stdDev,
	}, nil
}
