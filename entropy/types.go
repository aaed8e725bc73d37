// Package entropy defines the estimation methods and weight types shared
// by every estimator in this package.
package entropy

// Method selects the bias-correction strategy applied when estimating
// entropy from frequency counts.
//
//   - Naive     — plug-in estimate from the empirical distribution counts/n.
//     Fast, consistent, biased downward on small samples.
//   - ChaoShen  — Chao–Shen coverage-adjusted estimate. Rescales the
//     empirical probabilities by the estimated sample coverage and
//     Horvitz–Thompson inclusion weights; corrects for unseen categories.
//   - Shrinkage — regularizes the empirical distribution toward the uniform
//     prior with a data-driven weight, then applies the plug-in formula.
//
// Method is a closed enumeration: every dispatch site switches exhaustively
// and returns ErrInvalidMethod from the default arm.
type Method int

const (
	// Naive selects the plug-in maximum-likelihood estimator. Default.
	Naive Method = iota

	// ChaoShen selects the coverage-adjusted Chao–Shen estimator.
	ChaoShen

	// Shrinkage selects the shrinkage-toward-uniform estimator.
	Shrinkage
)

// String renders the method name for diagnostics and test output.
func (m Method) String() string {
	switch m {
	case Naive:
		return "Naive"
	case ChaoShen:
		return "ChaoShen"
	case Shrinkage:
		return "Shrinkage"
	default:
		return "Unknown"
	}
}

// Panic messages for constructor misuse (programmer error, not user input).
const (
	panicNegativeCount       = "entropy: NewFrequencyWeights: counts must be non-negative"
	panicNegativeProbability = "entropy: NewProbabilityWeights: weights must be non-negative"
)

// FrequencyWeights is an ordered sequence of per-category observation
// counts. Order carries no meaning — every fold over it is a commutative
// sum. Zero entries are permitted (a category may be known but unobserved),
// and the total may be zero (empty sample).
type FrequencyWeights []int

// NewFrequencyWeights validates counts and wraps them as FrequencyWeights.
// Panics with panicNegativeCount on a negative entry: negative counts are a
// programmer error, never a data condition.
//
// Complexity: O(k).
func NewFrequencyWeights(counts []int) FrequencyWeights {
	for _, c := range counts {
		if c < 0 {
			panic(panicNegativeCount)
		}
	}
	return FrequencyWeights(counts)
}

// Sum returns the total number of observations behind the counts.
func (w FrequencyWeights) Sum() int {
	var total int
	for _, c := range w {
		total += c
	}
	return total
}

// ProbabilityWeights is an ordered sequence of per-category probabilities.
// Non-negativity is checked at construction; summing to 1 is the CALLER's
// responsibility and is deliberately not enforced — Entropy computes
// −Σ pᵢ·ln pᵢ over whatever weights it is handed.
type ProbabilityWeights []float64

// NewProbabilityWeights validates weights and wraps them as
// ProbabilityWeights. Panics with panicNegativeProbability on a negative
// entry. The sum is not inspected.
//
// Complexity: O(k).
func NewProbabilityWeights(weights []float64) ProbabilityWeights {
	for _, p := range weights {
		if p < 0 {
			panic(panicNegativeProbability)
		}
	}
	return ProbabilityWeights(weights)
}
