package entropy

import "math"

// Entropy — Shannon entropy of a probability distribution.
//
// Description:
//
//	H = −Σ pᵢ·ln(pᵢ) over all pᵢ > 0, in natural units (nats).
//	The 0·ln 0 terms are treated as 0 by the standard convention, so zero
//	weights contribute nothing. An empty distribution has entropy 0.
//
// The weights are consumed as-is: normalization to Σp = 1 is the caller's
// responsibility (see ProbabilityWeights).
//
// Complexity: O(k) time, O(1) extra space.
func Entropy(probs ProbabilityWeights) float64 {
	var h float64
	for _, p := range probs {
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}

// shrinkDenomEps guards the shrinkage estimator's denominator. Below this
// threshold the empirical distribution is (near-)uniform or n == 1, and no
// safe shrinkage target exists; the estimator falls back to the plug-in
// formula instead of dividing by (almost) zero.
const shrinkDenomEps = 1e-12

// FromCounts estimates entropy from per-category observation counts under
// the selected Method.
//
// All three estimators return 0 for counts summing to zero (empty sample),
// without dividing.
//
// Errors:
//   - ErrInvalidMethod — m is not one of Naive, ChaoShen, Shrinkage.
//
// Complexity: O(k) time, O(k) extra space (Shrinkage), O(1) otherwise.
func FromCounts(counts FrequencyWeights, m Method) (float64, error) {
	switch m {
	case Naive:
		return naiveEntropy(counts), nil
	case ChaoShen:
		return chaoShenEntropy(counts), nil
	case Shrinkage:
		return shrinkageEntropy(counts), nil
	default:
		return 0, ErrInvalidMethod
	}
}

// Estimate counts the frequencies of sample and estimates its entropy
// under the selected Method. Empty and single-element samples yield 0.
//
// Errors:
//   - ErrInvalidMethod — m is not one of Naive, ChaoShen, Shrinkage.
//
// Complexity: O(n + k) time, O(k) space.
func Estimate[T comparable](sample []T, m Method) (float64, error) {
	return FromCounts(countWeights(Frequencies(sample)), m)
}

// naiveEntropy is the plug-in maximum-likelihood estimate: θᵢ = countᵢ/n,
// then H(θ). Biased downward for small n; exact in the large-sample limit.
func naiveEntropy(counts FrequencyWeights) float64 {
	n := counts.Sum()
	if n == 0 {
		return 0
	}

	probs := make(ProbabilityWeights, len(counts))
	for i, c := range counts {
		probs[i] = float64(c) / float64(n)
	}

	return Entropy(probs)
}

// chaoShenEntropy is the Chao–Shen coverage-adjusted estimate.
//
// Algorithm Outline:
//  1. n = Σcounts, f1 = number of singleton categories (count == 1).
//  2. If f1 == n (every observation is a singleton), set f1 = n−1 so the
//     coverage stays strictly positive. Replicated as-is from the original
//     formulation; it is a guard, not a derived correction.
//  3. Coverage C = 1 − f1/n; adjusted probabilities p_a = C·countᵢ/n.
//  4. Horvitz–Thompson inclusion weight l_a = 1 − (1 − p_a)ⁿ.
//  5. H = −Σ p_a·ln(p_a)/l_a over counts > 0.
//
// For small, highly unique samples the result is always ≥ the plug-in
// estimate — it is exactly the downward bias from unseen categories that
// the coverage term compensates.
func chaoShenEntropy(counts FrequencyWeights) float64 {
	n := counts.Sum()
	if n == 0 {
		return 0
	}

	var f1 int
	for _, c := range counts {
		if c == 1 {
			f1++
		}
	}
	if f1 == n {
		f1 = n - 1
	}
	coverage := 1 - float64(f1)/float64(n)

	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		pa := coverage * float64(c) / float64(n)
		la := 1 - math.Pow(1-pa, float64(n))
		h -= pa * math.Log(pa) / la
	}

	return h
}

// shrinkageEntropy regularizes the empirical distribution toward the
// uniform prior t_k = 1/K with a data-driven weight λ, then applies the
// plug-in formula to the shrunk distribution.
//
// Algorithm Outline:
//  1. θ_ML = counts/n; t_k = 1/K (K = number of categories, zeros included).
//  2. den = (n−1)·Σ(θ_ML − t_k)². If den < shrinkDenomEps, the empirical
//     distribution is already (near-)uniform or n == 1: return H(θ_ML).
//  3. λ = (1 − Σθ_ML²)/den; θ_shrink = λ·t_k + (1−λ)·θ_ML.
//  4. H = Entropy(θ_shrink).
//
// λ is intentionally NOT clamped into [0,1]: over-shrinkage (λ > 1) is part
// of the original formulation and is preserved verbatim.
func shrinkageEntropy(counts FrequencyWeights) float64 {
	n := counts.Sum()
	if n == 0 {
		return 0
	}

	k := len(counts)
	target := 1 / float64(k)

	theta := make(ProbabilityWeights, k)
	var varSum, sqSum float64
	for i, c := range counts {
		theta[i] = float64(c) / float64(n)
		d := theta[i] - target
		varSum += d * d
		sqSum += theta[i] * theta[i]
	}

	den := float64(n-1) * varSum
	if den < shrinkDenomEps {
		return Entropy(theta)
	}

	lambda := (1 - sqSum) / den
	shrunk := make(ProbabilityWeights, k)
	for i, t := range theta {
		shrunk[i] = lambda*target + (1-lambda)*t
	}

	return Entropy(shrunk)
}
