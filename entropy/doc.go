// Package entropy estimates Shannon entropy of discrete data, with
// bias-corrected estimators for the small-sample regime.
//
// 🚀 What is entropy?
//
//	Shannon entropy H(X) = −Σ p(x)·ln p(x) measures the uncertainty of a
//	discrete variable, in natural units (nats). Estimating it from a finite
//	sample is biased downward; this package offers three strategies:
//	  • Naive     — plug-in maximum-likelihood estimate (counts/n)
//	  • ChaoShen  — coverage-adjusted estimate accounting for unseen categories
//	  • Shrinkage — James–Stein-style regularization toward the uniform prior
//
// ✨ Key features:
//   - generic samples: any comparable Go type, no discretization step
//   - works from raw samples, frequency counts, or probability weights
//   - joint entropy over paired samples via exact composite keys
//     (never a combined hash — unrelated pairs cannot collide)
//   - degenerate inputs (empty sample, single category) yield 0, not errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/infotheo/entropy"
//
//	h, err := entropy.Estimate([]string{"a", "b", "b", "c"}, entropy.ChaoShen)
//
//	// or straight from counts
//	h2, err := entropy.FromCounts(entropy.FrequencyWeights{4, 2, 3}, entropy.Naive)
//
// Performance:
//
//   - Time:   O(n) per sample pass, O(k) per estimate (k distinct outcomes)
//   - Memory: O(k)
//
// See examples in example_test.go.
package entropy
