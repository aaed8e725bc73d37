// SPDX-License-Identifier: MIT

package mi

import (
	"math"

	"github.com/katalvlaran/infotheo/entropy"
)

// MutualInformation — mutual information between two aligned samples.
//
// Description:
//
//	Estimates I(X;Y) = H(X) + H(Y) − H(X,Y) under opts.Method, with the
//	optional chance adjustment and normalization described in Options.
//	Identical samples give I(X;X) = H(X); independent samples give values
//	near 0 (exactly 0 only in the infinite-sample limit).
//
// The marginal entropies are computed here; when they are already known
// (e.g., across repeated pairings of the same columns), use
// MutualInformationWithMarginals to avoid recomputing them.
//
// Errors:
//   - entropy.ErrLengthMismatch — len(x) != len(y); checked first.
//   - entropy.ErrInvalidMethod  — unknown opts.Method.
//
// Complexity: O(n + k) time, O(k) space.
func MutualInformation[X, Y comparable](x []X, y []Y, opts Options) (float64, error) {
	if len(x) != len(y) {
		return 0, entropy.ErrLengthMismatch
	}

	hx, err := entropy.Estimate(x, opts.Method)
	if err != nil {
		return 0, err
	}
	hy, err := entropy.Estimate(y, opts.Method)
	if err != nil {
		return 0, err
	}

	return MutualInformationWithMarginals(x, y, hx, hy, opts)
}

// MutualInformationWithMarginals is MutualInformation with caller-supplied
// marginal entropies hx = H(X) and hy = H(Y). The matrix builder uses it to
// reuse each column's marginal across all of its pairings.
//
// Unadjusted: mi = hx + hy − H(X,Y); with Normalize, min(mi/min(hx,hy), 1)
// — the cap absorbs floating-point overshoot past the theoretical bound.
//
// Adjusted: one permutation of a copy of y is drawn from opts.Seed;
// miShuffle = hx + hy − H(X,shuffled Y) is the single-draw chance baseline;
// mi = H(X,shuffled Y) − H(X,Y); with Normalize, mi/(min(hx,hy) − miShuffle).
// Degenerate denominators (0) are not special-cased: the platform's ±Inf or
// NaN propagates to the caller.
//
// Errors:
//   - entropy.ErrLengthMismatch — len(x) != len(y); checked first.
//   - entropy.ErrInvalidMethod  — unknown opts.Method.
//
// Complexity: O(n + k) time, O(n + k) space when Adjusted (the copy).
func MutualInformationWithMarginals[X, Y comparable](x []X, y []Y, hx, hy float64, opts Options) (float64, error) {
	if len(x) != len(y) {
		return 0, entropy.ErrLengthMismatch
	}

	ee, err := entropy.EstimateJoint(x, y, opts.Method)
	if err != nil {
		return 0, err
	}

	if !opts.Adjusted {
		v := hx + hy - ee
		if opts.Normalize {
			return math.Min(v/math.Min(hx, hy), 1), nil
		}
		return v, nil
	}

	shuffled := shuffledCopy(y, rngFromSeed(opts.Seed))
	eeShuffle, err := entropy.EstimateJoint(x, shuffled, opts.Method)
	if err != nil {
		return 0, err
	}

	miShuffle := hx + hy - eeShuffle
	v := eeShuffle - ee
	if opts.Normalize {
		return v / (math.Min(hx, hy) - miShuffle), nil
	}
	return v, nil
}
