// SPDX-License-Identifier: MIT

// Package mi computes mutual information between discrete variables —
// pairwise, over whole datasets, or from precomputed contingency tables.
//
// 🚀 What is mutual information?
//
//	I(X;Y) = H(X) + H(Y) − H(X,Y): the information shared by two discrete
//	variables, in nats. Unlike correlation it captures arbitrary (including
//	non-linear, non-monotonic) dependence.
//
// ✨ Key features:
//   - three entropy estimators (Naive / ChaoShen / Shrinkage) via
//     infotheo/entropy
//   - optional chance adjustment: subtracts a single-permutation baseline
//     (a deliberate one-draw approximation of adjusted MI, reproducible
//     under an explicit seed)
//   - optional [0,1] normalization by min(H(X), H(Y)), capped at 1
//   - full pairwise matrices with marginal-entropy reuse and bounded
//     parallel fan-out (one task per cell, single writer per cell)
//   - contingency-table MI when the joint distribution is already known
//   - descriptive summaries of a matrix's off-diagonal cells
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/infotheo/mi"
//
//	opts := mi.DefaultOptions()
//	opts.Normalize = true
//
//	v, err := mi.MutualInformation(x, y, opts)      // one pair
//	mat, err := mi.Matrix(data, opts)               // all pairs
//	c := mi.Contingency(jointTable, true)           // known joint table
//
// Determinism:
//
//	All randomness (the adjusted-MI permutation) flows from Options.Seed.
//	The matrix builder derives an independent stream per cell, so results
//	are identical for any Workers setting and any goroutine schedule.
//
// Performance:
//
//   - Pair:   O(n) time, O(k) space
//   - Matrix: O(M²·N) time over M variables × N observations,
//     parallelized across min(Workers, cells) goroutines
//
// See examples in example_test.go.
package mi
