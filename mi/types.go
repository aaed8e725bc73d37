// SPDX-License-Identifier: MIT

// Package mi - options and result types for mutual-information estimation.
package mi

import "github.com/katalvlaran/infotheo/entropy"

// epsClamp is the non-negative tolerance below which an off-diagonal matrix
// cell is snapped to 0, suppressing negative noise from floating-point
// cancellation in H(X)+H(Y)−H(X,Y).
const epsClamp = 1e-12

// Options configures mutual-information estimation.
//
// Fields:
//   - Method    — entropy estimator used for marginal and joint entropies
//     (entropy.Naive by default).
//   - Adjusted  — subtract a single-permutation chance baseline: one
//     independent shuffle of y (a copy; the caller's slice is never
//     mutated), MI = H_shuffled(X,Y) − H(X,Y). A one-draw, seed-sensitive
//     approximation of adjusted MI, kept as such on purpose.
//   - Normalize — divide by min(H(X), H(Y)) (unadjusted: capped at 1;
//     adjusted: divided by min(H(X),H(Y)) − MI_shuffle). Division by zero
//     is not special-cased and propagates as ±Inf or NaN.
//   - Seed      — seed for the adjusted-MI permutation. Seed 0 selects a
//     fixed default stream, so results are reproducible out of the box.
//   - Workers   — upper bound on concurrent cell tasks in Matrix.
//     Values ≤ 0 select runtime.NumCPU().
//
// Example:
//
//	opts := mi.DefaultOptions()
//	opts.Method = entropy.ChaoShen
//	opts.Adjusted = true
//	opts.Seed = 42
//
//	v, err := mi.MutualInformation(x, y, opts)
type Options struct {
	Method    entropy.Method
	Adjusted  bool
	Normalize bool
	Seed      int64
	Workers   int
}

// DefaultOptions returns the canonical defaults: Naive estimation, no
// adjustment, no normalization, the fixed default seed, Workers = NumCPU.
func DefaultOptions() Options {
	return Options{Method: entropy.Naive}
}

// MIMatrix is a symmetric matrix of pairwise mutual information.
//
// Invariants (established by Matrix):
//   - square and symmetric;
//   - cell [i][i] holds the marginal entropy of variable i;
//   - cell [i][j], i≠j, holds MI(i, j) clamped to ≥ 0.
type MIMatrix [][]float64

// Dim returns the number of variables (matrix order).
func (m MIMatrix) Dim() int { return len(m) }

// At returns the cell at row i, column j. Panics on out-of-range indices,
// exactly like the underlying slice access.
func (m MIMatrix) At(i, j int) float64 { return m[i][j] }
