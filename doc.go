// Package infotheo is your toolbox for measuring information in discrete
// data — Shannon entropy, bias-corrected estimators, and mutual information,
// from single variables to full pairwise matrices.
//
// 🚀 What is infotheo?
//
//	A small, deterministic library that brings together:
//		• Entropy estimation: plug-in (Naive), Chao–Shen and Shrinkage estimators
//		• Joint entropy over paired samples with exact composite keys
//		• Mutual information: raw, chance-adjusted and [0,1]-normalized
//		• Pairwise MI matrices with parallel fan-out and marginal reuse
//		• Contingency-table MI when the joint distribution is already known
//
// ✨ Why choose infotheo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random draw flows from an explicit seed
//   - Generic – samples of any comparable Go type, no binning required
//   - Extensible – entropy and MI layers compose through plain functions
//
// Under the hood, everything is organized under two subpackages:
//
//	entropy/ — frequency counting, weight types, the three entropy
//	          estimators, and joint entropy over paired samples
//	mi/      — the mutual-information engine, the pairwise matrix builder,
//	          contingency-table estimation and matrix summaries
//
// Quick sketch:
//
//	samples ──▶ entropy.Frequencies ──▶ entropy.FromCounts ─┐
//	                                                        ├──▶ mi.MutualInformation ──▶ mi.Matrix
//	paired samples ──▶ entropy.EstimateJoint ───────────────┘
//
// All estimates are reported in natural units (nats).
//
//	go get github.com/katalvlaran/infotheo
package infotheo
