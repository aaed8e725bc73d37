package entropy_test

import (
	"testing"

	"github.com/katalvlaran/infotheo/entropy"
)

// benchmarkEstimate runs Estimate on a synthetic sample of length n over an
// alphabet of k symbols. Setup time is excluded from the measurement.
func benchmarkEstimate(b *testing.B, n, k int, m entropy.Method) {
	sample := make([]int, n)
	for i := range sample {
		sample[i] = i % k
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.Estimate(sample, m); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Naive1e4 benchmarks the plug-in estimator on 10k samples.
func BenchmarkEstimate_Naive1e4(b *testing.B) {
	benchmarkEstimate(b, 10_000, 64, entropy.Naive)
}

// BenchmarkEstimate_ChaoShen1e4 benchmarks the Chao–Shen estimator on 10k samples.
func BenchmarkEstimate_ChaoShen1e4(b *testing.B) {
	benchmarkEstimate(b, 10_000, 64, entropy.ChaoShen)
}

// BenchmarkEstimate_Shrinkage1e4 benchmarks the shrinkage estimator on 10k samples.
func BenchmarkEstimate_Shrinkage1e4(b *testing.B) {
	benchmarkEstimate(b, 10_000, 64, entropy.Shrinkage)
}

// BenchmarkEstimateJoint_1e4 benchmarks joint entropy over two aligned 10k samples.
func BenchmarkEstimateJoint_1e4(b *testing.B) {
	x := make([]int, 10_000)
	y := make([]int, 10_000)
	for i := range x {
		x[i] = i % 16
		y[i] = (i * 7) % 16
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := entropy.EstimateJoint(x, y, entropy.Naive); err != nil {
			b.Fatalf("EstimateJoint failed: %v", err)
		}
	}
}
