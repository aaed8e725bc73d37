package mi_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/infotheo/mi"
)

// benchmarkMatrix runs Matrix over an n×m synthetic dataset with the given
// worker bound.
func benchmarkMatrix(b *testing.B, n, m, workers int, adjusted bool) {
	rng := rand.New(rand.NewSource(1))
	data := make([][]int, n)
	for i := range data {
		row := make([]int, m)
		for j := range row {
			row[j] = rng.Intn(8)
		}
		data[i] = row
	}

	opts := mi.DefaultOptions()
	opts.Workers = workers
	opts.Adjusted = adjusted

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mi.Matrix(data, opts); err != nil {
			b.Fatalf("Matrix failed: %v", err)
		}
	}
}

// BenchmarkMatrix_Serial measures the single-worker baseline on 1000×8.
func BenchmarkMatrix_Serial(b *testing.B) {
	benchmarkMatrix(b, 1000, 8, 1, false)
}

// BenchmarkMatrix_Parallel measures the default fan-out on 1000×8.
func BenchmarkMatrix_Parallel(b *testing.B) {
	benchmarkMatrix(b, 1000, 8, 0, false)
}

// BenchmarkMatrix_Adjusted measures the permutation-baseline overhead.
func BenchmarkMatrix_Adjusted(b *testing.B) {
	benchmarkMatrix(b, 1000, 8, 0, true)
}

// BenchmarkMutualInformation_Pair measures one pairwise call on 10k samples.
func BenchmarkMutualInformation_Pair(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	const n = 10_000
	x := make([]int, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Intn(16)
		y[i] = (x[i] + rng.Intn(4)) % 16
	}
	opts := mi.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mi.MutualInformation(x, y, opts); err != nil {
			b.Fatalf("MutualInformation failed: %v", err)
		}
	}
}
