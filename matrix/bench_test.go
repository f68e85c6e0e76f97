package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tpsolve/matrix"
)

// benchmarkFromRows measures ingestion of an n×n grid.
func benchmarkFromRows(b *testing.B, n int) {
	src := make([][]float64, n)
	for i := range src {
		src[i] = make([]float64, n)
		for j := range src[i] {
			src[i][j] = float64(i*n + j) // predictable values
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.NewDenseFromRows(src); err != nil {
			b.Fatalf("NewDenseFromRows failed: %v", err)
		}
	}
}

// BenchmarkNewDenseFromRows_Small benchmarks a 10×10 grid.
func BenchmarkNewDenseFromRows_Small(b *testing.B) { benchmarkFromRows(b, 10) }

// BenchmarkNewDenseFromRows_Large benchmarks a 500×500 grid.
func BenchmarkNewDenseFromRows_Large(b *testing.B) { benchmarkFromRows(b, 500) }
