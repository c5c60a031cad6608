package scatter

import (
	"fmt"
	"testing"
)

func benchmarkSimplify(b *testing.B, n int, radius float64, opts ...Option) {
	pts := randomPoints(n)
	grid := Grid{NX: 800, NY: 600}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Simplify(pts, unitAxis, grid, radius, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimplify(b *testing.B) {
	for _, n := range []int{10_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSimplify(b, n, 2)
		})
	}
}

func BenchmarkSimplifyRadius(b *testing.B) {
	for _, r := range []float64{0, 1, 3, 6} {
		b.Run(fmt.Sprintf("r=%v", r), func(b *testing.B) {
			benchmarkSimplify(b, 100_000, r)
		})
	}
}

func BenchmarkSimplifyParallel(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			benchmarkSimplify(b, 1_000_000, 2, WithWorkers(workers))
		})
	}
}

func BenchmarkDiskMask(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		diskMask(6)
	}
}
