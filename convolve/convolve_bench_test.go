package convolve

import (
	"fmt"
	"testing"

	"github.com/arloliu/piecewise/interval"
	"github.com/arloliu/piecewise/step"
)

func benchmarkFunction(b *testing.B, n int) step.Piecewise[float64, float64] {
	b.Helper()

	bld, err := step.NewBuilder[float64, float64](step.WithCapacity(n))
	if err != nil {
		b.Fatal(err)
	}
	for i := range n {
		lo := float64(i)
		if err := bld.Push(step.NewSegment(interval.ClosedOpen(lo, lo+1), float64(i%5))); err != nil {
			b.Fatal(err)
		}
	}
	fn, err := bld.Finish()
	if err != nil {
		b.Fatal(err)
	}

	return fn
}

// BenchmarkConvolve benchmarks convolution with midpoint resampling
func BenchmarkConvolve(b *testing.B) {
	sizes := []int{4, 16, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Segments_%d", size), func(b *testing.B) {
			fn := benchmarkFunction(b, size)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Convolve(fn, fn, ResampleMidpoint); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkResample benchmarks resampling of a precomputed polyline
func BenchmarkResample(b *testing.B) {
	fn := benchmarkFunction(b, 64)
	line, err := Linear(fn, fn)
	if err != nil {
		b.Fatal(err)
	}

	for _, n := range []int{1, 8} {
		b.Run(fmt.Sprintf("Subdivisions_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := line.Resample(ResampleMidpoint, WithSubdivisions(n)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
