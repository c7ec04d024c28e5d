package convolve_test

import (
	"fmt"
	"log"

	"github.com/arloliu/piecewise/convolve"
	"github.com/arloliu/piecewise/interval"
	"github.com/arloliu/piecewise/step"
)

// ExampleConvolve convolves two unit boxes into a resampled tent.
func ExampleConvolve() {
	b, _ := step.NewBuilder[float64, float64]()
	_ = b.Push(step.NewSegment(interval.Closed(0.0, 1.0), 1.0))
	box, _ := b.Finish()

	fn, err := convolve.Convolve(box, box, convolve.ResampleMidpoint, convolve.WithSubdivisions(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(fn)

	// Output:
	// {[0, 0.5):0.25, [0.5, 1.5):0.75, [1.5, 2]:0.25}
}

// ExampleLinear inspects the exact piecewise-linear result before resampling.
func ExampleLinear() {
	a, _ := step.NewBuilder[int, int]()
	_ = a.Push(step.NewSegment(interval.ClosedOpen(0, 2), 1))
	left, _ := a.Finish()

	b, _ := step.NewBuilder[int, int]()
	_ = b.Push(step.NewSegment(interval.ClosedOpen(0, 3), 2))
	right, _ := b.Finish()

	line, err := convolve.Linear(left, right)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(line)
	fmt.Println(line.Integral())

	v, _ := line.ValueAt(4.5)
	fmt.Println(v)

	// Output:
	// {0:0, 2:4, 3:4, 5:0}
	// 12
	// 1
}
