package step

import (
	"cmp"
	"iter"

	"github.com/arloliu/piecewise/interval"
)

// SmallCapacity is the inline storage size of a SmallPiecewise.
const SmallCapacity = 8

// SmallPiecewise is a piecewise-constant function stored in a fixed inline
// array of SmallCapacity segments.
//
// It offers the same contract as Piecewise with linear-time lookup, and
// needs no heap storage of its own. A SmallBuilder may lower the usable
// capacity below SmallCapacity; pushing past it fails with
// errs.ErrCapacityExceeded instead of spilling to the heap.
//
// The zero SmallPiecewise is the valid everywhere-undefined function.
type SmallPiecewise[B cmp.Ordered, V any] struct {
	segs  [SmallCapacity]Segment[B, V]
	n     int
	limit int
}

var _ Reader[float64, int] = SmallPiecewise[float64, int]{}

func (SmallPiecewise[B, V]) sealed() {}

// Len returns the number of segments.
func (s SmallPiecewise[B, V]) Len() int {
	return s.n
}

// Cap returns the number of segments the function was allowed to hold.
func (s SmallPiecewise[B, V]) Cap() int {
	if s.limit == 0 {
		return SmallCapacity
	}

	return s.limit
}

// IsEmpty reports whether the function is undefined everywhere.
func (s SmallPiecewise[B, V]) IsEmpty() bool {
	return s.n == 0
}

// At returns the i-th segment in ascending domain order.
func (s SmallPiecewise[B, V]) At(i int) (Segment[B, V], bool) {
	if i < 0 || i >= s.n {
		return Segment[B, V]{}, false
	}

	return s.segs[i], true
}

// ValueAt returns the value of the segment containing pt by linear scan.
func (s SmallPiecewise[B, V]) ValueAt(pt B) (V, bool) {
	for i := 0; i < s.n; i++ {
		d := s.segs[i].Domain
		if d.StartsAfter(pt) {
			break
		}
		if d.Contains(pt) {
			return s.segs[i].Value, true
		}
	}

	var zero V

	return zero, false
}

// Covers reports whether pt lies in the covered region.
func (s SmallPiecewise[B, V]) Covers(pt B) bool {
	_, ok := s.ValueAt(pt)
	return ok
}

// All iterates over (domain, value) pairs in ascending domain order.
func (s SmallPiecewise[B, V]) All() iter.Seq2[interval.Interval[B], V] {
	return func(yield func(interval.Interval[B], V) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.segs[i].Domain, s.segs[i].Value) {
				return
			}
		}
	}
}

// Segments iterates over copies of the segments in ascending domain order.
func (s SmallPiecewise[B, V]) Segments() iter.Seq[Segment[B, V]] {
	return func(yield func(Segment[B, V]) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.segs[i]) {
				return
			}
		}
	}
}

// Extent returns the bounding interval of the function.
func (s SmallPiecewise[B, V]) Extent() (interval.Interval[B], bool) {
	if s.n == 0 {
		return interval.Interval[B]{}, false
	}

	return s.segs[0].Domain.Span(s.segs[s.n-1].Domain), true
}

// String formats the function as "{[0, 10):1, [10, 20]:2}".
func (s SmallPiecewise[B, V]) String() string {
	return formatSegments(s.segs[:s.n])
}
