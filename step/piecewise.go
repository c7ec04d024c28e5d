package step

import (
	"cmp"
	"iter"
	"sort"
	"strings"

	"github.com/arloliu/piecewise/interval"
)

// Piecewise is a heap-backed piecewise-constant function.
//
// The zero Piecewise is the valid everywhere-undefined function. A non-zero
// Piecewise is obtained from Builder.Finish or from the combine and convolve
// engines, and is immutable.
type Piecewise[B cmp.Ordered, V any] struct {
	segs []Segment[B, V]
}

var _ Reader[float64, int] = Piecewise[float64, int]{}

func (Piecewise[B, V]) sealed() {}

// Len returns the number of segments.
func (p Piecewise[B, V]) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether the function is undefined everywhere.
func (p Piecewise[B, V]) IsEmpty() bool {
	return len(p.segs) == 0
}

// At returns the i-th segment in ascending domain order.
func (p Piecewise[B, V]) At(i int) (Segment[B, V], bool) {
	if i < 0 || i >= len(p.segs) {
		return Segment[B, V]{}, false
	}

	return p.segs[i], true
}

// ValueAt returns the value of the segment containing pt.
//
// Lookup is a binary search over the sorted lower bounds, O(log n).
// The boolean is false when pt falls in a gap or outside every segment.
func (p Piecewise[B, V]) ValueAt(pt B) (V, bool) {
	// index of the first segment starting strictly after pt
	i := sort.Search(len(p.segs), func(i int) bool {
		return p.segs[i].Domain.StartsAfter(pt)
	})
	if i > 0 && p.segs[i-1].Domain.Contains(pt) {
		return p.segs[i-1].Value, true
	}

	var zero V

	return zero, false
}

// Covers reports whether pt lies in the covered region.
func (p Piecewise[B, V]) Covers(pt B) bool {
	_, ok := p.ValueAt(pt)
	return ok
}

// All iterates over (domain, value) pairs in ascending domain order.
// The sequence can be ranged over any number of times.
func (p Piecewise[B, V]) All() iter.Seq2[interval.Interval[B], V] {
	return func(yield func(interval.Interval[B], V) bool) {
		for _, s := range p.segs {
			if !yield(s.Domain, s.Value) {
				return
			}
		}
	}
}

// Segments iterates over copies of the segments in ascending domain order.
func (p Piecewise[B, V]) Segments() iter.Seq[Segment[B, V]] {
	return func(yield func(Segment[B, V]) bool) {
		for _, s := range p.segs {
			if !yield(s) {
				return
			}
		}
	}
}

// Extent returns the bounding interval of the function.
// Gaps may exist inside it.
func (p Piecewise[B, V]) Extent() (interval.Interval[B], bool) {
	if len(p.segs) == 0 {
		return interval.Interval[B]{}, false
	}

	return p.segs[0].Domain.Span(p.segs[len(p.segs)-1].Domain), true
}

// String formats the function as "{[0, 10):1, [10, 20]:2}".
func (p Piecewise[B, V]) String() string {
	return formatSegments(p.segs)
}

func formatSegments[B cmp.Ordered, V any](segs []Segment[B, V]) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range segs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteByte('}')

	return b.String()
}
