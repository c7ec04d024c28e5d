package step

import (
	"cmp"
	"iter"

	"github.com/arloliu/piecewise/interval"
)

// Reader is the read-only contract shared by Piecewise and SmallPiecewise.
//
// The engines in this module take it as a type-parameter constraint rather
// than as an argument type, so each storage variant gets its own
// instantiation and is never boxed. Engines read through Len and At; All
// returns a closure and is meant for callers ranging directly over a value.
type Reader[B cmp.Ordered, V any] interface {
	// Len returns the number of segments.
	Len() int
	// At returns the i-th segment in ascending domain order.
	// The boolean is false when i is out of range.
	At(i int) (Segment[B, V], bool)
	// ValueAt returns the value at p, or false when p lies in a gap or
	// outside every segment.
	ValueAt(p B) (V, bool)
	// All iterates over (domain, value) pairs in ascending domain order.
	All() iter.Seq2[interval.Interval[B], V]
	// Extent returns the bounding interval from the first segment's lower
	// bound to the last segment's upper bound. It is false for an empty function.
	Extent() (interval.Interval[B], bool)

	sealed()
}
