// Package step implements piecewise-constant (step) functions over an
// ordered domain.
//
// A function is an ordered sequence of segments, each pairing a domain
// interval with a value. Segments are sorted by lower bound, never overlap,
// and are never empty; the function may be undefined over gaps between them.
//
// # Storage Variants
//
//   - Piecewise: heap-backed slice, binary-search lookup
//   - SmallPiecewise: fixed inline array of up to SmallCapacity segments,
//     linear lookup, no heap storage
//
// Both implement Reader. The combine and convolve packages, and the
// transforms here, use Reader as a constraint on a type parameter, so calls
// dispatch statically per variant and a SmallPiecewise passed to them stays
// off the heap. Reader is sealed: only the two types in this package satisfy
// it, so every value an engine reads was validated on construction.
//
// # Construction
//
// Instances come only from Builder.Finish or SmallBuilder.Finish. Segments
// must be pushed in ascending order; a push that is empty, overlapping or
// out of order fails and leaves the builder unchanged:
//
//	b, _ := step.NewBuilder[float64, int]()
//	_ = b.Push(step.NewSegment(interval.ClosedOpen(0.0, 10.0), 1))
//	_ = b.Push(step.NewSegment(interval.Closed(10.0, 20.0), 2))
//	fn, _ := b.Finish()
//
//	v, ok := fn.ValueAt(12) // 2, true
//	_, ok = fn.ValueAt(25)  // ok == false: outside every segment
//
// Finished functions are immutable and safe for concurrent readers.
package step
