// Package piecewise models piecewise-constant functions over an ordered
// domain and composes them algebraically.
//
// A function is a sorted sequence of non-overlapping segments, each pairing
// a domain interval with a value. Gaps between segments are allowed; a point
// in a gap has no value. Instances are immutable and can only be built through
// a validating builder, so every function a caller holds is well formed.
//
// # Core Features
//
//   - Open, closed and unbounded boundaries on either side of every segment
//   - Two storage variants: heap-backed Piecewise and inline SmallPiecewise
//   - O(1) validation per pushed segment, no sorting
//   - Joint refinement of two functions under any binary operator
//   - Convolution of finite-support functions with explicit resampling
//
// # Basic Usage
//
//	a, _ := piecewise.New(
//	    piecewise.NewSegment(interval.ClosedOpen(0.0, 10.0), 1.0),
//	    piecewise.NewSegment(interval.Closed(10.0, 20.0), 2.0),
//	)
//	b, _ := piecewise.New(
//	    piecewise.NewSegment(interval.ClosedOpen(5.0, 15.0), 10.0),
//	)
//
//	prod, _ := piecewise.Product(a, b) // {[5, 10):10, [10, 15):20}
//	v, ok := prod.ValueAt(12)          // 20, true
//	_, ok = prod.ValueAt(2)            // ok == false: a gap in b
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the common cases:
//
//   - interval: the boundary-aware interval primitive
//   - step: segments, both storage variants and their builders
//   - combine: binary pointwise operations over two functions
//   - convolve: convolution and resampling
//   - errs: error values shared by all packages
//
// For builder options, custom operators or resampling control, use those
// packages directly.
package piecewise

import (
	"cmp"

	"github.com/arloliu/piecewise/combine"
	"github.com/arloliu/piecewise/interval"
	"github.com/arloliu/piecewise/step"
)

type (
	// Segment pairs a domain interval with a value.
	Segment[B cmp.Ordered, V any] = step.Segment[B, V]
	// Piecewise is the heap-backed storage variant.
	Piecewise[B cmp.Ordered, V any] = step.Piecewise[B, V]
	// SmallPiecewise is the inline storage variant.
	SmallPiecewise[B cmp.Ordered, V any] = step.SmallPiecewise[B, V]
	// Reader is the read contract satisfied by both storage variants.
	Reader[B cmp.Ordered, V any] = step.Reader[B, V]
)

// NewSegment creates a segment with the given domain and value.
func NewSegment[B cmp.Ordered, V any](domain interval.Interval[B], value V) Segment[B, V] {
	return step.NewSegment(domain, value)
}

// New builds a heap-backed function from segments given in ascending order.
//
// The segments are pushed through a step.Builder sized to len(segs), so the
// result is allocated once.
//
// Returns the first construction error (errs.ErrOverlap, errs.ErrOutOfOrder
// or errs.ErrEmptyInterval) and no function.
//
// Example:
//
//	fn, err := piecewise.New(
//	    piecewise.NewSegment(interval.LessThan(0), "negative"),
//	    piecewise.NewSegment(interval.AtLeast(0), "non-negative"),
//	)
func New[B cmp.Ordered, V any](segs ...Segment[B, V]) (Piecewise[B, V], error) {
	b, err := step.NewBuilder[B, V](step.WithCapacity(len(segs)))
	if err != nil {
		return Piecewise[B, V]{}, err
	}

	for _, s := range segs {
		if err := b.Push(s); err != nil {
			return Piecewise[B, V]{}, err
		}
	}

	return b.Finish()
}

// NewSmall builds an inline function from at most step.SmallCapacity
// segments given in ascending order.
//
// Returns errs.ErrCapacityExceeded when more segments are given, in addition
// to the construction errors of New.
func NewSmall[B cmp.Ordered, V any](segs ...Segment[B, V]) (SmallPiecewise[B, V], error) {
	var b step.SmallBuilder[B, V]
	for _, s := range segs {
		if err := b.Push(s); err != nil {
			return SmallPiecewise[B, V]{}, err
		}
	}

	return b.Finish()
}

// Sum returns a + b where both are defined.
func Sum[B cmp.Ordered, N step.Number, RA Reader[B, N], RB Reader[B, N]](a RA, b RB) (Piecewise[B, N], error) {
	return combine.Combine(a, b, combine.Add[N])
}

// Product returns a * b where both are defined.
func Product[B cmp.Ordered, N step.Number, RA Reader[B, N], RB Reader[B, N]](a RA, b RB) (Piecewise[B, N], error) {
	return combine.Combine(a, b, combine.Mul[N])
}
