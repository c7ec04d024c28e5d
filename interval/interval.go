// Package interval provides a single interval over an ordered bound type,
// with each side independently open, closed or unbounded.
//
// The order is treated as dense: (3, 4) is a non-empty interval even when
// the bound type is an integer. Intervals are small comparable values and
// never fail to construct; an inverted or degenerate pair of bounds produces
// an interval for which IsEmpty reports true.
package interval

import (
	"cmp"
	"fmt"
	"strings"
)

// Kind describes one side of an interval.
type Kind uint8

const (
	// KindOpen excludes the bound value itself.
	KindOpen Kind = iota + 1
	// KindClosed includes the bound value itself.
	KindClosed
	// KindUnbounded means the side extends to infinity; the bound value is ignored.
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "Open"
	case KindClosed:
		return "Closed"
	case KindUnbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Interval is a contiguous region of an ordered domain.
//
// The zero Interval is empty.
type Interval[B cmp.Ordered] struct {
	lo, hi         B
	loKind, hiKind Kind
}

// New creates an interval from explicit bounds and kinds.
// The bound value of an unbounded side is ignored.
func New[B cmp.Ordered](lo B, loKind Kind, hi B, hiKind Kind) Interval[B] {
	var zero B
	if loKind == KindUnbounded {
		lo = zero
	}
	if hiKind == KindUnbounded {
		hi = zero
	}

	return Interval[B]{lo: lo, hi: hi, loKind: loKind, hiKind: hiKind}
}

// Closed returns [lo, hi].
func Closed[B cmp.Ordered](lo, hi B) Interval[B] {
	return New(lo, KindClosed, hi, KindClosed)
}

// Open returns (lo, hi).
func Open[B cmp.Ordered](lo, hi B) Interval[B] {
	return New(lo, KindOpen, hi, KindOpen)
}

// ClosedOpen returns [lo, hi).
func ClosedOpen[B cmp.Ordered](lo, hi B) Interval[B] {
	return New(lo, KindClosed, hi, KindOpen)
}

// OpenClosed returns (lo, hi].
func OpenClosed[B cmp.Ordered](lo, hi B) Interval[B] {
	return New(lo, KindOpen, hi, KindClosed)
}

// Singleton returns [v, v].
func Singleton[B cmp.Ordered](v B) Interval[B] {
	return New(v, KindClosed, v, KindClosed)
}

// AtLeast returns [lo, +inf).
func AtLeast[B cmp.Ordered](lo B) Interval[B] {
	var zero B
	return New(lo, KindClosed, zero, KindUnbounded)
}

// GreaterThan returns (lo, +inf).
func GreaterThan[B cmp.Ordered](lo B) Interval[B] {
	var zero B
	return New(lo, KindOpen, zero, KindUnbounded)
}

// AtMost returns (-inf, hi].
func AtMost[B cmp.Ordered](hi B) Interval[B] {
	var zero B
	return New(zero, KindUnbounded, hi, KindClosed)
}

// LessThan returns (-inf, hi).
func LessThan[B cmp.Ordered](hi B) Interval[B] {
	var zero B
	return New(zero, KindUnbounded, hi, KindOpen)
}

// Unbounded returns (-inf, +inf).
func Unbounded[B cmp.Ordered]() Interval[B] {
	var zero B
	return New(zero, KindUnbounded, zero, KindUnbounded)
}

// Lower returns the lower bound and its kind.
func (i Interval[B]) Lower() (B, Kind) {
	return i.lo, i.loKind
}

// Upper returns the upper bound and its kind.
func (i Interval[B]) Upper() (B, Kind) {
	return i.hi, i.hiKind
}

// IsBounded reports whether both sides are finite.
func (i Interval[B]) IsBounded() bool {
	return (i.loKind == KindOpen || i.loKind == KindClosed) && (i.hiKind == KindOpen || i.hiKind == KindClosed)
}

// IsEmpty reports whether the interval contains no point. An interval with
// a NaN bound is empty, since no point compares between its bounds.
func (i Interval[B]) IsEmpty() bool {
	if !i.loKind.valid() || !i.hiKind.valid() {
		return true
	}
	if (isNaN(i.lo) && i.loKind != KindUnbounded) || (isNaN(i.hi) && i.hiKind != KindUnbounded) {
		return true
	}

	return compareCuts(i.lowerCut(), i.upperCut()) >= 0
}

// Contains reports whether p lies inside the interval.
func (i Interval[B]) Contains(p B) bool {
	if i.IsEmpty() {
		return false
	}
	c := pointCut(p)

	return compareCuts(i.lowerCut(), c) < 0 && compareCuts(c, i.upperCut()) < 0
}

// StartsAfter reports whether every point of the interval is greater than p.
func (i Interval[B]) StartsAfter(p B) bool {
	return compareCuts(pointCut(p), i.lowerCut()) < 0
}

// EndsBefore reports whether every point of the interval is less than p.
func (i Interval[B]) EndsBefore(p B) bool {
	return compareCuts(i.upperCut(), pointCut(p)) < 0
}

// Overlaps reports whether the two intervals share at least one point.
func (i Interval[B]) Overlaps(o Interval[B]) bool {
	_, ok := i.Intersection(o)
	return ok
}

// Intersection returns the common part of two intervals.
// The boolean is false when the intervals do not overlap.
func (i Interval[B]) Intersection(o Interval[B]) (Interval[B], bool) {
	if i.IsEmpty() || o.IsEmpty() {
		return Interval[B]{}, false
	}

	lo := maxCut(i.lowerCut(), o.lowerCut())
	hi := minCut(i.upperCut(), o.upperCut())
	if compareCuts(lo, hi) >= 0 {
		return Interval[B]{}, false
	}

	return fromCuts(lo, hi), true
}

// IsAdjacent reports whether the two intervals touch without overlapping
// and without leaving a gap, such as [0, 10) and [10, 20].
func (i Interval[B]) IsAdjacent(o Interval[B]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}

	return compareCuts(i.upperCut(), o.lowerCut()) == 0 || compareCuts(o.upperCut(), i.lowerCut()) == 0
}

// Precedes reports whether every point of i is less than every point of o.
// Adjacent intervals precede one another.
func (i Interval[B]) Precedes(o Interval[B]) bool {
	return compareCuts(i.upperCut(), o.lowerCut()) <= 0
}

// Span returns the smallest interval covering both intervals.
// An empty operand is ignored.
func (i Interval[B]) Span(o Interval[B]) Interval[B] {
	switch {
	case i.IsEmpty():
		return o
	case o.IsEmpty():
		return i
	}

	return fromCuts(minCut(i.lowerCut(), o.lowerCut()), maxCut(i.upperCut(), o.upperCut()))
}

// CompareLower orders two intervals by their lower bounds.
// An unbounded lower side sorts first; at equal values a closed side sorts
// before an open one.
func (i Interval[B]) CompareLower(o Interval[B]) int {
	return compareCuts(i.lowerCut(), o.lowerCut())
}

// CompareUpper orders two intervals by their upper bounds.
// An unbounded upper side sorts last; at equal values an open side sorts
// before a closed one.
func (i Interval[B]) CompareUpper(o Interval[B]) int {
	return compareCuts(i.upperCut(), o.upperCut())
}

// Compare is the total order by lower bound, then by upper bound.
func (i Interval[B]) Compare(o Interval[B]) int {
	if c := i.CompareLower(o); c != 0 {
		return c
	}

	return i.CompareUpper(o)
}

// String formats the interval in mathematical notation, e.g. "[0, 10)".
func (i Interval[B]) String() string {
	if i.IsEmpty() {
		return "∅"
	}

	var b strings.Builder
	switch i.loKind {
	case KindUnbounded:
		b.WriteString("(-∞")
	case KindClosed:
		fmt.Fprintf(&b, "[%v", i.lo)
	default:
		fmt.Fprintf(&b, "(%v", i.lo)
	}
	b.WriteString(", ")
	switch i.hiKind {
	case KindUnbounded:
		b.WriteString("+∞)")
	case KindClosed:
		fmt.Fprintf(&b, "%v]", i.hi)
	default:
		fmt.Fprintf(&b, "%v)", i.hi)
	}

	return b.String()
}

func (k Kind) valid() bool {
	return k == KindOpen || k == KindClosed || k == KindUnbounded
}

func (i Interval[B]) lowerCut() cut[B] {
	switch i.loKind {
	case KindUnbounded:
		return cut[B]{inf: -1}
	case KindClosed:
		return cut[B]{v: i.lo, side: below}
	default:
		return cut[B]{v: i.lo, side: above}
	}
}

func (i Interval[B]) upperCut() cut[B] {
	switch i.hiKind {
	case KindUnbounded:
		return cut[B]{inf: 1}
	case KindClosed:
		return cut[B]{v: i.hi, side: above}
	default:
		return cut[B]{v: i.hi, side: below}
	}
}

func fromCuts[B cmp.Ordered](lo, hi cut[B]) Interval[B] {
	var i Interval[B]
	switch {
	case lo.inf != 0:
		i.loKind = KindUnbounded
	case lo.side == below:
		i.lo, i.loKind = lo.v, KindClosed
	default:
		i.lo, i.loKind = lo.v, KindOpen
	}
	switch {
	case hi.inf != 0:
		i.hiKind = KindUnbounded
	case hi.side == above:
		i.hi, i.hiKind = hi.v, KindClosed
	default:
		i.hi, i.hiKind = hi.v, KindOpen
	}

	return i
}
