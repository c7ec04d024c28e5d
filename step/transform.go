package step

import (
	"cmp"
	"fmt"

	"github.com/arloliu/piecewise/internal/hash"
	"github.com/arloliu/piecewise/internal/pool"
)

// Map applies fn to every segment value, keeping the partition.
//
// Neighbouring segments that are adjacent and map to equal values are
// merged, so the result may have fewer segments than r.
func Map[B cmp.Ordered, V any, W comparable, R Reader[B, V]](r R, fn func(V) W) Piecewise[B, W] {
	n := r.Len()
	if n == 0 {
		return Piecewise[B, W]{}
	}

	segs := make([]Segment[B, W], 0, n)
	for i := range n {
		s, _ := r.At(i)
		segs = appendCoalesced(segs, NewSegment(s.Domain, fn(s.Value)), equalValues[W])
	}

	return Piecewise[B, W]{segs: trim(segs)}
}

// Coalesce merges adjacent segments whose values are equal according to equal.
// The covered region and every point value are unchanged.
func Coalesce[B cmp.Ordered, V any, R Reader[B, V]](r R, equal func(a, b V) bool) Piecewise[B, V] {
	n := r.Len()
	if n == 0 {
		return Piecewise[B, V]{}
	}

	segs := make([]Segment[B, V], 0, n)
	for i := range n {
		s, _ := r.At(i)
		segs = appendCoalesced(segs, s, equal)
	}

	return Piecewise[B, V]{segs: trim(segs)}
}

// ToPiecewise copies r into heap storage, e.g. to move a SmallPiecewise past
// its inline capacity. The result never shares storage with r.
func ToPiecewise[B cmp.Ordered, V any, R Reader[B, V]](r R) Piecewise[B, V] {
	n := r.Len()
	if n == 0 {
		return Piecewise[B, V]{}
	}

	segs := make([]Segment[B, V], n)
	for i := range segs {
		segs[i], _ = r.At(i)
	}

	return Piecewise[B, V]{segs: segs}
}

// Equal reports whether a and b have identical partitions and values.
// A Piecewise and a SmallPiecewise holding the same segments are equal.
func Equal[B cmp.Ordered, V comparable, RA Reader[B, V], RB Reader[B, V]](a RA, b RB) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		sa, _ := a.At(i)
		sb, _ := b.At(i)
		if sa.Domain != sb.Domain || sa.Value != sb.Value {
			return false
		}
	}

	return true
}

// Fingerprint returns a 64-bit xxHash digest of the function's segments,
// computed over their textual form.
//
// Equal functions have equal fingerprints regardless of storage variant.
// It is meant for cache keys and fast inequality checks; values whose %v
// formatting is not deterministic produce unstable fingerprints.
func Fingerprint[B cmp.Ordered, V any, R Reader[B, V]](r R) uint64 {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	for i := range r.Len() {
		s, _ := r.At(i)
		_, _ = fmt.Fprintf(buf, "%s=%v;", s.Domain, s.Value)
	}

	return hash.Sum64(buf.Bytes())
}

func appendCoalesced[B cmp.Ordered, V any](segs []Segment[B, V], seg Segment[B, V], equal func(a, b V) bool) []Segment[B, V] {
	if n := len(segs); n > 0 {
		prev := &segs[n-1]
		if prev.Domain.IsAdjacent(seg.Domain) && equal(prev.Value, seg.Value) {
			prev.Domain = prev.Domain.Span(seg.Domain)
			return segs
		}
	}

	return append(segs, seg)
}

func equalValues[V comparable](a, b V) bool {
	return a == b
}
