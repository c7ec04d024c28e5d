package interval

import "cmp"

// Position of a cut relative to its value.
const (
	below int8 = -1
	at    int8 = 0
	above int8 = 1
)

// cut is a position between points of the domain: just below v, just above
// v, exactly at v (for points), or at one of the infinities.
//
// A closed lower bound at v is the cut below v, an open one the cut above v;
// an interval contains p iff lowerCut < p < upperCut.
type cut[B cmp.Ordered] struct {
	v    B
	inf  int8 // -1 for -inf, +1 for +inf, 0 when v is meaningful
	side int8
}

func pointCut[B cmp.Ordered](p B) cut[B] {
	return cut[B]{v: p, side: at}
}

// isNaN reports whether v is a floating-point NaN; it is false for every
// other ordered type.
func isNaN[B cmp.Ordered](v B) bool {
	return v != v
}

func compareCuts[B cmp.Ordered](a, b cut[B]) int {
	if a.inf != 0 || b.inf != 0 {
		return cmp.Compare(a.inf, b.inf)
	}
	if c := cmp.Compare(a.v, b.v); c != 0 {
		return c
	}

	return cmp.Compare(a.side, b.side)
}

func minCut[B cmp.Ordered](a, b cut[B]) cut[B] {
	if compareCuts(a, b) <= 0 {
		return a
	}

	return b
}

func maxCut[B cmp.Ordered](a, b cut[B]) cut[B] {
	if compareCuts(a, b) >= 0 {
		return a
	}

	return b
}
