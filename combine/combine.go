// Package combine computes the joint refinement of two piecewise-constant
// functions under a binary value operator.
//
// The result is defined exactly where both inputs are defined. A point
// covered by only one input, or by neither, is absent from the result; the
// operator is never called with a placeholder for a missing value.
//
//	a: [0, 10):1  [10, 20]:2
//	b:      [5,   15):10
//	Combine(a, b, Mul[int]) = [5, 10):10  [10, 15):20
package combine

import (
	"cmp"
	"fmt"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/step"
)

// Op is a binary value operator. A non-nil error aborts the combination.
type Op[VA, VB, C any] func(a VA, b VB) (C, error)

// Combine merges the partitions of a and b and applies op to the values of
// every non-empty pairwise intersection.
//
// The algorithm is a single two-cursor pass, O(|a| + |b|). Each input may be
// either storage variant; the reader types are type parameters, so a
// SmallPiecewise is read in place without being converted to an interface.
// Adjacent output segments with equal values are merged, so the output has
// at most |a| + |b| - 1 segments. Storage is reserved with that bound and
// trimmed by the builder when the result is much smaller.
//
// Returns a *errs.ValueOpError (matching errs.ErrValueOpFailed and the
// operator's own error) as soon as op fails.
func Combine[B cmp.Ordered, VA, VB any, C comparable, RA step.Reader[B, VA], RB step.Reader[B, VB]](a RA, b RB, op Op[VA, VB, C]) (step.Piecewise[B, C], error) {
	return CombineFunc(a, b, op, func(x, y C) bool { return x == y })
}

// CombineFunc is Combine for result types that are not comparable with ==.
// equal decides whether adjacent output segments may be merged.
func CombineFunc[B cmp.Ordered, VA, VB, C any, RA step.Reader[B, VA], RB step.Reader[B, VB]](a RA, b RB, op Op[VA, VB, C], equal func(x, y C) bool) (step.Piecewise[B, C], error) {
	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return step.Piecewise[B, C]{}, nil
	}

	out, err := step.NewBuilder[B, C](step.WithCapacity(na + nb - 1))
	if err != nil {
		return step.Piecewise[B, C]{}, err
	}

	i, j := 0, 0
	sa, _ := a.At(i)
	sb, _ := b.At(j)
	for {
		if common, ok := sa.Domain.Intersection(sb.Domain); ok {
			v, err := op(sa.Value, sb.Value)
			if err != nil {
				return step.Piecewise[B, C]{}, fmt.Errorf("combine %s with %s: %w",
					sa.Domain, sb.Domain, errs.NewValueOpError(out.Len(), err))
			}
			if err := out.PushCoalesce(step.NewSegment(common, v), equal); err != nil {
				return step.Piecewise[B, C]{}, err
			}
		}

		// advance whichever segment ends first; both on a tie
		c := sa.Domain.CompareUpper(sb.Domain)
		if c <= 0 {
			i++
			if i == na {
				break
			}
			sa, _ = a.At(i)
		}
		if c >= 0 {
			j++
			if j == nb {
				break
			}
			sb, _ = b.At(j)
		}
	}

	return out.Finish()
}
