package combine

import (
	"cmp"
	"errors"

	"github.com/arloliu/piecewise/step"
)

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errors.New("combine: division by zero")

// Add returns a + b.
func Add[N step.Number](a, b N) (N, error) {
	return a + b, nil
}

// Sub returns a - b.
func Sub[N step.Number](a, b N) (N, error) {
	return a - b, nil
}

// Mul returns a * b.
func Mul[N step.Number](a, b N) (N, error) {
	return a * b, nil
}

// Div returns a / b, or ErrDivideByZero when b is zero.
// Floating-point division by zero is rejected too rather than yielding ±Inf.
func Div[N step.Number](a, b N) (N, error) {
	if b == 0 {
		var zero N
		return zero, ErrDivideByZero
	}

	return a / b, nil
}

// Min returns the smaller of a and b.
func Min[V cmp.Ordered](a, b V) (V, error) {
	return min(a, b), nil
}

// Max returns the larger of a and b.
func Max[V cmp.Ordered](a, b V) (V, error) {
	return max(a, b), nil
}

// Lift adapts an infallible function to an Op.
func Lift[VA, VB, C any](fn func(VA, VB) C) Op[VA, VB, C] {
	return func(a VA, b VB) (C, error) {
		return fn(a, b), nil
	}
}

// Scale multiplies every value of r by k. Segments whose scaled values
// become equal and adjacent are merged; scaling by zero over a gap-free
// function yields a single segment.
func Scale[B cmp.Ordered, N step.Number, R step.Reader[B, N]](r R, k N) step.Piecewise[B, N] {
	return step.Map(r, func(v N) N { return v * k })
}
