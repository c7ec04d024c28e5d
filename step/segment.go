package step

import (
	"cmp"
	"fmt"

	"github.com/arloliu/piecewise/interval"
)

// Segment pairs a domain interval with the constant value taken over it.
type Segment[B cmp.Ordered, V any] struct {
	// Domain is the interval over which the function equals Value.
	Domain interval.Interval[B]
	// Value is the constant value over Domain.
	Value V
}

// NewSegment creates a segment.
func NewSegment[B cmp.Ordered, V any](domain interval.Interval[B], value V) Segment[B, V] {
	return Segment[B, V]{Domain: domain, Value: value}
}

func (s Segment[B, V]) String() string {
	return fmt.Sprintf("%s:%v", s.Domain, s.Value)
}
