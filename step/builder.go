package step

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/internal/options"
)

// builderState tracks the Empty → Building → Finished lifecycle.
type builderState uint8

const (
	stateEmpty builderState = iota
	stateBuilding
	stateFinished
)

// Builder accumulates segments into a Piecewise.
//
// Segments must be pushed in ascending order. Each push is validated in O(1)
// against the previous segment only; no sorting is performed.
//
// Note: The Builder is NOT thread-safe.
//
// Note: The Builder is NOT reusable. After Finish, Push and Finish return
// errs.ErrBuilderFinished.
type Builder[B cmp.Ordered, V any] struct {
	segs  []Segment[B, V]
	state builderState
}

// NewBuilder creates a Builder for a heap-backed Piecewise.
//
// Returns errs.ErrInvalidOption if an option is rejected.
func NewBuilder[B cmp.Ordered, V any](opts ...BuilderOption) (*Builder[B, V], error) {
	cfg := &builderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	b := &Builder[B, V]{}
	if cfg.capacity > 0 {
		b.segs = make([]Segment[B, V], 0, cfg.capacity)
	}

	return b, nil
}

// Len returns the number of segments accumulated so far.
func (b *Builder[B, V]) Len() int {
	return len(b.segs)
}

// Push appends seg after the previously pushed segment.
//
// Returns:
//   - errs.ErrEmptyInterval if seg's domain contains no point
//   - errs.ErrOverlap if seg's domain overlaps the previous segment
//   - errs.ErrOutOfOrder if seg's domain lies before the previous segment
//   - errs.ErrBuilderFinished after Finish
//
// A failed push leaves the builder unchanged.
func (b *Builder[B, V]) Push(seg Segment[B, V]) error {
	if b.state == stateFinished {
		return errs.ErrBuilderFinished
	}
	if err := checkNext(b.last(), seg, len(b.segs)); err != nil {
		return err
	}

	b.segs = append(b.segs, seg)
	b.state = stateBuilding

	return nil
}

// PushCoalesce behaves like Push, except that when seg is adjacent to the
// previous segment and equal reports their values equal, the previous
// segment's domain is extended to cover seg instead of appending it.
func (b *Builder[B, V]) PushCoalesce(seg Segment[B, V], equal func(a, b V) bool) error {
	if b.state == stateFinished {
		return errs.ErrBuilderFinished
	}
	prev := b.last()
	if err := checkNext(prev, seg, len(b.segs)); err != nil {
		return err
	}

	if prev != nil && prev.Domain.IsAdjacent(seg.Domain) && equal(prev.Value, seg.Value) {
		prev.Domain = prev.Domain.Span(seg.Domain)
		return nil
	}

	b.segs = append(b.segs, seg)
	b.state = stateBuilding

	return nil
}

// Finish completes construction and returns the function.
//
// Finishing a builder with no pushes returns the empty function. The
// accumulated storage is handed over to the result without copying unless
// more than a quarter of it is spare capacity, in which case the segments
// are copied into storage of exactly their count.
func (b *Builder[B, V]) Finish() (Piecewise[B, V], error) {
	if b.state == stateFinished {
		return Piecewise[B, V]{}, errs.ErrBuilderFinished
	}

	b.state = stateFinished
	segs := trim(b.segs)
	b.segs = nil

	return Piecewise[B, V]{segs: segs}, nil
}

func (b *Builder[B, V]) last() *Segment[B, V] {
	if len(b.segs) == 0 {
		return nil
	}

	return &b.segs[len(b.segs)-1]
}

// SmallBuilder accumulates segments into a SmallPiecewise without heap storage.
//
// It follows the same rules as Builder and additionally fails with
// errs.ErrCapacityExceeded once its inline limit is reached.
//
// The zero SmallBuilder is ready to use with a limit of SmallCapacity.
type SmallBuilder[B cmp.Ordered, V any] struct {
	fn    SmallPiecewise[B, V]
	state builderState
}

// NewSmallBuilder creates a SmallBuilder. WithCapacity lowers the inline
// limit; values outside 1..SmallCapacity are rejected with errs.ErrInvalidOption.
func NewSmallBuilder[B cmp.Ordered, V any](opts ...BuilderOption) (SmallBuilder[B, V], error) {
	cfg := &builderConfig{capacity: SmallCapacity}
	if err := options.Apply(cfg, opts...); err != nil {
		return SmallBuilder[B, V]{}, err
	}
	if cfg.capacity < 1 || cfg.capacity > SmallCapacity {
		return SmallBuilder[B, V]{}, fmt.Errorf("%w: inline capacity %d not in 1..%d",
			errs.ErrInvalidOption, cfg.capacity, SmallCapacity)
	}

	return SmallBuilder[B, V]{fn: SmallPiecewise[B, V]{limit: cfg.capacity}}, nil
}

// Len returns the number of segments accumulated so far.
func (b *SmallBuilder[B, V]) Len() int {
	return b.fn.n
}

// Push appends seg after the previously pushed segment.
//
// Returns the same errors as Builder.Push, plus errs.ErrCapacityExceeded when
// the inline limit is already reached. A failed push leaves the builder unchanged.
func (b *SmallBuilder[B, V]) Push(seg Segment[B, V]) error {
	if b.state == stateFinished {
		return errs.ErrBuilderFinished
	}

	var prev *Segment[B, V]
	if b.fn.n > 0 {
		prev = &b.fn.segs[b.fn.n-1]
	}
	if err := checkNext(prev, seg, b.fn.n); err != nil {
		return err
	}
	if b.fn.n >= b.fn.Cap() {
		return fmt.Errorf("%w: limit %d reached", errs.ErrCapacityExceeded, b.fn.Cap())
	}

	b.fn.segs[b.fn.n] = seg
	b.fn.n++
	b.state = stateBuilding

	return nil
}

// Finish completes construction and returns the function by value.
func (b *SmallBuilder[B, V]) Finish() (SmallPiecewise[B, V], error) {
	if b.state == stateFinished {
		return SmallPiecewise[B, V]{}, errs.ErrBuilderFinished
	}

	b.state = stateFinished

	return b.fn, nil
}

// trim releases spare capacity from segs. Slack of up to a quarter of the
// length is kept in place; anything larger is copied out.
func trim[B cmp.Ordered, V any](segs []Segment[B, V]) []Segment[B, V] {
	if len(segs) == 0 {
		return nil
	}
	if cap(segs)-len(segs) <= len(segs)/4 {
		return slices.Clip(segs)
	}

	out := make([]Segment[B, V], len(segs))
	copy(out, segs)

	return out
}

// checkNext validates that seg may follow prev; prev is nil for the first push.
func checkNext[B cmp.Ordered, V any](prev *Segment[B, V], seg Segment[B, V], index int) error {
	if seg.Domain.IsEmpty() {
		return fmt.Errorf("%w: segment %d %s", errs.ErrEmptyInterval, index, seg.Domain)
	}
	if prev == nil {
		return nil
	}
	if prev.Domain.Overlaps(seg.Domain) {
		return fmt.Errorf("%w: segment %d %s overlaps %s", errs.ErrOverlap, index, seg.Domain, prev.Domain)
	}
	if !prev.Domain.Precedes(seg.Domain) {
		return fmt.Errorf("%w: segment %d %s precedes %s", errs.ErrOutOfOrder, index, seg.Domain, prev.Domain)
	}

	return nil
}
