package step

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/piecewise/errs"
	"github.com/arloliu/piecewise/interval"
)

func seg[V any](d interval.Interval[float64], v V) Segment[float64, V] {
	return NewSegment(d, v)
}

func TestBuilder_Push(t *testing.T) {
	t.Run("accepts abutting half open and closed segments", func(t *testing.T) {
		b, err := NewBuilder[float64, int]()
		require.NoError(t, err)

		require.NoError(t, b.Push(seg(interval.ClosedOpen(0.0, 10.0), 1)))
		require.NoError(t, b.Push(seg(interval.Closed(10.0, 20.0), 2)))
		require.Equal(t, 2, b.Len())
	})

	t.Run("accepts gaps between segments", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.NoError(t, b.Push(seg(interval.Closed(0.0, 1.0), 1)))
		require.NoError(t, b.Push(seg(interval.Closed(5.0, 6.0), 2)))
	})

	t.Run("rejects overlap and keeps prior state", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.NoError(t, b.Push(seg(interval.Closed(0.0, 10.0), 1)))

		err := b.Push(seg(interval.Closed(10.0, 20.0), 2))
		require.ErrorIs(t, err, errs.ErrOverlap)
		require.ErrorIs(t, err, errs.ErrConstruction)
		require.Equal(t, 1, b.Len())

		fn, err := b.Finish()
		require.NoError(t, err)
		require.Equal(t, "{[0, 10]:1}", fn.String())
	})

	t.Run("rejects out of order and keeps prior state", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.NoError(t, b.Push(seg(interval.Closed(10.0, 20.0), 1)))

		err := b.Push(seg(interval.ClosedOpen(0.0, 10.0), 2))
		require.ErrorIs(t, err, errs.ErrOutOfOrder)
		require.Equal(t, 1, b.Len())

		// a valid push still succeeds afterwards
		require.NoError(t, b.Push(seg(interval.OpenClosed(20.0, 30.0), 3)))
		require.Equal(t, 2, b.Len())
	})

	t.Run("overlap takes precedence over order", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.NoError(t, b.Push(seg(interval.Closed(5.0, 10.0), 1)))
		require.ErrorIs(t, b.Push(seg(interval.Closed(0.0, 7.0), 2)), errs.ErrOverlap)
	})

	t.Run("rejects empty domains", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.ErrorIs(t, b.Push(seg(interval.ClosedOpen(3.0, 3.0), 1)), errs.ErrEmptyInterval)
		require.ErrorIs(t, b.Push(seg(interval.Closed(4.0, 3.0), 1)), errs.ErrEmptyInterval)
		require.ErrorIs(t, b.Push(Segment[float64, int]{}), errs.ErrEmptyInterval)
		require.Zero(t, b.Len())
	})

	t.Run("rejects NaN bounds", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.ErrorIs(t, b.Push(seg(interval.Closed(math.NaN(), 5.0), 1)), errs.ErrEmptyInterval)
		require.ErrorIs(t, b.Push(seg(interval.ClosedOpen(0.0, math.NaN()), 1)), errs.ErrEmptyInterval)
		require.NoError(t, b.Push(seg(interval.Closed(0.0, 5.0), 1)))
		require.ErrorIs(t, b.Push(seg(interval.GreaterThan(math.NaN()), 2)), errs.ErrEmptyInterval)

		var sb SmallBuilder[float64, int]
		require.ErrorIs(t, sb.Push(seg(interval.AtMost(math.NaN()), 1)), errs.ErrEmptyInterval)
		require.Zero(t, sb.Len())
	})

	t.Run("rejects a second unbounded side", func(t *testing.T) {
		b, _ := NewBuilder[float64, int]()
		require.NoError(t, b.Push(seg(interval.LessThan(0.0), 1)))
		require.NoError(t, b.Push(seg(interval.Closed(0.0, 1.0), 2)))
		require.ErrorIs(t, b.Push(seg(interval.AtMost(5.0), 3)), errs.ErrOverlap)
		require.NoError(t, b.Push(seg(interval.GreaterThan(1.0), 4)))
		require.ErrorIs(t, b.Push(seg(interval.Closed(100.0, 200.0), 5)), errs.ErrOverlap)
	})
}

func TestBuilder_PushCoalesce(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	b, _ := NewBuilder[float64, int]()
	require.NoError(t, b.PushCoalesce(seg(interval.ClosedOpen(0.0, 1.0), 7), eq))
	require.NoError(t, b.PushCoalesce(seg(interval.ClosedOpen(1.0, 2.0), 7), eq))
	require.NoError(t, b.PushCoalesce(seg(interval.ClosedOpen(2.0, 3.0), 8), eq))
	// equal value but not adjacent: kept separate
	require.NoError(t, b.PushCoalesce(seg(interval.Closed(4.0, 5.0), 8), eq))
	require.ErrorIs(t, b.PushCoalesce(seg(interval.Closed(4.5, 6.0), 8), eq), errs.ErrOverlap)

	fn, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, "{[0, 2):7, [2, 3):8, [4, 5]:8}", fn.String())
}

func TestBuilder_Finish(t *testing.T) {
	t.Run("empty builder yields the empty function", func(t *testing.T) {
		b, _ := NewBuilder[int, string]()
		fn, err := b.Finish()
		require.NoError(t, err)
		require.True(t, fn.IsEmpty())
		require.Zero(t, fn.Len())

		_, ok := fn.ValueAt(0)
		require.False(t, ok)
	})

	t.Run("builder is not reusable", func(t *testing.T) {
		b, _ := NewBuilder[int, string]()
		require.NoError(t, b.Push(NewSegment(interval.Closed(0, 1), "a")))
		_, err := b.Finish()
		require.NoError(t, err)

		require.ErrorIs(t, b.Push(NewSegment(interval.Closed(2, 3), "b")), errs.ErrBuilderFinished)
		require.ErrorIs(t, b.PushCoalesce(NewSegment(interval.Closed(2, 3), "b"), nil), errs.ErrBuilderFinished)
		_, err = b.Finish()
		require.ErrorIs(t, err, errs.ErrBuilderFinished)
	})

	t.Run("capacity hint avoids growth", func(t *testing.T) {
		b, err := NewBuilder[int, int](WithCapacity(3))
		require.NoError(t, err)
		require.Equal(t, 3, cap(b.segs))

		for i := range 3 {
			require.NoError(t, b.Push(NewSegment(interval.ClosedOpen(i, i+1), i)))
		}
		fn, _ := b.Finish()
		require.Equal(t, 3, cap(fn.segs))
	})

	t.Run("result is clipped", func(t *testing.T) {
		b, _ := NewBuilder[int, int](WithCapacity(10))
		require.NoError(t, b.Push(NewSegment(interval.Closed(0, 1), 1)))
		fn, _ := b.Finish()
		require.Equal(t, 1, cap(fn.segs))
	})

	t.Run("small slack is handed over", func(t *testing.T) {
		b, _ := NewBuilder[int, int](WithCapacity(5))
		for i := range 4 {
			require.NoError(t, b.Push(NewSegment(interval.ClosedOpen(i, i+1), i)))
		}
		backing := &b.segs[0]
		fn, _ := b.Finish()
		require.Equal(t, 4, cap(fn.segs))
		require.Same(t, backing, &fn.segs[0])
	})

	t.Run("large reservation is copied out", func(t *testing.T) {
		b, _ := NewBuilder[int, int](WithCapacity(64))
		for i := range 3 {
			require.NoError(t, b.Push(NewSegment(interval.ClosedOpen(i, i+1), i)))
		}
		backing := &b.segs[0]
		fn, _ := b.Finish()
		require.Equal(t, 3, cap(fn.segs))
		require.NotSame(t, backing, &fn.segs[0])
		require.Equal(t, "{[0, 1):0, [1, 2):1, [2, 3):2}", fn.String())
	})

	t.Run("negative capacity is rejected", func(t *testing.T) {
		_, err := NewBuilder[int, int](WithCapacity(-1))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})
}

func TestSmallBuilder(t *testing.T) {
	t.Run("capacity overflow keeps existing segments", func(t *testing.T) {
		b, err := NewSmallBuilder[float64, int](WithCapacity(2))
		require.NoError(t, err)

		require.NoError(t, b.Push(seg(interval.ClosedOpen(0.0, 1.0), 1)))
		require.NoError(t, b.Push(seg(interval.ClosedOpen(1.0, 2.0), 2)))

		err = b.Push(seg(interval.ClosedOpen(2.0, 3.0), 3))
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, 2, b.Len())

		fn, err := b.Finish()
		require.NoError(t, err)
		require.Equal(t, 2, fn.Len())
		require.Equal(t, 2, fn.Cap())

		v, ok := fn.ValueAt(0.5)
		require.True(t, ok)
		require.Equal(t, 1, v)
		v, ok = fn.ValueAt(1.5)
		require.True(t, ok)
		require.Equal(t, 2, v)
		_, ok = fn.ValueAt(2.5)
		require.False(t, ok)
	})

	t.Run("malformed push reports its own error before capacity", func(t *testing.T) {
		b, _ := NewSmallBuilder[float64, int](WithCapacity(1))
		require.NoError(t, b.Push(seg(interval.Closed(0.0, 1.0), 1)))
		require.ErrorIs(t, b.Push(seg(interval.Closed(0.5, 3.0), 2)), errs.ErrOverlap)
		require.ErrorIs(t, b.Push(seg(interval.Closed(2.0, 3.0), 2)), errs.ErrCapacityExceeded)
	})

	t.Run("zero value uses full inline capacity", func(t *testing.T) {
		var b SmallBuilder[int, int]
		for i := range SmallCapacity {
			require.NoError(t, b.Push(NewSegment(interval.ClosedOpen(i, i+1), i)))
		}
		require.ErrorIs(t, b.Push(NewSegment(interval.ClosedOpen(100, 101), 0)), errs.ErrCapacityExceeded)

		fn, err := b.Finish()
		require.NoError(t, err)
		require.Equal(t, SmallCapacity, fn.Len())
		require.Equal(t, SmallCapacity, fn.Cap())
	})

	t.Run("rejects invalid limits", func(t *testing.T) {
		_, err := NewSmallBuilder[int, int](WithCapacity(SmallCapacity + 1))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		_, err = NewSmallBuilder[int, int](WithCapacity(0))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("shares validation with the heap builder", func(t *testing.T) {
		var b SmallBuilder[int, int]
		require.NoError(t, b.Push(NewSegment(interval.Closed(5, 6), 1)))
		require.ErrorIs(t, b.Push(NewSegment(interval.Closed(0, 1), 1)), errs.ErrOutOfOrder)
		require.ErrorIs(t, b.Push(NewSegment(interval.Open(7, 7), 1)), errs.ErrEmptyInterval)
	})

	t.Run("finish twice fails", func(t *testing.T) {
		var b SmallBuilder[int, int]
		_, err := b.Finish()
		require.NoError(t, err)
		_, err = b.Finish()
		require.ErrorIs(t, err, errs.ErrBuilderFinished)
		require.ErrorIs(t, b.Push(NewSegment(interval.Closed(0, 1), 1)), errs.ErrBuilderFinished)
	})
}
