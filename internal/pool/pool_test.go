package pool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with requested size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("grows when pooled capacity is insufficient", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(10)
		cleanup1()

		slice, cleanup2 := GetFloat64Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("buffers come back empty", func(t *testing.T) {
		bb := GetTextBuffer()
		_, _ = fmt.Fprintf(bb, "[%d, %d)", 0, 10)
		require.Equal(t, "[0, 10)", string(bb.Bytes()))
		require.Equal(t, 7, bb.Len())
		PutTextBuffer(bb)

		again := GetTextBuffer()
		defer PutTextBuffer(again)
		require.Zero(t, again.Len())
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(4, 8)
		bb := p.Get()
		_, _ = bb.Write(make([]byte, 64))
		p.Put(bb)

		require.Equal(t, 64, bb.Len(), "dropped buffer is not reset")
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(4, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})
}
