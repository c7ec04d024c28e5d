// Package pool provides sync.Pool backed scratch storage for the engines.
//
// Scratch slices never end up inside a returned partition; they only hold
// intermediate data such as convolution breakpoint events.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements.
//
// The contents are unspecified. If the pooled slice has insufficient capacity,
// a new one is allocated. The caller must call the returned cleanup function,
// typically with defer, once the slice is no longer referenced.
//
// Example:
//
//	positions, cleanup := pool.GetFloat64Slice(4 * pairs)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
