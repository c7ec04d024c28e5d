package pool

import "sync"

const (
	// TextBufferDefaultSize is the initial capacity of pooled text buffers.
	TextBufferDefaultSize = 1024
	// TextBufferMaxThreshold is the largest capacity returned to the pool.
	TextBufferMaxThreshold = 1024 * 64
)

// ByteBuffer is a reusable append-only byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffered bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool hands out ByteBuffers and drops oversized ones on Put.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial size.
// Buffers that grew beyond maxThreshold are discarded instead of pooled;
// a non-positive maxThreshold keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var textDefaultPool = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)

// GetTextBuffer retrieves a buffer from the default text pool.
func GetTextBuffer() *ByteBuffer {
	return textDefaultPool.Get()
}

// PutTextBuffer returns a buffer to the default text pool.
func PutTextBuffer(bb *ByteBuffer) {
	textDefaultPool.Put(bb)
}
