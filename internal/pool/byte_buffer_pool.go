package pool

import (
	"io"
	"sync"
)

// Pool sizing for the two buffer populations: per-call encode staging
// (array/identifier/copy-row assembly) and spool frame staging.
const (
	EncodeBufferDefaultSize  = 1024 * 4          // 4KiB
	EncodeBufferMaxThreshold = 1024 * 64         // 64KiB
	SpoolBufferDefaultSize   = 1024 * 256        // 256KiB
	SpoolBufferMaxThreshold  = 1024 * 1024 * 4   // 4MiB
)

// ByteBuffer is the growable output sink encoders write into. Its length is
// the write cursor; capacity beyond the length is writable headroom.
//
// Any call that can grow the buffer (Grow, ExtendOrGrow, MustWrite, Write)
// may relocate the backing array. Writers holding a sub-slice must re-derive
// it from Bytes or Slice afterwards; the in-place quoting paths depend on
// this discipline.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the written portion of the buffer.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, retaining its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the write cursor position.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns the buffer region [start, end). The region may extend past
// the cursor into reserved capacity. Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength moves the write cursor to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend advances the cursor by n bytes if capacity allows, exposing an
// uninitialized writable region. Returns false without growing otherwise.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow advances the cursor by n bytes, growing first if needed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures at least requiredBytes of writable headroom past the cursor.
// If the buffer already has sufficient spare capacity, Grow does nothing.
//
// Growth strategy:
//   - Small buffers grow by EncodeBufferDefaultSize to keep reallocation off
//     the per-element path.
//   - Buffers past 4x that size grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := EncodeBufferDefaultSize
	if cap(bb.B) > 4*EncodeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers that grew past maxThreshold are dropped on Put instead of being
// retained, so one oversized value cannot pin memory for the whole pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity, discarding returned buffers larger than maxThreshold.
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

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
//
// The buffer must not be handed out through a Scratch or any other caller
// visible path; pooled buffers are for staging whose ownership stays inside
// a single call.
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

var (
	encodeDefaultPool = NewByteBufferPool(EncodeBufferDefaultSize, EncodeBufferMaxThreshold)
	spoolDefaultPool  = NewByteBufferPool(SpoolBufferDefaultSize, SpoolBufferMaxThreshold)
)

// GetEncodeBuffer retrieves a ByteBuffer from the encode staging pool.
func GetEncodeBuffer() *ByteBuffer {
	return encodeDefaultPool.Get()
}

// PutEncodeBuffer returns a ByteBuffer to the encode staging pool.
func PutEncodeBuffer(bb *ByteBuffer) {
	encodeDefaultPool.Put(bb)
}

// GetSpoolBuffer retrieves a ByteBuffer from the spool frame pool.
func GetSpoolBuffer() *ByteBuffer {
	return spoolDefaultPool.Get()
}

// PutSpoolBuffer returns a ByteBuffer to the spool frame pool.
func PutSpoolBuffer(bb *ByteBuffer) {
	spoolDefaultPool.Put(bb)
}
