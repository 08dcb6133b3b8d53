package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have requested capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	got := bb.Bytes()
	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should expose the underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)

	bb.MustWrite([]byte("{1,2"))
	bb.MustWrite([]byte(",3}"))
	assert.Equal(t, []byte("{1,2,3}"), bb.B)

	bb.MustWrite(nil)
	assert.Equal(t, 7, bb.Len())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("frame payload"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
	assert.Equal(t, "frame payload", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(16)

	require.True(t, bb.Extend(10), "extend within capacity should succeed")
	assert.Equal(t, 10, bb.Len())

	require.False(t, bb.Extend(100), "extend beyond capacity should fail")
	assert.Equal(t, 10, bb.Len(), "failed extend should not change length")
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("abcdefgh"))

	bb.ExtendOrGrow(32)

	assert.Equal(t, 40, bb.Len())
	assert.Equal(t, []byte("abcdefgh"), bb.B[:8], "existing data preserved across growth")
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.ExtendOrGrow(12)

	bb.SetLength(5)
	assert.Equal(t, 5, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(bb.Cap() + 1) })
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("0123456789"))

	assert.Equal(t, []byte("345"), bb.Slice(3, 6))

	// Slicing into reserved capacity past the cursor is allowed.
	region := bb.Slice(10, 16)
	assert.Len(t, region, 6)

	assert.Panics(t, func() { bb.Slice(-1, 4) })
	assert.Panics(t, func() { bb.Slice(4, 2) })
	assert.Panics(t, func() { bb.Slice(0, bb.Cap()+1) })
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	originalCap := bb.Cap()

	bb.Grow(100)

	assert.Equal(t, originalCap, bb.Cap(), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite(make([]byte, EncodeBufferDefaultSize))

	bb.Grow(1)

	assert.GreaterOrEqual(t, bb.Cap(), EncodeBufferDefaultSize+1, "should have grown")
	assert.Equal(t, EncodeBufferDefaultSize, bb.Len(), "length should not change")
}

func TestByteBuffer_Grow_LargeBufferQuarterGrowth(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	largeSize := 4*EncodeBufferDefaultSize + 1024
	bb.B = make([]byte, largeSize)

	bb.Grow(64)

	assert.GreaterOrEqual(t, bb.Cap(), largeSize+64)
}

func TestByteBuffer_Grow_MoreThanDefaultGrowth(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite(make([]byte, EncodeBufferDefaultSize))

	huge := EncodeBufferDefaultSize * 10
	bb.Grow(huge)

	assert.GreaterOrEqual(t, bb.Cap(), EncodeBufferDefaultSize+huge)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	payload := []byte(`{"a\"b","c\\d"}`)
	bb.MustWrite(payload)

	bb.Grow(EncodeBufferDefaultSize * 2)

	assert.Equal(t, payload, bb.B, "data should be preserved after growth")
}

func TestByteBuffer_Grow_InvalidatesOldSlices(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))
	before := bb.Bytes()

	bb.Grow(1024)
	bb.B[0] = 'X'

	// The pre-growth slice points at the old array; writers must re-derive.
	assert.Equal(t, byte('1'), before[0])
	assert.Equal(t, byte('X'), bb.Bytes()[0])
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetEncodeBuffer(t *testing.T) {
	bb := GetEncodeBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), EncodeBufferDefaultSize)

	PutEncodeBuffer(bb)
}

func TestPutEncodeBuffer_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		PutEncodeBuffer(nil)
	})
}

func TestEncodePool_ResetOnPut(t *testing.T) {
	bb := GetEncodeBuffer()
	bb.MustWrite([]byte("row data"))

	PutEncodeBuffer(bb)

	assert.Equal(t, 0, bb.Len(), "PutEncodeBuffer should reset the buffer")

	bb2 := GetEncodeBuffer()
	assert.Equal(t, 0, bb2.Len(), "buffer from pool should be empty")
	PutEncodeBuffer(bb2)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	assert.Greater(t, bb.Cap(), 4096)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_NoThreshold(t *testing.T) {
	p := NewByteBufferPool(1024, 0)

	bb := p.Get()
	bb.Grow(1024 * 1024)
	p.Put(bb)

	require.NotNil(t, p.Get())
}

func TestSpoolPool_Defaults(t *testing.T) {
	bb := GetSpoolBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), SpoolBufferDefaultSize)

	PutSpoolBuffer(bb)
}

func TestSpoolPool_MaxThreshold(t *testing.T) {
	bb := GetSpoolBuffer()
	bb.Grow(SpoolBufferMaxThreshold + 1024*1024)
	assert.Greater(t, bb.Cap(), SpoolBufferMaxThreshold)

	PutSpoolBuffer(bb)

	bb2 := GetSpoolBuffer()
	assert.LessOrEqual(t, bb2.Cap(), SpoolBufferMaxThreshold*2, "should not retain overly large buffer")
	PutSpoolBuffer(bb2)
}

func TestPools_Independence(t *testing.T) {
	enc := GetEncodeBuffer()
	spool := GetSpoolBuffer()

	assert.NotEqual(t, enc.Cap(), spool.Cap(), "encode and spool pools size buffers differently")

	PutEncodeBuffer(enc)
	PutSpoolBuffer(spool)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const goroutines = 32
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				bb := GetEncodeBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutEncodeBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkByteBuffer_MustWrite(b *testing.B) {
	bb := GetEncodeBuffer()
	defer PutEncodeBuffer(bb)
	data := []byte(`"quoted element"`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb.Reset()
		bb.MustWrite(data)
	}
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := []byte("1\t2.5\ttext\t\\N\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bb := GetEncodeBuffer()
		bb.MustWrite(data)
		PutEncodeBuffer(bb)
	}
}

func BenchmarkPool_vs_NewBuffer(b *testing.B) {
	data := make([]byte, 1024)

	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bb := GetEncodeBuffer()
			bb.MustWrite(data)
			PutEncodeBuffer(bb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bb := NewByteBuffer(EncodeBufferDefaultSize)
			bb.MustWrite(data)
		}
	})
}

// errorWriter always fails, for WriteTo error propagation.
type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	return 0, ew.err
}
