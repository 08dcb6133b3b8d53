package compress

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
)

// Compressor compresses byte payloads. Implementations are used on spool
// frame payloads: batches of COPY text rows, typically a few hundred KiB of
// highly repetitive text.
type Compressor interface {
	// Compress compresses data and returns the result. The returned slice
	// is owned by the caller; the input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compress. Separate from Compressor because readers
// and writers usually need only one direction.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor. The returned slice is owned by the caller; the input is
	// not modified. Corrupted or mismatched input returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state
// between them.
type Codec interface {
	Compressor
	Decompressor
}

// Stats accumulates byte counts across compression operations, reported by
// the spool writer.
type Stats struct {
	// Algorithm identifies the codec that produced these numbers.
	Algorithm Type

	// OriginalSize is the total payload size before compression.
	OriginalSize int64

	// CompressedSize is the total payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size over original size. Values below
// 1.0 indicate the codec is earning its keep; zero original size reports 0.
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the savings as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a fresh Codec for the given type. target names the
// consumer in error messages.
func CreateCodec(t Type, target string) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression 0x%02x", errs.ErrUnknownCompression, target, uint8(t))
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the given type. The
// built-ins are stateless and safe to share.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownCompression, uint8(t))
}
