package compress

// ZstdCompressor wraps Zstandard compression. It trades CPU for the best
// ratio of the built-in codecs, which suits spool files bound for network
// transfer or longer retention.
//
// The implementation is chosen at build time: the cgo binding when cgo is
// available, a pure Go fallback otherwise. Compress and Decompress live in
// the build-tagged files.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
