package compress

// NoOpCompressor passes data through untouched. Useful as the TypeNone
// codec and as a baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, sharing the input's backing array. Callers
// that mutate the input afterwards see the change in the "compressed" copy.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, sharing the input's backing array.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
