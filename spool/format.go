package spool

// On-disk layout constants. The file header is 8 bytes: 4 magic bytes, one
// version byte, one compression byte, two reserved bytes (written zero,
// ignored on read). Each frame header is 16 bytes: raw length and stored
// length as uint32 plus the xxhash64 checksum of the raw payload, all
// little-endian.
const (
	fileHeaderSize  = 8
	frameHeaderSize = 16

	formatVersion = 1

	// maxFramePayload bounds both sides: writers refuse to emit larger
	// frames, readers refuse to allocate for implausible headers.
	maxFramePayload = 1 << 30
)

var spoolMagic = [4]byte{'P', 'G', 'S', 'P'}
