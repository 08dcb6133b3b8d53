// Package spool stages encoded COPY text rows into a framed, compressed,
// checksummed stream suitable for files or pipes.
//
// A spool stream starts with an 8-byte file header (magic "PGSP", format
// version, compression type, two reserved bytes) followed by zero or more
// frames. Each frame carries a 16-byte header (raw payload length, stored
// payload length, xxhash64 checksum of the raw payload, all little-endian)
// and the compressed payload. Frames end at row boundaries, so a frame's
// decompressed payload is always a whole number of COPY rows.
//
// Writer encodes values row by row (or accepts pre-encoded bytes via
// WriteRaw), buffers them up to the configured frame size, and emits one
// frame per flush. Reader validates the file header and returns one
// verified raw payload per Next call, ending with io.EOF.
//
// Neither Writer nor Reader is safe for concurrent use.
package spool
