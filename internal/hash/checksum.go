package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload. Spool frames record
// this over the uncompressed bytes so corruption is caught after decompress.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
