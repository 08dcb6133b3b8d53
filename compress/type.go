package compress

// Type identifies a compression algorithm. The numeric values are stable:
// spool file headers store them on disk.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores payloads uncompressed.
	TypeZstd Type = 0x2 // TypeZstd selects Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 selects S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 selects LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a known algorithm.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}
