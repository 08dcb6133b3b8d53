// Package endian provides byte order utilities for fixed-width binary fields.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into
// one EndianEngine interface so writers can both patch bytes in place and
// append without an intermediate scratch slice. The spool file and frame
// headers are written through this engine.
//
// The returned engines are the standard library's immutable byte orders and
// are safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. Spool headers and
// frame fields are always little-endian.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
