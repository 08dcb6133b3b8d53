// Package errs defines the sentinel errors shared across the pgtext module.
//
// Callers match them with errors.Is; call sites add context by wrapping,
// e.g. fmt.Errorf("%w: part %d is not text", errs.ErrTypeMismatch, i).
package errs

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrTypeMismatch is returned when a value kind is not supported by the
	// encoder it was given to, e.g. a sequence passed to the integer encoder
	// or a non-text identifier part.
	ErrTypeMismatch = errors.New("value kind does not match encoder")

	// ErrCapacityExceeded is returned when the write phase needs more bytes
	// than the size phase declared. It indicates a broken encoder contract,
	// not a recoverable input condition.
	ErrCapacityExceeded = errors.New("write phase exceeded sized capacity")

	// ErrEncodingOverflow is returned when a worst-case size computation
	// (quoted expansion, base64 expansion) would overflow the addressable
	// buffer range.
	ErrEncodingOverflow = errors.New("encoded size overflows buffer limits")

	// ErrInvalidOption is returned by constructors when a functional option
	// carries an unusable setting, e.g. an array delimiter that collides
	// with the quoting characters.
	ErrInvalidOption = errors.New("invalid encoder option")

	// ErrInvalidSpoolHeader is returned when a spool stream does not start
	// with a valid magic/version header, or when a frame header is
	// truncated or implausible.
	ErrInvalidSpoolHeader = errors.New("invalid spool header")

	// ErrUnknownCompression is returned when a spool header names a
	// compression type this build cannot create a codec for.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrChecksumMismatch is returned when a spool frame's payload does not
	// hash to the checksum recorded in its frame header.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")

	// ErrSpoolClosed is returned when writing to or flushing a spool writer
	// after Close.
	ErrSpoolClosed = errors.New("spool writer is closed")
)
