package spool

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/pgtext/compress"
	"github.com/arloliu/pgtext/endian"
	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/hash"
	"github.com/arloliu/pgtext/internal/pool"
)

// Reader consumes a spool stream frame by frame, verifying each payload
// against its recorded length and checksum before handing it out.
type Reader struct {
	r           io.Reader
	codec       compress.Decompressor
	engine      endian.EndianEngine
	compression compress.Type

	hdr [frameHeaderSize]byte
}

// NewReader validates the file header of r and prepares the matching codec.
// Reserved header bytes are ignored for forward compatibility.
func NewReader(r io.Reader) (*Reader, error) {
	var hdr [fileHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: file header: %v", errs.ErrInvalidSpoolHeader, err)
	}

	if !bytes.Equal(hdr[0:4], spoolMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSpoolHeader, hdr[0:4])
	}
	if hdr[4] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSpoolHeader, hdr[4])
	}

	compression := compress.Type(hdr[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:           r,
		codec:       codec,
		engine:      endian.GetLittleEndianEngine(),
		compression: compression,
	}, nil
}

// Compression returns the codec type recorded in the file header.
func (r *Reader) Compression() compress.Type {
	return r.compression
}

// Next reads, decompresses, and verifies the next frame, returning its raw
// payload. The returned slice is owned by the caller. A stream ending
// cleanly at a frame boundary returns io.EOF; ending inside a frame returns
// errs.ErrInvalidSpoolHeader.
func (r *Reader) Next() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		// ReadFull reports a bare io.EOF only when zero header bytes were
		// read, which is the clean end of the stream.
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: truncated frame header: %v", errs.ErrInvalidSpoolHeader, err)
	}

	rawLen := r.engine.Uint32(r.hdr[0:4])
	encLen := r.engine.Uint32(r.hdr[4:8])
	sum := r.engine.Uint64(r.hdr[8:16])

	if rawLen > maxFramePayload || encLen > maxFramePayload {
		return nil, fmt.Errorf("%w: implausible frame of %d/%d bytes", errs.ErrInvalidSpoolHeader, rawLen, encLen)
	}

	// Every codec but the pass-through allocates its decompressed output,
	// so the compressed bytes can stage in a pooled buffer. The pass-through
	// codec returns its input unchanged and needs a fresh allocation the
	// caller can keep.
	var payload []byte
	if r.compression == compress.TypeNone {
		payload = make([]byte, encLen)
	} else {
		staging := pool.GetSpoolBuffer()
		defer pool.PutSpoolBuffer(staging)
		staging.ExtendOrGrow(int(encLen))
		payload = staging.Bytes()
	}

	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, fmt.Errorf("%w: truncated frame payload: %v", errs.ErrInvalidSpoolHeader, err)
	}

	raw, err := r.codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress frame: %w", err)
	}

	if uint32(len(raw)) != rawLen { //nolint:gosec
		return nil, fmt.Errorf("%w: frame declared %d raw bytes, got %d", errs.ErrChecksumMismatch, rawLen, len(raw))
	}
	if hash.Checksum(raw) != sum {
		return nil, fmt.Errorf("%w: frame payload hash does not match header", errs.ErrChecksumMismatch)
	}

	return raw, nil
}
