package spool

import (
	"fmt"
	"io"

	"github.com/arloliu/pgtext/compress"
	"github.com/arloliu/pgtext/endian"
	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/hash"
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/textenc"
	"github.com/arloliu/pgtext/value"
)

type writerConfig struct {
	compression compress.Type
	frameSize   int
	rowEnc      textenc.Encoder
}

func (c *writerConfig) setCompression(t compress.Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown compression %s", errs.ErrInvalidOption, t)
	}
	c.compression = t
	return nil
}

func (c *writerConfig) setFrameSize(n int) error {
	if n <= 0 || n > maxFramePayload {
		return fmt.Errorf("%w: frame size %d out of range", errs.ErrInvalidOption, n)
	}
	c.frameSize = n
	return nil
}

func (c *writerConfig) setRowEncoder(e textenc.Encoder) error {
	if e == nil {
		return fmt.Errorf("%w: row encoder cannot be nil", errs.ErrInvalidOption)
	}
	c.rowEnc = e
	return nil
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*writerConfig]

// WithCompression sets the frame payload codec. The default is S2.
func WithCompression(t compress.Type) WriterOption {
	return func(c *writerConfig) error { return c.setCompression(t) }
}

// WithFrameSize sets the staging threshold in bytes: once the buffered rows
// reach it, the writer emits a frame. The default is 256KiB.
func WithFrameSize(n int) WriterOption {
	return func(c *writerConfig) error { return c.setFrameSize(n) }
}

// WithRowEncoder sets the encoder WriteRow runs values through. The default
// is a COPY row encoder with tab delimiter and `\N` nulls.
func WithRowEncoder(e textenc.Encoder) WriterOption {
	return func(c *writerConfig) error { return c.setRowEncoder(e) }
}

// Writer stages encoded rows and emits them as compressed, checksummed
// frames on an io.Writer. Create one with NewWriter and always Close it;
// Close flushes the final partial frame and releases the staging buffer.
//
// Writer does not close the underlying io.Writer.
type Writer struct {
	w       io.Writer
	codec   compress.Codec
	engine  endian.EndianEngine
	rowEnc  textenc.Encoder
	staging *pool.ByteBuffer

	frameSize int
	rows      int64
	stats     compress.Stats
	closed    bool
}

// NewWriter creates a spool writer and immediately writes the file header.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	rowEnc, err := textenc.NewCopyRow()
	if err != nil {
		return nil, err
	}

	cfg := writerConfig{
		compression: compress.TypeS2,
		frameSize:   pool.SpoolBufferDefaultSize,
		rowEnc:      rowEnc,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "spool writer")
	if err != nil {
		return nil, err
	}

	var hdr [fileHeaderSize]byte
	copy(hdr[0:4], spoolMagic[:])
	hdr[4] = formatVersion
	hdr[5] = byte(cfg.compression)

	if _, err := w.Write(hdr[:]); err != nil {
		return nil, fmt.Errorf("write file header: %w", err)
	}

	return &Writer{
		w:         w,
		codec:     codec,
		engine:    endian.GetLittleEndianEngine(),
		rowEnc:    cfg.rowEnc,
		staging:   pool.GetSpoolBuffer(),
		frameSize: cfg.frameSize,
		stats:     compress.Stats{Algorithm: cfg.compression},
	}, nil
}

// WriteRow encodes v through the row encoder and stages the resulting row,
// emitting a frame when the staging buffer reaches the frame size.
func (w *Writer) WriteRow(v value.Value) error {
	if w.closed {
		return errs.ErrSpoolClosed
	}

	row, err := textenc.Encode(w.rowEnc, v)
	if err != nil {
		return err
	}

	w.rows++

	return w.append(row)
}

// WriteRaw stages pre-encoded bytes verbatim. The caller is responsible for
// row framing within p; the writer only guarantees that frame boundaries
// fall between WriteRaw calls, not inside them.
func (w *Writer) WriteRaw(p []byte) error {
	if w.closed {
		return errs.ErrSpoolClosed
	}
	if len(p) == 0 {
		return nil
	}

	return w.append(p)
}

func (w *Writer) append(p []byte) error {
	w.staging.MustWrite(p)
	if w.staging.Len() >= w.frameSize {
		return w.flushFrame()
	}

	return nil
}

// Flush emits the currently staged rows as one frame. Staging less than a
// full frame is fine; an empty staging buffer is a no-op.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrSpoolClosed
	}

	return w.flushFrame()
}

// Close flushes the final frame and releases the staging buffer. Close is
// idempotent; writes after Close fail with errs.ErrSpoolClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	err := w.flushFrame()

	w.closed = true
	pool.PutSpoolBuffer(w.staging)
	w.staging = nil

	return err
}

// Rows returns the number of rows written through WriteRow.
func (w *Writer) Rows() int64 { return w.rows }

// Stats returns cumulative payload byte counts across all emitted frames.
func (w *Writer) Stats() compress.Stats { return w.stats }

func (w *Writer) flushFrame() error {
	raw := w.staging.Bytes()
	if len(raw) == 0 {
		return nil
	}
	if len(raw) > maxFramePayload {
		return fmt.Errorf("%w: frame payload of %d bytes exceeds %d", errs.ErrEncodingOverflow, len(raw), maxFramePayload)
	}

	sum := hash.Checksum(raw)

	enc, err := w.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress frame: %w", err)
	}

	var hdr [frameHeaderSize]byte
	w.engine.PutUint32(hdr[0:4], uint32(len(raw))) //nolint:gosec
	w.engine.PutUint32(hdr[4:8], uint32(len(enc))) //nolint:gosec
	w.engine.PutUint64(hdr[8:16], sum)

	if _, err := w.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.w.Write(enc); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}

	w.stats.OriginalSize += int64(len(raw))
	w.stats.CompressedSize += int64(len(enc))
	w.staging.Reset()

	return nil
}
