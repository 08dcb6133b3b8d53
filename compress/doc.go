// Package compress provides the block codecs used for spool frame payloads:
// Zstandard, S2, LZ4, and a pass-through no-op.
//
// All codecs implement the Codec interface (Compressor + Decompressor) over
// whole byte slices; there is no streaming. Frame payloads are bounded, so
// block-mode compression keeps the format simple and the reader allocation
// pattern predictable.
//
// Choosing a codec:
//
//   - TypeNone: no CPU cost, no savings. For local disks and debugging.
//   - TypeS2: fastest compression of the three, moderate ratio. The default
//     for spool writers.
//   - TypeLZ4: comparable speed to S2 with different trade-offs; useful when
//     the consumer side standardizes on LZ4 blocks.
//   - TypeZstd: best ratio, more CPU. For network transfer or retention.
//
// The numeric Type values are written into spool file headers and must not
// be renumbered.
//
// The Zstandard codec has two implementations selected at build time: a cgo
// binding when cgo is available, and a pure Go fallback otherwise. Both
// produce standard zstd frames and interoperate freely.
package compress
