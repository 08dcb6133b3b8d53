// Package textenc converts values into PostgreSQL's text-format
// representations: scalar encoders for booleans, integers, floats, and
// generic stringification, and composite encoders for array literals,
// dotted identifiers, quoted literals, base64 wrapping, COPY rows, and
// timestamps.
//
// # Two-phase protocol
//
// Every encoder implements a single entry point:
//
//	Encode(v value.Value, dst []byte, s *Scratch) (Result, error)
//
// A nil dst selects the size-query phase: the encoder returns Sized(n)
// when it can compute (or bound) the output size without producing it, or
// Materialized() after rendering the full output into the Scratch. The
// caller then allocates n bytes and calls again with dst non-nil; the
// encoder writes at dst[0:] and returns Written(m) with the true byte
// count, m <= n. Encoders that cannot size cheaply skip the negotiation and
// materialize in both phases.
//
// The Scratch carries state between the two phases of one encode call (the
// coerced integer, or the materialized bytes) and must not be reused across
// values without Reset. Encode is the canonical driver for the whole
// protocol; composite encoders run it internally per element, quoting sized
// elements in place inside their output buffer.
//
// # Concurrency
//
// Encoder instances are immutable after construction and safe for
// concurrent use as long as every call supplies its own Scratch.
package textenc
