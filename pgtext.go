// Package pgtext encodes Go values into PostgreSQL's text formats: scalar
// and composite wire text, SQL quoting, and COPY row streams.
//
// The core lives in the subpackages; this package wraps the common paths.
//
//   - value: the closed set of input kinds (null, bool, int, bigint, float,
//     text, bytes, time, seq)
//   - textenc: the encoders and the two-phase size/write protocol
//   - quote: the escaping dialects (array element, identifier, literal,
//     COPY element)
//   - spool: framed, compressed, checksummed staging of COPY rows
//   - compress: the spool payload codecs
//
// # Basic Usage
//
// Encoding single values:
//
//	import (
//	    "github.com/arloliu/pgtext"
//	    "github.com/arloliu/pgtext/textenc"
//	    "github.com/arloliu/pgtext/value"
//	)
//
//	arr, _ := textenc.NewArray()
//	out, _ := pgtext.Encode(arr, value.NewSeq(
//	    value.NewInt(1),
//	    value.NewText("two"),
//	    value.NewNull(),
//	))
//	// out: {1,two,NULL}
//
// Quoting SQL fragments:
//
//	pgtext.QuoteIdentifier("public", "user table") // "public"."user table"
//	pgtext.QuoteLiteral("it's")                    // 'it''s'
//
// Spooling COPY rows:
//
//	w, _ := pgtext.NewDefaultSpoolWriter(file)
//	_ = w.WriteRow(value.NewSeq(value.NewInt(1), value.NewText("a")))
//	_ = w.Close()
package pgtext

import (
	"io"

	"github.com/arloliu/pgtext/compress"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/spool"
	"github.com/arloliu/pgtext/textenc"
	"github.com/arloliu/pgtext/value"
)

// defaultSpoolOptions is the recommended configuration for spooling COPY
// text: Zstandard earns its CPU on repetitive row text.
var defaultSpoolOptions = []spool.WriterOption{
	spool.WithCompression(compress.TypeZstd),
}

// Encode runs the two-phase encode protocol for a single value and returns
// its text. It is the canonical entry point; see textenc.Encode.
func Encode(e textenc.Encoder, v value.Value) ([]byte, error) {
	return textenc.Encode(e, v)
}

// QuoteIdentifier quotes each part as a SQL identifier and joins them with
// dots: QuoteIdentifier("public", "tbl") yields "public"."tbl". Embedded
// double quotes are doubled. No parts yields an empty string.
func QuoteIdentifier(parts ...string) string {
	var ident quote.Ident

	size := 0
	for _, p := range parts {
		size += quote.MaxQuoted(len(p)) + 1
	}

	out := make([]byte, 0, size)
	for i, p := range parts {
		if i > 0 {
			out = append(out, '.')
		}
		base := len(out)
		out = append(out, make([]byte, quote.MaxQuoted(len(p)))...)
		written := ident.Quote(out[base:], []byte(p))
		out = out[:base+written]
	}

	return string(out)
}

// QuoteLiteral quotes s as a SQL string literal with embedded single quotes
// doubled: QuoteLiteral("it's") yields 'it''s'. Backslashes pass through,
// matching standard_conforming_strings behavior.
func QuoteLiteral(s string) string {
	var lit quote.Literal

	out := make([]byte, quote.MaxQuoted(len(s)))
	written := lit.Quote(out, []byte(s))

	return string(out[:written])
}

// NewSpoolWriter creates a spool writer with the given options; see the
// spool package for the format and option set.
func NewSpoolWriter(w io.Writer, opts ...spool.WriterOption) (*spool.Writer, error) {
	return spool.NewWriter(w, opts...)
}

// NewDefaultSpoolWriter creates a spool writer with the recommended
// defaults for COPY text: Zstandard compression, 256KiB frames, and the
// standard COPY row encoder (tab delimiter, `\N` nulls).
func NewDefaultSpoolWriter(w io.Writer) (*spool.Writer, error) {
	return spool.NewWriter(w, defaultSpoolOptions...)
}

// NewSpoolReader opens a spool stream for reading; see spool.NewReader.
func NewSpoolReader(r io.Reader) (*spool.Reader, error) {
	return spool.NewReader(r)
}
