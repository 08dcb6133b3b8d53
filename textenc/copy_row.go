package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/value"
)

// copyRowInitialCapacity sizes the row buffer before the first field.
const copyRowInitialCapacity = 256

var defaultCopyNull = []byte(`\N`)

// CopyRow encodes a sequence value as one row of COPY text format: fields
// joined by the delimiter, null fields written as the null token, and a
// trailing newline. Field text is escaped per the COPY dialect (control
// characters become backslash sequences, backslashes are doubled, and the
// delimiter is backslash-prefixed); no surrounding quotes are added.
//
// Sequence fields are rendered as array literals before escaping, so rows
// can carry array columns.
//
// Honors WithElement, WithDelimiter, WithQuoting, and WithNullToken.
type CopyRow struct {
	cfg      compositeConfig
	strat    quote.CopyElem
	arrayEnc *Array
}

// NewCopyRow creates a COPY row encoder. The defaults are the String
// element encoder, a tab delimiter, the `\N` null token, and escaping
// enabled.
func NewCopyRow(opts ...CompositeOption) (*CopyRow, error) {
	cfg := newCompositeConfig(String{}, '\t', true)
	cfg.null = defaultCopyNull
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	arrayEnc, err := NewArray(WithElement(cfg.elem))
	if err != nil {
		return nil, err
	}

	return &CopyRow{
		cfg:      cfg,
		strat:    quote.CopyElem{Delim: cfg.delim},
		arrayEnc: arrayEnc,
	}, nil
}

// Encode materializes the full row, newline included, into the scratch in
// both phases.
func (e *CopyRow) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	if v.Kind() != value.KindSeq {
		return Result{}, fmt.Errorf("%w: cannot encode %s value as copy row", errs.ErrTypeMismatch, v.Kind())
	}

	bb := pool.NewByteBuffer(copyRowInitialCapacity)
	for i, f := range v.Seq() {
		if i > 0 {
			bb.MustWrite([]byte{e.cfg.delim})
		}

		switch f.Kind() {
		case value.KindNull:
			bb.MustWrite(e.cfg.null)
		case value.KindSeq:
			if err := e.appendArrayField(bb, f); err != nil {
				return Result{}, err
			}
		default:
			if err := appendQuoted(bb, e.cfg.elem, f, e.strat, e.cfg.quoting); err != nil {
				return Result{}, err
			}
		}
	}
	bb.MustWrite([]byte{'\n'})

	s.SetBytes(bb.Bytes())
	return Materialized(), nil
}

// appendArrayField renders a sequence field as an array literal in pooled
// staging and escapes it into the row. The literal is copied into bb before
// this returns, so the staging buffer can go back to the pool.
func (e *CopyRow) appendArrayField(bb *pool.ByteBuffer, f value.Value) error {
	st := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(st)

	if err := e.arrayEnc.writeSeq(st, f.Seq()); err != nil {
		return err
	}

	return appendQuotedBytes(bb, st.Bytes(), e.strat, e.cfg.quoting)
}
