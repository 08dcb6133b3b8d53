package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/value"
)

// arrayInitialCapacity sizes the output buffer before the first element;
// the buffer grows chunk-wise from there.
const arrayInitialCapacity = 64

var arrayNullToken = []byte("NULL")

// Array encodes sequence values as PostgreSQL array literals: elements
// joined by the delimiter inside braces, nested sequences recursing into
// nested braces, and nil elements written as the unquoted NULL token.
//
// Each element is rendered by the configured element encoder and quoted per
// the array dialect: empty strings, the spelling NULL in any case, and text
// containing the delimiter, braces, quotes, backslashes, or whitespace are
// wrapped in double quotes with embedded quotes and backslashes escaped.
//
// Honors WithElement, WithDelimiter, and WithQuoting.
type Array struct {
	cfg   compositeConfig
	strat quote.ArrayElem
}

// NewArray creates an array encoder. The defaults are the String element
// encoder, a comma delimiter, and quoting enabled.
func NewArray(opts ...CompositeOption) (*Array, error) {
	cfg := newCompositeConfig(String{}, ',', true)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Array{cfg: cfg, strat: quote.ArrayElem{Delim: cfg.delim}}, nil
}

// Encode materializes the array literal into the scratch in both phases.
// The nested output length is unknowable without rendering, so the size
// query is never answered with a count.
func (e *Array) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	if v.Kind() != value.KindSeq {
		return Result{}, fmt.Errorf("%w: cannot encode %s value as array", errs.ErrTypeMismatch, v.Kind())
	}

	bb := pool.NewByteBuffer(arrayInitialCapacity)
	if err := e.writeSeq(bb, v.Seq()); err != nil {
		return Result{}, err
	}

	s.SetBytes(bb.Bytes())
	return Materialized(), nil
}

func (e *Array) writeSeq(bb *pool.ByteBuffer, elems []value.Value) error {
	bb.MustWrite([]byte{'{'})

	for i, el := range elems {
		if i > 0 {
			bb.MustWrite([]byte{e.cfg.delim})
		}

		switch el.Kind() {
		case value.KindSeq:
			if err := e.writeSeq(bb, el.Seq()); err != nil {
				return err
			}
		case value.KindNull:
			bb.MustWrite(arrayNullToken)
		default:
			if err := appendQuoted(bb, e.cfg.elem, el, e.strat, e.cfg.quoting); err != nil {
				return err
			}
		}
	}

	bb.MustWrite([]byte{'}'})
	return nil
}
