package textenc

import (
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/value"
)

// QuotedLiteral encodes a single value as a SQL string literal: the
// element encoder's text wrapped in single quotes with embedded single
// quotes doubled. Backslashes pass through untouched, which matches
// servers running with standard_conforming_strings on.
//
// Honors WithElement and WithQuoting.
type QuotedLiteral struct {
	cfg compositeConfig
}

// NewQuotedLiteral creates a literal encoder with quoting enabled.
func NewQuotedLiteral(opts ...CompositeOption) (*QuotedLiteral, error) {
	cfg := newCompositeConfig(String{}, 0, true)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &QuotedLiteral{cfg: cfg}, nil
}

// Encode materializes the quoted literal into the scratch in both phases.
func (e *QuotedLiteral) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	bb := pool.NewByteBuffer(arrayInitialCapacity)
	if err := appendQuoted(bb, e.cfg.elem, v, quote.Literal{}, e.cfg.quoting); err != nil {
		return Result{}, err
	}

	s.SetBytes(bb.Bytes())
	return Materialized(), nil
}
