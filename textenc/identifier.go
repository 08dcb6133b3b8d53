package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/value"
)

// Identifier encodes a qualified SQL identifier: a sequence of text parts
// joined by dots, each part double-quoted with embedded quotes doubled.
// A bare text value encodes as a single part. Non-text parts fail with
// errs.ErrTypeMismatch; identifiers name schema objects and coercing other
// kinds silently would mask caller bugs.
//
// Honors WithElement and WithQuoting. The dot separator is part of the
// identifier syntax and is not configurable.
type Identifier struct {
	cfg compositeConfig
}

// NewIdentifier creates an identifier encoder with quoting enabled.
func NewIdentifier(opts ...CompositeOption) (*Identifier, error) {
	cfg := newCompositeConfig(String{}, '.', true)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Identifier{cfg: cfg}, nil
}

// Encode materializes the dotted identifier into the scratch in both
// phases. An empty sequence encodes to empty output.
func (e *Identifier) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	var single [1]value.Value

	var parts []value.Value
	if v.Kind() == value.KindSeq {
		parts = v.Seq()
	} else {
		single[0] = v
		parts = single[:]
	}

	bb := pool.NewByteBuffer(arrayInitialCapacity)
	for i, p := range parts {
		if p.Kind() != value.KindText {
			return Result{}, fmt.Errorf("%w: identifier part %d is %s, not text", errs.ErrTypeMismatch, i, p.Kind())
		}
		if i > 0 {
			bb.MustWrite([]byte{'.'})
		}
		if err := appendQuoted(bb, e.cfg.elem, p, quote.Ident{}, e.cfg.quoting); err != nil {
			return Result{}, err
		}
	}

	s.SetBytes(bb.Bytes())
	return Materialized(), nil
}
