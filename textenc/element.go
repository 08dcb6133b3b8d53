package textenc

import (
	"fmt"
	"math"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/pool"
	"github.com/arloliu/pgtext/quote"
	"github.com/arloliu/pgtext/value"
)

// maxQuotableLen keeps quote.MaxQuoted from overflowing int.
const maxQuotableLen = (math.MaxInt - 2) / 2

// appendQuoted encodes one element with e and appends its text to bb,
// quoted with strat when quoted is true.
//
// Sized elements are written directly into bb's reserved headroom and then
// quoted in place over the same region, so the element text is never staged
// in a separate allocation. Materialized elements are quoted from the
// scratch into bb, which is disjoint by construction.
func appendQuoted(bb *pool.ByteBuffer, e Encoder, v value.Value, strat quote.Strategy, quoted bool) error {
	var s Scratch

	res, err := e.Encode(v, nil, &s)
	if err != nil {
		return err
	}

	switch res.Form() {
	case FormMaterialized:
		return appendQuotedBytes(bb, s.Bytes(), strat, quoted)

	case FormSized:
		n := res.Len()
		base := bb.Len()

		if !quoted {
			bb.ExtendOrGrow(n)
			wres, err := e.Encode(v, bb.Slice(base, base+n), &s)
			if err != nil {
				return err
			}
			if wres.Form() == FormMaterialized {
				bb.SetLength(base)
				return appendQuotedBytes(bb, s.Bytes(), strat, false)
			}
			if wres.Len() > n {
				return fmt.Errorf("%w: element sized %d bytes but wrote %d", errs.ErrCapacityExceeded, n, wres.Len())
			}
			bb.SetLength(base + wres.Len())
			return nil
		}

		if n > maxQuotableLen {
			return fmt.Errorf("%w: quoting a %d byte element would overflow", errs.ErrEncodingOverflow, n)
		}

		// Reserve the quoted worst case up front, write the raw element
		// at the base, then quote in place over the same region. The
		// cursor stays at base until the final length is known.
		bb.Grow(quote.MaxQuoted(n))

		wres, err := e.Encode(v, bb.Slice(base, base+n), &s)
		if err != nil {
			return err
		}
		if wres.Form() == FormMaterialized {
			return appendQuotedBytes(bb, s.Bytes(), strat, true)
		}
		w := wres.Len()
		if w > n {
			return fmt.Errorf("%w: element sized %d bytes but wrote %d", errs.ErrCapacityExceeded, n, w)
		}

		region := bb.Slice(base, base+quote.MaxQuoted(w))
		bb.SetLength(base + strat.Quote(region, region[:w]))
		return nil

	default:
		return fmt.Errorf("%w: element size phase returned %s result", errs.ErrCapacityExceeded, res.Form())
	}
}

// appendQuotedBytes appends src to bb, quoted with strat when quoted is
// true. src must not alias bb's backing array.
func appendQuotedBytes(bb *pool.ByteBuffer, src []byte, strat quote.Strategy, quoted bool) error {
	if !quoted {
		bb.MustWrite(src)
		return nil
	}
	if len(src) > maxQuotableLen {
		return fmt.Errorf("%w: quoting a %d byte element would overflow", errs.ErrEncodingOverflow, len(src))
	}

	need := quote.MaxQuoted(len(src))
	base := bb.Len()
	bb.Grow(need)

	written := strat.Quote(bb.Slice(base, base+need), src)
	bb.SetLength(base + written)
	return nil
}
