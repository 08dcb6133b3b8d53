package textenc

import (
	"fmt"
	"strconv"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

// intFastMax bounds the magnitude handled by the exact-size fast path.
// Values at or above 10^14 fall back to stringification.
const intFastMax = 100000000000000

// Integer encodes integer values as plain decimal text. Magnitudes below
// 10^14 take a fast path: the size phase counts digits and stashes the
// coerced integer, and the write phase emits digits directly into dst.
// Larger magnitudes, big integers beyond int64, and floats fall back to
// generic stringification through the scratch.
type Integer struct{}

// Encode implements the two-phase protocol. Int and BigInt values in range
// report an exact Sized count; everything else materializes. Kinds without
// an integer interpretation fail with errs.ErrTypeMismatch.
func (enc Integer) Encode(v value.Value, dst []byte, s *Scratch) (Result, error) {
	if dst == nil {
		return enc.size(v, s)
	}

	// Write phase. The size phase stashes the coerced integer; a call
	// with an empty scratch coerces again.
	x, ok := s.intStash()
	if !ok {
		if s.state == scratchBytes {
			return Materialized(), nil
		}
		res, err := enc.size(v, s)
		if err != nil {
			return Result{}, err
		}
		if res.Form() == FormMaterialized {
			return res, nil
		}
		x, _ = s.intStash()
	}

	return Written(writeDecimal(dst, x)), nil
}

func (Integer) size(v value.Value, s *Scratch) (Result, error) {
	switch v.Kind() {
	case value.KindInt:
		return sizeInt64(v.Int(), s)
	case value.KindBigInt:
		bi := v.BigInt()
		if bi.IsInt64() {
			return sizeInt64(bi.Int64(), s)
		}
		s.SetBytes(bi.Append(nil, 10))
		return Materialized(), nil
	case value.KindFloat:
		// Floats are stringified as floats, not truncated to digits.
		s.SetBytes(v.AppendText(nil))
		return Materialized(), nil
	default:
		return Result{}, fmt.Errorf("%w: cannot encode %s value as integer", errs.ErrTypeMismatch, v.Kind())
	}
}

func sizeInt64(x int64, s *Scratch) (Result, error) {
	u := uint64(x) //nolint:gosec
	if x < 0 {
		u = -u
	}

	digits, ok := fastDigitCount(u)
	if !ok {
		s.SetBytes(strconv.AppendInt(nil, x, 10))
		return Materialized(), nil
	}

	s.setInt(x)
	if x < 0 {
		digits++
	}
	return Sized(digits), nil
}

// fastDigitCount returns the decimal digit count of u, or ok=false when
// u >= 10^14 and the caller should stringify instead.
func fastDigitCount(u uint64) (digits int, ok bool) {
	if u < 100000000 {
		if u < 10000 {
			if u < 100 {
				if u < 10 {
					return 1, true
				}
				return 2, true
			}
			if u < 1000 {
				return 3, true
			}
			return 4, true
		}
		if u < 1000000 {
			if u < 100000 {
				return 5, true
			}
			return 6, true
		}
		if u < 10000000 {
			return 7, true
		}
		return 8, true
	}
	if u < 1000000000000 {
		if u < 10000000000 {
			if u < 1000000000 {
				return 9, true
			}
			return 10, true
		}
		if u < 100000000000 {
			return 11, true
		}
		return 12, true
	}
	if u < 10000000000000 {
		return 13, true
	}
	if u < intFastMax {
		return 14, true
	}
	return 0, false
}

// writeDecimal writes x as decimal text at the start of dst and returns the
// byte count. Digits are emitted least-significant first by repeated
// division, then the whole run, sign included, is reversed in place.
func writeDecimal(dst []byte, x int64) int {
	u := uint64(x) //nolint:gosec
	if x < 0 {
		u = -u
	}

	i := 0
	for {
		dst[i] = '0' + byte(u%10)
		u /= 10
		i++
		if u == 0 {
			break
		}
	}
	if x < 0 {
		dst[i] = '-'
		i++
	}

	for l, r := 0, i-1; l < r; l, r = l+1, r-1 {
		dst[l], dst[r] = dst[r], dst[l]
	}
	return i
}
