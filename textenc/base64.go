package textenc

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/internal/options"
	"github.com/arloliu/pgtext/value"
)

// maxBase64Input keeps base64.StdEncoding.EncodedLen from overflowing int.
const maxBase64Input = (math.MaxInt/4)*3 - 2

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base64 wraps an inner encoder and emits its output in standard base64
// with padding. The protocol passes through: a Sized inner answer scales to
// the exact encoded length, and the write phase lets the inner encoder
// write its raw bytes at the start of dst, then transcodes them to base64
// in place. A Materialized inner answer is transcoded in the scratch.
//
// Honors WithElement.
type Base64 struct {
	cfg compositeConfig
}

// NewBase64 creates a base64 encoder around the String element encoder.
func NewBase64(opts ...CompositeOption) (*Base64, error) {
	cfg := newCompositeConfig(String{}, 0, false)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Base64{cfg: cfg}, nil
}

// Encode implements the two-phase protocol around the inner encoder.
func (e *Base64) Encode(v value.Value, dst []byte, s *Scratch) (Result, error) {
	if dst == nil {
		res, err := e.cfg.elem.Encode(v, nil, s)
		if err != nil {
			return Result{}, err
		}

		switch res.Form() {
		case FormSized:
			n := res.Len()
			if n > maxBase64Input {
				return Result{}, fmt.Errorf("%w: base64 of %d bytes would overflow", errs.ErrEncodingOverflow, n)
			}
			return Sized(base64.StdEncoding.EncodedLen(n)), nil
		case FormMaterialized:
			enc, err := base64Bytes(s.Bytes())
			if err != nil {
				return Result{}, err
			}
			s.SetBytes(enc)
			return Materialized(), nil
		default:
			return Result{}, fmt.Errorf("%w: element size phase returned %s result", errs.ErrCapacityExceeded, res.Form())
		}
	}

	res, err := e.cfg.elem.Encode(v, dst, s)
	if err != nil {
		return Result{}, err
	}
	if res.Form() == FormMaterialized {
		enc, err := base64Bytes(s.Bytes())
		if err != nil {
			return Result{}, err
		}
		s.SetBytes(enc)
		return Materialized(), nil
	}

	w := res.Len()
	if base64.StdEncoding.EncodedLen(w) > len(dst) {
		return Result{}, fmt.Errorf("%w: element wrote %d raw bytes, encoding needs more than the %d sized", errs.ErrCapacityExceeded, w, len(dst))
	}

	return Written(base64InPlace(dst, w)), nil
}

func base64Bytes(raw []byte) ([]byte, error) {
	if len(raw) > maxBase64Input {
		return nil, fmt.Errorf("%w: base64 of %d bytes would overflow", errs.ErrEncodingOverflow, len(raw))
	}

	enc := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(enc, raw)
	return enc, nil
}

// base64InPlace expands the n raw bytes at the start of buf into their
// base64 form within the same buffer and returns the encoded length.
// Groups are transcoded from the last to the first, and each group's source
// bytes are read into locals before its output is written, so no source
// byte is clobbered before use. buf must hold at least EncodedLen(n) bytes.
func base64InPlace(buf []byte, n int) int {
	if n == 0 {
		return 0
	}

	total := base64.StdEncoding.EncodedLen(n)

	rem := n % 3
	si := n - rem
	if rem > 0 {
		di := (si / 3) * 4
		b0 := buf[si]
		var b1 byte
		if rem == 2 {
			b1 = buf[si+1]
		}
		buf[di] = base64Alphabet[b0>>2]
		buf[di+1] = base64Alphabet[(b0&0x03)<<4|b1>>4]
		if rem == 2 {
			buf[di+2] = base64Alphabet[(b1&0x0F)<<2]
		} else {
			buf[di+2] = '='
		}
		buf[di+3] = '='
	}

	for si -= 3; si >= 0; si -= 3 {
		b0, b1, b2 := buf[si], buf[si+1], buf[si+2]
		di := (si / 3) * 4
		buf[di] = base64Alphabet[b0>>2]
		buf[di+1] = base64Alphabet[(b0&0x03)<<4|b1>>4]
		buf[di+2] = base64Alphabet[(b1&0x0F)<<2|b2>>6]
		buf[di+3] = base64Alphabet[b2&0x3F]
	}

	return total
}
