package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

// Encoder renders one value into PostgreSQL text format using the two-phase
// protocol described in the package documentation.
//
// Implementations must be safe for concurrent use; all per-call state lives
// in the Scratch.
type Encoder interface {
	// Encode answers the size-query phase when dst is nil and the write
	// phase otherwise. dst must hold at least the byte count reported by
	// the preceding Sized result.
	Encode(v value.Value, dst []byte, s *Scratch) (Result, error)
}

// Encode runs the full two-phase protocol for a single value and returns
// the encoded text.
//
// The returned slice is freshly allocated and owned by the caller. An
// encoder whose write phase reports more bytes than its size phase promised
// is broken; that surfaces as errs.ErrCapacityExceeded rather than a buffer
// overrun.
func Encode(e Encoder, v value.Value) ([]byte, error) {
	var s Scratch

	res, err := e.Encode(v, nil, &s)
	if err != nil {
		return nil, err
	}

	switch res.Form() {
	case FormMaterialized:
		return s.Bytes(), nil

	case FormSized:
		dst := make([]byte, res.Len())

		wres, err := e.Encode(v, dst, &s)
		if err != nil {
			return nil, err
		}
		// The write phase may still materialize, e.g. when the value
		// changed shape between phases; the scratch stays authoritative.
		if wres.Form() == FormMaterialized {
			return s.Bytes(), nil
		}
		if wres.Len() > len(dst) {
			return nil, fmt.Errorf("%w: sized %d bytes but wrote %d", errs.ErrCapacityExceeded, len(dst), wres.Len())
		}

		return dst[:wres.Len()], nil

	default:
		return nil, fmt.Errorf("%w: size phase returned %s result", errs.ErrCapacityExceeded, res.Form())
	}
}
