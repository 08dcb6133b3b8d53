package textenc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

// floatSizeBound is the fixed size the query phase reports for any float64:
// sign, one leading digit, decimal point, sixteen fractional digits, 'E',
// exponent sign, and up to three exponent digits. The special spellings
// Infinity, -Infinity, and NaN fit well inside it.
const floatSizeBound = 24

const (
	textInfinity    = "Infinity"
	textNegInfinity = "-Infinity"
	textNaN         = "NaN"
)

// Float encodes numeric values in scientific notation with 17 significant
// digits, enough for any float64 to round-trip exactly. Non-finite values
// use the server's Infinity, -Infinity, and NaN spellings.
type Float struct{}

// Encode reports the fixed Sized bound in the query phase and writes the
// rendered text in the write phase. Kinds without a numeric interpretation
// fail with errs.ErrTypeMismatch.
func (Float) Encode(v value.Value, dst []byte, _ *Scratch) (Result, error) {
	f, err := floatValue(v)
	if err != nil {
		return Result{}, err
	}
	if dst == nil {
		return Sized(floatSizeBound), nil
	}
	return Written(writeFloat(dst, f)), nil
}

func floatValue(v value.Value) (float64, error) {
	switch v.Kind() {
	case value.KindFloat:
		return v.Float(), nil
	case value.KindInt:
		return float64(v.Int()), nil
	case value.KindBigInt:
		f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
		return f, nil
	default:
		return 0, fmt.Errorf("%w: cannot encode %s value as float", errs.ErrTypeMismatch, v.Kind())
	}
}

func writeFloat(dst []byte, f float64) int {
	switch {
	case math.IsInf(f, 1):
		copy(dst, textInfinity)
		return len(textInfinity)
	case math.IsInf(f, -1):
		copy(dst, textNegInfinity)
		return len(textNegInfinity)
	case math.IsNaN(f):
		copy(dst, textNaN)
		return len(textNaN)
	}
	return len(strconv.AppendFloat(dst[:0], f, 'E', 16, 64))
}
