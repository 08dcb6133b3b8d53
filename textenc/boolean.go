package textenc

import "github.com/arloliu/pgtext/value"

// falseTokens holds the text spellings that encode to 'f'. Any other text,
// and any value of a kind without a false case, encodes to 't'.
var falseTokens = map[string]struct{}{
	"0":     {},
	"f":     {},
	"F":     {},
	"false": {},
	"FALSE": {},
	"off":   {},
	"OFF":   {},
}

// Boolean encodes any value as the single byte 't' or 'f', the server's
// boolean text format. It never fails: false booleans, zero integers, and
// the recognized false spellings become 'f'; everything else, including
// nulls and floats, becomes 't'.
type Boolean struct{}

// Encode reports Sized(1) in the query phase and writes the byte in the
// write phase.
func (Boolean) Encode(v value.Value, dst []byte, _ *Scratch) (Result, error) {
	if dst == nil {
		return Sized(1), nil
	}
	dst[0] = boolByte(v)
	return Written(1), nil
}

func boolByte(v value.Value) byte {
	switch v.Kind() {
	case value.KindBool:
		if !v.Bool() {
			return 'f'
		}
	case value.KindInt:
		if v.Int() == 0 {
			return 'f'
		}
	case value.KindBigInt:
		if v.BigInt().Sign() == 0 {
			return 'f'
		}
	case value.KindText:
		if _, ok := falseTokens[v.Text()]; ok {
			return 'f'
		}
	}
	return 't'
}
