package textenc

import "github.com/arloliu/pgtext/value"

// String is the generic stringification encoder: every value kind has a
// text form, so it accepts anything and never reports a size. Byte values
// pass through without copying; other kinds render through value.AppendText.
//
// It is the default element encoder of every composite in this package.
type String struct{}

// Encode materializes the value's text form into the scratch in both
// phases.
func (String) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	if v.Kind() == value.KindBytes {
		s.SetBytes(v.Bytes())
	} else {
		s.SetBytes(v.AppendText(nil))
	}
	return Materialized(), nil
}
