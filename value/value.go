// Package value defines the closed set of in-memory values the pgtext
// encoders accept: null, bool, int64, big integer, float64, text, raw bytes,
// time, and nested sequences.
//
// Value is a flat tagged struct, so constructing a scalar allocates nothing.
// Values are immutable once constructed; encoders borrow them for the
// duration of a single encode call and never retain references.
package value

import (
	"encoding/base64"
	"math"
	"math/big"
	"strconv"
	"time"
)

// Value is one immutable tagged value. Use the New* constructors; the zero
// Value has no kind and is rejected by every encoder.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
	bi   *big.Int
	sq   []Value
	tm   time.Time
}

// NewNull returns the SQL NULL value.
func NewNull() Value {
	return Value{kind: KindNull}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.i = 1
	}

	return v
}

// NewInt returns a 64-bit integer value.
func NewInt(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// NewBigInt returns an arbitrary-precision integer value.
// A nil *big.Int yields the NULL value.
func NewBigInt(x *big.Int) Value {
	if x == nil {
		return NewNull()
	}

	return Value{kind: KindBigInt, bi: x}
}

// NewFloat returns a float64 value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewText returns a text value.
func NewText(s string) Value {
	return Value{kind: KindText, s: s}
}

// NewBytes returns a raw byte-string value. The slice is not copied.
func NewBytes(b []byte) Value {
	return Value{kind: KindBytes, b: b}
}

// NewTime returns a time value.
func NewTime(t time.Time) Value {
	return Value{kind: KindTime, tm: t}
}

// NewSeq returns a sequence value over the given elements.
// The slice is not copied.
func NewSeq(elems ...Value) Value {
	return Value{kind: KindSeq, sq: elems}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) Bool() bool {
	return v.i != 0
}

// Int returns the int64 payload. Valid only when Kind is KindInt.
func (v Value) Int() int64 {
	return v.i
}

// BigInt returns the big integer payload. Valid only when Kind is KindBigInt.
func (v Value) BigInt() *big.Int {
	return v.bi
}

// Float returns the float64 payload. Valid only when Kind is KindFloat.
func (v Value) Float() float64 {
	return v.f
}

// Text returns the string payload. Valid only when Kind is KindText.
func (v Value) Text() string {
	return v.s
}

// Bytes returns the raw byte payload. Valid only when Kind is KindBytes.
func (v Value) Bytes() []byte {
	return v.b
}

// Time returns the time payload. Valid only when Kind is KindTime.
func (v Value) Time() time.Time {
	return v.tm
}

// Seq returns the element slice. Valid only when Kind is KindSeq.
func (v Value) Seq() []Value {
	return v.sq
}

// AppendText appends the generic text form of the value to dst and returns
// the extended slice. This is the stringification fallback the String
// encoder and the composite element paths rely on:
//
//	null  -> nothing (empty)
//	bool  -> "true" / "false"
//	int, bigint -> decimal digits
//	float -> shortest round-trip form; "Infinity", "-Infinity", "NaN"
//	text  -> the string bytes
//	bytes -> the raw bytes
//	time  -> RFC 3339 with nanoseconds
//	seq   -> bracketed debug form (sequences normally go through the
//	         array encoder instead)
func (v Value) AppendText(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return dst
	case KindBool:
		if v.i != 0 {
			return append(dst, "true"...)
		}

		return append(dst, "false"...)
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindBigInt:
		return v.bi.Append(dst, 10)
	case KindFloat:
		return appendFloatText(dst, v.f)
	case KindText:
		return append(dst, v.s...)
	case KindBytes:
		return append(dst, v.b...)
	case KindTime:
		return v.tm.AppendFormat(dst, time.RFC3339Nano)
	case KindSeq:
		return v.appendSeqText(dst)
	default:
		return dst
	}
}

func (v Value) appendSeqText(dst []byte) []byte {
	dst = append(dst, '[')
	for i, el := range v.sq {
		if i > 0 {
			dst = append(dst, ',')
		}
		switch el.kind {
		case KindNull:
			dst = append(dst, "null"...)
		case KindText:
			dst = strconv.AppendQuote(dst, el.s)
		case KindBytes:
			dst = append(dst, '"')
			n := base64.StdEncoding.EncodedLen(len(el.b))
			off := len(dst)
			dst = append(dst, make([]byte, n)...)
			base64.StdEncoding.Encode(dst[off:], el.b)
			dst = append(dst, '"')
		default:
			dst = el.AppendText(dst)
		}
	}

	return append(dst, ']')
}

func appendFloatText(dst []byte, f float64) []byte {
	switch {
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	default:
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
}

// String implements fmt.Stringer for logs and test failure output.
// NULL renders as "NULL"; other kinds use their AppendText form.
func (v Value) String() string {
	if v.kind == KindNull {
		return "NULL"
	}

	return string(v.AppendText(nil))
}
