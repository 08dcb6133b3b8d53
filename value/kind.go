package value

// Kind identifies which variant a Value holds. The zero Kind is invalid;
// encoders reject it with a type mismatch, so an uninitialized Value can
// never be mistaken for SQL NULL.
type Kind uint8

const (
	KindNull Kind = iota + 1
	KindBool
	KindInt
	KindBigInt
	KindFloat
	KindText
	KindBytes
	KindTime
	KindSeq
)

// String returns the lowercase name of the kind, for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindTime:
		return "time"
	case KindSeq:
		return "seq"
	default:
		return "invalid"
	}
}
