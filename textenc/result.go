package textenc

// Form identifies which of the three protocol outcomes a Result carries.
type Form uint8

const (
	// FormSized reports an upper bound on the output size without
	// producing any bytes. Only the size-query phase returns it.
	FormSized Form = iota + 1

	// FormWritten reports the exact byte count written at dst[0:].
	// Only the write phase returns it.
	FormWritten

	// FormMaterialized reports that the complete output was rendered
	// into the Scratch. Either phase may return it; dst is untouched.
	FormMaterialized
)

// String returns a short name for the form, for error messages and tests.
func (f Form) String() string {
	switch f {
	case FormSized:
		return "sized"
	case FormWritten:
		return "written"
	case FormMaterialized:
		return "materialized"
	default:
		return "invalid"
	}
}

// Result is the outcome of one Encode call.
//
// The zero Result is invalid; construct results with Sized, Written, or
// Materialized.
type Result struct {
	form Form
	n    int
}

// Sized reports that the output needs at most n bytes.
func Sized(n int) Result { return Result{form: FormSized, n: n} }

// Written reports that exactly n bytes were written at dst[0:].
func Written(n int) Result { return Result{form: FormWritten, n: n} }

// Materialized reports that the output lives in the Scratch.
func Materialized() Result { return Result{form: FormMaterialized} }

// Form returns the protocol outcome this result carries.
func (r Result) Form() Form { return r.form }

// Len returns the byte count: the size bound for FormSized, the exact
// written count for FormWritten, and zero for FormMaterialized.
func (r Result) Len() int { return r.n }
