package textenc

import (
	"fmt"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

// Timestamp layouts follow the ISO style the server's datetime input
// parser accepts, with microsecond precision.
const (
	timestampLayout   = "2006-01-02 15:04:05.000000"
	timestampTZLayout = "2006-01-02 15:04:05.000000-07:00"
	dateLayout        = "2006-01-02"
)

// Timestamp encodes time values as timestamp text. Three variants cover
// the server's timestamp flavors: the plain form writes the time's own
// wall clock without zone, the UTC form converts to UTC first, and the TZ
// form appends the numeric zone offset.
type Timestamp struct {
	layout string
	utc    bool
}

// NewTimestamp creates an encoder for zoneless timestamps in local wall
// clock time.
func NewTimestamp() *Timestamp {
	return &Timestamp{layout: timestampLayout}
}

// NewTimestampUTC creates an encoder that converts values to UTC and
// writes the zoneless form.
func NewTimestampUTC() *Timestamp {
	return &Timestamp{layout: timestampLayout, utc: true}
}

// NewTimestampTZ creates an encoder that writes the zone offset suffix.
func NewTimestampTZ() *Timestamp {
	return &Timestamp{layout: timestampTZLayout}
}

// Encode materializes the formatted timestamp into the scratch in both
// phases. Only time values are accepted.
func (e *Timestamp) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	if v.Kind() != value.KindTime {
		return Result{}, fmt.Errorf("%w: cannot encode %s value as timestamp", errs.ErrTypeMismatch, v.Kind())
	}

	t := v.Time()
	if e.utc {
		t = t.UTC()
	}

	s.SetBytes(t.AppendFormat(make([]byte, 0, len(e.layout)+2), e.layout))
	return Materialized(), nil
}

// Date encodes time values as a calendar date, discarding the time of day.
type Date struct{}

// Encode materializes the date into the scratch in both phases.
func (Date) Encode(v value.Value, _ []byte, s *Scratch) (Result, error) {
	if v.Kind() != value.KindTime {
		return Result{}, fmt.Errorf("%w: cannot encode %s value as date", errs.ErrTypeMismatch, v.Kind())
	}

	s.SetBytes(v.Time().AppendFormat(make([]byte, 0, len(dateLayout)+2), dateLayout))
	return Materialized(), nil
}
