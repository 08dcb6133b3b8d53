package textenc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

// misreportingEncoder promises fewer bytes in the size phase than it claims
// to write, which the driver must catch.
type misreportingEncoder struct{}

func (misreportingEncoder) Encode(_ value.Value, dst []byte, _ *Scratch) (Result, error) {
	if dst == nil {
		return Sized(2), nil
	}
	return Written(5), nil
}

// writtenQueryEncoder answers the size query with a write-phase result.
type writtenQueryEncoder struct{}

func (writtenQueryEncoder) Encode(value.Value, []byte, *Scratch) (Result, error) {
	return Written(3), nil
}

// shapeShiftingEncoder sizes in the query phase but materializes during the
// write phase; the driver must fall back to the scratch bytes.
type shapeShiftingEncoder struct{}

func (shapeShiftingEncoder) Encode(_ value.Value, dst []byte, s *Scratch) (Result, error) {
	if dst == nil {
		return Sized(8), nil
	}
	s.SetBytes([]byte("fallback"))
	return Materialized(), nil
}

func TestEncode_SizedPath(t *testing.T) {
	out, err := Encode(Integer{}, value.NewInt(-1234))
	require.NoError(t, err)
	require.Equal(t, "-1234", string(out))
}

func TestEncode_MaterializedPath(t *testing.T) {
	out, err := Encode(String{}, value.NewText("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(out))
}

func TestEncode_CapacityExceeded(t *testing.T) {
	_, err := Encode(misreportingEncoder{}, value.NewNull())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestEncode_WrittenFromQueryPhase(t *testing.T) {
	_, err := Encode(writtenQueryEncoder{}, value.NewNull())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestEncode_WritePhaseMaterializes(t *testing.T) {
	out, err := Encode(shapeShiftingEncoder{}, value.NewNull())
	require.NoError(t, err)
	require.Equal(t, "fallback", string(out))
}

func TestEncode_ExactAllocation(t *testing.T) {
	// The sized path must return a slice of exactly the written length
	// even when the size phase over-reserves.
	out, err := Encode(Float{}, value.NewFloat(1.0))
	require.NoError(t, err)
	require.Equal(t, "1.0000000000000000E+00", string(out))
	require.Len(t, out, 22)
}

func TestScratch_States(t *testing.T) {
	var s Scratch

	require.False(t, s.IsSet())
	require.Nil(t, s.Bytes())

	s.setInt(42)
	require.True(t, s.IsSet())
	require.Nil(t, s.Bytes())
	x, ok := s.intStash()
	require.True(t, ok)
	require.Equal(t, int64(42), x)

	s.SetBytes([]byte("abc"))
	require.True(t, s.IsSet())
	require.Equal(t, []byte("abc"), s.Bytes())
	_, ok = s.intStash()
	require.False(t, ok)

	s.Reset()
	require.False(t, s.IsSet())
	require.Nil(t, s.Bytes())
	_, ok = s.intStash()
	require.False(t, ok)
}

func TestResult_Accessors(t *testing.T) {
	require.Equal(t, FormSized, Sized(7).Form())
	require.Equal(t, 7, Sized(7).Len())

	require.Equal(t, FormWritten, Written(3).Form())
	require.Equal(t, 3, Written(3).Len())

	require.Equal(t, FormMaterialized, Materialized().Form())
	require.Equal(t, 0, Materialized().Len())
}

func TestForm_String(t *testing.T) {
	require.Equal(t, "sized", FormSized.String())
	require.Equal(t, "written", FormWritten.String())
	require.Equal(t, "materialized", FormMaterialized.String())
	require.Equal(t, "invalid", Form(0).String())
}
