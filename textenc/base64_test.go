package textenc

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgtext/errs"
	"github.com/arloliu/pgtext/value"
)

func TestBase64_MaterializedElement(t *testing.T) {
	enc, err := NewBase64()
	require.NoError(t, err)

	tests := []struct {
		name string
		val  value.Value
		want string
	}{
		{name: "text", val: value.NewText("hello"), want: "aGVsbG8="},
		{name: "empty", val: value.NewText(""), want: ""},
		{name: "one byte", val: value.NewBytes([]byte{0xDE}), want: "3g=="},
		{name: "two bytes", val: value.NewBytes([]byte{0xDE, 0xAD}), want: "3q0="},
		{name: "three bytes", val: value.NewBytes([]byte{0xDE, 0xAD, 0xBE}), want: "3q2+"},
		{name: "null is empty", val: value.NewNull(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(enc, tt.val)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(out))
		})
	}
}

func TestBase64_SizedElement(t *testing.T) {
	// Integer elements answer the size query, so the raw digits land in
	// dst and get transcoded in place.
	enc, err := NewBase64(WithElement(Integer{}))
	require.NoError(t, err)

	out, err := Encode(enc, value.NewInt(12345))
	require.NoError(t, err)
	require.Equal(t, "MTIzNDU=", string(out))

	decoded, err := base64.StdEncoding.DecodeString(string(out))
	require.NoError(t, err)
	require.Equal(t, "12345", string(decoded))
}

func TestBase64_SizeQueryScalesInnerSize(t *testing.T) {
	enc, err := NewBase64(WithElement(Integer{}))
	require.NoError(t, err)

	var s Scratch
	res, err := enc.Encode(value.NewInt(12345), nil, &s)
	require.NoError(t, err)
	require.Equal(t, FormSized, res.Form())
	require.Equal(t, base64.StdEncoding.EncodedLen(5), res.Len())
}

func TestBase64_InnerFallbackMaterializes(t *testing.T) {
	// Integers past the fast-path bound materialize inside the wrapper;
	// the base64 transcode must follow them into the scratch.
	enc, err := NewBase64(WithElement(Integer{}))
	require.NoError(t, err)

	out, err := Encode(enc, value.NewInt(100000000000000))
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(string(out))
	require.NoError(t, err)
	require.Equal(t, "100000000000000", string(decoded))
}

func TestBase64_RoundTrip(t *testing.T) {
	enc, err := NewBase64()
	require.NoError(t, err)

	payloads := [][]byte{
		{},
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte{0x00, 0xFF, 0x10, 0x80, 0x7F},
		bytes.Repeat([]byte{0xA5}, 1024),
	}

	for _, p := range payloads {
		out, err := Encode(enc, value.NewBytes(p))
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(string(out))
		require.NoError(t, err)
		require.Equal(t, p, append([]byte{}, decoded...), "payload length %d", len(p))
	}
}

func TestBase64_ElementErrorPropagates(t *testing.T) {
	enc, err := NewBase64(WithElement(Integer{}))
	require.NoError(t, err)

	_, err = Encode(enc, value.NewText("nope"))
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestBase64InPlace(t *testing.T) {
	// The in-place transcode must agree with the standard library for
	// every group remainder.
	for n := 0; n <= 64; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*37 + 11)
		}

		buf := make([]byte, base64.StdEncoding.EncodedLen(n))
		copy(buf, src)

		got := base64InPlace(buf, n)
		require.Equal(t, base64.StdEncoding.EncodedLen(n), got, "length %d", n)
		require.Equal(t, base64.StdEncoding.EncodeToString(src), string(buf[:got]), "length %d", n)
	}
}
