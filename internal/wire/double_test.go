package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDouble_scenarios(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want []byte
	}{
		{"zero", 0.0, []byte{0x5B}},
		{"one", 1.0, []byte{0x5C}},
		{"int8 exact", 3.0, []byte{0x5D, 0x03}},
		{"millis exact", 3.14, []byte{0x5F, 0x00, 0x00, 0x0C, 0x44}},
		{"full ieee754", 3.1415926, []byte{0x44, 0x40, 0x09, 0x21, 0xFB, 0x4D, 0x12, 0xD8, 0x4A}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeDouble(nil, tc.v)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeDouble_neverUses0x5FUnlessExact(t *testing.T) {
	v := 3.14159
	got := EncodeDouble(nil, v)
	require.NotEqual(t, byte(0x5F), got[0])
}

func TestDecodeDouble_roundTrip(t *testing.T) {
	values := []float64{0.0, 1.0, 3.0, -3.0, 127, -128, 32767, -32768, 3.14, -3.14, 3.1415926}

	for _, v := range values {
		buf := EncodeDouble(nil, v)
		got, n, err := DecodeDouble(buf, 0)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestDecodeDouble_millisShortcutIsLossy(t *testing.T) {
	// 0x5F stores v*1000 as int32; decoding divides back by 1000, which
	// is only exact when the encoder actually used this form.
	raw := []byte{0x5F, 0x00, 0x00, 0x0C, 0x45} // 3141 / 1000
	got, _, err := DecodeDouble(raw, 0)
	require.NoError(t, err)
	require.Equal(t, 3.141, got)
}

func TestDecodeDouble_malformed(t *testing.T) {
	_, _, err := DecodeDouble([]byte{0x00}, 0)
	require.Error(t, err)
}
