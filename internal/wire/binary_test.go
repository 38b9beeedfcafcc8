package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinary_roundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xAB}, 15),
		bytes.Repeat([]byte{0xAB}, 1023),
		bytes.Repeat([]byte{0xCD}, 4093*2+5),
	}

	for _, in := range inputs {
		buf := EncodeBinary(nil, in)
		got, n, err := DecodeBinary(buf, 0)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, in, got)
	}
}

func TestEncodeBinary_chunksAt4093(t *testing.T) {
	in := bytes.Repeat([]byte{0x01}, 4093*2+1)
	buf := EncodeBinary(nil, in)

	require.Equal(t, byte(0x41), buf[0])
	length := int(buf[1])<<8 | int(buf[2])
	require.Equal(t, 4093, length)
}

func TestEncodeBinary_chunkedSmallRemainderKeepsFinalForm(t *testing.T) {
	// Once chunking triggers, the final chunk must be the 0x42 form even
	// when the remainder would fit an inline-length form on its own.
	in := bytes.Repeat([]byte{0xAB}, 4093+5)
	buf := EncodeBinary(nil, in)

	final := buf[len(buf)-8:]
	require.Equal(t, []byte{0x42, 0x00, 0x05, 0xAB, 0xAB, 0xAB, 0xAB, 0xAB}, final)

	got, n, err := DecodeBinary(buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, in, got)
}

func TestDecodeBinary_malformed(t *testing.T) {
	_, _, err := DecodeBinary([]byte{0x4E}, 0)
	require.Error(t, err)
}

func TestDecodeBinary_truncated(t *testing.T) {
	_, _, err := DecodeBinary([]byte{0x41, 0x00}, 0)
	require.Error(t, err)
}
