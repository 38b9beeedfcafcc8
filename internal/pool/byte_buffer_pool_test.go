package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_growAndWrite(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3, 4, 5})
	require.Equal(t, []byte{1, 2, 3, 4, 5}, bb.Bytes())
	require.Equal(t, 5, bb.Len())
}

func TestByteBuffer_extendOrGrow(t *testing.T) {
	bb := NewByteBuffer(0)
	start := bb.ExtendOrGrow(3)
	require.Equal(t, 0, start)
	copy(bb.B[start:], []byte{9, 9, 9})
	require.Equal(t, []byte{9, 9, 9}, bb.Bytes())
}

func TestByteBuffer_reset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 4)
}

func TestByteBufferPool_getPutRoundTrip(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_discardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)
	bb := NewByteBuffer(100)
	p.Put(bb) // must not panic, and must not be retained beyond the threshold
	require.Equal(t, 4, p.Get().Cap())
}

func TestGetPutEncodeBuffer(t *testing.T) {
	bb := GetEncodeBuffer()
	bb.MustWrite([]byte{1})
	PutEncodeBuffer(bb)
}
