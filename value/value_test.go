package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindDouble, "double"},
		{KindString, "string"},
		{KindBinary, "binary"},
		{KindDate, "date"},
		{KindList, "list"},
		{KindMap, "map"},
		{Kind(0xFF), "unknown"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.k.String())
	}
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf(Int(1))
	require.True(t, ok)
	require.Equal(t, KindInt, k)

	_, ok = KindOf(nil)
	require.False(t, ok)
}

func TestMap_ClassValue(t *testing.T) {
	typed := NewTypedMap("com.example.Point")
	cv, ok := typed.ClassValue()
	require.True(t, ok)
	require.Equal(t, String("com.example.Point"), cv)

	_, ok = NewMap().ClassValue()
	require.False(t, ok)
}

func TestMap_SetAndGet(t *testing.T) {
	m := NewMap()

	m.Set(String("a"), Int(1))
	m.Set(String("b"), Int(2))
	got, ok := m.Get(String("a"))
	require.True(t, ok)
	require.Equal(t, Int(1), got)

	// Replacing keeps the entry's first-seen position.
	m.Set(String("a"), Int(3))
	require.Len(t, m.Entries, 2)
	require.Equal(t, String("a"), m.Entries[0].Key)
	require.Equal(t, Int(3), m.Entries[0].Value)

	_, ok = m.Get(String("missing"))
	require.False(t, ok)
}

func TestMap_GetBinaryKey(t *testing.T) {
	m := NewMap()
	m.Set(Binary{0x01, 0x02}, Int(1))

	got, ok := m.Get(Binary{0x01, 0x02})
	require.True(t, ok)
	require.Equal(t, Int(1), got)

	_, ok = m.Get(Binary{0x01, 0x03})
	require.False(t, ok)
}

func TestMap_GetCompositeKeyByIdentity(t *testing.T) {
	inner := NewList(Int(1))
	m := NewMap()
	m.Set(inner, Int(1))

	_, ok := m.Get(NewList(Int(1)))
	require.False(t, ok, "structurally equal but distinct composite keys must not match")

	got, ok := m.Get(inner)
	require.True(t, ok)
	require.Equal(t, Int(1), got)
}
