package wire

import "testing"

func TestClassifyTag(t *testing.T) {
	cases := []struct {
		name string
		b    byte
		want Kind
	}{
		{"empty string", 0x00, KindString},
		{"short string max", 0x1F, KindString},
		{"string len 2-byte", 0x30, KindString},
		{"string chunk", 0x52, KindString},
		{"string final chunk", 0x53, KindString},
		{"empty binary", 0x20, KindBinary},
		{"binary chunk", 0x41, KindBinary},
		{"binary final chunk", 0x42, KindBinary},
		{"int compact 1-byte", 0x90, KindInt},
		{"int 4-byte", 0x49, KindInt},
		{"long 1-byte", 0xE0, KindLong},
		{"long 8-byte", 0x4C, KindLong},
		{"double zero", 0x5B, KindDouble},
		{"double full", 0x44, KindDouble},
		{"bool true", 0x54, KindBool},
		{"bool false", 0x46, KindBool},
		{"date millis", 0x4A, KindDate},
		{"date minutes", 0x4B, KindDate},
		{"null", 0x4E, KindNull},
		{"untyped map", 0x48, KindMap},
		{"typed map", 0x4D, KindMap},
		{"object", 0x4F, KindObject},
		{"compact object", 0x60, KindObject},
		{"typed var list", 0x55, KindList},
		{"typed fixed list (V)", 0x56, KindList},
		{"untyped var list", 0x57, KindList},
		{"untyped fixed list (int len)", 0x58, KindList},
		{"typed fixed inline", 0x70, KindList},
		{"untyped fixed inline", 0x78, KindList},
		{"reference", 0x51, KindRef},
		{"class def", 0x43, KindClassDef},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyTag(tc.b); got != tc.want {
				t.Fatalf("ClassifyTag(0x%02X) = %v, want %v", tc.b, got, tc.want)
			}
		})
	}
}
