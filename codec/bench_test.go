package codec

import (
	"strings"
	"testing"

	"github.com/arloliu/hessian2/value"
)

func BenchmarkEncoder_Int_Compact(b *testing.B) {
	v := value.Int(42)

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(v)
	}
}

func BenchmarkEncoder_Int_Long(b *testing.B) {
	v := value.Int(9_000_000_000_000_000)

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(v)
	}
}

func BenchmarkEncoder_String_Short(b *testing.B) {
	v := value.String("hello")

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(v)
	}
}

func BenchmarkEncoder_String_Chunked(b *testing.B) {
	v := value.String(strings.Repeat("x", 0x12000))

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(v)
	}
}

func BenchmarkEncoder_String_UTF8(b *testing.B) {
	v := value.String("用户错误：无效的输入")

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(v)
	}
}

func BenchmarkEncoder_Map(b *testing.B) {
	m := value.NewMap(
		value.Entry{Key: value.String("a"), Value: value.Int(1)},
		value.Entry{Key: value.String("b"), Value: value.String("two")},
		value.Entry{Key: value.String("c"), Value: value.Double(3.14)},
	)

	b.ResetTimer()
	for b.Loop() {
		enc, _ := NewEncoder()
		_, _ = enc.Encode(m)
	}
}

func BenchmarkDecoder_Int_Compact(b *testing.B) {
	data := []byte{0x90 + 42}

	b.ResetTimer()
	for b.Loop() {
		dec, _ := NewDecoder()
		_, _ = dec.Decode(data)
	}
}

func BenchmarkDecoder_String_Short(b *testing.B) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}

	b.ResetTimer()
	for b.Loop() {
		dec, _ := NewDecoder()
		_, _ = dec.Decode(data)
	}
}

func BenchmarkDecoder_Map(b *testing.B) {
	enc, _ := NewEncoder()
	data, err := enc.Encode(value.NewMap(
		value.Entry{Key: value.String("a"), Value: value.Int(1)},
		value.Entry{Key: value.String("b"), Value: value.String("two")},
		value.Entry{Key: value.String("c"), Value: value.Double(3.14)},
	))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		dec, _ := NewDecoder()
		_, _ = dec.Decode(data)
	}
}
