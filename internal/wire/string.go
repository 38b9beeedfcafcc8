package wire

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/arloliu/hessian2/errs"
)

// stringChunkMax is the maximum scalar count per non-final chunk (spec.md
// §3 I5).
const stringChunkMax = 0x8000

// EncodeString appends s to buf using the chunked, scalar-counted encoding
// of spec.md §4.4. A string short enough for a single chunk uses the
// shortest inline-length form; once chunking triggers, the final chunk is
// always the 0x53 form regardless of the remainder's length.
func EncodeString(buf []byte, s string) []byte {
	n := utf8.RuneCountInString(s)

	if n <= 0xFFFF {
		switch {
		case n == 0:
			return append(buf, 0x00)
		case n <= 31:
			return append(append(buf, byte(n)), s...)
		case n <= 1023:
			return append(append(buf, byte(0x30+(n>>8)), byte(n)), s...)
		default:
			return appendStringChunk(buf, s, n, 0x53)
		}
	}

	// Split into stringChunkMax-scalar chunks; every non-final chunk is
	// full (0x8000 scalars), the final chunk carries the remainder.
	runes := []rune(s)
	for len(runes) > stringChunkMax {
		chunk := string(runes[:stringChunkMax])
		buf = appendStringChunk(buf, chunk, stringChunkMax, 0x52)
		runes = runes[stringChunkMax:]
	}

	return appendStringChunk(buf, string(runes), len(runes), 0x53)
}

// appendStringChunk appends one chunk of n scalars under the given chunk
// tag (0x52 non-final, 0x53 final), always with an explicit big-endian
// uint16 length field.
func appendStringChunk(buf []byte, s string, n int, tag byte) []byte {
	out := append(buf, tag)
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(n))
	return append(append(out, tmp[:]...), s...)
}

// DecodeString reads a (possibly chunked) string value starting at
// data[offset]. The caller must have already confirmed the first byte
// classifies as KindString.
func DecodeString(data []byte, offset int) (string, int, error) {
	start := offset
	var out []byte

	for {
		if offset >= len(data) {
			return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		b := data[offset]

		var n int
		var headerLen int
		final := true

		switch {
		case b == 0x00:
			n, headerLen = 0, 1
		case b <= 0x1F:
			n, headerLen = int(b), 1
		case b >= 0x30 && b <= 0x33:
			if offset+2 > len(data) {
				return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = (int(b-0x30)<<8)|int(data[offset+1]), 2
		case b == 0x52:
			if offset+3 > len(data) {
				return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = int(binary.BigEndian.Uint16(data[offset+1:offset+3])), 3
			final = false
		case b == 0x53:
			if offset+3 > len(data) {
				return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = int(binary.BigEndian.Uint16(data[offset+1:offset+3])), 3
		default:
			return "", 0, errs.AtOffset(errs.ErrMalformedTag, offset)
		}

		offset += headerLen

		chunkBytes, err := scalarByteLen(data, offset, n)
		if err != nil {
			return "", 0, err
		}
		if offset+chunkBytes > len(data) {
			return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}

		out = append(out, data[offset:offset+chunkBytes]...)
		offset += chunkBytes

		if final {
			return string(out), offset - start, nil
		}
	}
}

// scalarByteLen returns the number of UTF-8 bytes, starting at data[offset],
// that constitute exactly n Unicode scalar values, using the standard
// leading-byte classification (spec.md §4.4).
func scalarByteLen(data []byte, offset int, n int) (int, error) {
	pos := offset
	for range n {
		if pos >= len(data) {
			return 0, errs.AtOffset(errs.ErrUTF8, pos)
		}
		lead := data[pos]
		var size int
		switch {
		case lead < 0x80:
			size = 1
		case lead < 0xE0:
			size = 2
		case lead < 0xF0:
			size = 3
		default:
			size = 4
		}
		if pos+size > len(data) {
			return 0, errs.AtOffset(errs.ErrUTF8, pos)
		}
		pos += size
	}

	return pos - offset, nil
}
