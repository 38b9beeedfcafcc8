package wire

import (
	"encoding/binary"

	"github.com/arloliu/hessian2/errs"
)

// binaryChunkMax is the maximum byte count per non-final chunk (spec.md §3
// I5).
const binaryChunkMax = 4093

// EncodeBinary appends b to buf using the chunked, byte-counted encoding of
// spec.md §4.5. A value of 1023 bytes or fewer uses the shortest inline
// form; anything longer is chunked, and the final chunk is always the 0x42
// form regardless of the remainder's length.
func EncodeBinary(buf []byte, b []byte) []byte {
	n := len(b)

	if n <= 1023 {
		switch {
		case n == 0:
			return append(buf, 0x20)
		case n <= 15:
			return append(append(buf, byte(0x20+n)), b...)
		default:
			return append(append(buf, byte(0x34+(n>>8)), byte(n)), b...)
		}
	}

	for len(b) > binaryChunkMax {
		buf = appendBinaryChunk(buf, b[:binaryChunkMax], 0x41)
		b = b[binaryChunkMax:]
	}

	return appendBinaryChunk(buf, b, 0x42)
}

// appendBinaryChunk appends one chunk under the given chunk tag (0x41
// non-final, 0x42 final), always with an explicit big-endian uint16 length
// field.
func appendBinaryChunk(buf []byte, chunk []byte, tag byte) []byte {
	out := append(buf, tag)
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(chunk)))
	return append(append(out, tmp[:]...), chunk...)
}

// DecodeBinary reads a (possibly chunked) binary value starting at
// data[offset]. The caller must have already confirmed the first byte
// classifies as KindBinary. Chunk length fields are read as unsigned per
// spec.md §9 Q2.
func DecodeBinary(data []byte, offset int) ([]byte, int, error) {
	start := offset
	out := []byte{}

	for {
		if offset >= len(data) {
			return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		b := data[offset]

		var n int
		var headerLen int
		final := true

		switch {
		case b >= 0x20 && b <= 0x2F:
			n, headerLen = int(b-0x20), 1
		case b >= 0x34 && b <= 0x37:
			if offset+2 > len(data) {
				return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = (int(b-0x34)<<8)|int(data[offset+1]), 2
		case b == 0x41:
			if offset+3 > len(data) {
				return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = int(binary.BigEndian.Uint16(data[offset+1:offset+3])), 3
			final = false
		case b == 0x42:
			if offset+3 > len(data) {
				return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			n, headerLen = int(binary.BigEndian.Uint16(data[offset+1:offset+3])), 3
		default:
			return nil, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
		}

		offset += headerLen
		if offset+n > len(data) {
			return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}

		out = append(out, data[offset:offset+n]...)
		offset += n

		if final {
			return out, offset - start, nil
		}
	}
}
