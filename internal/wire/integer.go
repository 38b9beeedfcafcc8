package wire

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/hessian2/errs"
)

// EncodeInt appends the shortest compact encoding of v to buf and returns
// the result, per spec.md §4.2's tie-break table (shortest form always
// wins; long-only forms are decode-only, so encode always emits one of the
// int rows or the 9-byte long row).
func EncodeInt(buf []byte, v int64) []byte {
	switch {
	case v >= -0x10 && v <= 0x2F:
		return append(buf, byte(0x90+v))
	case v >= -0x800 && v <= 0x7FF:
		return append(buf, byte(0xC8+(v>>8)), byte(v))
	case v >= -0x40000 && v <= 0x3FFFF:
		return append(buf, byte(0xD4+(v>>16)), byte(v>>8), byte(v))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		out := append(buf, 0x49)
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(int32(v)))
		return append(out, tmp[:]...)
	default:
		out := append(buf, 0x4C)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(v))
		return append(out, tmp[:]...)
	}
}

// IntLen returns the number of bytes EncodeInt would append for v, without
// allocating; used by property tests verifying P2 (shortest-form choice).
func IntLen(v int64) int {
	switch {
	case v >= -0x10 && v <= 0x2F:
		return 1
	case v >= -0x800 && v <= 0x7FF:
		return 2
	case v >= -0x40000 && v <= 0x3FFFF:
		return 3
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return 5
	default:
		return 9
	}
}

// DecodeInt reads a single int/long dispatch at data[offset], returning the
// decoded 64-bit value, the number of bytes consumed, and an error. The
// caller must have already confirmed the byte at offset classifies as
// KindInt or KindLong.
func DecodeInt(data []byte, offset int) (int64, int, error) {
	if offset >= len(data) {
		return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}
	b := data[offset]

	switch {
	case b >= 0x80 && b <= 0xBF:
		return int64(b) - 0x90, 1, nil
	case b >= 0xC0 && b <= 0xCF:
		if offset+2 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := (int64(b)-0xC8)<<8 | int64(data[offset+1])
		return v, 2, nil
	case b >= 0xD0 && b <= 0xD7:
		if offset+3 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := (int64(b)-0xD4)<<16 | int64(data[offset+1])<<8 | int64(data[offset+2])
		return v, 3, nil
	case b == 0x49:
		if offset+5 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := int32(binary.BigEndian.Uint32(data[offset+1 : offset+5]))
		return int64(v), 5, nil

	// long forms
	case b >= 0xD8 && b <= 0xEF:
		// Corrected per spec.md §9 Q1: bias is 0xE0, yielding -8..15, not
		// the source's 0xD8 bias (0..23). A byte of 0xE0 must decode to 0.
		return int64(b) - 0xE0, 1, nil
	case b >= 0xF0 && b <= 0xFF:
		if offset+2 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := (int64(b)-0xF8)<<8 | int64(data[offset+1])
		return v, 2, nil
	case b >= 0x38 && b <= 0x3F:
		if offset+3 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := (int64(b)-0x3C)<<16 | int64(data[offset+1])<<8 | int64(data[offset+2])
		return v, 3, nil
	case b == 0x59:
		if offset+5 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := int32(binary.BigEndian.Uint32(data[offset+1 : offset+5]))
		return int64(v), 5, nil
	case b == 0x4C:
		if offset+9 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := int64(binary.BigEndian.Uint64(data[offset+1 : offset+9]))
		return v, 9, nil
	default:
		return 0, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}
