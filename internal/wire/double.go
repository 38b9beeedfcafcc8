package wire

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/hessian2/errs"
)

// EncodeDouble appends the shortest compact encoding of v to buf per
// spec.md §4.3, preferring 0x5B/0x5C/0x5D/0x5E/0x5F in that order and
// falling back to the full 8-byte IEEE 754 form (0x44) only when none of
// the lossy-but-exact shortcuts round-trips v exactly.
func EncodeDouble(buf []byte, v float64) []byte {
	switch {
	case v == 0.0:
		return append(buf, 0x5B)
	case v == 1.0:
		return append(buf, 0x5C)
	case isIntegralInRange(v, -128, 127):
		return append(buf, 0x5D, byte(int8(v)))
	case isIntegralInRange(v, -32768, 32767):
		out := append(buf, 0x5E)
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(int16(v)))
		return append(out, tmp[:]...)
	default:
		if millis, ok := millisExact(v); ok {
			out := append(buf, 0x5F)
			var tmp [4]byte
			binary.BigEndian.PutUint32(tmp[:], uint32(millis))
			return append(out, tmp[:]...)
		}
		out := append(buf, 0x44)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
		return append(out, tmp[:]...)
	}
}

func isIntegralInRange(v float64, lo, hi int64) bool {
	if math.Trunc(v) != v {
		return false
	}
	return v >= float64(lo) && v <= float64(hi)
}

// millisExact reports whether v*1000 is an exact int32, i.e. whether the
// 0x5F shortcut round-trips v without loss.
func millisExact(v float64) (int32, bool) {
	scaled := v * 1000
	if math.Trunc(scaled) != scaled {
		return 0, false
	}
	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return 0, false
	}
	i32 := int32(scaled)
	return i32, float64(i32) == scaled && float64(i32)/1000.0 == v
}

// DecodeDouble reads a single double dispatch at data[offset]. The caller
// must have already confirmed the byte classifies as KindDouble.
func DecodeDouble(data []byte, offset int) (float64, int, error) {
	if offset >= len(data) {
		return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}
	b := data[offset]

	switch b {
	case 0x5B:
		return 0.0, 1, nil
	case 0x5C:
		return 1.0, 1, nil
	case 0x5D:
		if offset+2 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		return float64(int8(data[offset+1])), 2, nil
	case 0x5E:
		if offset+3 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := int16(binary.BigEndian.Uint16(data[offset+1 : offset+3]))
		return float64(v), 3, nil
	case 0x5F:
		if offset+5 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := int32(binary.BigEndian.Uint32(data[offset+1 : offset+5]))
		return float64(v) / 1000.0, 5, nil
	case 0x44:
		if offset+9 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		bits := binary.BigEndian.Uint64(data[offset+1 : offset+9])
		return math.Float64frombits(bits), 9, nil
	default:
		return 0, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}
