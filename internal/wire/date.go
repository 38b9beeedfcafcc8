package wire

import (
	"encoding/binary"
	"time"

	"github.com/arloliu/hessian2/errs"
)

// EncodeDate appends the 64-bit millisecond form (0x4A) of t to buf, per
// spec.md §4.6: the encoder only ever emits this form.
func EncodeDate(buf []byte, t time.Time) []byte {
	out := append(buf, 0x4A)
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(t.UnixMilli()))
	return append(out, tmp[:]...)
}

// DecodeDate reads a date dispatch at data[offset], accepting both the
// 0x4A (millisecond int64) and 0x4B (minute int32) forms. The result is
// always materialized in UTC (spec.md §9 Q5), independent of the host's
// local time zone.
func DecodeDate(data []byte, offset int) (time.Time, int, error) {
	if offset >= len(data) {
		return time.Time{}, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}

	switch data[offset] {
	case 0x4A:
		if offset+9 > len(data) {
			return time.Time{}, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		millis := int64(binary.BigEndian.Uint64(data[offset+1 : offset+9]))
		return time.UnixMilli(millis).UTC(), 9, nil
	case 0x4B:
		if offset+5 > len(data) {
			return time.Time{}, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		minutes := int32(binary.BigEndian.Uint32(data[offset+1 : offset+5]))
		return time.Unix(int64(minutes)*60, 0).UTC(), 5, nil
	default:
		return time.Time{}, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}
