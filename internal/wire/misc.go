package wire

import "github.com/arloliu/hessian2/errs"

// EncodeBool appends the single-byte boolean encoding of v to buf.
func EncodeBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 0x54)
	}
	return append(buf, 0x46)
}

// DecodeBool reads a boolean dispatch at data[offset].
func DecodeBool(data []byte, offset int) (bool, int, error) {
	if offset >= len(data) {
		return false, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}
	switch data[offset] {
	case 0x54:
		return true, 1, nil
	case 0x46:
		return false, 1, nil
	default:
		return false, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}

// EncodeNull appends the single-byte null encoding to buf.
func EncodeNull(buf []byte) []byte {
	return append(buf, 0x4E)
}
