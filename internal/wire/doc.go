// Package wire implements the low-level Hessian 2.0 bytecode: tag dispatch,
// and the compact integer, double, string, binary, and date encodings. It
// has no notion of maps, lists, or reference tables — those are built on
// top of it by the codec package.
//
// # Compact Forms
//
// The encoders here always pick the shortest form whose range covers the
// value (spec.md §4.10):
//
//	| Kind   | Range               | Bytes | Layout                |
//	|--------|---------------------|-------|-----------------------|
//	| int    | -0x10 .. 0x2F       | 1     | 0x90 + v              |
//	| int    | -0x800 .. 0x7FF     | 2     | (0xC8+v>>8), v&0xFF   |
//	| int    | -0x40000 .. 0x3FFFF | 3     | (0xD4+v>>16), hi, lo  |
//	| int    | full int32          | 5     | 0x49, be32            |
//	| long   | full int64          | 9     | 0x4C, be64            |
//	| double | 0.0 / 1.0           | 1     | 0x5B / 0x5C           |
//	| double | int8 exact          | 2     | 0x5D, i8              |
//	| double | int16 exact         | 3     | 0x5E, be16            |
//	| double | millis-int32 exact  | 5     | 0x5F, be32(v*1000)    |
//	| double | otherwise           | 9     | 0x44, be64 IEEE       |
//	| string | n <= 31             | 1+    | (n), utf8             |
//	| string | n <= 1023           | 2+    | (0x30+n>>8), lo, utf8 |
//	| string | n <= 0xFFFF         | 3+    | 0x53, be16(n), utf8   |
//	| binary | n <= 15             | 1+    | (0x20+n), bytes       |
//	| binary | n <= 1023           | 2+    | (0x34+n>>8), lo, bytes|
//
// String length fields count Unicode scalar values; binary length fields
// count bytes. Values past the single-chunk thresholds are chunked: 0x52
// chunks of 0x8000 scalars ending in one 0x53 chunk for strings, 0x41
// chunks of 4093 bytes ending in one 0x42 chunk for binary.
package wire
