// Package hessian2 implements a codec for the Hessian 2.0 binary
// serialization format: a compact, self-describing wire format historically
// used by Java RPC systems (e.g. Dubbo) for cross-language object
// transport.
//
// # Core Features
//
//   - Bytecode tag dispatch over the full Hessian 2.0 value space
//   - Compact integer/long and double encodings, always choosing the
//     shortest representation that preserves the exact value
//   - Chunked, scalar-counted string encoding and chunked, byte-counted
//     binary encoding
//   - Typed (`M`) and untyped (`H`) maps, with type-name interning
//   - The full list decode matrix: typed/untyped, fixed/variable length
//   - Back-references for shared and cyclic composite values
//   - Class-defined object (`C`/`O`) decoding, materialized as typed maps
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/hessian2"
//	    "github.com/arloliu/hessian2/value"
//	)
//
//	data, err := hessian2.Encode(value.NewMap(
//	    value.Entry{Key: value.String("a"), Value: value.Int(1)},
//	))
//
//	v, err := hessian2.Decode(data)
//	m := v.(*value.Map)
//
// # Package Structure
//
// This package provides the two top-level entry points over the codec
// package's Encoder/Decoder engines; both accept the codec package's
// options. To reuse an Encoder/Decoder's configuration across several
// calls, use the codec package directly.
package hessian2

import (
	"github.com/arloliu/hessian2/codec"
	"github.com/arloliu/hessian2/value"
)

// Encode converts v into a self-delimiting Hessian 2.0 byte stream.
//
// Encode constructs a fresh Encoder for this call; its interning tables are
// not shared with any other Encode call (see codec.Encoder).
func Encode(v value.Value, opts ...codec.EncodeOption) ([]byte, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	return enc.Encode(v)
}

// Decode reads a single self-delimiting value from the start of data.
//
// Decode constructs a fresh Decoder for this call; its interning tables are
// not shared with any other Decode call (see codec.Decoder).
func Decode(data []byte, opts ...codec.DecodeOption) (value.Value, error) {
	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}
	return dec.Decode(data)
}

// WithX34AsBytes re-exports codec.WithX34AsBytes for callers that only
// import the root package.
func WithX34AsBytes(v bool) codec.DecodeOption {
	return codec.WithX34AsBytes(v)
}
