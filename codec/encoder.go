// Package codec implements the Hessian 2.0 Encoder and Decoder engines on
// top of the internal/wire bytecode primitives and internal/refs interning
// tables.
package codec

import (
	"github.com/arloliu/hessian2/errs"
	"github.com/arloliu/hessian2/internal/options"
	"github.com/arloliu/hessian2/internal/pool"
	"github.com/arloliu/hessian2/internal/refs"
	"github.com/arloliu/hessian2/internal/wire"
	"github.com/arloliu/hessian2/value"
)

// Encoder converts a single value.Value into Hessian 2.0 wire bytes.
//
// Note: An Encoder is NOT safe for concurrent use. Each Encode call creates
// its own REF_TABLE and TYPE_TABLE (spec.md §5), so no interning state
// carries over from one call to the next and an Encoder's configuration can
// be reused across sequential calls.
type Encoder struct {
	opts EncodeOptions
}

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...EncodeOption) (*Encoder, error) {
	e := &Encoder{}
	if err := options.Apply(&e.opts, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode converts v into a self-delimiting Hessian 2.0 byte stream.
func (e *Encoder) Encode(v value.Value) ([]byte, error) {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	r := refs.NewEncoderRefs()
	t := refs.NewEncoderTypes()

	out, err := encodeValue(buf.B, r, t, v)
	if err != nil {
		return nil, err
	}
	// encodeValue grows buf.B via append, which may return a new backing
	// array; write it back so the pooled buffer keeps the grown capacity
	// instead of discarding it when returned to the pool.
	buf.B = out

	result := make([]byte, len(out))
	copy(result, out)

	return result, nil
}

// encodeValue dispatches v to its wire encoding, recursing into *value.List
// and *value.Map bodies.
func encodeValue(buf []byte, r *refs.EncoderRefs, t *refs.EncoderTypes, v value.Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return wire.EncodeNull(buf), nil
	case value.Null:
		return wire.EncodeNull(buf), nil
	case value.Bool:
		return wire.EncodeBool(buf, bool(val)), nil
	case value.Int:
		return wire.EncodeInt(buf, int64(val)), nil
	case value.Double:
		return wire.EncodeDouble(buf, float64(val)), nil
	case value.String:
		return wire.EncodeString(buf, string(val)), nil
	case value.Binary:
		return wire.EncodeBinary(buf, []byte(val)), nil
	case value.Date:
		return wire.EncodeDate(buf, val.Time()), nil
	case *value.List:
		return encodeList(buf, r, t, val)
	case *value.Map:
		return encodeMap(buf, r, t, val)
	default:
		// value.Value's sole method is unexported, so only the nine types
		// above can ever implement it; this branch can't be reached through
		// the exported API. Kept so encodeValue stays exhaustive if the
		// value model ever grows a tenth kind.
		return nil, errs.ErrUnsupportedValue
	}
}

// encodeList encodes l as an untyped fixed-length list (spec.md §4.8: the
// encoder never emits the typed or variable-length forms), participating in
// REF_TABLE identity tracking.
func encodeList(buf []byte, r *refs.EncoderRefs, t *refs.EncoderTypes, l *value.List) ([]byte, error) {
	if idx, ok := r.Lookup(l); ok {
		buf = append(buf, 0x51)
		return wire.EncodeInt(buf, int64(idx)), nil
	}
	r.Register(l)

	n := len(l.Items)
	if n <= 15 {
		buf = append(buf, byte(0x78+n))
	} else {
		buf = append(buf, 0x58)
		buf = wire.EncodeInt(buf, int64(n))
	}

	var err error
	for _, item := range l.Items {
		buf, err = encodeValue(buf, r, t, item)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// encodeMap encodes m, emitting the typed `M` form when m carries a class
// name and the untyped `H` form otherwise (spec.md §4.7).
func encodeMap(buf []byte, r *refs.EncoderRefs, t *refs.EncoderTypes, m *value.Map) ([]byte, error) {
	if idx, ok := r.Lookup(m); ok {
		buf = append(buf, 0x51)
		return wire.EncodeInt(buf, int64(idx)), nil
	}
	r.Register(m)

	if m.HasClass {
		buf = append(buf, 0x4D)
		buf = writeTypeName(buf, t, m.Class)
	} else {
		buf = append(buf, 0x48)
	}

	var err error
	for _, e := range m.Entries {
		buf, err = encodeValue(buf, r, t, e.Key)
		if err != nil {
			return nil, err
		}
		buf, err = encodeValue(buf, r, t, e.Value)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, 0x5A), nil
}

// writeTypeName applies the type-name protocol (spec.md §4.7): a name seen
// for the first time is interned and emitted as a string; a repeat is
// emitted as its TYPE_TABLE index.
func writeTypeName(buf []byte, t *refs.EncoderTypes, name string) []byte {
	if idx, ok := t.Lookup(name); ok {
		return wire.EncodeInt(buf, int64(idx))
	}
	t.Register(name)
	return wire.EncodeString(buf, name)
}
