package codec

import (
	"github.com/arloliu/hessian2/errs"
	"github.com/arloliu/hessian2/internal/options"
	"github.com/arloliu/hessian2/internal/refs"
	"github.com/arloliu/hessian2/internal/wire"
	"github.com/arloliu/hessian2/value"
)

// Decoder converts Hessian 2.0 wire bytes into a single value.Value.
//
// Note: A Decoder is NOT safe for concurrent use. Each Decode call creates
// its own REF_TABLE, TYPE_TABLE, and CLASS_TABLE (spec.md §5), so no
// interning state carries over from one call to the next and a Decoder's
// configuration can be reused across sequential calls.
type Decoder struct {
	opts DecodeOptions
}

// NewDecoder creates a Decoder configured by opts.
func NewDecoder(opts ...DecodeOption) (*Decoder, error) {
	d := &Decoder{}
	if err := options.Apply(&d.opts, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode reads a single self-delimiting value from the start of data.
// Trailing bytes past the decoded value are not an error: spec.md §6
// describes no framing around the value, so a caller that concatenates
// multiple values is responsible for its own framing.
func (d *Decoder) Decode(data []byte) (value.Value, error) {
	st := &decodeState{
		data:    data,
		refs:    refs.NewDecoderRefs(),
		types:   refs.NewDecoderTypes(),
		classes: refs.NewDecoderClasses(),
	}

	v, _, err := st.decodeValue(0)
	return v, err
}

// decodeState carries the per-call interning tables through the recursive
// descent.
type decodeState struct {
	data    []byte
	refs    *refs.DecoderRefs
	types   *refs.DecoderTypes
	classes *refs.DecoderClasses
}

// decodeValue dispatches on the tag byte at offset, returning the decoded
// value, the number of bytes consumed, and any error encountered.
func (st *decodeState) decodeValue(offset int) (value.Value, int, error) {
	if offset >= len(st.data) {
		return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}

	switch wire.ClassifyTag(st.data[offset]) {
	case wire.KindNull:
		return value.Null{}, 1, nil
	case wire.KindBool:
		b, n, err := wire.DecodeBool(st.data, offset)
		return value.Bool(b), n, err
	case wire.KindInt, wire.KindLong:
		i, n, err := wire.DecodeInt(st.data, offset)
		return value.Int(i), n, err
	case wire.KindDouble:
		f, n, err := wire.DecodeDouble(st.data, offset)
		return value.Double(f), n, err
	case wire.KindString:
		s, n, err := wire.DecodeString(st.data, offset)
		return value.String(s), n, err
	case wire.KindBinary:
		b, n, err := wire.DecodeBinary(st.data, offset)
		return value.Binary(b), n, err
	case wire.KindDate:
		t, n, err := wire.DecodeDate(st.data, offset)
		return value.Date(t), n, err
	case wire.KindRef:
		return st.decodeRef(offset)
	case wire.KindMap:
		return st.decodeMap(offset)
	case wire.KindList:
		return st.decodeList(offset)
	case wire.KindClassDef:
		return st.decodeClassDefThenValue(offset)
	case wire.KindObject:
		return st.decodeObject(offset)
	default:
		return nil, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}

func (st *decodeState) decodeRef(offset int) (value.Value, int, error) {
	start := offset
	offset++ // consume 0x51

	idx, n, err := wire.DecodeInt(st.data, offset)
	if err != nil {
		return nil, 0, err
	}
	offset += n

	v, ok := st.refs.At(int(idx))
	if !ok {
		return nil, 0, errs.AtOffset(errs.ErrBadReference, start)
	}

	return v, offset - start, nil
}

// readTypeName applies the decode-side type-name protocol (spec.md §4.7):
// a string chunk interns a new TYPE_TABLE entry and yields itself; an
// int/long chunk yields the entry at that TYPE_TABLE index.
func (st *decodeState) readTypeName(offset int) (string, int, error) {
	if offset >= len(st.data) {
		return "", 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}

	switch wire.ClassifyTag(st.data[offset]) {
	case wire.KindString:
		name, n, err := wire.DecodeString(st.data, offset)
		if err != nil {
			return "", 0, err
		}
		st.types.Register(name)
		return name, n, nil
	case wire.KindInt, wire.KindLong:
		idx, n, err := wire.DecodeInt(st.data, offset)
		if err != nil {
			return "", 0, err
		}
		name, ok := st.types.At(int(idx))
		if !ok {
			return "", 0, errs.AtOffset(errs.ErrBadTypeIndex, offset)
		}
		return name, n, nil
	default:
		return "", 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
}

func (st *decodeState) decodeMap(offset int) (value.Value, int, error) {
	start := offset
	tag := st.data[offset]

	m := &value.Map{}
	st.refs.Register(m) // I1: register before reading the body.
	offset++

	switch tag {
	case 0x4D:
		name, n, err := st.readTypeName(offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n
		m.HasClass = true
		m.Class = name
	case 0x48:
		// untyped, nothing to read
	default:
		return nil, 0, errs.AtOffset(errs.ErrMalformedTag, start)
	}

	for {
		if offset >= len(st.data) {
			return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		if st.data[offset] == 0x5A {
			offset++
			break
		}

		key, n, err := st.decodeValue(offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n

		val, n, err := st.decodeValue(offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n

		m.Entries = append(m.Entries, value.Entry{Key: key, Value: val})
	}

	return m, offset - start, nil
}

func (st *decodeState) decodeList(offset int) (value.Value, int, error) {
	start := offset
	tag := st.data[offset]

	l := &value.List{}
	st.refs.Register(l) // I1: register before reading elements.
	offset++

	readN := func() (int, error) {
		n, consumed, err := wire.DecodeInt(st.data, offset)
		if err != nil {
			return 0, err
		}
		offset += consumed
		return int(n), nil
	}

	appendValues := func(count int) error {
		for range count {
			v, n, err := st.decodeValue(offset)
			if err != nil {
				return err
			}
			offset += n
			l.Items = append(l.Items, v)
		}
		return nil
	}

	appendUntilTerminator := func() error {
		for {
			if offset >= len(st.data) {
				return errs.AtOffset(errs.ErrTruncatedInput, offset)
			}
			if st.data[offset] == 0x5A {
				offset++
				return nil
			}
			v, n, err := st.decodeValue(offset)
			if err != nil {
				return err
			}
			offset += n
			l.Items = append(l.Items, v)
		}
	}

	skipTypeName := func() error {
		_, n, err := st.readTypeName(offset)
		if err != nil {
			return err
		}
		offset += n
		return nil
	}

	switch {
	case tag == 0x55: // typed variable
		if err := skipTypeName(); err != nil {
			return nil, 0, err
		}
		if err := appendUntilTerminator(); err != nil {
			return nil, 0, err
		}
	case tag == 0x56: // typed fixed, int length
		if err := skipTypeName(); err != nil {
			return nil, 0, err
		}
		n, err := readN()
		if err != nil {
			return nil, 0, err
		}
		if err := appendValues(n); err != nil {
			return nil, 0, err
		}
	case tag == 0x57: // untyped variable
		if err := appendUntilTerminator(); err != nil {
			return nil, 0, err
		}
	case tag == 0x58: // untyped fixed, int length
		n, err := readN()
		if err != nil {
			return nil, 0, err
		}
		if err := appendValues(n); err != nil {
			return nil, 0, err
		}
	case tag >= 0x70 && tag <= 0x77: // typed fixed, inline length
		if err := skipTypeName(); err != nil {
			return nil, 0, err
		}
		if err := appendValues(int(tag - 0x70)); err != nil {
			return nil, 0, err
		}
	case tag >= 0x78 && tag <= 0x7F: // untyped fixed, inline length
		if err := appendValues(int(tag - 0x78)); err != nil {
			return nil, 0, err
		}
	default:
		return nil, 0, errs.AtOffset(errs.ErrMalformedTag, start)
	}

	return l, offset - start, nil
}

// decodeClassDefThenValue consumes a `C` record and registers it in
// CLASS_TABLE, then decodes and returns the value that follows it — a `C`
// record is never itself a complete value (spec.md §4.11).
func (st *decodeState) decodeClassDefThenValue(offset int) (value.Value, int, error) {
	start := offset
	offset++ // consume 0x43

	name, n, err := wire.DecodeString(st.data, offset)
	if err != nil {
		return nil, 0, err
	}
	offset += n

	fieldCount, n, err := wire.DecodeInt(st.data, offset)
	if err != nil {
		return nil, 0, err
	}
	if fieldCount < 0 {
		return nil, 0, errs.AtOffset(errs.ErrMalformedTag, offset)
	}
	offset += n

	// Each field name is at least one byte, so a count exceeding the
	// remaining input can never be satisfied.
	if fieldCount > int64(len(st.data)-offset) {
		return nil, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}

	fields := make([]string, fieldCount)
	for i := range fields {
		fieldName, n, err := wire.DecodeString(st.data, offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n
		fields[i] = fieldName
	}

	st.classes.Register(refs.ClassDef{Name: name, Fields: fields})

	v, n, err := st.decodeValue(offset)
	if err != nil {
		return nil, 0, err
	}
	offset += n

	return v, offset - start, nil
}

// decodeObject decodes `O` (0x4F, explicit definition index) and the
// compact 0x60-0x6F forms (inline definition index tag-0x60), materializing
// the result as a typed *value.Map (spec.md §4.11).
func (st *decodeState) decodeObject(offset int) (value.Value, int, error) {
	start := offset
	tag := st.data[offset]
	offset++

	m := &value.Map{}
	st.refs.Register(m) // I1: register before reading fields, for cyclic object graphs.

	var defIdx int
	if tag == 0x4F {
		idx, n, err := wire.DecodeInt(st.data, offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n
		defIdx = int(idx)
	} else {
		defIdx = int(tag - 0x60)
	}

	def, ok := st.classes.At(defIdx)
	if !ok {
		return nil, 0, errs.AtOffset(errs.ErrBadTypeIndex, start)
	}

	m.HasClass = true
	m.Class = def.Name

	for _, fieldName := range def.Fields {
		v, n, err := st.decodeValue(offset)
		if err != nil {
			return nil, 0, err
		}
		offset += n
		m.Entries = append(m.Entries, value.Entry{Key: value.String(fieldName), Value: v})
	}

	return m, offset - start, nil
}
