package value

import "time"

// ClassKey is the distinguished attribute name carrying a typed map's
// Hessian class name. Callers constructing values directly should prefer
// Map.Class/HasClass; ClassKey exists for code that bridges to a generic
// map[string]any representation at an outer boundary.
const ClassKey = "#class"

// Value is implemented by every kind in the universal value model:
// Null, Bool, Int, Double, String, Binary, Date, *List, *Map.
type Value interface {
	valueKind() Kind
}

// Kind identifies which of the universal value model's variants a Value
// holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindBinary
	KindDate
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of v, or a false second value if v is nil.
func KindOf(v Value) (Kind, bool) {
	if v == nil {
		return 0, false
	}
	return v.valueKind(), true
}

// Null is the absence of a value (wire tag 0x4E).
type Null struct{}

func (Null) valueKind() Kind { return KindNull }

// Bool is a boolean value (wire tags 0x46/0x54).
type Bool bool

func (Bool) valueKind() Kind { return KindBool }

// Int is a 64-bit signed integer. On decode, both the Hessian int and long
// families materialize as Int; on encode, a single Int is emitted using the
// narrowest compact form that preserves its exact value (see the internal/wire
// package).
type Int int64

func (Int) valueKind() Kind { return KindInt }

// Double is an IEEE 754 64-bit floating point value.
type Double float64

func (Double) valueKind() Kind { return KindDouble }

// String is a sequence of Unicode scalar values. Length fields on the wire
// count scalars, not UTF-8 bytes.
type String string

func (String) valueKind() Kind { return KindString }

// Binary is a sequence of octets. Length fields on the wire count bytes.
type Binary []byte

func (Binary) valueKind() Kind { return KindBinary }

// Date is an instant at millisecond precision, always materialized in UTC
// regardless of which wire form (0x4A millis or 0x4B minutes) produced it.
type Date time.Time

func (Date) valueKind() Kind { return KindDate }

// Time returns d as a time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// Entry is one key->value pair of a Map's body, in wire order.
type Entry struct {
	Key   Value
	Value Value
}

// List is an ordered sequence of values. A List participates in the
// encoder's and decoder's reference tables under the same discipline as Map:
// *List pointer identity is the key the encoder's REF_TABLE uses to detect
// a value shared or revisited within one encode call.
type List struct {
	Items []Value
}

func (*List) valueKind() Kind { return KindList }

// NewList returns a *List wrapping items. The caller retains ownership of
// items; List does not copy it.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

// Map is an ordered sequence of key->value pairs, optionally carrying a
// Hessian type (class) name. A Map carrying a class name encodes as the
// typed `M` form; otherwise it encodes as the untyped `H` form.
//
// Per the design note that a typed map is better modeled as a distinct
// field than as a magic body entry, class name and body are kept separate:
// the codec never stores the class name as a ClassKey pair in Entries (a
// "#class" key that arrives in a map body is kept as an ordinary entry).
// ClassValue provides the bridge
// back to the "#class"-as-an-entry view of a typed map for callers that
// want one.
type Map struct {
	Class    string
	HasClass bool
	Entries  []Entry
}

func (*Map) valueKind() Kind { return KindMap }

// NewMap returns an untyped *Map.
func NewMap(entries ...Entry) *Map {
	return &Map{Entries: entries}
}

// NewTypedMap returns a *Map carrying the given Hessian class name.
func NewTypedMap(class string, entries ...Entry) *Map {
	return &Map{Class: class, HasClass: true, Entries: entries}
}

// ClassValue returns the map's class name as a String Value and true, or
// (nil, false) if the map is untyped.
func (m *Map) ClassValue() (Value, bool) {
	if !m.HasClass {
		return nil, false
	}
	return String(m.Class), true
}

// Get returns the value associated with the first entry whose key equals
// key, and whether such an entry was found. List/Map keys match only by
// pointer identity: two distinct instances never match, even with equal
// contents.
func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.Entries {
		if keyEqual(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Set appends or replaces the entry for key, preserving first-seen order
// on replace.
func (m *Map) Set(key, val Value) {
	for i, e := range m.Entries {
		if keyEqual(e.Key, key) {
			m.Entries[i].Value = val
			return
		}
	}
	m.Entries = append(m.Entries, Entry{Key: key, Value: val})
}

// keyEqual compares two map keys without panicking on uncomparable
// dynamic types (Binary wraps a slice, which Go's == cannot compare).
func keyEqual(a, b Value) bool {
	ak, aok := KindOf(a)
	bk, bok := KindOf(b)
	if aok != bok || ak != bk {
		return false
	}
	if ak == KindBinary {
		ab, bb := a.(Binary), b.(Binary)
		if len(ab) != len(bb) {
			return false
		}
		for i := range ab {
			if ab[i] != bb[i] {
				return false
			}
		}
		return true
	}
	if ak == KindList || ak == KindMap {
		return a == b
	}
	return a == b
}
