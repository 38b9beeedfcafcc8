// Package refs implements the per-invocation interning tables shared by the
// encoder and decoder: REF_TABLE (composite-value back-references) and
// TYPE_TABLE (Hessian type-name interning), plus the decoder-only
// CLASS_TABLE used to materialize class-defined objects (spec.md §4.11).
//
// Every table here is created empty at the start of one Encode/Decode
// invocation and discarded at its end (spec.md §3 "Lifecycle").
package refs

import "github.com/arloliu/hessian2/value"

// EncoderRefs tracks composite values (*value.List, *value.Map) by Go
// pointer identity, assigning each the index of its first appearance. This
// is the encode-side half of REF_TABLE (spec.md §3, §4.9).
type EncoderRefs struct {
	index map[value.Value]int
}

// NewEncoderRefs returns an empty EncoderRefs table.
func NewEncoderRefs() *EncoderRefs {
	return &EncoderRefs{index: make(map[value.Value]int)}
}

// Lookup returns the REF_TABLE index previously assigned to v and true, or
// (0, false) if v has not been registered yet.
func (r *EncoderRefs) Lookup(v value.Value) (int, bool) {
	idx, ok := r.index[v]
	return idx, ok
}

// Register assigns v the next REF_TABLE index and returns it. The caller
// must register v (I1: "added at the moment its header tag is emitted,
// before its children") before encoding its body, so that a back-reference
// inside v's own body resolves correctly.
func (r *EncoderRefs) Register(v value.Value) int {
	idx := len(r.index)
	r.index[v] = idx
	return idx
}

// EncoderTypes interns Hessian type-name strings in first-appearance order,
// the encode-side half of TYPE_TABLE (spec.md §4.7's "Type-name protocol").
type EncoderTypes struct {
	index map[string]int
}

// NewEncoderTypes returns an empty EncoderTypes table.
func NewEncoderTypes() *EncoderTypes {
	return &EncoderTypes{index: make(map[string]int)}
}

// Lookup returns the TYPE_TABLE index previously assigned to name and true,
// or (0, false) if name has not been interned yet.
func (t *EncoderTypes) Lookup(name string) (int, bool) {
	idx, ok := t.index[name]
	return idx, ok
}

// Register interns name and returns its newly assigned index.
func (t *EncoderTypes) Register(name string) int {
	idx := len(t.index)
	t.index[name] = idx
	return idx
}

// DecoderRefs is the decode-side REF_TABLE: an ordered, append-only list of
// composite values indexed by materialization order (spec.md §3).
type DecoderRefs struct {
	entries []value.Value
}

// NewDecoderRefs returns an empty DecoderRefs table.
func NewDecoderRefs() *DecoderRefs {
	return &DecoderRefs{}
}

// Register appends v to the table and returns its index. Per I1/§4.9, the
// decoder must call Register immediately after consuming a composite
// value's header tag, before decoding its body, so that a back-reference
// encountered within the body resolves to the partially-constructed value.
func (r *DecoderRefs) Register(v value.Value) int {
	r.entries = append(r.entries, v)
	return len(r.entries) - 1
}

// At returns the value registered at index idx and true, or (nil, false) if
// idx is out of range (the caller should report errs.ErrBadReference).
func (r *DecoderRefs) At(idx int) (value.Value, bool) {
	if idx < 0 || idx >= len(r.entries) {
		return nil, false
	}
	return r.entries[idx], true
}

// Len reports the current number of registered entries.
func (r *DecoderRefs) Len() int { return len(r.entries) }

// DecoderTypes is the decode-side TYPE_TABLE: an ordered, append-only list
// of type-name strings indexed by first-appearance order (spec.md §3, I2).
type DecoderTypes struct {
	names []string
}

// NewDecoderTypes returns an empty DecoderTypes table.
func NewDecoderTypes() *DecoderTypes {
	return &DecoderTypes{}
}

// Register appends name to the table and returns its newly assigned index.
func (t *DecoderTypes) Register(name string) int {
	t.names = append(t.names, name)
	return len(t.names) - 1
}

// At returns the name registered at index idx and true, or ("", false) if
// idx is out of range (the caller should report errs.ErrBadTypeIndex, per
// I2: "an index read must be < current table size or the stream is
// malformed").
func (t *DecoderTypes) At(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.names) {
		return "", false
	}
	return t.names[idx], true
}

// ClassDef is one `C`-record definition: a class name and its ordered field
// names (spec.md §4.11).
type ClassDef struct {
	Name   string
	Fields []string
}

// DecoderClasses is the decode-side CLASS_TABLE: an ordered, append-only
// list of ClassDef, indexed by definition order (spec.md §4.11).
type DecoderClasses struct {
	defs []ClassDef
}

// NewDecoderClasses returns an empty DecoderClasses table.
func NewDecoderClasses() *DecoderClasses {
	return &DecoderClasses{}
}

// Register appends def to the table and returns its newly assigned index.
func (c *DecoderClasses) Register(def ClassDef) int {
	c.defs = append(c.defs, def)
	return len(c.defs) - 1
}

// At returns the definition registered at index idx and true, or (zero,
// false) if idx is out of range.
func (c *DecoderClasses) At(idx int) (ClassDef, bool) {
	if idx < 0 || idx >= len(c.defs) {
		return ClassDef{}, false
	}
	return c.defs[idx], true
}
