// Package value defines the universal value model shared by the Hessian 2.0
// encoder and decoder.
//
// A Value is exactly one of: Null, Bool, Int, Double, String, Binary, Date,
// *List, or *Map. The two composite kinds, *List and *Map, are the only
// kinds eligible for reference-table tracking; Go's native pointer identity
// serves as the "object identity" the wire format's back-reference scheme
// relies on, so no separate handle type is needed at this API boundary.
package value
