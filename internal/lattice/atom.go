// Package lattice implements the JavaScript type lattice: an immutable,
// value-equal algebra of primitive bitsets joined with an optional
// structural object shape.
package lattice

import "strings"

// Atom is a bitmask over the disjoint primitive kinds a Type can carry.
type Atom uint16

const (
	AtomUndefined Atom = 1 << iota
	AtomNull
	AtomBoolean
	AtomInteger
	AtomFloat
	AtomString
	AtomBigInt
	AtomRegExp
	AtomIterable
)

// Derived atom groups, expressed in terms of the disjoint atoms above.
const (
	AtomNumber    = AtomInteger | AtomFloat
	AtomPrimitive = AtomUndefined | AtomNull | AtomBoolean | AtomNumber | AtomString
	AtomAnything  = AtomPrimitive | AtomBigInt | AtomRegExp | AtomIterable
	AtomNothing   = Atom(0)
)

var atomNames = []struct {
	bit  Atom
	name string
}{
	{AtomUndefined, "undefined"},
	{AtomNull, "null"},
	{AtomBoolean, "boolean"},
	{AtomInteger, "integer"},
	{AtomFloat, "float"},
	{AtomString, "string"},
	{AtomBigInt, "bigint"},
	{AtomRegExp, "regexp"},
	{AtomIterable, "iterable"},
}

// String renders the atom bitset as the pipe-joined names of its set bits,
// collapsing the well-known aggregates (number, primitive, anything) to
// their short form when the bitset matches exactly.
func (a Atom) String() string {
	switch a {
	case AtomNothing:
		return ""
	case AtomNumber:
		return "number"
	case AtomPrimitive:
		return "primitive"
	case AtomAnything:
		return "anything"
	}
	parts := make([]string, 0, len(atomNames))
	for _, e := range atomNames {
		if a&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
