// Package environment defines the oracle the Typer consults for facts
// it cannot derive on its own: named builtins, per-group property and
// method types, and configurable primitive types (spec.md §4.2).
package environment

import "github.com/jsfuzz/typer/internal/lattice"

// Environment is consumed by the Typer; concrete implementations (a
// real JS host model) are out of scope for this repository and are
// referenced only through this interface (spec.md §1, §6).
type Environment interface {
	// TypeOfBuiltin returns the Type for the named builtin, or
	// lattice.Unknown if the name is not recognized.
	TypeOfBuiltin(name string) lattice.Type

	// TypeOfProperty returns the Type of the named property, consulting
	// the per-group map first (when onGroup is known and defines the
	// property) and a global, program-wide declaration second. onGroup
	// may be "" when the receiver's group is unknown. Returns
	// lattice.Unknown if both miss.
	TypeOfProperty(name string, onGroup string) lattice.Type

	// SignatureOfMethod returns the Signature for the named method, or
	// nil if unknown. As with TypeOfProperty, a global declaration takes
	// precedence over the absence of a per-group entry, but a per-group
	// entry overrides the global one when present.
	SignatureOfMethod(name string, onGroup string) *lattice.Signature

	// IntType, FloatType, BooleanType, StringType, BigIntType, RegExpType
	// and ArrayType are configurable primitive/array types; a stub
	// implementation defaults each to its canonical lattice constant.
	IntType() lattice.Type
	FloatType() lattice.Type
	BooleanType() lattice.Type
	StringType() lattice.Type
	BigIntType() lattice.Type
	RegExpType() lattice.Type
	ArrayType() lattice.Type
}

// Declarations holds the builder-programmable, program-wide facts
// described in spec.md §4.2: "the builder may at any time program-wide
// declare `property p has type T` or `method m has signature S`;
// declarations accumulate and take precedence over the absence of
// per-group entries, but per-group entries (when the receiver's group
// is known) override." Declarations is embedded by StubEnvironment and
// is reusable by any other Environment implementation that needs this
// accumulation behavior.
type Declarations struct {
	properties map[string]lattice.Type
	methods    map[string]lattice.Signature
}

// DeclareProperty records a program-wide property type, overriding any
// earlier declaration under the same name.
func (d *Declarations) DeclareProperty(name string, t lattice.Type) {
	if d.properties == nil {
		d.properties = make(map[string]lattice.Type)
	}
	d.properties[name] = t
}

// DeclareMethod records a program-wide method signature, overriding any
// earlier declaration under the same name.
func (d *Declarations) DeclareMethod(name string, sig lattice.Signature) {
	if d.methods == nil {
		d.methods = make(map[string]lattice.Signature)
	}
	d.methods[name] = sig
}

func (d *Declarations) declaredProperty(name string) (lattice.Type, bool) {
	t, ok := d.properties[name]
	return t, ok
}

func (d *Declarations) declaredMethod(name string) (lattice.Signature, bool) {
	s, ok := d.methods[name]
	return s, ok
}
