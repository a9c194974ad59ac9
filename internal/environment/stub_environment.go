package environment

import "github.com/jsfuzz/typer/internal/lattice"

// groupFacts is the per-group slice of the oracle: the properties and
// methods known to exist on objects tagged with a particular group.
type groupFacts struct {
	properties map[string]lattice.Type
	methods    map[string]lattice.Signature
}

// StubEnvironment is a narrow, in-memory Environment implementation
// intended for tests (spec.md §9: "prefer a trait/interface with a
// stub implementation for tests"). It is the only concrete
// Environment this repository ships; a real JS host model is out of
// scope (spec.md §1).
type StubEnvironment struct {
	Declarations

	builtins map[string]lattice.Type
	groups   map[string]*groupFacts

	intType     lattice.Type
	floatType   lattice.Type
	booleanType lattice.Type
	stringType  lattice.Type
	bigintType  lattice.Type
	regexpType  lattice.Type
	arrayType   lattice.Type
}

// NewStubEnvironment builds a StubEnvironment with the canonical
// lattice constants as its default primitive/array types.
func NewStubEnvironment() *StubEnvironment {
	return &StubEnvironment{
		builtins:    make(map[string]lattice.Type),
		groups:      make(map[string]*groupFacts),
		intType:     lattice.Integer,
		floatType:   lattice.Float,
		booleanType: lattice.Boolean,
		stringType:  lattice.String,
		bigintType:  lattice.BigInt,
		regexpType:  lattice.RegExp,
		arrayType:   lattice.Object(lattice.OfGroup("Array")),
	}
}

// SetBuiltin registers the Type returned for loadBuiltin(name).
func (e *StubEnvironment) SetBuiltin(name string, t lattice.Type) {
	e.builtins[name] = t
}

func (e *StubEnvironment) groupFor(group string, create bool) *groupFacts {
	if group == "" {
		return nil
	}
	g, ok := e.groups[group]
	if !ok {
		if !create {
			return nil
		}
		g = &groupFacts{properties: make(map[string]lattice.Type), methods: make(map[string]lattice.Signature)}
		e.groups[group] = g
	}
	return g
}

// SetGroupProperty registers a property type for objects of the given group.
func (e *StubEnvironment) SetGroupProperty(group, name string, t lattice.Type) {
	e.groupFor(group, true).properties[name] = t
}

// SetGroupMethod registers a method signature for objects of the given group.
func (e *StubEnvironment) SetGroupMethod(group, name string, sig lattice.Signature) {
	e.groupFor(group, true).methods[name] = sig
}

func (e *StubEnvironment) TypeOfBuiltin(name string) lattice.Type {
	if t, ok := e.builtins[name]; ok {
		return t
	}
	return lattice.Unknown
}

// TypeOfProperty implements the precedence spec.md §4.2 describes: the
// per-group entry (when the group is known and defines it) wins over a
// program-wide declaration, which wins over "unknown".
func (e *StubEnvironment) TypeOfProperty(name string, onGroup string) lattice.Type {
	if g := e.groupFor(onGroup, false); g != nil {
		if t, ok := g.properties[name]; ok {
			return t
		}
	}
	if t, ok := e.declaredProperty(name); ok {
		return t
	}
	return lattice.Unknown
}

func (e *StubEnvironment) SignatureOfMethod(name string, onGroup string) *lattice.Signature {
	if g := e.groupFor(onGroup, false); g != nil {
		if sig, ok := g.methods[name]; ok {
			return &sig
		}
	}
	if sig, ok := e.declaredMethod(name); ok {
		return &sig
	}
	return nil
}

func (e *StubEnvironment) IntType() lattice.Type     { return e.intType }
func (e *StubEnvironment) FloatType() lattice.Type   { return e.floatType }
func (e *StubEnvironment) BooleanType() lattice.Type { return e.booleanType }
func (e *StubEnvironment) StringType() lattice.Type  { return e.stringType }
func (e *StubEnvironment) BigIntType() lattice.Type  { return e.bigintType }
func (e *StubEnvironment) RegExpType() lattice.Type  { return e.regexpType }
func (e *StubEnvironment) ArrayType() lattice.Type   { return e.arrayType }

// SetIntType overrides the configurable integer primitive type.
func (e *StubEnvironment) SetIntType(t lattice.Type) { e.intType = t }

// SetFloatType overrides the configurable float primitive type.
func (e *StubEnvironment) SetFloatType(t lattice.Type) { e.floatType = t }

// SetBooleanType overrides the configurable boolean primitive type.
func (e *StubEnvironment) SetBooleanType(t lattice.Type) { e.booleanType = t }

// SetStringType overrides the configurable string primitive type.
func (e *StubEnvironment) SetStringType(t lattice.Type) { e.stringType = t }

// SetBigIntType overrides the configurable bigint primitive type.
func (e *StubEnvironment) SetBigIntType(t lattice.Type) { e.bigintType = t }

// SetRegExpType overrides the configurable regexp primitive type.
func (e *StubEnvironment) SetRegExpType(t lattice.Type) { e.regexpType = t }

// SetArrayType overrides the configurable array type.
func (e *StubEnvironment) SetArrayType(t lattice.Type) { e.arrayType = t }
