package lattice

// Canonical singleton constants (spec.md §3.1). Union/intersect/etc.
// never mutate these; they are ordinary immutable values, not guarded
// singletons, since Type has value semantics throughout.
var (
	Undefined = Type{bits: AtomUndefined}
	Null      = Type{bits: AtomNull}
	Boolean   = Type{bits: AtomBoolean}
	Integer   = Type{bits: AtomInteger}
	Float     = Type{bits: AtomFloat}
	Number    = Type{bits: AtomNumber}
	String    = Type{bits: AtomString}
	BigInt    = Type{bits: AtomBigInt}
	RegExp    = Type{bits: AtomRegExp}
	Iterable  = Type{bits: AtomIterable}
	Primitive = Type{bits: AtomPrimitive}
	Anything  = Type{bits: AtomAnything, shape: &Shape{}}
	Nothing   = Type{}
	Unknown   = Type{unknown: true}
)

// ShapeOption configures an object shape built by Object.
type ShapeOption func(*Shape)

// WithProperties adds the given property names to the shape.
func WithProperties(names ...string) ShapeOption {
	return func(s *Shape) {
		for _, n := range names {
			s.Properties = s.Properties.with(n)
		}
	}
}

// WithMethods adds the given method names to the shape.
func WithMethods(names ...string) ShapeOption {
	return func(s *Shape) {
		for _, n := range names {
			s.Methods = s.Methods.with(n)
		}
	}
}

// OfGroup tags the shape with a nominal group.
func OfGroup(group string) ShapeOption {
	return func(s *Shape) { s.Group = group }
}

// WithCallSignature marks the shape callable as a plain function.
func WithCallSignature(sig Signature) ShapeOption {
	return func(s *Shape) { s.CallSignature = &sig }
}

// WithConstructSignature marks the shape callable with `new`.
func WithConstructSignature(sig Signature) ShapeOption {
	return func(s *Shape) { s.ConstructSignature = &sig }
}

// Object builds `.object(...)`: an unconstrained object shape refined
// by the given options, with no primitive bits set.
func Object(opts ...ShapeOption) Type {
	s := &Shape{}
	for _, o := range opts {
		o(s)
	}
	return Type{shape: s}
}

// Function builds `.function(sig)`: an object shape callable as a
// plain function (not constructible).
func Function(sig Signature) Type {
	return Object(WithCallSignature(sig))
}

// Constructor builds `.constructor(sig)`: an object shape callable
// with `new`.
func Constructor(sig Signature) Type {
	return Object(WithConstructSignature(sig))
}

// FunctionAndConstructor builds a shape callable both as a plain
// function and with `new`, sharing one signature — the representation
// a plain `function Foo() {}` declaration gets (spec.md §4.4).
func FunctionAndConstructor(sig Signature) Type {
	return Object(WithCallSignature(sig), WithConstructSignature(sig))
}
