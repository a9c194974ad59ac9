package lattice

// Type is an immutable JavaScript type-lattice value: a primitive
// bitset, an optional object shape, and a distinguished "unknown" tag.
// Value semantics throughout: every operation returns a new Type and
// never mutates its receiver or arguments (spec.md §3.1, §9).
type Type struct {
	bits    Atom
	shape   *Shape
	unknown bool
}

// HasAtoms reports whether the bitset intersects mask at all.
func (t Type) HasAtoms(mask Atom) bool { return t.bits&mask != 0 }

// Bits returns the raw primitive bitset.
func (t Type) Bits() Atom { return t.bits }

// IsUnknown reports whether this is exactly the `.unknown` sentinel.
func (t Type) IsUnknown() bool { return t.unknown }

// Shape returns the object shape carried by this type, or nil.
func (t Type) Shape() *Shape { return t.shape }

// HasShape reports whether the type carries an object shape at all.
func (t Type) HasShape() bool { return t.shape != nil }

// Group returns the object shape's group tag, or "" if there is none.
func (t Type) Group() string {
	if t.shape == nil {
		return ""
	}
	return t.shape.Group
}

// Callable reports whether the type is callable as a plain function.
func (t Type) Callable() bool { return t.shape != nil && t.shape.CallSignature != nil }

// Constructible reports whether the type is callable with `new`.
func (t Type) Constructible() bool { return t.shape != nil && t.shape.ConstructSignature != nil }

// CallSignature returns the function call signature, or nil.
func (t Type) CallSignature() *Signature {
	if t.shape == nil {
		return nil
	}
	return t.shape.CallSignature
}

// ConstructSignature returns the `new`-call signature, or nil.
func (t Type) ConstructSignature() *Signature {
	if t.shape == nil {
		return nil
	}
	return t.shape.ConstructSignature
}

// WithProperty returns a Type equal to t but with name added to its
// object shape's properties (creating an unconstrained shape first if
// t does not yet carry one).
func (t Type) WithProperty(name string) Type {
	return Type{bits: t.bits, shape: t.shape.withProperty(name)}
}

// WithoutProperty returns a Type equal to t but with name removed from
// its object shape's properties. A no-op if t carries no shape.
func (t Type) WithoutProperty(name string) Type {
	if t.shape == nil {
		return t
	}
	return Type{bits: t.bits, shape: t.shape.withoutProperty(name)}
}

// WithMethod returns a Type equal to t but with name added to its
// object shape's methods (creating an unconstrained shape first if t
// does not yet carry one).
func (t Type) WithMethod(name string) Type {
	return Type{bits: t.bits, shape: t.shape.withMethod(name)}
}

// Union computes a ∪ b per spec.md §4.1: associative, commutative,
// idempotent; bitsets bitwise-or, shapes structurally meet.
func (a Type) Union(b Type) Type {
	if a.unknown || b.unknown {
		return Unknown
	}
	if a.bits == AtomNothing && a.shape == nil {
		return b
	}
	if b.bits == AtomNothing && b.shape == nil {
		return a
	}
	return Type{bits: a.bits | b.bits, shape: unionShapes(a.shape, b.shape)}
}

// Combine merges a and b as two partial descriptions of the SAME
// value, per spec.md §4.1's "combining .constructor(sig) + .object(…)"
// rule: properties/methods union (the value truly carries both), and a
// signature survives from whichever side sets it. This is distinct
// from Union, which is the lattice meet used when a variable's type
// could be EITHER a or b (e.g. merging two branches of a conditional).
func (a Type) Combine(b Type) Type {
	if a.unknown || b.unknown {
		return Unknown
	}
	return Type{bits: a.bits | b.bits, shape: combineShapes(a.shape, b.shape)}
}

// Intersect computes a ∩ b per spec.md §4.1.
func (a Type) Intersect(b Type) Type {
	if a.unknown {
		return b
	}
	if b.unknown {
		return a
	}
	return Type{bits: a.bits & b.bits, shape: intersectShapes(a.shape, b.shape)}
}

// Subtract computes a - b per spec.md §4.1: bits minus bits, and the
// object shape is removed if b carries an unconstrained shape of equal
// or wider structure (i.e. a's shape Is-subsumed by b's).
func (a Type) Subtract(b Type) Type {
	if b.unknown {
		return Nothing
	}
	if a.unknown {
		return Unknown
	}
	out := Type{bits: a.bits &^ b.bits, shape: a.shape}
	if a.shape != nil && b.shape != nil && shapeIs(a.shape, b.shape) {
		out.shape = nil
	}
	return out
}

// Is reports a ⊆ b (every value of a is a value of b), spec.md §4.1.
func (a Type) Is(b Type) bool {
	if b.unknown {
		return true
	}
	if a.unknown {
		return false
	}
	if a.bits&^b.bits != 0 {
		return false
	}
	if a.shape != nil && (b.shape == nil || !shapeIs(a.shape, b.shape)) {
		return false
	}
	return true
}

// MayBe reports a ∩ b ≠ ∅, spec.md §4.1.
func (a Type) MayBe(b Type) bool {
	if a.unknown || b.unknown {
		return true
	}
	if a.bits&b.bits != 0 {
		return true
	}
	return a.shape != nil && b.shape != nil && intersectShapes(a.shape, b.shape) != nil
}

// Equal is value equality, used for interning/dedup (e.g. union
// normalization) rather than lattice subtyping.
func (a Type) Equal(b Type) bool {
	if a.unknown != b.unknown {
		return false
	}
	if a.unknown {
		return true
	}
	return a.bits == b.bits && shapeEqual(a.shape, b.shape)
}

func (t Type) String() string {
	if t.unknown {
		return "unknown"
	}
	bitStr := t.bits.String()
	shapeStr := t.shape.String()
	switch {
	case bitStr == "" && shapeStr == "":
		return "nothing"
	case bitStr == "":
		return shapeStr
	case shapeStr == "":
		return bitStr
	default:
		return bitStr + "|" + shapeStr
	}
}
