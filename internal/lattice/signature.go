package lattice

import "strings"

// ParamKind tags how a parameter binds call-site arguments to a callee
// type, per spec.md §3.2.
type ParamKind int

const (
	// ParamPlain requires exactly one argument of Type.
	ParamPlain ParamKind = iota
	// ParamOpt binds the callee-side value to Type ∪ undefined.
	ParamOpt
	// ParamRest matches zero or more trailing arguments; the callee
	// binding for a rest parameter is always .object(), not Type.
	ParamRest
)

// Param is one entry of a Signature's parameter list.
type Param struct {
	Kind ParamKind
	Type Type
}

// Plain builds a required positional parameter of type t.
func Plain(t Type) Param { return Param{Kind: ParamPlain, Type: t} }

// Opt builds an optional parameter of type t.
func Opt(t Type) Param { return Param{Kind: ParamOpt, Type: t} }

// Rest builds a trailing rest parameter whose element type is t.
func Rest(t Type) Param { return Param{Kind: ParamRest, Type: t} }

// BoundType is the type a parameter binds to inside the callee body.
func (p Param) BoundType() Type {
	switch p.Kind {
	case ParamOpt:
		return p.Type.Union(Undefined)
	case ParamRest:
		return Object()
	default:
		return p.Type
	}
}

func (p Param) String() string {
	switch p.Kind {
	case ParamOpt:
		return p.Type.String() + "?"
	case ParamRest:
		return "..." + p.Type.String()
	default:
		return p.Type.String()
	}
}

// Signature describes a callable's parameter list and return type.
type Signature struct {
	Parameters []Param
	ReturnType Type
}

// NewSignature builds a Signature from positional params plus a return type.
func NewSignature(returnType Type, params ...Param) Signature {
	return Signature{Parameters: params, ReturnType: returnType}
}

// Equal reports structural equality between two signatures.
func (s Signature) Equal(o Signature) bool {
	if len(s.Parameters) != len(o.Parameters) {
		return false
	}
	for i, p := range s.Parameters {
		op := o.Parameters[i]
		if p.Kind != op.Kind || !p.Type.Equal(op.Type) {
			return false
		}
	}
	return s.ReturnType.Equal(o.ReturnType)
}

func (s Signature) String() string {
	parts := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") => " + s.ReturnType.String()
}
