package ir

// Operation is one IR instruction appended by the builder. Not every
// field is meaningful for every Kind; each transfer function in
// internal/typer documents which fields it reads. This mirrors a
// bytecode instruction carrying a fixed operand layout regardless of
// opcode, rather than one Go type per operation family — the IR
// stream is data the Typer receives, not a type hierarchy it defines.
type Operation struct {
	Kind OpKind

	// Inputs/Outputs name the variables this operation reads/produces.
	Inputs  []Variable
	Outputs []Variable

	// Name carries: the builtin name (OpLoadBuiltin), the property or
	// method name (OpSetProperty/OpDeleteProperty/OpGetProperty/
	// OpCallMethod/OpAddProperty/OpAddInstanceProperty/
	// OpAddStaticProperty), or the operator symbol (OpUnary/OpBinary/
	// OpReassignWithOp/OpCompare), e.g. "+", "-", "typeof", "instanceof".
	Name string

	// Properties lists the keys of an object literal created in one
	// shot (OpCreateObject); each key's value is the corresponding
	// entry of Inputs, in order.
	Properties []string

	// Index is the numeric element index for OpAddElement.
	Index int

	// Selecting lists the destructured property names for OpDestruct.
	Selecting []string
	// HasRestElement marks a trailing rest-binding output for OpDestruct.
	HasRestElement bool
}

// Load builds a single-output, no-input constant-loading operation.
func Load(kind OpKind, output Variable) Operation {
	return Operation{Kind: kind, Outputs: []Variable{output}}
}

// LoadNamed builds OpLoadBuiltin.
func LoadNamed(kind OpKind, output Variable, name string) Operation {
	return Operation{Kind: kind, Outputs: []Variable{output}, Name: name}
}

// Unary builds OpUnary/OpLogicalNot/OpTypeOf.
func Unary(kind OpKind, operator string, input, output Variable) Operation {
	return Operation{Kind: kind, Inputs: []Variable{input}, Outputs: []Variable{output}, Name: operator}
}

// Binary builds OpBinary/OpLogicOr/OpLogicAnd/OpCompare/OpInstanceOf/OpIn.
func Binary(kind OpKind, operator string, left, right, output Variable) Operation {
	return Operation{Kind: kind, Inputs: []Variable{left, right}, Outputs: []Variable{output}, Name: operator}
}

// Reassign builds OpReassign.
func Reassign(dest, source Variable) Operation {
	return Operation{Kind: OpReassign, Inputs: []Variable{source}, Outputs: []Variable{dest}}
}

// ReassignWithOp builds OpReassignWithOp: `dest op= source`.
func ReassignWithOp(dest, source Variable, operator string) Operation {
	return Operation{Kind: OpReassignWithOp, Inputs: []Variable{source}, Outputs: []Variable{dest}, Name: operator}
}

// CreateObject builds OpCreateObject: one value input per key in keys,
// ignoring integer-element entries from the resulting property shape
// (spec.md §4.4).
func CreateObject(output Variable, keys []string, values []Variable) Operation {
	return Operation{Kind: OpCreateObject, Inputs: values, Outputs: []Variable{output}, Properties: keys}
}

// SetProperty builds OpSetProperty.
func SetProperty(object Variable, name string, value Variable) Operation {
	return Operation{Kind: OpSetProperty, Inputs: []Variable{object, value}, Name: name}
}

// DeleteProperty builds OpDeleteProperty.
func DeleteProperty(object Variable, name string) Operation {
	return Operation{Kind: OpDeleteProperty, Inputs: []Variable{object}, Name: name}
}

// GetProperty builds OpGetProperty.
func GetProperty(object Variable, name string, output Variable) Operation {
	return Operation{Kind: OpGetProperty, Inputs: []Variable{object}, Outputs: []Variable{output}, Name: name}
}

// CallMethod builds OpCallMethod.
func CallMethod(receiver Variable, name string, args []Variable, output Variable) Operation {
	return Operation{Kind: OpCallMethod, Inputs: append([]Variable{receiver}, args...), Outputs: []Variable{output}, Name: name}
}

// CallFunction builds OpCallFunction.
func CallFunction(fn Variable, args []Variable, output Variable) Operation {
	return Operation{Kind: OpCallFunction, Inputs: append([]Variable{fn}, args...), Outputs: []Variable{output}}
}

// Construct builds OpConstruct.
func Construct(ctor Variable, args []Variable, output Variable) Operation {
	return Operation{Kind: OpConstruct, Inputs: append([]Variable{ctor}, args...), Outputs: []Variable{output}}
}

// Destruct builds OpDestruct.
func Destruct(object Variable, selecting []string, hasRest bool, outputs []Variable) Operation {
	return Operation{Kind: OpDestruct, Inputs: []Variable{object}, Outputs: outputs, Selecting: selecting, HasRestElement: hasRest}
}

// AddProperty builds OpAddProperty (object-literal block member).
func AddProperty(name string, value Variable) Operation {
	return Operation{Kind: OpAddProperty, Inputs: []Variable{value}, Name: name}
}

// AddElement builds OpAddElement (object-literal block member).
func AddElement(index int, value Variable) Operation {
	return Operation{Kind: OpAddElement, Inputs: []Variable{value}, Index: index}
}

// AddInstanceProperty builds OpAddInstanceProperty (class-body block member).
func AddInstanceProperty(name string) Operation {
	return Operation{Kind: OpAddInstanceProperty, Name: name}
}

// AddStaticProperty builds OpAddStaticProperty (class-body block member).
func AddStaticProperty(name string) Operation {
	return Operation{Kind: OpAddStaticProperty, Name: name}
}
