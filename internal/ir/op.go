package ir

// OpKind enumerates every IR operation family the Typer's transfer
// functions recognize (spec.md §4.4), laid out the way this codebase
// family lays out a bytecode instruction set: one grouped iota block
// per phase of the language, banner comment per group.
type OpKind int

const (
	// Constants
	OpLoadInteger OpKind = iota
	OpLoadFloat
	OpLoadString
	OpLoadBoolean
	OpLoadBigInt
	OpLoadRegExp
	OpLoadNull
	OpLoadUndefined
	OpLoadThis
	OpLoadBuiltin

	// Arithmetic and logic
	OpUnary
	OpBinary
	OpLogicalNot
	OpLogicOr
	OpLogicAnd

	// Comparison / type tests
	OpCompare
	OpTypeOf
	OpInstanceOf
	OpIn

	// Reassignment
	OpReassign
	OpReassignWithOp

	// Objects and properties
	OpCreateObject
	OpSetProperty
	OpDeleteProperty
	OpGetProperty
	OpCallMethod
	OpCallFunction
	OpConstruct
	OpDestruct

	// Object-literal block members (used while a KindObjectLiteral or
	// KindClassBody frame is open; see internal/typer/blocks.go)
	OpAddProperty
	OpAddElement
	OpAddInstanceProperty
	OpAddStaticProperty
)

var opNames = map[OpKind]string{
	OpLoadInteger:         "loadInteger",
	OpLoadFloat:           "loadFloat",
	OpLoadString:          "loadString",
	OpLoadBoolean:         "loadBoolean",
	OpLoadBigInt:          "loadBigInt",
	OpLoadRegExp:          "loadRegExp",
	OpLoadNull:            "loadNull",
	OpLoadUndefined:       "loadUndefined",
	OpLoadThis:            "loadThis",
	OpLoadBuiltin:         "loadBuiltin",
	OpUnary:               "unary",
	OpBinary:              "binary",
	OpLogicalNot:          "logicalNot",
	OpLogicOr:             "logicOr",
	OpLogicAnd:            "logicAnd",
	OpCompare:             "compare",
	OpTypeOf:              "typeOf",
	OpInstanceOf:          "instanceOf",
	OpIn:                  "in",
	OpReassign:            "reassign",
	OpReassignWithOp:      "reassignWithOp",
	OpCreateObject:        "createObject",
	OpSetProperty:         "setProperty",
	OpDeleteProperty:      "deleteProperty",
	OpGetProperty:         "getProperty",
	OpCallMethod:          "callMethod",
	OpCallFunction:        "callFunction",
	OpConstruct:           "construct",
	OpDestruct:            "destruct",
	OpAddProperty:         "addProperty",
	OpAddElement:          "addElement",
	OpAddInstanceProperty: "addInstanceProperty",
	OpAddStaticProperty:   "addStaticProperty",
}

func (k OpKind) String() string {
	if n, ok := opNames[k]; ok {
		return n
	}
	return "unknownOp"
}
