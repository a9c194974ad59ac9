package typer

import (
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
)

// analyzeConstant implements spec.md §4.4 "Constants": every
// load-literal operation produces exactly one output variable whose
// type depends only on the Environment's configurable primitive types
// (so a host can, say, model BigInt-backed integers) and, for `this`,
// on whether we are inside an object/class body.
func (t *Typer) analyzeConstant(op ir.Operation) error {
	out := op.Outputs[0]
	var result lattice.Type
	switch op.Kind {
	case ir.OpLoadInteger:
		result = t.env.IntType()
	case ir.OpLoadFloat:
		result = t.env.FloatType()
	case ir.OpLoadString:
		result = t.env.StringType()
	case ir.OpLoadBoolean:
		result = t.env.BooleanType()
	case ir.OpLoadBigInt:
		result = t.env.BigIntType()
	case ir.OpLoadRegExp:
		result = t.env.RegExpType()
	case ir.OpLoadNull:
		result = lattice.Null
	case ir.OpLoadUndefined:
		result = lattice.Undefined
	case ir.OpLoadThis:
		result = t.currentThisType()
	case ir.OpLoadBuiltin:
		result = t.env.TypeOfBuiltin(op.Name)
	}
	t.define(out, result)
	return nil
}

// currentThisType implements the "unless inside a class/object scope"
// clause of spec.md §4.4's loadThis rule: a bare `this` reference not
// bound by an enclosing method/constructor/getter/setter body defaults
// to an unconstrained object.
func (t *Typer) currentThisType() lattice.Type {
	if len(t.thisStack) == 0 {
		return lattice.Object()
	}
	return t.thisStack[len(t.thisStack)-1]
}
