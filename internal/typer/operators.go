package typer

import (
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
)

// analyzeUnary implements spec.md §4.4's unary rules: LogicalNot always
// yields .boolean; typeof always yields .string (it is a string-valued
// query, never throws); any other unary operator on a numeric operand
// widens to .primitive, with BigInt contagion (an operand that Is
// .bigint forces a result that MayBe .bigint).
func (t *Typer) analyzeUnary(op ir.Operation) error {
	operand := t.get(op.Inputs[0])
	out := op.Outputs[0]

	var result lattice.Type
	switch op.Kind {
	case ir.OpLogicalNot:
		result = lattice.Boolean
	case ir.OpTypeOf:
		result = t.env.StringType()
	default: // OpUnary: -, +, ~, ++, --, etc.
		result = lattice.Primitive
		if operand.Is(lattice.BigInt) {
			result = lattice.BigInt
		} else if operand.MayBe(lattice.BigInt) {
			result = result.Union(lattice.BigInt)
		}
	}
	t.define(out, result)
	return nil
}

// analyzeBinary implements spec.md §4.4's binary rules, covering
// arithmetic/logic (OpBinary), short-circuit logic (OpLogicOr/
// OpLogicAnd), and the always-boolean families (comparison, instanceof,
// `in`).
func (t *Typer) analyzeBinary(op ir.Operation) error {
	left := t.get(op.Inputs[0])
	right := t.get(op.Inputs[1])
	out := op.Outputs[0]

	var result lattice.Type
	switch op.Kind {
	case ir.OpCompare, ir.OpInstanceOf, ir.OpIn:
		result = lattice.Boolean
	case ir.OpLogicOr, ir.OpLogicAnd:
		// "result is left ∪ right restricted to primitives (but always
		// at least includes .boolean to be safe; spec permits the wider
		// .primitive)" — we take the permitted wider bound directly.
		result = lattice.Primitive
	default: // OpBinary
		result = combineArithmetic(left, right, op.Name)
	}
	t.define(out, result)
	return nil
}

// combineArithmetic implements the non-comparison binary-op table from
// spec.md §4.4: both-integer stays numeric, any bigint operand MayBe
// bigint, a string operand on Add widens to string|number (simplified
// to .primitive, as the spec explicitly permits), and everything else
// widens to .primitive.
func combineArithmetic(left, right lattice.Type, operator string) lattice.Type {
	if operator == "+" && (left.Is(lattice.String) || right.Is(lattice.String) || left.MayBe(lattice.String) || right.MayBe(lattice.String)) {
		return lattice.Primitive
	}
	if left.Is(lattice.Integer) && right.Is(lattice.Integer) {
		return lattice.Integer.Union(lattice.Float)
	}
	if left.MayBe(lattice.BigInt) || right.MayBe(lattice.BigInt) {
		return lattice.Primitive.Union(lattice.BigInt)
	}
	return lattice.Primitive
}

// analyzeReassign implements spec.md §4.4: `reassign(V, from: W)` sets
// V's type to W's current type.
func (t *Typer) analyzeReassign(op ir.Operation) error {
	t.set(op.Outputs[0], t.get(op.Inputs[0]))
	return nil
}

// analyzeReassignWithOp implements `reassign(V, from: W, with: op)`:
// V's type becomes whatever `V op W` would produce under the binary-op
// rules, then is stored into V.
func (t *Typer) analyzeReassignWithOp(op ir.Operation) error {
	dest := op.Outputs[0]
	current := t.get(dest)
	operand := t.get(op.Inputs[0])
	t.set(dest, combineArithmetic(current, operand, op.Name))
	return nil
}
