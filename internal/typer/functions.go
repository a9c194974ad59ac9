package typer

import (
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// functionBuilder tracks the bookkeeping a function body needs between
// EnterBlock(KindFunction) and LeaveBlock (spec.md §4.4 "Function
// definitions").
type functionBuilder struct {
	kind      FunctionKind
	signature lattice.Signature
	outputVar string
}

// enterFunction opens a function body: a fresh frame, parameters bound
// per their ParamKind, and `this` bound for every kind except arrows,
// which see the enclosing `this` (spec.md §4.4: "`this` … is `.object()`
// for constructors, `.object()` at the call site for plain functions
// used as methods").
func (t *Typer) enterFunction(meta BlockMeta) error {
	t.stack.Push(state.KindFunction)

	for i, v := range meta.ParamVars {
		if i >= len(meta.Signature.Parameters) {
			break
		}
		t.define(v, meta.Signature.Parameters[i].BoundType())
	}

	thisType := t.currentThisType()
	if meta.FunctionKind != FunctionArrow && meta.FunctionKind != FunctionAsyncArrow {
		thisType = lattice.Object()
		if meta.ThisVar != "" {
			t.define(meta.ThisVar, thisType)
		}
	}
	t.pushThis(thisType)
	t.pushReturnType(meta.Signature.ReturnType)

	t.functions = append(t.functions, &functionBuilder{
		kind:      meta.FunctionKind,
		signature: meta.Signature,
		outputVar: string(meta.OutputVar),
	})
	return nil
}

// leaveFunction closes a function body. Reassignments to variables
// captured from an enclosing scope propagate may-execute (the function
// might run zero or many times); locals defined inside do not escape,
// since they were never defined in an outer frame to begin with. The
// function's own variable is then bound to the signature-carrying type
// its kind prescribes.
func (t *Typer) leaveFunction() error {
	if len(t.functions) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(function): no open function"}
	}
	diffs := t.stack.Pop()
	t.stack.MergeBody(diffs)

	t.popReturnType()
	t.popThis()

	fb := t.functions[len(t.functions)-1]
	t.functions = t.functions[:len(t.functions)-1]

	var result lattice.Type
	switch fb.kind {
	case FunctionPlain:
		result = lattice.FunctionAndConstructor(fb.signature)
	case FunctionConstructor:
		sig := fb.signature
		sig.ReturnType = lattice.Object()
		result = lattice.Constructor(sig)
	default:
		result = lattice.Function(fb.signature)
	}

	if fb.outputVar != "" {
		t.stack.Define(fb.outputVar, result)
	}
	return nil
}
