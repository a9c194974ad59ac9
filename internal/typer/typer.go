// Package typer implements the abstract-interpretation engine that
// walks IR operations in order, maintaining per-variable type state
// stacked by lexical scope, and exposes the current inferred type of
// any variable to downstream code generators (spec.md §1, §2).
package typer

import (
	"github.com/google/uuid"

	"github.com/jsfuzz/typer/internal/environment"
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// Typer is the engine described by spec.md §2: single-threaded,
// synchronous, driven by a builder issuing operations on one logical
// thread (spec.md §5). It owns no resources beyond its own state and
// the Environment oracle supplied at construction.
type Typer struct {
	sessionID string
	env       environment.Environment
	stack     *state.Stack

	// returnTypeStack/superTypeStack/superCtorTypeStack track the
	// outbound queries in spec.md §6 (currentReturnType,
	// currentSuperType, currentSuperConstructorType) across nested
	// function/method/class bodies.
	returnTypeStack    []lattice.Type
	superTypeStack     []lattice.Type
	superCtorTypeStack []lattice.Type
	thisStack          []lattice.Type

	conditionals  []pendingConditional
	switches      []pendingSwitch
	functions     []*functionBuilder
	classes       []*classBuilder
	classMembers  []classMemberPending
	objects       []*objectLiteralBuilder
	objectMembers []objectMemberPending
}

// New builds a Typer against the given Environment oracle. Each
// instance is tagged with a session id so a host running a fleet of
// Typers (one per fuzzing worker) can correlate a BlockMismatchError
// back to the session that produced it.
func New(env environment.Environment) *Typer {
	t := &Typer{env: env}
	t.resetState()
	return t
}

func (t *Typer) resetState() {
	t.sessionID = uuid.NewString()
	t.stack = state.NewStack()
	t.returnTypeStack = nil
	t.superTypeStack = nil
	t.superCtorTypeStack = nil
	t.thisStack = nil
	t.conditionals = nil
	t.switches = nil
	t.functions = nil
	t.classes = nil
	t.classMembers = nil
	t.objects = nil
	t.objectMembers = nil
}

// Reset discards all frames except an empty root and forgets every
// variable (spec.md §4.6), for use between test scenarios. It also
// mints a fresh session id, matching a brand-new Typer.
func (t *Typer) Reset() {
	t.resetState()
}

// SessionID returns the session id this Typer was tagged with at
// construction (or at the last Reset).
func (t *Typer) SessionID() string { return t.sessionID }

// TypeOf returns the current inferred type of v, or lattice.Unknown if
// v has never been defined (spec.md §6, §7).
func (t *Typer) TypeOf(v ir.Variable) lattice.Type {
	return t.stack.Get(string(v))
}

// CurrentReturnType returns the declared return type of the innermost
// enclosing function/method body, or lattice.Unknown outside of one.
func (t *Typer) CurrentReturnType() lattice.Type {
	if len(t.returnTypeStack) == 0 {
		return lattice.Unknown
	}
	return t.returnTypeStack[len(t.returnTypeStack)-1]
}

// CurrentSuperType returns the parent instance type visible inside the
// innermost class's method bodies, or lattice.Unknown outside of one
// or when the class has no superclass (spec.md §4.4 "Inheritance").
func (t *Typer) CurrentSuperType() lattice.Type {
	if len(t.superTypeStack) == 0 {
		return lattice.Unknown
	}
	return t.superTypeStack[len(t.superTypeStack)-1]
}

// CurrentSuperConstructorType returns the parent class value visible
// inside the innermost class's constructor body, or lattice.Unknown
// outside of one or when the class has no superclass.
func (t *Typer) CurrentSuperConstructorType() lattice.Type {
	if len(t.superCtorTypeStack) == 0 {
		return lattice.Unknown
	}
	return t.superCtorTypeStack[len(t.superCtorTypeStack)-1]
}

func (t *Typer) pushReturnType(rt lattice.Type) { t.returnTypeStack = append(t.returnTypeStack, rt) }
func (t *Typer) popReturnType() {
	t.returnTypeStack = t.returnTypeStack[:len(t.returnTypeStack)-1]
}

func (t *Typer) pushSuperTypes(super, superCtor lattice.Type) {
	t.superTypeStack = append(t.superTypeStack, super)
	t.superCtorTypeStack = append(t.superCtorTypeStack, superCtor)
}
func (t *Typer) popSuperTypes() {
	t.superTypeStack = t.superTypeStack[:len(t.superTypeStack)-1]
	t.superCtorTypeStack = t.superCtorTypeStack[:len(t.superCtorTypeStack)-1]
}

func (t *Typer) pushThis(ty lattice.Type) { t.thisStack = append(t.thisStack, ty) }
func (t *Typer) popThis()                 { t.thisStack = t.thisStack[:len(t.thisStack)-1] }

// define introduces a variable into the currently active frame with
// its producer's result type (spec.md §3.3's invariant).
func (t *Typer) define(v ir.Variable, ty lattice.Type) {
	t.stack.Define(string(v), ty)
}

func (t *Typer) get(v ir.Variable) lattice.Type {
	return t.stack.Get(string(v))
}

func (t *Typer) set(v ir.Variable, ty lattice.Type) {
	t.stack.Set(string(v), ty)
}

// Analyze runs the transfer function for op against the current
// state, per spec.md §4.4. It is invoked once, after the operation has
// been appended to the IR stream.
func (t *Typer) Analyze(op ir.Operation) error {
	switch op.Kind {
	case ir.OpLoadInteger, ir.OpLoadFloat, ir.OpLoadString, ir.OpLoadBoolean,
		ir.OpLoadBigInt, ir.OpLoadRegExp, ir.OpLoadNull, ir.OpLoadUndefined,
		ir.OpLoadThis, ir.OpLoadBuiltin:
		return t.analyzeConstant(op)

	case ir.OpUnary, ir.OpLogicalNot, ir.OpTypeOf:
		return t.analyzeUnary(op)
	case ir.OpBinary, ir.OpLogicOr, ir.OpLogicAnd, ir.OpCompare, ir.OpInstanceOf, ir.OpIn:
		return t.analyzeBinary(op)

	case ir.OpReassign:
		return t.analyzeReassign(op)
	case ir.OpReassignWithOp:
		return t.analyzeReassignWithOp(op)

	case ir.OpCreateObject:
		return t.analyzeCreateObject(op)
	case ir.OpSetProperty:
		return t.analyzeSetProperty(op)
	case ir.OpDeleteProperty:
		return t.analyzeDeleteProperty(op)
	case ir.OpGetProperty:
		return t.analyzeGetProperty(op)
	case ir.OpCallMethod:
		return t.analyzeCallMethod(op)
	case ir.OpCallFunction:
		return t.analyzeCallFunction(op)
	case ir.OpConstruct:
		return t.analyzeConstruct(op)
	case ir.OpDestruct:
		return t.analyzeDestruct(op)

	case ir.OpAddProperty:
		return t.analyzeAddProperty(op)
	case ir.OpAddElement:
		return t.analyzeAddElement(op)
	case ir.OpAddInstanceProperty:
		return t.analyzeAddInstanceProperty(op)
	case ir.OpAddStaticProperty:
		return t.analyzeAddStaticProperty(op)

	default:
		return &UnsupportedOperationError{SessionID: t.sessionID, Kind: op.Kind}
	}
}
