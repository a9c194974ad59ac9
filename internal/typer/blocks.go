package typer

import (
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// AccessorKind distinguishes a plain class/object-literal member from
// a getter or setter (spec.md §4.4).
type AccessorKind int

const (
	AccessorNone AccessorKind = iota
	AccessorGetter
	AccessorSetter
)

// FunctionKind distinguishes the function-like forms spec.md §4.4
// gives different closing types to.
type FunctionKind int

const (
	FunctionPlain FunctionKind = iota
	FunctionArrow
	FunctionGenerator
	FunctionAsync
	FunctionAsyncArrow
	FunctionAsyncGenerator
	FunctionConstructor
)

// BranchRole tags which arm of a conditional a KindConditional frame
// belongs to. Switch cases are described by the IsDefault/IsFirstCase/
// IsLastCase fields of BlockMeta instead.
type BranchRole int

const (
	BranchNone BranchRole = iota
	BranchIfConsequent
	BranchIfAlternative
)

// BlockMeta carries the metadata a builder passes alongside a block
// kind to EnterBlock (spec.md §6: "enterBlock(kind, …metadata)"). Only
// the fields relevant to Kind need to be set; the rest are ignored.
type BlockMeta struct {
	// Conditional (state.KindConditional)
	Branch         BranchRole
	HasAlternative bool // set on the consequent frame when an else will follow

	// Switch-case (state.KindSwitchCase)
	IsDefault   bool
	IsFirstCase bool
	IsLastCase  bool

	// Loop binding (state.KindLoop): the loop variable's name and type,
	// e.g. ("k", .string) for for-in, ("x", .unknown) for for-of,
	// ("i", .primitive) for a numeric for. Empty Name means no implicit
	// binding (while/do-while/repeat).
	LoopVarName string
	LoopVarType lattice.Type

	// Function (state.KindFunction)
	FunctionKind FunctionKind
	Signature    lattice.Signature
	ParamVars    []ir.Variable // aligned with Signature.Parameters
	ThisVar      ir.Variable   // "" if the body has no bound `this` (arrows)
	OutputVar    ir.Variable   // bound on LeaveBlock to the closed-over function type

	// Class (state.KindClassBody)
	ClassVar  ir.Variable
	SuperType lattice.Type // zero value if no superclass

	// Class/object-literal members (state.KindClassMethod/KindClassStatic/
	// state.KindClassStaticInitializer/state.KindObjectMethod)
	MemberName    string
	MemberSig     lattice.Signature
	Accessor      AccessorKind
	IsMethod      bool // false => contributes a property name, true => a method name
	Private       bool
	IsConstructor bool
	ThisParam     ir.Variable // variable bound to `this` inside the member body
	ParamVars2    []ir.Variable

	// Object literal (state.KindObjectLiteral)
	ObjectVar ir.Variable
}

type pendingConditional struct {
	hasAlternative  bool
	phase           conditionalPhase
	consequentDiffs []state.Diff
}

type pendingSwitch struct {
	cases         [][]state.Diff
	sawDefault    bool
	currentIsLast bool
}

// EnterBlock opens a new lexical scope of the given kind, per spec.md
// §6's block lifecycle hooks. It pushes a state.Frame and performs
// whatever kind-specific setup (parameter binding, `this` binding,
// return-type/super-type tracking) spec.md §4.4–§4.5 describe.
func (t *Typer) EnterBlock(kind state.Kind, meta BlockMeta) error {
	switch kind {
	case state.KindConditional:
		return t.enterConditional(meta)

	case state.KindLoop:
		t.stack.Push(state.KindLoop)
		if meta.LoopVarName != "" {
			t.stack.Define(meta.LoopVarName, meta.LoopVarType)
		}
		return nil

	case state.KindSwitchCase:
		return t.enterSwitchCase(meta)

	case state.KindTry, state.KindCatch, state.KindFinally:
		t.stack.Push(kind)
		return nil

	case state.KindFunction:
		return t.enterFunction(meta)

	case state.KindClassBody:
		return t.enterClassBody(meta)
	case state.KindClassMethod, state.KindClassStatic, state.KindClassStaticInitializer:
		return t.enterClassMember(kind, meta)

	case state.KindObjectLiteral:
		return t.enterObjectLiteral(meta)
	case state.KindObjectMethod:
		return t.enterObjectMember(meta)

	default:
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "EnterBlock: unrecognized block kind " + kind.String()}
	}
}

// LeaveBlock closes the innermost open block and merges its effects
// into the parent per the table in spec.md §4.5. Calling LeaveBlock
// with no matching EnterBlock is a programmer error (spec.md §7) and
// is reported as a *BlockMismatchError rather than a panic, since a
// library embedded in a long-running fuzzer should let its host decide
// whether to recover.
func (t *Typer) LeaveBlock() error {
	if t.stack.Depth() <= 1 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "LeaveBlock called with no open block"}
	}

	switch t.stack.TopKind() {
	case state.KindConditional:
		return t.leaveConditional()
	case state.KindLoop, state.KindTry, state.KindCatch, state.KindFinally:
		t.stack.MergeBody(t.stack.Pop())
		return nil
	case state.KindSwitchCase:
		return t.leaveSwitchCase()
	case state.KindFunction:
		return t.leaveFunction()
	case state.KindClassBody:
		return t.leaveClassBody()
	case state.KindClassMethod, state.KindClassStatic, state.KindClassStaticInitializer:
		return t.leaveClassMember()
	case state.KindObjectLiteral:
		return t.leaveObjectLiteral()
	case state.KindObjectMethod:
		return t.leaveObjectMember()
	default:
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "LeaveBlock: unrecognized open block kind " + t.stack.TopKind().String()}
	}
}
