package typer

import (
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// objectLiteralBuilder accumulates an object literal's shape across
// its body, symmetrical to classBuilder but with a single shape and no
// static/private distinction (spec.md §4.4 "Object literals").
type objectLiteralBuilder struct {
	objectVar  string
	objectType lattice.Type
}

// objectMemberPending mirrors classMemberPending for an object
// literal's method/getter/setter bodies.
type objectMemberPending struct {
	name     string
	accessor AccessorKind
	isMethod bool
}

// enterObjectLiteral opens an object-literal body. Properties and
// elements added by plain OpAddProperty/OpAddElement operations are
// folded in directly by analyzeAddProperty/analyzeAddElement without
// their own block; methods/getters/setters open a nested
// state.KindObjectMethod body via enterObjectMember.
func (t *Typer) enterObjectLiteral(meta BlockMeta) error {
	t.objects = append(t.objects, &objectLiteralBuilder{
		objectVar:  string(meta.ObjectVar),
		objectType: lattice.Object(),
	})
	t.stack.Push(state.KindObjectLiteral)
	return nil
}

// leaveObjectLiteral closes the body and binds the outer variable to
// the accumulated shape.
func (t *Typer) leaveObjectLiteral() error {
	if len(t.objects) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(object-literal): no open object literal"}
	}
	diffs := t.stack.Pop()
	t.stack.MergeBody(diffs)

	ob := t.objects[len(t.objects)-1]
	t.objects = t.objects[:len(t.objects)-1]
	if ob.objectVar != "" {
		t.stack.Define(ob.objectVar, ob.objectType)
	}
	return nil
}

// enterObjectMember opens one method/getter/setter body, with `this`
// bound to the shape accumulated so far (spec.md §4.4: "runs the body
// with this = current objectType").
func (t *Typer) enterObjectMember(meta BlockMeta) error {
	if len(t.objects) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "enterBlock(object-method): no open object literal"}
	}
	ob := t.objects[len(t.objects)-1]

	t.stack.Push(state.KindObjectMethod)
	t.pushThis(ob.objectType)
	if meta.ThisParam != "" {
		t.define(meta.ThisParam, ob.objectType)
	}
	for i, v := range meta.ParamVars2 {
		if i >= len(meta.MemberSig.Parameters) {
			break
		}
		t.define(v, meta.MemberSig.Parameters[i].BoundType())
	}
	t.pushReturnType(meta.MemberSig.ReturnType)

	t.objectMembers = append(t.objectMembers, objectMemberPending{
		name:     meta.MemberName,
		accessor: meta.Accessor,
		isMethod: meta.IsMethod,
	})
	return nil
}

// leaveObjectMember closes one method/getter/setter body, merges its
// free-variable writes may-execute (making them visible to subsequent
// siblings), and folds its name into the object's shape.
func (t *Typer) leaveObjectMember() error {
	if len(t.objectMembers) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(object-method): no open member"}
	}
	diffs := t.stack.Pop()
	t.stack.MergeBody(diffs)
	t.popReturnType()
	t.popThis()

	pending := t.objectMembers[len(t.objectMembers)-1]
	t.objectMembers = t.objectMembers[:len(t.objectMembers)-1]

	if len(t.objects) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(object-method): no open object literal"}
	}
	ob := t.objects[len(t.objects)-1]
	if pending.accessor == AccessorGetter || pending.accessor == AccessorSetter || !pending.isMethod {
		ob.objectType = ob.objectType.WithProperty(pending.name)
	} else {
		ob.objectType = ob.objectType.WithMethod(pending.name)
	}
	return nil
}

// analyzeAddProperty implements `addProperty(name, as: V)`: appends
// name to the object literal currently being built, ignoring V's
// value type (mirrors analyzeSetProperty's rationale).
func (t *Typer) analyzeAddProperty(op ir.Operation) error {
	if len(t.objects) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "addProperty: no open object literal"}
	}
	ob := t.objects[len(t.objects)-1]
	ob.objectType = ob.objectType.WithProperty(op.Name)
	return nil
}

// analyzeAddElement implements `addElement(i, as: V)`: integer-indexed
// elements never contribute a property name to the shape (spec.md §4.4).
func (t *Typer) analyzeAddElement(op ir.Operation) error {
	if len(t.objects) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "addElement: no open object literal"}
	}
	return nil
}
