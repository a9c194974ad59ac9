package typer

import (
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// classBuilder accumulates a class value's two concurrent shapes
// across its body (spec.md §4.4 "Class definitions"): instanceType
// for members reached off an instance, staticType for members reached
// off the class itself.
type classBuilder struct {
	classVar     string
	instanceType lattice.Type
	staticType   lattice.Type
	ctorSig      *lattice.Signature
}

// classMemberPending remembers which shape a just-closed member body
// should feed its declared name into, since that decision (instance vs
// static, property vs method, visible vs private) is made at
// EnterBlock time but applied at LeaveBlock time.
type classMemberPending struct {
	kind          state.Kind
	name          string
	sig           lattice.Signature
	accessor      AccessorKind
	isMethod      bool
	private       bool
	isConstructor bool
}

// enterClassBody opens a class definition. Per spec.md §4.4's
// inheritance rules, the parent class value (if any) is passed in
// meta.SuperType as the full `S = parentStaticType + constructor(… →
// parentInstanceType)` value; the parent instance type is recovered
// from S's own construct signature, the same formula used to build S
// in the first place at its own class-close.
func (t *Typer) enterClassBody(meta BlockMeta) error {
	superType := lattice.Unknown
	if sig := meta.SuperType.ConstructSignature(); sig != nil {
		superType = sig.ReturnType
	}
	superCtorType := meta.SuperType
	if superCtorType.Equal(lattice.Nothing) {
		superCtorType = lattice.Unknown
	}
	t.pushSuperTypes(superType, superCtorType)

	t.classes = append(t.classes, &classBuilder{
		classVar:     string(meta.ClassVar),
		instanceType: lattice.Object(),
		staticType:   lattice.Object(),
	})
	t.stack.Push(state.KindClassBody)
	return nil
}

// leaveClassBody closes a class definition and binds the class
// variable to `staticType + .constructor(ctorSig with return:
// instanceType)`, defaulting to a nullary constructor when none was
// declared (spec.md §4.4).
func (t *Typer) leaveClassBody() error {
	if len(t.classes) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(class-body): no open class"}
	}
	diffs := t.stack.Pop()
	t.stack.MergeBody(diffs)
	t.popSuperTypes()

	cb := t.classes[len(t.classes)-1]
	t.classes = t.classes[:len(t.classes)-1]

	sig := lattice.NewSignature(cb.instanceType)
	if cb.ctorSig != nil {
		sig = *cb.ctorSig
		sig.ReturnType = cb.instanceType
	}
	result := cb.staticType.Combine(lattice.Constructor(sig))
	if cb.classVar != "" {
		t.stack.Define(cb.classVar, result)
	}
	return nil
}

// enterClassMember opens one instance/static member body (property
// initializer, method, getter, setter, private method, constructor, or
// the static initializer). `this` is bound to the shape accumulated so
// far — including prior siblings' writes, per sequential accumulation —
// except for the constructor, whose `this` starts as an unconstrained
// object (spec.md §4.4).
func (t *Typer) enterClassMember(kind state.Kind, meta BlockMeta) error {
	if len(t.classes) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "enterBlock(class-member): no open class"}
	}
	cb := t.classes[len(t.classes)-1]

	var thisType lattice.Type
	switch {
	case meta.IsConstructor:
		thisType = lattice.Object()
	case kind == state.KindClassStatic || kind == state.KindClassStaticInitializer:
		thisType = cb.staticType
	default:
		thisType = cb.instanceType
	}

	t.stack.Push(kind)
	t.pushThis(thisType)
	if meta.ThisParam != "" {
		t.define(meta.ThisParam, thisType)
	}
	for i, v := range meta.ParamVars2 {
		if i >= len(meta.MemberSig.Parameters) {
			break
		}
		t.define(v, meta.MemberSig.Parameters[i].BoundType())
	}
	t.pushReturnType(meta.MemberSig.ReturnType)

	t.classMembers = append(t.classMembers, classMemberPending{
		kind:          kind,
		name:          meta.MemberName,
		sig:           meta.MemberSig,
		accessor:      meta.Accessor,
		isMethod:      meta.IsMethod,
		private:       meta.Private,
		isConstructor: meta.IsConstructor,
	})
	return nil
}

// leaveClassMember closes one member body. Its free-variable writes
// merge may-execute into the class-body frame (so later siblings
// observe them, and the static initializer cannot erase them, per
// spec.md §4.5). The member's name is then folded into the relevant
// shape, unless it is private or the static initializer, neither of
// which contribute a name to the class value's external shape.
func (t *Typer) leaveClassMember() error {
	if len(t.classMembers) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(class-member): no open member"}
	}
	diffs := t.stack.Pop()
	t.stack.MergeBody(diffs)
	t.popReturnType()
	t.popThis()

	pending := t.classMembers[len(t.classMembers)-1]
	t.classMembers = t.classMembers[:len(t.classMembers)-1]

	if len(t.classes) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(class-member): no open class"}
	}
	cb := t.classes[len(t.classes)-1]

	switch {
	case pending.isConstructor:
		sig := pending.sig
		cb.ctorSig = &sig
	case pending.kind == state.KindClassStaticInitializer:
		// no name to contribute; its writes already merged above.
	case pending.private:
		// private members never appear on the external shape.
	case pending.kind == state.KindClassStatic:
		cb.staticType = applyMember(cb.staticType, pending)
	default:
		cb.instanceType = applyMember(cb.instanceType, pending)
	}
	return nil
}

// analyzeAddInstanceProperty implements `addInstanceProperty(name)`: a
// field declared without its own initializer body gains a property
// directly on instanceType (spec.md §4.4).
func (t *Typer) analyzeAddInstanceProperty(op ir.Operation) error {
	if len(t.classes) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "addInstanceProperty: no open class"}
	}
	cb := t.classes[len(t.classes)-1]
	cb.instanceType = cb.instanceType.WithProperty(op.Name)
	return nil
}

// analyzeAddStaticProperty implements `addStaticProperty(name)`,
// symmetrical to analyzeAddInstanceProperty but on staticType.
func (t *Typer) analyzeAddStaticProperty(op ir.Operation) error {
	if len(t.classes) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "addStaticProperty: no open class"}
	}
	cb := t.classes[len(t.classes)-1]
	cb.staticType = cb.staticType.WithProperty(op.Name)
	return nil
}

// applyMember folds one declared member's name into a shape: getters
// and setters contribute a property name, plain methods a method name
// (spec.md §4.4's addInstance*/addStatic* family).
func applyMember(shape lattice.Type, pending classMemberPending) lattice.Type {
	if pending.accessor == AccessorGetter || pending.accessor == AccessorSetter {
		return shape.WithProperty(pending.name)
	}
	if pending.isMethod {
		return shape.WithMethod(pending.name)
	}
	return shape.WithProperty(pending.name)
}
