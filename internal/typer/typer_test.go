package typer

import (
	"testing"

	"github.com/jsfuzz/typer/internal/environment"
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

func newTestTyper() *Typer {
	return New(environment.NewStubEnvironment())
}

// TestScenario1ConstantsAndArithmetic implements spec.md §8 scenario 1:
// v = loadInt(42); r = binary(v, loadString("x"), Add) => typeOf(r) =
// .primitive; typeOf(v) = .integer.
func TestScenario1ConstantsAndArithmetic(t *testing.T) {
	ty := newTestTyper()

	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "v")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadString, "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Binary(ir.OpBinary, "+", "v", "s", "r")); err != nil {
		t.Fatal(err)
	}

	if got := ty.TypeOf("v"); !got.Equal(lattice.Integer) {
		t.Errorf("typeOf(v) = %s, want integer", got)
	}
	if got := ty.TypeOf("r"); !got.Equal(lattice.Primitive) {
		t.Errorf("typeOf(r) = %s, want primitive", got)
	}
}

// TestScenario2ObjectLiteral implements spec.md §8 scenario 2: an
// object literal with property a, method m, getter b, setter c, and
// integer element 0 ends up with properties {a,b,c}, methods {m}; the
// integer element contributes nothing.
func TestScenario2ObjectLiteral(t *testing.T) {
	ty := newTestTyper()

	if err := ty.EnterBlock(state.KindObjectLiteral, BlockMeta{ObjectVar: "obj"}); err != nil {
		t.Fatal(err)
	}

	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "av")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.AddProperty("a", "av")); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindObjectMethod, BlockMeta{MemberName: "m", IsMethod: true, MemberSig: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindObjectMethod, BlockMeta{MemberName: "b", Accessor: AccessorGetter, MemberSig: lattice.NewSignature(lattice.Integer)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindObjectMethod, BlockMeta{MemberName: "c", Accessor: AccessorSetter, MemberSig: lattice.NewSignature(lattice.Undefined, lattice.Plain(lattice.Integer))}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "ev")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.AddElement(0, "ev")); err != nil {
		t.Fatal(err)
	}

	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	final := ty.TypeOf("obj")
	shape := final.Shape()
	if shape == nil {
		t.Fatalf("typeOf(obj) carries no shape: %s", final)
	}
	for _, prop := range []string{"a", "b", "c"} {
		if !shape.Properties.has(prop) {
			t.Errorf("expected property %q on object shape %s", prop, shape)
		}
	}
	if !shape.Methods.has("m") {
		t.Errorf("expected method m on object shape %s", shape)
	}
	if shape.Properties.has("0") {
		t.Errorf("integer element must not contribute a property: %s", shape)
	}
}

// TestScenario3ClassValueShape implements spec.md §8 scenario 3: a
// class with instance props a,b, instance method f, instance getter c,
// instance method g, static props a,d, static method g, static setter
// e, static method h closes to `.object(props:{a,d,e}, methods:{g,h})
// + .constructor([.string]=>.object(props:{a,b,c}, methods:{f,g}))`.
func TestScenario3ClassValueShape(t *testing.T) {
	ty := newTestTyper()

	if err := ty.EnterBlock(state.KindClassBody, BlockMeta{ClassVar: "C"}); err != nil {
		t.Fatal(err)
	}

	if err := ty.Analyze(ir.AddInstanceProperty("a")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.AddInstanceProperty("b")); err != nil {
		t.Fatal(err)
	}

	ctorSig := lattice.NewSignature(lattice.Object(), lattice.Plain(lattice.String))
	if err := ty.EnterBlock(state.KindClassMethod, BlockMeta{IsConstructor: true, MemberSig: ctorSig, ParamVars2: []ir.Variable{"ctorArg"}}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassMethod, BlockMeta{MemberName: "f", IsMethod: true, MemberSig: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassMethod, BlockMeta{MemberName: "c", Accessor: AccessorGetter, MemberSig: lattice.NewSignature(lattice.Integer)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassMethod, BlockMeta{MemberName: "g", IsMethod: true, MemberSig: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.Analyze(ir.AddStaticProperty("a")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.AddStaticProperty("d")); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassStatic, BlockMeta{MemberName: "g", IsMethod: true, MemberSig: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassStatic, BlockMeta{MemberName: "e", Accessor: AccessorSetter, MemberSig: lattice.NewSignature(lattice.Undefined, lattice.Plain(lattice.Integer))}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindClassStatic, BlockMeta{MemberName: "h", IsMethod: true, MemberSig: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	classValue := ty.TypeOf("C")
	if !classValue.Constructible() {
		t.Fatalf("class value must be constructible: %s", classValue)
	}
	ctor := classValue.ConstructSignature()
	instanceType := ctor.ReturnType
	instanceShape := instanceType.Shape()
	if instanceShape == nil {
		t.Fatalf("instance type carries no shape: %s", instanceType)
	}
	for _, prop := range []string{"a", "b", "c"} {
		if !instanceShape.Properties.has(prop) {
			t.Errorf("instance shape missing property %q: %s", prop, instanceShape)
		}
	}
	for _, m := range []string{"f", "g"} {
		if !instanceShape.Methods.has(m) {
			t.Errorf("instance shape missing method %q: %s", m, instanceShape)
		}
	}

	staticShape := classValue.Shape()
	for _, prop := range []string{"a", "d", "e"} {
		if !staticShape.Properties.has(prop) {
			t.Errorf("static shape missing property %q: %s", prop, staticShape)
		}
	}
	for _, m := range []string{"g", "h"} {
		if !staticShape.Methods.has(m) {
			t.Errorf("static shape missing method %q: %s", m, staticShape)
		}
	}
}

// TestScenario4IfElseUnions implements spec.md §8 scenario 4 through
// the public Typer API.
func TestScenario4IfElseUnions(t *testing.T) {
	ty := newTestTyper()
	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "v")); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindConditional, BlockMeta{Branch: BranchIfConsequent, HasAlternative: true}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadString, "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindConditional, BlockMeta{Branch: BranchIfAlternative}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadFloat, "f")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "f")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	want := lattice.String.Union(lattice.Float)
	if got := ty.TypeOf("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) = %s, want %s", got, want)
	}
}

// TestScenario5IfWithoutElseKeepsPreType implements spec.md §8
// scenario 5.
func TestScenario5IfWithoutElseKeepsPreType(t *testing.T) {
	ty := newTestTyper()
	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "v")); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindConditional, BlockMeta{Branch: BranchIfConsequent, HasAlternative: false}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadString, "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	want := lattice.Integer.Union(lattice.String)
	if got := ty.TypeOf("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) = %s, want %s", got, want)
	}
}

// TestScenario6GroupPropertyLookup implements spec.md §8 scenario 6
// through the Typer's getProperty transfer function.
func TestScenario6GroupPropertyLookup(t *testing.T) {
	env := environment.NewStubEnvironment()
	env.SetBuiltin("B", lattice.Object(lattice.OfGroup("B")))
	env.SetGroupProperty("B", "foo", lattice.Float)
	ty := New(env)

	if err := ty.Analyze(ir.LoadNamed(ir.OpLoadBuiltin, "b", "B")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.GetProperty("b", "foo", "p")); err != nil {
		t.Fatal(err)
	}
	if got := ty.TypeOf("p"); !got.Equal(lattice.Float) {
		t.Errorf("typeOf(p) = %s, want float", got)
	}

	if err := ty.Analyze(ir.LoadNamed(ir.OpLoadBuiltin, "u", "Unknown")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.GetProperty("u", "foo", "p2")); err != nil {
		t.Fatal(err)
	}
	if got := ty.TypeOf("p2"); !got.IsUnknown() {
		t.Errorf("typeOf(p2) = %s, want unknown", got)
	}
}

// TestLoopReassignmentUnionsPreAndBodyType covers the loop invariant
// quantified in spec.md §8.
func TestLoopReassignmentUnionsPreAndBodyType(t *testing.T) {
	ty := newTestTyper()
	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "v")); err != nil {
		t.Fatal(err)
	}
	if err := ty.EnterBlock(state.KindLoop, BlockMeta{}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadString, "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}
	want := lattice.Integer.Union(lattice.String)
	if got := ty.TypeOf("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) after loop = %s, want %s", got, want)
	}
}

// TestSwitchWithDefaultUnionsAllCases covers the switch row of spec.md
// §4.5: with a default present, every case always-executes-one, so the
// pre-switch value need not survive for a variable every case writes.
func TestSwitchWithDefaultUnionsAllCases(t *testing.T) {
	ty := newTestTyper()
	if err := ty.Analyze(ir.Load(ir.OpLoadInteger, "v")); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindSwitchCase, BlockMeta{IsFirstCase: true}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadString, "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "s")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	if err := ty.EnterBlock(state.KindSwitchCase, BlockMeta{IsDefault: true, IsLastCase: true}); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Load(ir.OpLoadFloat, "f")); err != nil {
		t.Fatal(err)
	}
	if err := ty.Analyze(ir.Reassign("v", "f")); err != nil {
		t.Fatal(err)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	want := lattice.String.Union(lattice.Float)
	if got := ty.TypeOf("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) = %s, want %s (no pre-switch leak: every case reassigned v and a default guarantees one ran)", got, want)
	}
}

// TestFunctionClosingType covers spec.md §4.4's function-definition
// rules for a plain function: parameters bind per their kind, `this` is
// an unconstrained object, and the function closes to
// functionAndConstructor(sig).
func TestFunctionClosingType(t *testing.T) {
	ty := newTestTyper()
	sig := lattice.NewSignature(lattice.Integer, lattice.Plain(lattice.String), lattice.Opt(lattice.Boolean), lattice.Rest(lattice.Integer))

	if err := ty.EnterBlock(state.KindFunction, BlockMeta{
		FunctionKind: FunctionPlain,
		Signature:    sig,
		ParamVars:    []ir.Variable{"p0", "p1", "p2"},
		ThisVar:      "self",
		OutputVar:    "F",
	}); err != nil {
		t.Fatal(err)
	}
	if got := ty.TypeOf("p0"); !got.Equal(lattice.String) {
		t.Errorf("plain param p0 = %s, want string", got)
	}
	if got := ty.TypeOf("p1"); !got.Equal(lattice.Boolean.Union(lattice.Undefined)) {
		t.Errorf("opt param p1 = %s, want boolean|undefined", got)
	}
	if got := ty.TypeOf("p2"); !got.Equal(lattice.Object()) {
		t.Errorf("rest param p2 = %s, want object()", got)
	}
	if got := ty.TypeOf("self"); !got.Equal(lattice.Object()) {
		t.Errorf("this in a plain function = %s, want object()", got)
	}
	if got := ty.CurrentReturnType(); !got.Equal(lattice.Integer) {
		t.Errorf("currentReturnType() = %s, want integer", got)
	}
	if err := ty.LeaveBlock(); err != nil {
		t.Fatal(err)
	}

	final := ty.TypeOf("F")
	if !final.Callable() || !final.Constructible() {
		t.Errorf("plain function value must be both callable and constructible: %s", final)
	}
}

// TestArrowInheritsEnclosingThis covers spec.md §4.4's arrow exception.
func TestArrowInheritsEnclosingThis(t *testing.T) {
	ty := newTestTyper()
	cb := &classBuilder{instanceType: lattice.Object(lattice.WithProperties("owner"))}
	t2 := ty
	t2.classes = append(t2.classes, cb)
	t2.pushThis(cb.instanceType)

	if err := t2.EnterBlock(state.KindFunction, BlockMeta{FunctionKind: FunctionArrow, Signature: lattice.NewSignature(lattice.Undefined)}); err != nil {
		t.Fatal(err)
	}
	if got := t2.currentThisType(); !got.Equal(cb.instanceType) {
		t.Errorf("arrow body this = %s, want enclosing %s", got, cb.instanceType)
	}
	if err := t2.LeaveBlock(); err != nil {
		t.Fatal(err)
	}
}

// TestRoundTripIdempotence covers spec.md §8's round-trip property:
// replaying the same operations after Reset() yields identical types.
func TestRoundTripIdempotence(t *testing.T) {
	run := func(ty *Typer) lattice.Type {
		ty.Analyze(ir.Load(ir.OpLoadInteger, "v"))
		ty.Analyze(ir.Load(ir.OpLoadString, "s"))
		ty.Analyze(ir.Binary(ir.OpBinary, "+", "v", "s", "r"))
		return ty.TypeOf("r")
	}
	ty := newTestTyper()
	first := run(ty)
	ty.Reset()
	second := run(ty)
	if !first.Equal(second) {
		t.Errorf("round trip mismatch: first=%s second=%s", first, second)
	}
}

// TestUnsupportedOperationErrors covers spec.md §7: an operation kind
// the Typer does not recognize is reported, never panics.
func TestUnsupportedOperationErrors(t *testing.T) {
	ty := newTestTyper()
	err := ty.Analyze(ir.Operation{Kind: ir.OpKind(9999)})
	if err == nil {
		t.Fatal("expected an UnsupportedOperationError")
	}
	if _, ok := err.(*UnsupportedOperationError); !ok {
		t.Errorf("got %T, want *UnsupportedOperationError", err)
	}
}

// TestLeaveBlockWithoutEnterIsBlockMismatch covers spec.md §7's
// programmer-error handling for malformed block nesting.
func TestLeaveBlockWithoutEnterIsBlockMismatch(t *testing.T) {
	ty := newTestTyper()
	err := ty.LeaveBlock()
	if err == nil {
		t.Fatal("expected a BlockMismatchError")
	}
	if _, ok := err.(*BlockMismatchError); !ok {
		t.Errorf("got %T, want *BlockMismatchError", err)
	}
}
