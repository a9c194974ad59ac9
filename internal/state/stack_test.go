package state

import (
	"testing"

	"github.com/jsfuzz/typer/internal/lattice"
)

func TestDefineAndGetWalksFrames(t *testing.T) {
	s := NewStack()
	s.Define("v", lattice.Integer)
	s.Push(KindConditional)
	if got := s.Get("v"); !got.Equal(lattice.Integer) {
		t.Fatalf("inner frame should see outer binding, got %s", got)
	}
	s.Set("v", lattice.String)
	if got := s.Get("v"); !got.Equal(lattice.String) {
		t.Fatalf("Set should shadow in the top frame, got %s", got)
	}
	s.Pop()
	if got := s.Get("v"); !got.Equal(lattice.Integer) {
		t.Fatalf("popping should discard the shadowing write, got %s", got)
	}
}

func TestUndefinedVariableIsUnknown(t *testing.T) {
	s := NewStack()
	if got := s.Get("nope"); !got.IsUnknown() {
		t.Errorf("typeOf of an undefined variable = %s, want unknown", got)
	}
}

func TestScenario4IfElseUnions(t *testing.T) {
	// v=loadInt(42); buildIfElse(v, { reassign(v,loadString) }, { reassign(v,loadFloat) })
	// => typeOf(v) = .string | .float
	s := NewStack()
	s.Define("v", lattice.Integer)

	s.Push(KindConditional)
	s.Set("v", lattice.String)
	diffA := s.Pop()

	s.Push(KindConditional)
	s.Set("v", lattice.Float)
	diffB := s.Pop()

	s.MergeSiblings(UnionAllExecuted, diffA, diffB)

	want := lattice.String.Union(lattice.Float)
	if got := s.Get("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) = %s, want %s", got, want)
	}
}

func TestScenario5IfWithoutElseKeepsPreType(t *testing.T) {
	// v=loadInt(42); buildIf(v, { reassign(v,loadString) })
	// => typeOf(v) = .integer | .string
	s := NewStack()
	s.Define("v", lattice.Integer)

	s.Push(KindConditional)
	s.Set("v", lattice.String)
	diff := s.Pop()

	s.MergeBody(diff)

	want := lattice.Integer.Union(lattice.String)
	if got := s.Get("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) = %s, want %s", got, want)
	}
}

func TestIfElseVariableUntouchedInOneArmKeepsPreType(t *testing.T) {
	s := NewStack()
	s.Define("v", lattice.Integer)
	s.Define("w", lattice.Boolean)

	s.Push(KindConditional)
	s.Set("v", lattice.String)
	s.Set("w", lattice.Null)
	diffA := s.Pop()

	s.Push(KindConditional)
	s.Set("v", lattice.Float)
	// w untouched in this arm
	diffB := s.Pop()

	s.MergeSiblings(UnionAllExecuted, diffA, diffB)

	if got := s.Get("v"); !got.Equal(lattice.String.Union(lattice.Float)) {
		t.Errorf("typeOf(v) = %s, want string|float", got)
	}
	want := lattice.Boolean.Union(lattice.Null)
	if got := s.Get("w"); !got.Equal(want) {
		t.Errorf("typeOf(w) = %s (w untouched on one arm, pre-type must survive), want %s", got, want)
	}
}

func TestLoopMergeUnionsPreAndBodyType(t *testing.T) {
	// "∀ loops: after the loop, for every V reassigned inside, typeOf(V)
	// = pre-loop-type ∪ body-final-type."
	s := NewStack()
	s.Define("v", lattice.Integer)

	s.Push(KindLoop)
	s.Set("v", lattice.String)
	diff := s.Pop()
	s.MergeBody(diff)

	want := lattice.Integer.Union(lattice.String)
	if got := s.Get("v"); !got.Equal(want) {
		t.Errorf("typeOf(v) after loop = %s, want %s", got, want)
	}
}

func TestSequentialAccumulationAcrossSiblingBodies(t *testing.T) {
	// Class/object-literal bodies: preceding siblings' writes are
	// visible to subsequent siblings (spec.md §4.5).
	s := NewStack()
	s.Define("shared", lattice.Undefined)

	s.Push(KindClassMethod)
	s.Set("shared", lattice.Integer)
	s.MergeBody(s.Pop())

	// Second sibling body should already observe the first's write as
	// its pre-type.
	if pre := s.Get("shared"); !pre.MayBe(lattice.Integer) {
		t.Fatalf("second sibling should see first sibling's write, got %s", pre)
	}

	s.Push(KindClassMethod)
	s.Set("shared", lattice.String)
	s.MergeBody(s.Pop())

	want := lattice.Undefined.Union(lattice.Integer).Union(lattice.String)
	if got := s.Get("shared"); !got.Equal(want) {
		t.Errorf("typeOf(shared) = %s, want %s", got, want)
	}
}
