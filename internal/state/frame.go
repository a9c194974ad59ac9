// Package state implements the per-scope "variable → type" dictionary
// stacked by lexical block (spec.md §3.3, §4.3).
package state

import "github.com/jsfuzz/typer/internal/lattice"

// Kind tags the lexical construct a Frame was opened for. The typer's
// LeaveBlock dispatches on it to pick the merge used when the frame is
// closed (see internal/typer/blocks.go).
type Kind int

const (
	KindRoot Kind = iota
	KindConditional
	KindLoop
	KindSwitchCase
	KindFunction
	KindClassBody
	KindClassMethod
	KindClassStatic
	KindClassStaticInitializer
	KindObjectLiteral
	KindObjectMethod
	KindTry
	KindCatch
	KindFinally
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindConditional:
		return "conditional"
	case KindLoop:
		return "loop"
	case KindSwitchCase:
		return "switch-case"
	case KindFunction:
		return "function"
	case KindClassBody:
		return "class-body"
	case KindClassMethod:
		return "class-method"
	case KindClassStatic:
		return "class-static"
	case KindClassStaticInitializer:
		return "class-static-initializer"
	case KindObjectLiteral:
		return "object-literal"
	case KindObjectMethod:
		return "object-method"
	case KindTry:
		return "try"
	case KindCatch:
		return "catch"
	case KindFinally:
		return "finally"
	default:
		return "unknown-block-kind"
	}
}

// Frame is one level of the State Stack: a mapping from variable id to
// its current Type in this lexical block, plus the kind of block that
// opened it and the set of variables this frame reassigned (spec.md §3.3).
type Frame struct {
	Kind       Kind
	vars       map[string]lattice.Type
	reassigned map[string]bool
}

func newFrame(kind Kind) *Frame {
	return &Frame{Kind: kind, vars: make(map[string]lattice.Type)}
}

// define introduces a variable into this frame for the first time
// (spec.md §3.3's invariant: every variable is introduced exactly once).
func (f *Frame) define(name string, t lattice.Type) {
	f.vars[name] = t
}

// set writes a variable's type in this frame and records it as
// reassigned here.
func (f *Frame) set(name string, t lattice.Type) {
	f.vars[name] = t
	if f.reassigned == nil {
		f.reassigned = make(map[string]bool)
	}
	f.reassigned[name] = true
}

func (f *Frame) get(name string) (lattice.Type, bool) {
	t, ok := f.vars[name]
	return t, ok
}

// Diff is what pop() hands back to the caller: the variables this
// frame reassigned, and their final type in the frame.
type Diff struct {
	Name string
	Type lattice.Type
}

// diffs collects this frame's reassigned-variable diffs.
func (f *Frame) diffs() []Diff {
	if len(f.reassigned) == 0 {
		return nil
	}
	out := make([]Diff, 0, len(f.reassigned))
	for name := range f.reassigned {
		out = append(out, Diff{Name: name, Type: f.vars[name]})
	}
	return out
}
