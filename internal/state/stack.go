package state

import "github.com/jsfuzz/typer/internal/lattice"

// Mode selects how MergeSiblings combines several sibling frames' diffs
// back into the parent frame (spec.md §4.3).
type Mode int

const (
	// MayExecute is used for if-without-else, single-arm switch without
	// default, loops, and try/catch/finally: the body (or each case) may
	// run zero times, so the pre-block type always survives the merge
	// alongside whatever each sibling that did run produced.
	MayExecute Mode = iota

	// UnionAllExecuted is used for if/else: exactly one arm always runs,
	// so the pre-block type only needs to survive for a variable that at
	// least one arm left untouched.
	UnionAllExecuted
)

// Stack is the ordered sequence of Frames described in spec.md §3.3/§4.3.
// The topmost frame is active; Get/Set operate on it, walking down
// through enclosing frames as needed.
type Stack struct {
	frames []*Frame
}

// NewStack returns a Stack containing only an empty root frame.
func NewStack() *Stack {
	return &Stack{frames: []*Frame{newFrame(KindRoot)}}
}

// Push opens a new frame of the given kind atop the stack.
func (s *Stack) Push(kind Kind) {
	s.frames = append(s.frames, newFrame(kind))
}

// Pop discards the top frame and returns the diffs it recorded: the
// variables it reassigned, paired with their final type in that frame.
func (s *Stack) Pop() []Diff {
	n := len(s.frames)
	top := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return top.diffs()
}

// Depth reports how many frames are currently open, root included.
func (s *Stack) Depth() int { return len(s.frames) }

// TopKind reports the block kind of the currently active frame.
func (s *Stack) TopKind() Kind { return s.frames[len(s.frames)-1].Kind }

// Define introduces a variable for the first time, per spec.md §3.3's
// invariant that a variable is introduced exactly once, into the
// currently active frame (the root frame for top-level IR, or a
// function/class/object-literal frame for locals born inside one).
func (s *Stack) Define(name string, t lattice.Type) {
	s.frames[len(s.frames)-1].define(name, t)
}

// Get walks the stack top-to-bottom and returns the innermost binding
// for name, or lattice.Unknown if it is not defined anywhere.
func (s *Stack) Get(name string) lattice.Type {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if t, ok := s.frames[i].get(name); ok {
			return t
		}
	}
	return lattice.Unknown
}

// Defined reports whether name is bound anywhere on the stack.
func (s *Stack) Defined(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].get(name); ok {
			return true
		}
	}
	return false
}

// Set writes name's type into the top frame, recording it as
// reassigned there (spec.md §4.3's `set`).
func (s *Stack) Set(name string, t lattice.Type) {
	s.frames[len(s.frames)-1].set(name, t)
}

func diffMap(diffs []Diff) map[string]lattice.Type {
	m := make(map[string]lattice.Type, len(diffs))
	for _, d := range diffs {
		m[d.Name] = d.Type
	}
	return m
}

// MergeSiblings combines several sibling frames' diffs (each produced
// by a Push/…/Pop cycle run against the same pre-state) into the
// current top frame, per the Mode's rule in spec.md §4.3, and returns
// the merged Diff list that was applied.
func (s *Stack) MergeSiblings(mode Mode, diffSets ...[]Diff) []Diff {
	maps := make([]map[string]lattice.Type, len(diffSets))
	names := make(map[string]bool)
	for i, ds := range diffSets {
		maps[i] = diffMap(ds)
		for name := range maps[i] {
			names[name] = true
		}
	}

	var applied []Diff
	for name := range names {
		pre := s.Get(name)
		merged := lattice.Nothing
		mergedSet := false
		union := func(t lattice.Type) {
			if !mergedSet {
				merged = t
				mergedSet = true
				return
			}
			merged = merged.Union(t)
		}

		for _, m := range maps {
			if t, ok := m[name]; ok {
				union(t)
			} else if mode == UnionAllExecuted {
				union(pre)
			}
		}
		if mode == MayExecute {
			union(pre)
		}
		s.Set(name, merged)
		applied = append(applied, Diff{Name: name, Type: merged})
	}
	return applied
}

// MergeBody runs a single block body (already executed into a popped
// frame's diffs) back into the parent as a may-execute merge — the
// mechanism behind sequential accumulation in class/object-literal
// bodies (spec.md §4.5: "preceding siblings' writes are visible to
// subsequent siblings") and the default rule for every construct whose
// body may run zero times.
func (s *Stack) MergeBody(diffs []Diff) []Diff {
	return s.MergeSiblings(MayExecute, diffs)
}
