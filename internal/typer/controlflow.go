package typer

import (
	"github.com/jsfuzz/typer/internal/state"
)

// conditionalPhase tracks which arm of an open if/else a
// pendingConditional bookkeeping entry is waiting on.
type conditionalPhase int

const (
	phaseConsequent conditionalPhase = iota
	phaseAlternative
)

// enterConditional opens the consequent or alternative arm of an
// if-statement (spec.md §4.5's "if"/"if-else" row). An if without an
// else is modeled as a consequent with HasAlternative=false, merged
// may-execute as soon as it closes; if/else is modeled as two arms,
// merged union-all-executed once the alternative closes.
func (t *Typer) enterConditional(meta BlockMeta) error {
	if meta.Branch == BranchIfConsequent {
		t.conditionals = append(t.conditionals, pendingConditional{hasAlternative: meta.HasAlternative})
	} else {
		if len(t.conditionals) == 0 {
			return &BlockMismatchError{SessionID: t.sessionID, Reason: "enterBlock(conditional, alternative): no open consequent"}
		}
		t.conditionals[len(t.conditionals)-1].phase = phaseAlternative
	}
	t.stack.Push(state.KindConditional)
	return nil
}

// leaveConditional closes whichever arm is on top. A consequent with
// no alternative merges immediately (may-execute); a consequent that
// has an alternative stashes its diffs and waits; an alternative
// merges against the stashed consequent diffs (union-all-executed).
func (t *Typer) leaveConditional() error {
	if len(t.conditionals) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(conditional): no open conditional"}
	}
	top := &t.conditionals[len(t.conditionals)-1]
	diffs := t.stack.Pop()

	switch top.phase {
	case phaseConsequent:
		if !top.hasAlternative {
			t.stack.MergeBody(diffs)
			t.conditionals = t.conditionals[:len(t.conditionals)-1]
			return nil
		}
		top.consequentDiffs = diffs
		return nil
	default: // phaseAlternative
		t.stack.MergeSiblings(state.UnionAllExecuted, top.consequentDiffs, diffs)
		t.conditionals = t.conditionals[:len(t.conditionals)-1]
		return nil
	}
}

// enterSwitchCase opens one `case`/`default` body. The first case of a
// switch starts a new pendingSwitch bookkeeping entry; every case
// pushes a sibling frame against the same pre-switch state.
func (t *Typer) enterSwitchCase(meta BlockMeta) error {
	if meta.IsFirstCase || len(t.switches) == 0 {
		t.switches = append(t.switches, pendingSwitch{})
	}
	top := &t.switches[len(t.switches)-1]
	if meta.IsDefault {
		top.sawDefault = true
	}
	top.currentIsLast = meta.IsLastCase
	t.stack.Push(state.KindSwitchCase)
	return nil
}

// leaveSwitchCase closes one case body, accumulating its diffs. On the
// last case (per the IsLastCase flag the builder passed to the
// matching EnterBlock, since LeaveBlock itself takes no metadata), all
// cases are merged together: union-all-executed if a `default` was
// present (some case always runs), else may-execute (spec.md §4.5's
// switch row).
func (t *Typer) leaveSwitchCase() error {
	if len(t.switches) == 0 {
		return &BlockMismatchError{SessionID: t.sessionID, Reason: "leaveBlock(switch-case): no open switch"}
	}
	top := &t.switches[len(t.switches)-1]
	diffs := t.stack.Pop()
	top.cases = append(top.cases, diffs)

	if !top.currentIsLast {
		return nil
	}

	mode := state.MayExecute
	if top.sawDefault {
		mode = state.UnionAllExecuted
	}
	t.stack.MergeSiblings(mode, top.cases...)
	t.switches = t.switches[:len(t.switches)-1]
	return nil
}
