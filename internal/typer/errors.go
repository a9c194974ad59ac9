package typer

import "fmt"

// BlockMismatchError reports a LeaveBlock call with no matching
// EnterBlock, or any other malformed block nesting. Per spec.md §7,
// this is a programmer error by the IR builder, not input data the
// Typer can recover from on its own — the caller decides whether to
// treat it as fatal. SessionID lets a host running many Typer
// instances (one per fuzzing worker) correlate the failure back to a
// specific session in its own logs.
type BlockMismatchError struct {
	SessionID string
	Reason    string
}

func (e *BlockMismatchError) Error() string {
	return fmt.Sprintf("typer[%s]: malformed block nesting: %s", e.SessionID, e.Reason)
}

// UnsupportedOperationError reports an ir.OpKind the Typer's Analyze
// dispatcher does not recognize. Per spec.md §7 this never occurs for
// well-formed IR emitted against this package's own ir.OpKind set; it
// exists only to fail loudly instead of silently misinterpreting an
// operation should a future OpKind be added to internal/ir without a
// matching transfer function here.
type UnsupportedOperationError struct {
	SessionID string
	Kind      fmt.Stringer
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("typer[%s]: no transfer function registered for op %s", e.SessionID, e.Kind)
}
