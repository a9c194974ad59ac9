// Package ir defines the concrete Go representation of the IR
// operations the Typer consumes. The IR builder itself — deciding
// which operation to emit next, and lifting the resulting program to
// JavaScript source — is an external collaborator referenced only
// through this package's types (spec.md §1, §6).
package ir

// Variable is the opaque identifier an IR builder assigns to each
// value it produces. The Typer never interprets its structure; it is
// only ever used as a map key.
type Variable string
