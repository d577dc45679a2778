package engine

import "fmt"

// AssertionError signals a violated engine invariant — a cursor mismatch, a
// leaf with children, and the like. It indicates an engine or rule bug, not
// a user error; the caller is expected to file an issue.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("runestone: assertion failed: %s (this is an engine or rule bug, please file an issue)", e.Msg)
}

// ConvergenceError signals that the 1000-iteration (child) or 2-iteration
// (root) bound was exceeded, indicating a non-idempotent rule.
type ConvergenceError struct {
	Scope string // "child" or "root"
	Limit int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("runestone: infinite loop? %s fixed-point exceeded %d iterations", e.Scope, e.Limit)
}

// UnhandledKindError signals a CST kind not covered by the dispatch table.
// PartialOutput carries the output bytes produced so far, for debugging.
type UnhandledKindError struct {
	Kind          fmt.Stringer
	PartialOutput []byte
}

func (e *UnhandledKindError) Error() string {
	return fmt.Sprintf("runestone: unhandled node kind %s\n--- partial output ---\n%s", e.Kind, e.PartialOutput)
}

// RootDeletionError signals a rule returned Deleted at the root, which has
// no defined meaning — the root cannot be deleted.
type RootDeletionError struct{}

func (e *RootDeletionError) Error() string {
	return "runestone: rule returned Deleted at the root node"
}

// DeletedVariantError signals a rule returned Deleted in a context this
// core does not support (the children driver does not implement sibling
// removal bookkeeping — see DESIGN.md).
type DeletedVariantError struct{}

func (e *DeletedVariantError) Error() string {
	return "runestone: Deleted outcome reached the children driver, which does not support it (TODO: handle removed kids)"
}
