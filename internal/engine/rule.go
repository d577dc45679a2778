package engine

import "github.com/donaldgifford/runestone/internal/cst"

// Rule is the contract every rewrite rule obeys (spec.md §4.4): a pure
// function of (Context, Node) returning one of the three outcomes.
//
//   - Accepted: the rule made no changes; the output cursor must equal its
//     value at entry.
//   - Replaced(n'): the rule spliced exactly span(n') bytes at the entry
//     cursor via ctx.Out().ReplaceBytes, and left the cursor at its entry
//     position.
//   - Deleted: reserved, unreachable in this core.
//
// A rule may read ctx.PrevSibling()/ctx.NextSibling() and ctx.Flags() but
// must not mutate them. Applying a rule to its own output must return
// Accepted (idempotence) — this is the crux of fixed-point termination.
type Rule interface {
	// Name identifies the rule (used for diagnostics and config toggles).
	Name() string
	// Apply runs the rule against node in ctx.
	Apply(ctx *Context, node *cst.Node) Outcome
}
