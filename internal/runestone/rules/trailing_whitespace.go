package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// TrimTrailingWhitespace removes whitespace runs that sit at the end of a
// line — a Whitespace leaf whose next sibling is a newline, or nothing at
// all (end of file).
type TrimTrailingWhitespace struct{}

// Name returns the rule's identifier.
func (*TrimTrailingWhitespace) Name() string { return "trim_trailing_whitespace" }

// Apply strips a trailing whitespace leaf down to zero bytes.
func (*TrimTrailingWhitespace) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindWhitespace || !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}
	if len(node.Bytes()) == 0 {
		return engine.AcceptedOutcome()
	}

	next := ctx.NextSibling()
	trailing := next == nil || next.Kind() == cst.KindNewlineWs
	if !trailing {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, ""))
}
