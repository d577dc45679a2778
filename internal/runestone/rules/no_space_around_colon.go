package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// NoSpaceAroundColon strips whitespace bordering a range ":" operator, so
// `1 : 3` becomes `1:3`.
type NoSpaceAroundColon struct{}

// Name returns the rule's identifier.
func (*NoSpaceAroundColon) Name() string { return "no_space_around_colon" }

// Apply empties a whitespace leaf bordering a colon operator, replacing it
// with a zero-length whitespace leaf.
func (*NoSpaceAroundColon) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindWhitespace || !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}

	op, ok := adjacentOperatorText(ctx.PrevSibling(), ctx.NextSibling())
	if !ok || op != ":" {
		return engine.AcceptedOutcome()
	}

	if len(node.Bytes()) == 0 {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, ""))
}
