package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// SpaceAfterComma normalizes whitespace immediately following a "," to a
// single space. It does not insert a space where none exists — see the
// "Canonical rules" section of DESIGN.md on separator insertion.
type SpaceAfterComma struct{}

// Name returns the rule's identifier.
func (*SpaceAfterComma) Name() string { return "space_after_comma" }

// Apply collapses multi-space runs after a comma to a single space.
func (*SpaceAfterComma) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindWhitespace || !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}

	prev := ctx.PrevSibling()
	if prev == nil || prev.Kind() != cst.KindPunctuation || string(prev.Bytes()) != "," {
		return engine.AcceptedOutcome()
	}

	if string(node.Bytes()) == " " {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, " "))
}
