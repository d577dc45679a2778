package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// SpaceAroundAssignment normalizes each whitespace run bordering an
// assignment operator to exactly one space. It does not insert a space on a
// side where the operator touches its operand, so `x=1` is left unchanged.
type SpaceAroundAssignment struct{}

// Name returns the rule's identifier.
func (*SpaceAroundAssignment) Name() string { return "space_around_assignment" }

// Apply collapses multi-space runs next to an assignment operator to a
// single space; it leaves already-single-space runs untouched so the fixed
// point is reached immediately.
func (*SpaceAroundAssignment) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindWhitespace || !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}

	op, ok := adjacentOperatorText(ctx.PrevSibling(), ctx.NextSibling())
	if !ok || !assignmentOps[op] {
		return engine.AcceptedOutcome()
	}

	if string(node.Bytes()) == " " {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, " "))
}
