package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// SpaceAroundInfixOp normalizes each whitespace run bordering an arithmetic
// or comparison operator to exactly one space. It does not insert a space on
// a side where the operator touches its operand, so `a+b` is left unchanged.
// Assignment and range (":") operators have their own rules and are
// excluded here.
type SpaceAroundInfixOp struct{}

// Name returns the rule's identifier.
func (*SpaceAroundInfixOp) Name() string { return "space_around_infix_op" }

// Apply collapses multi-space runs bordering an infix operator to a single
// space.
func (*SpaceAroundInfixOp) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindWhitespace || !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}

	op, ok := adjacentOperatorText(ctx.PrevSibling(), ctx.NextSibling())
	if !ok || !infixOps[op] {
		return engine.AcceptedOutcome()
	}

	if string(node.Bytes()) == " " {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, " "))
}
