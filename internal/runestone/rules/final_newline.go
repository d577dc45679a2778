package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// FinalNewline ensures the file's last child is a newline. Block only ever
// occurs as the tree's root — statement sequences nested inside for/if/
// while/function bodies are flat children of those nodes, not separate
// Blocks — so matching KindBlock is enough to identify the root.
type FinalNewline struct{}

// Name returns the rule's identifier.
func (*FinalNewline) Name() string { return "final_newline" }

// Apply inserts a trailing newline leaf when the tree lacks one.
func (*FinalNewline) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindBlock {
		return engine.AcceptedOutcome()
	}

	kids := cst.VerifiedKids(node)
	if len(kids) > 0 && kids[len(kids)-1].Kind() == cst.KindNewlineWs {
		return engine.AcceptedOutcome()
	}

	out := ctx.Out()
	entry := out.Cursor()
	out.Seek(entry + node.Span())
	out.ReplaceBytes([]byte("\n"), 0)
	out.Seek(entry)

	newline := cst.NewLeaf(cst.Head{Kind: cst.KindNewlineWs}, []byte("\n"), 0)
	newKids := make([]*cst.Node, len(kids)+1)
	copy(newKids, kids)
	newKids[len(kids)] = newline

	return engine.ReplacedOutcome(cst.MakeNode(node, newKids, node.Tags))
}
