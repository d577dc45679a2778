package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/fmtio"
)

// spliceLeaf replaces a leaf's bytes at the buffer's current cursor —
// valid only when node is being visited directly (the cursor already sits
// at node's own start). It leaves the cursor unchanged, per the rule
// contract engine.assertCursorUnchanged enforces.
func spliceLeaf(out *fmtio.Buffer, node *cst.Node, newText string) *cst.Node {
	out.ReplaceBytes([]byte(newText), node.Span())
	return cst.NewLeaf(node.Head, []byte(newText), node.Tags)
}
