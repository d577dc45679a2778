package rules

import (
	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
	"github.com/donaldgifford/runestone/internal/fmtio"
)

// ForLoopUsesIn rewrites the legacy `for i = 1:3` header into
// `for i in 1:3`.
type ForLoopUsesIn struct{}

// Name returns the rule's identifier.
func (*ForLoopUsesIn) Name() string { return "for_loop_uses_in" }

// Apply replaces whatever sits between the loop variable and the range
// expression — spaced or not — with a canonical " in " when it currently
// carries "=". The whole gap is replaced in one splice, rather than the
// bare operator leaf, so the rewrite is correct even when the source has
// no surrounding whitespace to reuse.
//
// It also tags the body's opening statement with TagIndent and the closing
// "end" keyword with TagDedent, independent of whether the header needed
// rewriting — a loop already spelled "for i in 1:3" still gets tagged the
// first time the rule visits it.
func (*ForLoopUsesIn) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if node.Kind() != cst.KindFor {
		return engine.AcceptedOutcome()
	}

	kids := cst.VerifiedKids(node)
	varIdx, opIdx, rangeIdx := forHeaderIndices(kids)
	if opIdx < 0 {
		return engine.AcceptedOutcome()
	}

	kids, headerChanged := rewriteLegacyOp(ctx, kids, varIdx, opIdx, rangeIdx)
	if headerChanged {
		// spliceForHeader collapses the gap kids[varIdx+1:rangeIdx] down to
		// exactly 3 leaves (" ", "in", " "), so the range expression that
		// used to sit at rangeIdx now sits at varIdx+4.
		rangeIdx = varIdx + 4
	}
	kids, tagsChanged := tagLoopBody(kids, rangeIdx)

	if !headerChanged && !tagsChanged {
		return engine.AcceptedOutcome()
	}
	return engine.ReplacedOutcome(cst.MakeNode(node, kids, node.Tags))
}

// rewriteLegacyOp replaces the "=" separator between the loop variable and
// the range expression with " in ", reporting whether it changed anything.
func rewriteLegacyOp(ctx *engine.Context, kids []*cst.Node, varIdx, opIdx, rangeIdx int) ([]*cst.Node, bool) {
	op := kids[opIdx]
	if op.Kind() != cst.KindOperatorLeaf || string(op.Bytes()) != "=" {
		return kids, false
	}
	return spliceForHeader(ctx.Out(), kids, varIdx, rangeIdx), true
}

// tagLoopBody marks the first real statement after the range expression
// with TagIndent and the trailing "end" keyword with TagDedent, so a
// downstream layout-aware rule (spec.md §3's bitset is deliberately
// extensible) has a concrete signal for where this loop's block begins and
// ends. kids[len-1] is always the "end" leaf (see parseFor); an empty body
// (nothing but trivia between the range expression and "end") gets only
// the dedent — there is no statement to carry the indent tag.
func tagLoopBody(kids []*cst.Node, rangeIdx int) ([]*cst.Node, bool) {
	endIdx := len(kids) - 1
	changed := false
	out := kids

	bodyStart := -1
	for i := rangeIdx + 1; i < endIdx; i++ {
		if !cst.IsWhitespaceKind(out[i].Kind()) {
			bodyStart = i
			break
		}
	}
	if bodyStart >= 0 && !out[bodyStart].Tags.Has(cst.TagIndent) {
		out = cloneKids(out)
		out[bodyStart] = retagged(out[bodyStart], out[bodyStart].Tags|cst.TagIndent)
		changed = true
	}
	if !out[endIdx].Tags.Has(cst.TagDedent) {
		if !changed {
			out = cloneKids(out)
		}
		out[endIdx] = retagged(out[endIdx], out[endIdx].Tags|cst.TagDedent)
		changed = true
	}
	return out, changed
}

// cloneKids returns a shallow copy of kids so tagLoopBody can rewrite entries
// without mutating the slice the caller still holds a reference to.
func cloneKids(kids []*cst.Node) []*cst.Node {
	out := make([]*cst.Node, len(kids))
	copy(out, kids)
	return out
}

// retagged returns n with tags replaced, preserving its bytes/kids/kind.
func retagged(n *cst.Node, tags cst.TagBits) *cst.Node {
	if cst.IsLeaf(n) {
		return cst.NewLeaf(n.Head, n.Bytes(), tags)
	}
	return cst.NewComposite(n.Head, cst.VerifiedKids(n), tags)
}

// spliceForHeader replaces the gap kids[varIdx+1:rangeIdx] with a
// canonical " in " built from three leaves.
func spliceForHeader(out *fmtio.Buffer, kids []*cst.Node, varIdx, rangeIdx int) []*cst.Node {
	entry := out.Cursor()
	offset := 0
	for _, k := range kids[:varIdx+1] {
		offset += k.Span()
	}
	gapSize := 0
	for _, k := range kids[varIdx+1 : rangeIdx] {
		gapSize += k.Span()
	}

	out.Seek(entry + offset)
	out.ReplaceBytes([]byte(" in "), gapSize)
	out.Seek(entry)

	before := cst.NewLeaf(cst.Head{Kind: cst.KindWhitespace}, []byte(" "), 0)
	kw := cst.NewLeaf(cst.Head{Kind: cst.KindKeyword}, []byte("in"), 0)
	after := cst.NewLeaf(cst.Head{Kind: cst.KindWhitespace}, []byte(" "), 0)

	newKids := make([]*cst.Node, 0, len(kids)-(rangeIdx-varIdx-1)+3)
	newKids = append(newKids, kids[:varIdx+1]...)
	newKids = append(newKids, before, kw, after)
	newKids = append(newKids, kids[rangeIdx:]...)
	return newKids
}

// forHeaderIndices locates the loop variable, the var/range separator, and
// the range expression: the 2nd, 3rd, and 4th non-trivia children.
func forHeaderIndices(kids []*cst.Node) (varIdx, opIdx, rangeIdx int) {
	varIdx, opIdx, rangeIdx = -1, -1, -1
	nontrivia := 0
	for i, k := range kids {
		if cst.IsWhitespaceKind(k.Kind()) {
			continue
		}
		nontrivia++
		switch nontrivia {
		case 2:
			varIdx = i
		case 3:
			opIdx = i
		case 4:
			rangeIdx = i
			return
		}
	}
	return
}
