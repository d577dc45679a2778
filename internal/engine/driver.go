package engine

import (
	"github.com/donaldgifford/runestone/internal/cst"
)

// childIterationLimit is the safety net against a non-idempotent rule at
// child scope (spec.md §4.5, §4.7).
const childIterationLimit = 1000

// rootIterationLimit enforces at-most-once root mutation (spec.md §4.6).
const rootIterationLimit = 2

// alwaysRecursive are composite kinds that always recurse into their
// children once the rule pipeline accepts them.
var alwaysRecursive = map[cst.Kind]bool{
	cst.KindBlock:         true,
	cst.KindCall:          true,
	cst.KindTuple:         true,
	cst.KindString:        true,
	cst.KindCmdString:     true,
	cst.KindArrayLiteral:  true,
	cst.KindMacroCall:     true,
	cst.KindQuote:         true,
	cst.KindComprehension: true,
	cst.KindGenerator:     true,
	cst.KindAssignment:    true,
}

// operatorNodesAndElse is the dispatch bucket spec.md §4.3 point 2 calls
// out separately from Call: "operator nodes with children and else
// clauses ... recurse", covering prefix/postfix unary operator
// application.
var operatorNodesAndElse = map[cst.Kind]bool{
	cst.KindPrefixOpCall:  true,
	cst.KindPostfixOpCall: true,
	cst.KindElseClause:    true,
}

// conditionallyRecursive are composite kinds that recurse only when not
// flagged trivia.
var conditionallyRecursive = map[cst.Kind]bool{
	cst.KindFunctionDef: true,
	cst.KindIf:          true,
	cst.KindWhile:       true,
	cst.KindFor:         true,
	cst.KindStructDef:   true,
	cst.KindModuleDef:   true,
}

// terminalsAndTrivia are emitted verbatim: the cursor advances by the
// node's span and format_node! returns Accepted without consulting kids.
var terminalsAndTrivia = map[cst.Kind]bool{
	cst.KindIdentifier:     true,
	cst.KindInteger:        true,
	cst.KindFloat:          true,
	cst.KindStringChunk:    true,
	cst.KindKeyword:        true,
	cst.KindPunctuation:    true,
	cst.KindOperatorLeaf:   true,
	cst.KindWhitespace:     true,
	cst.KindNewlineWs:      true,
	cst.KindComment:        true,
	cst.KindComparisonLeaf: true,
}

// FormatNode dispatches node to the rule pipeline (format_node! in
// spec.md §4.3), then, for composite kinds, recurses via
// FormatNodeWithKids.
func FormatNode(ctx *Context, node *cst.Node) Outcome {
	for _, rule := range ctx.rules {
		entryCursor := ctx.fmtIO.Cursor()
		outcome := rule.Apply(ctx, node)
		switch outcome.Kind {
		case Accepted:
			continue
		case Replaced:
			assertCursorUnchanged(ctx, entryCursor, rule.Name())
			return outcome
		case Deleted:
			return outcome
		}
	}

	kind := node.Kind()

	switch {
	case alwaysRecursive[kind]:
		return FormatNodeWithKids(ctx, node)

	case operatorNodesAndElse[kind]:
		return FormatNodeWithKids(ctx, node)

	case conditionallyRecursive[kind]:
		if node.Head.Flags.Has(cst.FlagTrivia) {
			return acceptVerbatim(ctx, node)
		}
		return FormatNodeWithKids(ctx, node)

	case kind == cst.KindOperatorLeaf && !cst.IsLeaf(node):
		return FormatNodeWithKids(ctx, node)

	case terminalsAndTrivia[kind]:
		return acceptVerbatim(ctx, node)

	default:
		panic(&UnhandledKindError{Kind: kind, PartialOutput: ctx.fmtIO.Bytes()})
	}
}

// acceptVerbatim advances the cursor by node's span and returns Accepted.
func acceptVerbatim(ctx *Context, node *cst.Node) Outcome {
	ctx.fmtIO.Advance(node.Span())
	return AcceptedOutcome()
}

func assertCursorUnchanged(ctx *Context, entryCursor int, ruleName string) {
	if ctx.flags.Assert && ctx.fmtIO.Cursor() != entryCursor {
		panic(&AssertionError{Msg: "rule " + ruleName + " moved the cursor while returning Replaced"})
	}
}

// FormatNodeWithKids is the children driver (format_node_with_kids! in
// spec.md §4.5): it iterates node's children with sibling context,
// re-running each child to a fixed point, and produces a new parent node
// if any child changed.
func FormatNodeWithKids(ctx *Context, node *cst.Node) Outcome {
	kids := cst.VerifiedKids(node)

	savedPrev, savedNext := ctx.prevSibling, ctx.nextSibling
	defer func() { ctx.prevSibling, ctx.nextSibling = savedPrev, savedNext }()

	ctx.prevSibling = nil
	ctx.nextSibling = nil

	var rewritten []*cst.Node // lazily allocated prefix copy
	changed := false

	for i := 0; i < len(kids); i++ {
		if i+1 < len(kids) {
			ctx.nextSibling = kids[i+1]
		} else {
			ctx.nextSibling = nil
		}

		kid := kids[i]
		fmtPos := ctx.fmtIO.Cursor()

		for iter := 0; ; iter++ {
			if iter >= childIterationLimit {
				panic(&ConvergenceError{Scope: "child", Limit: childIterationLimit})
			}

			outcome := FormatNode(ctx, kid)
			switch outcome.Kind {
			case Accepted:
				if ctx.flags.Assert && ctx.fmtIO.Cursor() != fmtPos+kid.Span() {
					panic(&AssertionError{Msg: "cursor did not advance by child span on Accepted"})
				}
				goto childDone
			case Replaced:
				ctx.fmtIO.Seek(fmtPos)
				kid = outcome.Node
				changed = true
				continue
			case Deleted:
				panic(&DeletedVariantError{})
			}
		}
	childDone:

		if changed && rewritten == nil {
			rewritten = make([]*cst.Node, i, len(kids))
			copy(rewritten, kids[:i])
		}
		if rewritten != nil {
			rewritten = append(rewritten, kid)
		}

		ctx.prevSibling = kid
	}

	if !changed {
		return AcceptedOutcome()
	}
	return ReplacedOutcome(cst.MakeNode(node, rewritten, node.Tags))
}

// FormatTree is the root driver (format_tree! in spec.md §4.6). It seeds
// the output buffer with the original byte span of the root, then applies
// FormatNode to the root until it accepts, enforcing at-most-once root
// mutation.
func FormatTree(ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
				return
			}
			panic(r)
		}
	}()

	root := ctx.srcTree
	ctx.fmtIO.Seek(0)
	ctx.fmtIO.ReplaceBytes([]byte(ctx.srcStr)[:root.Span()], 0)
	ctx.fmtIO.Seek(0)

	replacements := 0
	for {
		outcome := FormatNode(ctx, root)
		switch outcome.Kind {
		case Accepted:
			if ctx.flags.Assert && ctx.fmtIO.Cursor() != root.Span() {
				panic(&AssertionError{Msg: "cursor did not advance by root span on Accepted"})
			}
			ctx.fmtIO.Truncate(root.Span())
			ctx.fmtTree = root
			return nil
		case Replaced:
			replacements++
			if replacements >= rootIterationLimit {
				panic(&ConvergenceError{Scope: "root", Limit: rootIterationLimit})
			}
			ctx.fmtIO.Seek(0)
			root = outcome.Node
		case Deleted:
			panic(&RootDeletionError{})
		}
	}
}
