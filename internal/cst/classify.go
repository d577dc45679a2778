package cst

// precedenceClass groups operator kinds for the purposes of classification
// predicates below. Only the distinctions the engine's rules actually need
// are modeled; a richer precedence table belongs to the parser, not here.
type precedenceClass int

const (
	precNone precedenceClass = iota
	precComparison
	precAssignment
	precOther
)

func opPrecedence(n *Node) precedenceClass {
	if !n.isLeaf || n.Kind() != KindOperatorLeaf {
		return precNone
	}
	switch string(n.bytes) {
	case "==", "!=", "<", "<=", ">", ">=", "===", "!==":
		return precComparison
	case "=", ":=", "+=", "-=", "*=", "/=", "^=", "÷=":
		return precAssignment
	default:
		return precOther
	}
}

// IsAssignment reports whether n is an assignment node.
//
// The narrower, non-leaf-only form was chosen to resolve the ambiguity
// flagged in spec.md §9: a leaf can never itself be an assignment (an
// assignment always has a left-hand side and a right-hand side as
// children), so requiring !IsLeaf(n) first is not merely defensive, it
// rules out a class of node this predicate must never match.
func IsAssignment(n *Node) bool {
	if IsLeaf(n) {
		return false
	}
	return n.Kind() == KindAssignment
}

// IsInfixOpCall reports whether n is a Call node flagged as infix. A node
// with operator children that lacks the infix flag is not an infix call,
// even a Call node that happens to contain operator-shaped children.
func IsInfixOpCall(n *Node) bool {
	return n.Kind() == KindCall && n.Head.Flags.Has(FlagInfix)
}

// IsOperatorLeaf reports whether n is a leaf carrying an operator token.
func IsOperatorLeaf(n *Node) bool {
	return IsLeaf(n) && n.Kind() == KindOperatorLeaf
}

// IsComparisonLeaf reports whether n is a leaf with comparison precedence,
// or a dotted comparison of the form ".<op>" — a non-leaf KindPrefixOpCall
// node whose first non-trivia child is a "." operator leaf and whose second
// non-trivia child is itself a comparison leaf, recursively. The recursion
// has depth <= 2 in well-formed input but the definition is recursive by
// design (spec.md §4.1).
func IsComparisonLeaf(n *Node) bool {
	if IsLeaf(n) {
		return opPrecedence(n) == precComparison
	}
	return isDottedComparison(n)
}

// isDottedComparison recognizes a non-leaf node of dotted-call shape with
// exactly two non-trivia children whose second child is a comparison leaf.
func isDottedComparison(n *Node) bool {
	if IsLeaf(n) || n.Kind() != KindPrefixOpCall {
		return false
	}
	nontrivia := nonTriviaChildren(n)
	if len(nontrivia) != 2 {
		return false
	}
	first := nontrivia[0]
	if !(IsLeaf(first) && first.Kind() == KindOperatorLeaf && string(first.bytes) == ".") {
		return false
	}
	return IsComparisonLeaf(nontrivia[1])
}

func nonTriviaChildren(n *Node) []*Node {
	kids := VerifiedKids(n)
	out := make([]*Node, 0, len(kids))
	for _, k := range kids {
		if !IsWhitespaceKind(k.Kind()) {
			out = append(out, k)
		}
	}
	return out
}

// InfixOpCallOp returns the operator child of an infix call by scanning
// children strictly left-to-right: the first non-whitespace child is the
// left operand, and the next child with operator precedence is the
// operator. It panics if n is not an infix call or no operator is found —
// callers must check IsInfixOpCall first.
func InfixOpCallOp(n *Node) *Node {
	if !IsInfixOpCall(n) {
		panic("cst: InfixOpCallOp called on non-infix-call node")
	}
	kids := VerifiedKids(n)
	seenOperand := false
	for _, k := range kids {
		if IsWhitespaceKind(k.Kind()) {
			continue
		}
		if !seenOperand {
			seenOperand = true
			continue
		}
		if IsOperatorLeaf(k) || opPrecedence(k) != precNone {
			return k
		}
	}
	panic("cst: InfixOpCallOp found no operator child")
}
