package rules

import "github.com/donaldgifford/runestone/internal/cst"

var assignmentOps = map[string]bool{
	"=": true, ":=": true, "+=": true, "-=": true,
	"*=": true, "/=": true, "^=": true, "÷=": true,
}

var infixOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "^": true, "÷": true, "%": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"===": true, "!==": true,
}

// adjacentOperatorText returns the text of node's neighboring operator leaf
// (whichever of prev/next is an OperatorLeaf) and whether one was found.
// At most one of prev/next is ever an operator for a given whitespace node
// in a well-formed infix expression, since operands separate consecutive
// operators.
func adjacentOperatorText(prev, next *cst.Node) (string, bool) {
	if next != nil && next.Kind() == cst.KindOperatorLeaf {
		return string(next.Bytes()), true
	}
	if prev != nil && prev.Kind() == cst.KindOperatorLeaf {
		return string(prev.Bytes()), true
	}
	return "", false
}
