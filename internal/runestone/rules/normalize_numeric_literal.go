package rules

import (
	"strings"

	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/engine"
)

// NormalizeNumericLiteral lowercases hex/octal prefixes and digits and the
// exponent marker in float literals, so "0XAb" becomes "0xab" and "1E5"
// becomes "1e5".
type NormalizeNumericLiteral struct{}

// Name returns the rule's identifier.
func (*NormalizeNumericLiteral) Name() string { return "normalize_numeric_literal" }

// Apply rewrites an Integer or Float leaf's text to its normalized form.
func (*NormalizeNumericLiteral) Apply(ctx *engine.Context, node *cst.Node) engine.Outcome {
	if !cst.IsLeaf(node) {
		return engine.AcceptedOutcome()
	}
	if node.Kind() != cst.KindInteger && node.Kind() != cst.KindFloat {
		return engine.AcceptedOutcome()
	}

	text := string(node.Bytes())
	normalized := normalizeNumber(text)
	if normalized == text {
		return engine.AcceptedOutcome()
	}

	return engine.ReplacedOutcome(spliceLeaf(ctx.Out(), node, normalized))
}

func normalizeNumber(text string) string {
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return "0x" + strings.ToLower(text[2:])
	}
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'o' || text[1] == 'O') {
		return "0o" + strings.ToLower(text[2:])
	}
	return strings.Replace(text, "E", "e", 1)
}
