package rules_test

import (
	"testing"

	"github.com/donaldgifford/runestone/internal/engine"
	"github.com/donaldgifford/runestone/internal/lang"
)

// formatWith runs src through the engine with a single rule enabled,
// asserting the fixed point (Assert) and returning the resulting text.
func formatWith(t *testing.T, rule engine.Rule, src string) string {
	t.Helper()
	tree := lang.Parse(src)
	ctx := engine.NewContext(src, tree, []engine.Rule{rule}, engine.Flags{Assert: true})
	if err := engine.FormatTree(ctx); err != nil {
		t.Fatalf("FormatTree(%q): %v", src, err)
	}
	return string(ctx.Out().Bytes())
}
