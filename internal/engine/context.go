package engine

import (
	"bytes"

	"github.com/donaldgifford/runestone/internal/cst"
	"github.com/donaldgifford/runestone/internal/fmtio"
)

// Flags carries the caller-visible boolean switches on a Context
// (spec.md §3 "User flags"). The engine itself respects only Assert and
// Debug; the rest are visible to rules and the CLI.
type Flags struct {
	Assert  bool
	Debug   bool
	Verbose bool
	Diff    bool
	Check   bool
	Quiet   bool
}

// resolve applies the "debug implies verbose+assert" one-way widening
// spec.md §9 requires at construction time.
func (f Flags) resolve() Flags {
	if f.Debug {
		f.Assert = true
		f.Verbose = true
	}
	return f
}

// Context is the engine's mutable traversal state. src_str/src_tree/src_io
// are constant after construction; fmt_io's cursor moves with the
// traversal; prev_sibling/next_sibling are set by the children driver for
// the duration of a single child's format_node! call.
type Context struct {
	srcStr  string
	srcTree *cst.Node
	srcIO   *bytes.Reader

	fmtIO   *fmtio.Buffer
	fmtTree *cst.Node // absent (nil) until format_tree! completes

	prevSibling *cst.Node
	nextSibling *cst.Node

	flags Flags
	rules []Rule
}

// NewContext returns a Context ready for format_tree! from src and tree, the
// CST the caller has already parsed from src. It does no parsing itself —
// the parser is an external collaborator and its diagnostics are its own
// concern.
func NewContext(src string, tree *cst.Node, rules []Rule, flags Flags) *Context {
	return &Context{
		srcStr:  src,
		srcTree: tree,
		srcIO:   bytes.NewReader([]byte(src)),
		fmtIO:   fmtio.New(),
		flags:   flags.resolve(),
		rules:   rules,
	}
}

// SourceText returns the original source string.
func (c *Context) SourceText() string { return c.srcStr }

// SourceTree returns the input CST.
func (c *Context) SourceTree() *cst.Node { return c.srcTree }

// Out returns the mutable output buffer.
func (c *Context) Out() *fmtio.Buffer { return c.fmtIO }

// FormattedTree returns the rewritten root once format_tree! has completed,
// or nil beforehand.
func (c *Context) FormattedTree() *cst.Node { return c.fmtTree }

// PrevSibling returns the most recently formatted sibling in the current
// children-driver scope, or nil at top level / before the first child.
func (c *Context) PrevSibling() *cst.Node { return c.prevSibling }

// NextSibling returns the original (pre-formatting) next sibling in the
// current children-driver scope, or nil after the last child.
func (c *Context) NextSibling() *cst.Node { return c.nextSibling }

// Flags returns the resolved user flags.
func (c *Context) Flags() Flags { return c.flags }

// Rules returns the rule pipeline in registered order.
func (c *Context) Rules() []Rule { return c.rules }
