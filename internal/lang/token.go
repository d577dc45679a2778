// Package lang is the runestone engine's external-collaborator parser: a
// small recursive-descent lexer/parser for a Julia-flavored toy language
// (operators, macros, comprehensions, generators, string/cmdstring
// literals, quoting, module/struct/function definitions, array literals,
// infix and prefix operators — spec.md §1) that produces the cst.Node tree
// the engine rewrites. Postfix operators are not parsed: no
// KindPostfixOpCall node is ever built here. Its internal grammar and
// diagnostics are out of scope for the engine's contract (spec.md §1 "out of scope");
// it exists only to give the engine something real to run against.
package lang

import "github.com/donaldgifford/runestone/internal/cst"

// tokenKind classifies a lexical token, independent of cst.Kind (several
// token kinds — e.g. "(" and ")" — map to the same cst.Kind, Punctuation).
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdentifier
	tokInteger
	tokFloat
	tokString
	tokCmdString
	tokKeyword
	tokOperator
	tokPunct
	tokWhitespace
	tokNewline
	tokComment
)

// token is a lexed unit: kind, source text, and byte offsets.
type token struct {
	kind  tokenKind
	text  string
	start int
	end   int
}

func (t token) span() int { return t.end - t.start }

var keywords = map[string]bool{
	"for": true, "in": true, "end": true, "if": true, "elseif": true,
	"else": true, "while": true, "function": true, "struct": true,
	"module": true, "quote": true, "begin": true, "return": true,
	"true": true, "false": true, "do": true, "let": true, "const": true,
	"export": true, "import": true, "using": true, "mutable": true,
}

// operators, longest first so the lexer's greedy match never splits a
// multi-byte operator.
var operators = []string{
	"...", "..", "->", "===", "!==", "==", "!=", "<=", ">=", "&&", "||",
	"::", ":=", "+=", "-=", "*=", "/=", "^=", "÷=", ".+", ".-", ".*", "./",
	"+", "-", "*", "/", "^", "÷", "%", "<", ">", "=", "!", "&", "|", "~", ":",
}

// leafKind maps a token to the cst.Kind its leaf node should carry.
func (t token) leafKind() cst.Kind {
	switch t.kind {
	case tokIdentifier:
		return cst.KindIdentifier
	case tokInteger:
		return cst.KindInteger
	case tokFloat:
		return cst.KindFloat
	case tokKeyword:
		return cst.KindKeyword
	case tokOperator:
		return cst.KindOperatorLeaf
	case tokPunct:
		return cst.KindPunctuation
	case tokWhitespace:
		return cst.KindWhitespace
	case tokNewline:
		return cst.KindNewlineWs
	case tokComment:
		return cst.KindComment
	default:
		return cst.KindInvalid
	}
}
