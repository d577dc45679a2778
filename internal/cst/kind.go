// Package cst provides the immutable, lossless concrete syntax tree that the
// runestone engine rewrites: every byte of the source, including whitespace
// and comments, lives in a leaf.
package cst

// Kind classifies a node's syntactic category. The set is closed: the
// dispatch table in the engine covers every value here except KindInvalid
// and KindUnknownExtension, which it rejects with UnhandledKindError.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Terminals and trivia — emitted verbatim, never recursed into.
	KindIdentifier
	KindInteger
	KindFloat
	KindStringChunk // literal text run inside a String/CmdString composite
	KindKeyword
	KindPunctuation
	KindOperatorLeaf
	KindWhitespace
	KindNewlineWs
	KindComment

	// Always-recursive composites. String/CmdString are composites (open
	// delimiter, content chunk, close delimiter) rather than single leaves,
	// so a rule can rewrite the delimiters without touching content.
	KindBlock
	KindCall
	KindTuple
	KindString
	KindCmdString
	KindArrayLiteral
	KindMacroCall
	KindQuote
	KindComprehension
	KindGenerator

	// Conditionally-recursive composites (recurse unless flagged trivia).
	KindFunctionDef
	KindIf
	KindWhile
	KindFor
	KindStructDef
	KindModuleDef
	KindElseClause

	// Operator forms. Infix binary application is represented as KindCall
	// with FlagInfix set (is_infix_op_call requires both — spec.md §4.1);
	// prefix/postfix unary application gets its own kind, since the
	// dispatch table treats "operator nodes with children" as a bucket
	// distinct from Call (spec.md §4.3).
	KindPrefixOpCall
	KindPostfixOpCall
	KindAssignment
	KindComparisonLeaf

	// Reserved for a future parser extension. The parser never produces it
	// and the dispatch table does not cover it, so the engine rejects it
	// through its "unhandled kind" branch.
	KindUnknownExtension
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

var kindNames = map[Kind]string{
	KindInvalid:          "Invalid",
	KindIdentifier:       "Identifier",
	KindInteger:          "Integer",
	KindFloat:            "Float",
	KindStringChunk:      "StringChunk",
	KindKeyword:          "Keyword",
	KindPunctuation:      "Punctuation",
	KindOperatorLeaf:     "OperatorLeaf",
	KindWhitespace:       "Whitespace",
	KindNewlineWs:        "NewlineWs",
	KindComment:          "Comment",
	KindBlock:            "Block",
	KindCall:             "Call",
	KindTuple:            "Tuple",
	KindString:           "String",
	KindCmdString:        "CmdString",
	KindArrayLiteral:     "ArrayLiteral",
	KindMacroCall:        "MacroCall",
	KindQuote:            "Quote",
	KindComprehension:    "Comprehension",
	KindGenerator:        "Generator",
	KindFunctionDef:      "FunctionDef",
	KindIf:               "If",
	KindWhile:            "While",
	KindFor:              "For",
	KindStructDef:        "StructDef",
	KindModuleDef:        "ModuleDef",
	KindElseClause:       "ElseClause",
	KindPrefixOpCall:     "PrefixOpCall",
	KindPostfixOpCall:    "PostfixOpCall",
	KindAssignment:       "Assignment",
	KindComparisonLeaf:   "ComparisonLeaf",
	KindUnknownExtension: "UnknownExtension",
}

// Flags is a per-node bitset carried alongside Kind in Head.
type Flags uint16

const (
	// FlagInfix marks a Call node as an infix operator call — is_infix_op_call
	// requires both the Call kind and this flag.
	FlagInfix Flags = 1 << iota
	// FlagPrefix marks a prefix operator call.
	FlagPrefix
	// FlagPostfix marks a postfix operator call.
	FlagPostfix
	// FlagTrivia marks a conditionally-recursive composite as trivia (do not
	// recurse into it — see Kind's behavioral classes).
	FlagTrivia
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Head is the opaque per-node value combining Kind and Flags.
type Head struct {
	Kind  Kind
	Flags Flags
}
