package lang

import (
	"strings"

	"github.com/donaldgifford/runestone/internal/cst"
)

// Parse lexes and parses src into a root cst.Node of KindBlock. It is a
// deliberately small recursive-descent parser: unrecognized constructs are
// passed through as bare leaves rather than rejected, since diagnosing
// malformed input is explicitly out of scope for the engine this parser
// feeds (spec.md §1 Non-goals: "formatting of unparseable input").
func Parse(src string) *cst.Node {
	p := &parser{tokens: lexAll(src)}
	kids := p.parseStatementSeq(func(t token) bool { return t.kind == tokEOF })
	return cst.NewComposite(cst.Head{Kind: cst.KindBlock}, kids, 0)
}

func lexAll(src string) []token {
	lx := newLexer(src)
	var toks []token
	for {
		t := lx.next()
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	return toks
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) cur() token { return p.tokens[p.pos] }

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) leaf(t token) *cst.Node {
	return cst.NewLeaf(cst.Head{Kind: t.leafKind()}, []byte(t.text), 0)
}

func isTrivia(t token) bool {
	switch t.kind {
	case tokWhitespace, tokNewline, tokComment:
		return true
	default:
		return false
	}
}

func isKeywordTok(t token, kw string) bool { return t.kind == tokKeyword && t.text == kw }
func isPunct(t token, text string) bool    { return t.kind == tokPunct && t.text == text }

// collectBlockTrivia appends all whitespace/newline/comment tokens at the
// current position to kids, in source order.
func (p *parser) collectBlockTrivia(kids *[]*cst.Node) {
	for isTrivia(p.cur()) {
		*kids = append(*kids, p.leaf(p.advance()))
	}
}

// collectInlineTrivia appends whitespace/newline/comment tokens the same
// way as collectBlockTrivia; expression-internal composites (bracketed
// lists) are allowed to span lines, so no distinction is drawn here.
func (p *parser) collectInlineTrivia(kids *[]*cst.Node) {
	p.collectBlockTrivia(kids)
}

// ws consumes a single trailing whitespace token, if present, and returns
// its leaf; used between tokens on the same line where a newline would
// signal the end of the construct instead.
func (p *parser) ws() *cst.Node {
	if p.cur().kind == tokWhitespace {
		return p.leaf(p.advance())
	}
	return nil
}

func (p *parser) appendWS(kids *[]*cst.Node) {
	if n := p.ws(); n != nil {
		*kids = append(*kids, n)
	}
}

func isEndTok(t token) bool { return isKeywordTok(t, "end") }
func isEndElseTok(t token) bool {
	return isKeywordTok(t, "end") || isKeywordTok(t, "else") || isKeywordTok(t, "elseif")
}

// parseStatementSeq parses statements (with interleaved trivia) until stop
// reports true for the lookahead token or EOF is reached.
func (p *parser) parseStatementSeq(stop func(token) bool) []*cst.Node {
	var kids []*cst.Node
	for {
		p.collectBlockTrivia(&kids)
		if p.cur().kind == tokEOF || stop(p.cur()) {
			break
		}
		kids = append(kids, p.parseStatement())
	}
	return kids
}

func (p *parser) parseStatement() *cst.Node {
	t := p.cur()
	switch {
	case isKeywordTok(t, "for"):
		return p.parseFor()
	case isKeywordTok(t, "if"):
		return p.parseIf()
	case isKeywordTok(t, "while"):
		return p.parseWhile()
	case isKeywordTok(t, "function"):
		return p.parseFunctionDef()
	case isKeywordTok(t, "struct") || isKeywordTok(t, "mutable"):
		return p.parseStruct()
	case isKeywordTok(t, "module"):
		return p.parseModule()
	default:
		return p.parseExpr(0)
	}
}

// parseFor handles both `for i = 1:3` and `for i in 1:3` forms; the
// for-in normalization rule (spec.md §6 rule 8) rewrites the former into
// the latter.
func (p *parser) parseFor() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'for'
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // loop variable
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // '=' / 'in'
	p.appendWS(&kids)
	kids = append(kids, p.parseExpr(0)) // range expression
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindFor}, kids, 0)
}

func (p *parser) parseIf() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'if'
	p.appendWS(&kids)
	kids = append(kids, p.parseExpr(0))
	kids = append(kids, p.parseStatementSeq(isEndElseTok)...)

	for isKeywordTok(p.cur(), "elseif") {
		var eKids []*cst.Node
		eKids = append(eKids, p.leaf(p.advance()))
		p.appendWS(&eKids)
		eKids = append(eKids, p.parseExpr(0))
		eKids = append(eKids, p.parseStatementSeq(isEndElseTok)...)
		kids = append(kids, cst.NewComposite(cst.Head{Kind: cst.KindElseClause}, eKids, 0))
	}

	if isKeywordTok(p.cur(), "else") {
		var eKids []*cst.Node
		eKids = append(eKids, p.leaf(p.advance()))
		eKids = append(eKids, p.parseStatementSeq(isEndTok)...)
		kids = append(kids, cst.NewComposite(cst.Head{Kind: cst.KindElseClause}, eKids, 0))
	}

	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindIf}, kids, 0)
}

func (p *parser) parseWhile() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'while'
	p.appendWS(&kids)
	kids = append(kids, p.parseExpr(0))
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindWhile}, kids, 0)
}

func (p *parser) parseFunctionDef() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'function'
	p.appendWS(&kids)
	kids = append(kids, p.parseExpr(0)) // signature: name(args...)
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindFunctionDef}, kids, 0)
}

func (p *parser) parseStruct() *cst.Node {
	var kids []*cst.Node
	if isKeywordTok(p.cur(), "mutable") {
		kids = append(kids, p.leaf(p.advance()))
		p.appendWS(&kids)
	}
	kids = append(kids, p.leaf(p.advance())) // 'struct'
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // struct name
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindStructDef}, kids, 0)
}

func (p *parser) parseModule() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'module'
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // module name
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindModuleDef}, kids, 0)
}

// opInfo describes an infix operator's precedence-climbing behavior.
type opInfo struct {
	prec       int
	rightAssoc bool
	kind       cst.Kind
}

func opInfoFor(text string) (opInfo, bool) {
	switch text {
	case "=", ":=", "+=", "-=", "*=", "/=", "^=", "÷=":
		return opInfo{prec: 1, rightAssoc: true, kind: cst.KindAssignment}, true
	case "==", "!=", "<", "<=", ">", ">=", "===", "!==":
		return opInfo{prec: 2, rightAssoc: false, kind: cst.KindCall}, true
	case ":":
		return opInfo{prec: 3, rightAssoc: false, kind: cst.KindCall}, true
	case "+", "-":
		return opInfo{prec: 4, rightAssoc: false, kind: cst.KindCall}, true
	case "*", "/", "÷", "%":
		return opInfo{prec: 5, rightAssoc: false, kind: cst.KindCall}, true
	case "^":
		return opInfo{prec: 6, rightAssoc: true, kind: cst.KindCall}, true
	default:
		return opInfo{}, false
	}
}

// parseExpr implements precedence-climbing over the infix operators in
// opInfoFor. Trivia between operand and operator is attached to the
// resulting composite node's own children, since it must live somewhere
// inside this one statement's subtree (spec.md §3 "kids order reflects
// source order exactly").
func (p *parser) parseExpr(minPrec int) *cst.Node {
	left := p.parseUnary()
	for {
		checkpoint := p.pos
		var trivia []*cst.Node
		p.collectInlineTrivia(&trivia)

		opTok := p.cur()
		info, ok := opInfoFor(opTok.text)
		if !ok || opTok.kind != tokOperator || info.prec < minPrec {
			p.pos = checkpoint
			return left
		}
		p.advance()

		var trivia2 []*cst.Node
		p.collectInlineTrivia(&trivia2)

		nextMin := info.prec
		if !info.rightAssoc {
			nextMin = info.prec + 1
		}
		right := p.parseExpr(nextMin)

		kids := make([]*cst.Node, 0, len(trivia)+len(trivia2)+3)
		kids = append(kids, left)
		kids = append(kids, trivia...)
		kids = append(kids, p.leaf(opTok))
		kids = append(kids, trivia2...)
		kids = append(kids, right)

		var flags cst.Flags
		if info.kind == cst.KindCall {
			flags = cst.FlagInfix
		}
		left = cst.NewComposite(cst.Head{Kind: info.kind, Flags: flags}, kids, 0)
	}
}

func (p *parser) parseUnary() *cst.Node {
	t := p.cur()
	if t.kind == tokOperator && (t.text == "-" || t.text == "+" || t.text == "!" || t.text == "~") {
		p.advance()
		var trivia []*cst.Node
		p.collectInlineTrivia(&trivia)
		operand := p.parseUnary()
		kids := append([]*cst.Node{p.leaf(t)}, trivia...)
		kids = append(kids, operand)
		return cst.NewComposite(cst.Head{Kind: cst.KindPrefixOpCall, Flags: cst.FlagPrefix}, kids, 0)
	}
	return p.parsePostfix()
}

// parsePostfix wraps primary expressions in Call nodes for each trailing
// `(...)` argument list — plain postfix calls carry no FlagInfix.
func (p *parser) parsePostfix() *cst.Node {
	expr := p.parsePrimary()
	for isPunct(p.cur(), "(") {
		args := p.parseDelimitedList("(", ")")
		kids := append([]*cst.Node{expr}, args...)
		expr = cst.NewComposite(cst.Head{Kind: cst.KindCall}, kids, 0)
	}
	return expr
}

func (p *parser) parsePrimary() *cst.Node {
	t := p.cur()
	switch {
	case t.kind == tokInteger, t.kind == tokFloat:
		p.advance()
		return p.leaf(t)

	case t.kind == tokString:
		p.advance()
		return p.wrapDelimitedLiteral(t, cst.KindString)

	case t.kind == tokCmdString:
		p.advance()
		return p.wrapDelimitedLiteral(t, cst.KindCmdString)

	case t.kind == tokIdentifier && strings.HasPrefix(t.text, ":"):
		p.advance()
		colon := cst.NewLeaf(cst.Head{Kind: cst.KindPunctuation}, []byte(t.text[:1]), 0)
		name := cst.NewLeaf(cst.Head{Kind: cst.KindIdentifier}, []byte(t.text[1:]), 0)
		return cst.NewComposite(cst.Head{Kind: cst.KindQuote}, []*cst.Node{colon, name}, 0)

	case t.kind == tokIdentifier, t.kind == tokKeyword && (t.text == "true" || t.text == "false"):
		p.advance()
		return p.leaf(t)

	case isKeywordTok(t, "quote"):
		return p.parseQuoteBlock()

	case isPunct(t, "@"):
		return p.parseMacroCall()

	case isPunct(t, "("):
		return p.parseParenOrTuple()

	case isPunct(t, "["):
		return p.parseArrayOrComprehension()

	default:
		// Anything else (stray punctuation, unexpected keyword) is emitted
		// verbatim rather than rejected — see the doc comment on Parse.
		p.advance()
		return p.leaf(t)
	}
}

// wrapDelimitedLiteral splits a `"..."`/`` `...` `` token into an open
// delimiter leaf, a content chunk leaf, and a close delimiter leaf so
// rules can rewrite the delimiters without touching the content.
func (p *parser) wrapDelimitedLiteral(t token, kind cst.Kind) *cst.Node {
	text := t.text
	if len(text) < 2 {
		// Unterminated literal at EOF: nothing to split, treat whole token
		// as the open delimiter.
		return cst.NewComposite(cst.Head{Kind: kind}, []*cst.Node{p.leaf(t)}, 0)
	}
	open := cst.NewLeaf(cst.Head{Kind: cst.KindPunctuation}, []byte(text[:1]), 0)
	content := cst.NewLeaf(cst.Head{Kind: cst.KindStringChunk}, []byte(text[1:len(text)-1]), 0)
	closeDelim := cst.NewLeaf(cst.Head{Kind: cst.KindPunctuation}, []byte(text[len(text)-1:]), 0)
	return cst.NewComposite(cst.Head{Kind: kind}, []*cst.Node{open, content, closeDelim}, 0)
}

func (p *parser) parseQuoteBlock() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'quote'
	kids = append(kids, p.parseStatementSeq(isEndTok)...)
	kids = append(kids, p.leaf(p.advance())) // 'end'
	return cst.NewComposite(cst.Head{Kind: cst.KindQuote}, kids, 0)
}

func (p *parser) parseMacroCall() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // '@'
	kids = append(kids, p.leaf(p.advance())) // macro name

	switch {
	case isPunct(p.cur(), "("):
		kids = append(kids, p.parseDelimitedList("(", ")")...)
	case p.cur().kind == tokWhitespace:
		kids = append(kids, p.leaf(p.advance()))
		if !isTrivia(p.cur()) && p.cur().kind != tokEOF {
			kids = append(kids, p.parseExpr(0))
		}
	}
	return cst.NewComposite(cst.Head{Kind: cst.KindMacroCall}, kids, 0)
}

// parseDelimitedList parses `open item (, item)* close`, returning the
// flat child sequence starting with the open delimiter and ending with the
// close delimiter (or, on unexpected EOF, whatever was consumed).
func (p *parser) parseDelimitedList(open, close string) []*cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // open delimiter

	for {
		p.collectInlineTrivia(&kids)
		if isPunct(p.cur(), close) {
			kids = append(kids, p.leaf(p.advance()))
			return kids
		}
		if p.cur().kind == tokEOF {
			return kids
		}
		kids = append(kids, p.parseExpr(0))
		p.collectInlineTrivia(&kids)
		if isPunct(p.cur(), ",") {
			kids = append(kids, p.leaf(p.advance()))
			continue
		}
	}
}

// parseArrayOrComprehension handles `[...]`: an array literal of
// comma-separated elements, or — when the first element is followed by
// `for` — a comprehension.
func (p *parser) parseArrayOrComprehension() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // '['
	p.collectInlineTrivia(&kids)

	if isPunct(p.cur(), "]") {
		kids = append(kids, p.leaf(p.advance()))
		return cst.NewComposite(cst.Head{Kind: cst.KindArrayLiteral}, kids, 0)
	}

	first := p.parseExpr(0)
	kids = append(kids, first)
	p.collectInlineTrivia(&kids)

	if isKeywordTok(p.cur(), "for") {
		kids = append(kids, p.parseForClause()...)
		kids = append(kids, p.leaf(p.advance())) // ']'
		return cst.NewComposite(cst.Head{Kind: cst.KindComprehension}, kids, 0)
	}

	for isPunct(p.cur(), ",") {
		kids = append(kids, p.leaf(p.advance()))
		p.collectInlineTrivia(&kids)
		kids = append(kids, p.parseExpr(0))
		p.collectInlineTrivia(&kids)
	}
	kids = append(kids, p.leaf(p.advance())) // ']'
	return cst.NewComposite(cst.Head{Kind: cst.KindArrayLiteral}, kids, 0)
}

// parseForClause parses the `for VAR in EXPR` suffix shared by
// comprehensions and generators.
func (p *parser) parseForClause() []*cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // 'for'
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // loop variable
	p.appendWS(&kids)
	kids = append(kids, p.leaf(p.advance())) // 'in' / '='
	p.appendWS(&kids)
	kids = append(kids, p.parseExpr(0))
	p.collectInlineTrivia(&kids)
	return kids
}

// parseParenOrTuple handles `(...)`: a grouped/tuple expression, or — when
// the first element is followed by `for` — a generator expression.
func (p *parser) parseParenOrTuple() *cst.Node {
	var kids []*cst.Node
	kids = append(kids, p.leaf(p.advance())) // '('
	p.collectInlineTrivia(&kids)

	if isPunct(p.cur(), ")") {
		kids = append(kids, p.leaf(p.advance()))
		return cst.NewComposite(cst.Head{Kind: cst.KindTuple}, kids, 0)
	}

	first := p.parseExpr(0)
	kids = append(kids, first)
	p.collectInlineTrivia(&kids)

	if isKeywordTok(p.cur(), "for") {
		kids = append(kids, p.parseForClause()...)
		kids = append(kids, p.leaf(p.advance())) // ')'
		return cst.NewComposite(cst.Head{Kind: cst.KindGenerator}, kids, 0)
	}

	for isPunct(p.cur(), ",") {
		kids = append(kids, p.leaf(p.advance()))
		p.collectInlineTrivia(&kids)
		kids = append(kids, p.parseExpr(0))
		p.collectInlineTrivia(&kids)
	}
	kids = append(kids, p.leaf(p.advance())) // ')'
	return cst.NewComposite(cst.Head{Kind: cst.KindTuple}, kids, 0)
}
