// Package syntax parses PowerOn source text into concrete syntax trees.
//
// The trees mirror the shape of a tree-sitter grammar: every node has a kind,
// named nodes stand for grammar rules and anonymous nodes for keywords and
// punctuation, children may be attached under a field name, and syntax errors
// are represented in the tree (ERROR nodes and missing tokens) instead of
// failing the parse.
package syntax

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// DefaultMaxDepth bounds the nesting of blocks and expressions.
const DefaultMaxDepth = 256

var (
	// ErrInvalidUTF8 is returned for text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("syntax: source is not valid UTF-8")
	// ErrTooDeep is returned when nesting exceeds the parser's depth limit.
	ErrTooDeep = errors.New("syntax: nesting too deep")
)

var dataTypes = map[string]bool{
	"NUMBER": true, "CHARACTER": true, "MONEY": true, "DATE": true,
	"RATE": true, "CODE": true, "FLOAT": true,
}

// topLevel keywords open a new division; seeing one inside a block means the
// block is missing its END.
var topLevel = map[string]bool{
	"TARGET": true, "DEFINE": true, "SETUP": true, "SELECT": true,
	"SORT": true, "TOTAL": true, "PROCEDURE": true,
}

// Parser turns PowerOn source text into a Tree. A Parser holds no per-call
// state and is safe for concurrent use.
type Parser struct {
	maxDepth int
}

// NewParser returns a Parser with the default depth limit.
func NewParser() *Parser {
	return &Parser{maxDepth: DefaultMaxDepth}
}

// Parse builds a fresh tree for text. It never reuses an earlier tree.
func (ps *Parser) Parse(text string) (tree *Tree, err error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	p := &parser{lx: lexer{src: text}, maxDepth: ps.maxDepth}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			tree, err = nil, fmt.Errorf("%w (limit %d)", ErrTooDeep, ps.maxDepth)
		}
	}()
	p.advance()
	return &Tree{source: text, root: p.parseSourceFile()}, nil
}

type bailout struct{}

type parser struct {
	lx       lexer
	tok      token
	ahead    []token
	pending  []*Node
	// primed is an already parsed primary expression handed back by the
	// next parsePrimary call.
	primed   *Node
	depth    int
	maxDepth int
}

func (p *parser) scan() token {
	for {
		t := p.lx.next()
		if t.kind != tokComment {
			return t
		}
		p.pending = append(p.pending, &Node{kind: KindComment, named: true, rng: t.rng})
	}
}

func (p *parser) advance() {
	if len(p.ahead) > 0 {
		p.tok = p.ahead[0]
		p.ahead = p.ahead[1:]
		return
	}
	p.tok = p.scan()
}

func (p *parser) peek() token {
	if len(p.ahead) == 0 {
		p.ahead = append(p.ahead, p.scan())
	}
	return p.ahead[0]
}

func (p *parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		panic(bailout{})
	}
}

func (p *parser) leave() { p.depth-- }

func (p *parser) isKeyword(word string) bool {
	return p.tok.kind == tokWord && p.tok.upper() == word
}

func (p *parser) isPunct(s string) bool {
	return p.tok.kind == tokPunct && p.tok.text == s
}

// isName reports whether the current token can be used as an identifier.
func (p *parser) isName() bool {
	return p.tok.kind == tokWord && !reserved[p.tok.upper()]
}

func (p *parser) atTopLevel() bool {
	return p.tok.kind == tokWord && topLevel[p.tok.upper()]
}

func open(kind string) *Node { return &Node{kind: kind, named: true} }

func add(parent, child *Node, field string) {
	child.parent = parent
	child.field = field
	parent.children = append(parent.children, child)
}

// take consumes the current token as a leaf node.
func (p *parser) take(kind string, named bool) *Node {
	n := &Node{kind: kind, named: named, rng: p.tok.rng}
	p.advance()
	return n
}

// keyword consumes the current token as an anonymous keyword or punctuation
// node, normalising the kind to upper case.
func (p *parser) keyword() *Node {
	return p.take(p.tok.upper(), false)
}

// expect consumes the anonymous token s if present, otherwise inserts a
// zero-width missing node.
func (p *parser) expect(parent *Node, s string) {
	if (p.tok.kind == tokPunct && p.tok.text == s) || p.isKeyword(s) {
		add(parent, p.keyword(), "")
		return
	}
	add(parent, p.missing(s, false), "")
}

func (p *parser) missing(kind string, named bool) *Node {
	at := p.tok.rng.StartPoint
	return &Node{
		kind:    kind,
		named:   named,
		missing: true,
		rng:     Range{StartByte: p.tok.rng.StartByte, EndByte: p.tok.rng.StartByte, StartPoint: at, EndPoint: at},
	}
}

// errorNode wraps the current token in an ERROR node.
func (p *parser) errorNode() *Node {
	n := open(KindError)
	add(n, p.take(p.tok.upper(), false), "")
	return p.close(n)
}

// close computes n's range from its non-missing children and claims any
// pending comments that fall inside it.
func (p *parser) close(n *Node) *Node {
	first, last := -1, -1
	for i, c := range n.children {
		if c.missing {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	switch {
	case first >= 0:
		n.rng.StartByte, n.rng.StartPoint = n.children[first].rng.StartByte, n.children[first].rng.StartPoint
		n.rng.EndByte, n.rng.EndPoint = n.children[last].rng.EndByte, n.children[last].rng.EndPoint
	case len(n.children) > 0:
		n.rng = n.children[0].rng
	default:
		n.rng = p.missing(n.kind, true).rng
	}
	p.claimComments(n)
	return n
}

func (p *parser) claimComments(n *Node) {
	if len(p.pending) == 0 {
		return
	}
	kept := p.pending[:0]
	claimed := false
	for _, c := range p.pending {
		if c.rng.StartByte >= n.rng.StartByte && c.rng.EndByte <= n.rng.EndByte {
			add(n, c, "")
			claimed = true
			continue
		}
		kept = append(kept, c)
	}
	p.pending = kept
	if claimed {
		slices.SortStableFunc(n.children, func(a, b *Node) int {
			return a.rng.StartByte - b.rng.StartByte
		})
	}
}

func (p *parser) parseSourceFile() *Node {
	root := open(KindSourceFile)
	for p.tok.kind != tokEOF {
		var child *Node
		switch {
		case p.isKeyword("TARGET"):
			child = p.parseTarget()
		case p.isKeyword("DEFINE"):
			child = p.parseDefine()
		case p.isKeyword("SETUP"):
			child = p.parseDivision(KindSetupDivision)
		case p.isKeyword("SELECT"):
			child = p.parseDivision(KindSelectDivision)
		case p.isKeyword("SORT"):
			child = p.parseDivision(KindSortDivision)
		case p.isKeyword("TOTAL"):
			child = p.parseDivision(KindTotalDivision)
		case p.isKeyword("PRINT"):
			child = p.parsePrintDivision()
		case p.isKeyword("PROCEDURE"):
			child = p.parseProcedure()
		case p.tok.kind == tokDirective:
			child = p.parseDirective()
		default:
			child = p.errorNode()
		}
		add(root, child, "")
	}

	end := p.lx.point()
	root.rng = Range{StartByte: 0, EndByte: len(p.lx.src), StartPoint: Point{}, EndPoint: end}
	p.claimComments(root)
	return root
}

func (p *parser) parseTarget() *Node {
	n := open(KindTargetDivision)
	add(n, p.keyword(), "")
	p.expect(n, "=")
	if p.isName() {
		add(n, p.take(KindRecordType, true), "")
	} else {
		add(n, p.missing(KindRecordType, true), "")
	}
	return p.close(n)
}

// parseDefine parses a DEFINE division, which holds only declarations and
// include directives.
func (p *parser) parseDefine() *Node {
	n := open(KindDefineDivision)
	add(n, p.keyword(), "")
	for {
		switch {
		case p.tok.kind == tokEOF || p.atTopLevel():
			add(n, p.missing("END", false), "")
			return p.close(n)
		case p.isKeyword("END"):
			add(n, p.keyword(), "")
			return p.close(n)
		case p.tok.kind == tokDirective:
			add(n, p.parseDirective(), "")
		case p.isName():
			add(n, p.parseVariableDeclaration(), "")
		default:
			add(n, p.errorNode(), "")
		}
	}
}

func (p *parser) parseVariableDeclaration() *Node {
	n := open(KindVariableDeclaration)
	add(n, p.take(KindIdentifier, true), FieldName)
	p.expect(n, "=")
	if p.tok.kind == tokWord && dataTypes[p.tok.upper()] {
		add(n, p.parseDataType(), FieldType)
		if p.isKeyword("ARRAY") {
			add(n, p.parseArrayDimensions(), FieldDimensions)
		}
		return p.close(n)
	}
	add(n, p.parseExpression(), FieldValue)
	return p.close(n)
}

func (p *parser) parseDataType() *Node {
	n := open(KindDataType)
	add(n, p.keyword(), "")
	if p.isPunct("(") {
		add(n, p.keyword(), "")
		if p.tok.kind == tokNumber {
			add(n, p.take(KindNumberLiteral, true), "")
		} else {
			add(n, p.missing(KindNumberLiteral, true), "")
		}
		p.expect(n, ")")
	}
	return p.close(n)
}

func (p *parser) parseArrayDimensions() *Node {
	n := open(KindArrayDimensions)
	add(n, p.keyword(), "")
	p.expect(n, "(")
	for {
		if p.tok.kind == tokNumber || p.isName() {
			kind := KindNumberLiteral
			if p.tok.kind == tokWord {
				kind = KindIdentifier
			}
			add(n, p.take(kind, true), "")
		} else {
			add(n, p.missing(KindNumberLiteral, true), "")
		}
		if !p.isPunct(",") {
			break
		}
		add(n, p.keyword(), "")
	}
	p.expect(n, ")")
	return p.close(n)
}

// parseDirective parses a #-directive. Only #INCLUDE is part of the
// language; anything else becomes an ERROR node.
func (p *parser) parseDirective() *Node {
	if p.tok.upper() != "#INCLUDE" {
		return p.errorNode()
	}
	n := open(KindIncludeStatement)
	add(n, p.keyword(), "")
	if p.tok.kind == tokString {
		add(n, p.parseStringLiteral(), FieldPath)
	} else {
		add(n, p.missing(KindStringLiteral, true), FieldPath)
	}
	return p.close(n)
}

func (p *parser) parseStringLiteral() *Node {
	kind := KindStringLiteral
	delim := `"`
	if p.tok.kind == tokDate {
		kind, delim = KindDateLiteral, "'"
	}
	unterminated := p.tok.unterminated
	n := p.take(kind, true)
	if unterminated {
		at := n.rng.EndPoint
		add(n, &Node{
			kind:    delim,
			missing: true,
			rng:     Range{StartByte: n.rng.EndByte, EndByte: n.rng.EndByte, StartPoint: at, EndPoint: at},
		}, "")
	}
	return n
}

func (p *parser) parseDivision(kind string) *Node {
	n := open(kind)
	add(n, p.keyword(), "")
	p.parseBody(n)
	return p.close(n)
}

func (p *parser) parsePrintDivision() *Node {
	n := open(KindPrintDivision)
	add(n, p.keyword(), "")
	if p.isKeyword("TITLE") {
		add(n, p.keyword(), "")
		p.expect(n, "=")
		add(n, p.parseExpression(), FieldTitle)
	}
	p.parseBody(n)
	return p.close(n)
}

func (p *parser) parseProcedure() *Node {
	n := open(KindProcedureDefinition)
	add(n, p.keyword(), "")
	if p.isName() {
		add(n, p.take(KindIdentifier, true), FieldName)
	} else {
		add(n, p.missing(KindIdentifier, true), FieldName)
	}
	p.parseBody(n)
	return p.close(n)
}

// parseBody parses statements up to and including the closing END.
func (p *parser) parseBody(n *Node) {
	p.enter()
	defer p.leave()
	for {
		switch {
		case p.tok.kind == tokEOF || p.atTopLevel():
			add(n, p.missing("END", false), "")
			return
		case p.isKeyword("END"):
			add(n, p.keyword(), "")
			return
		default:
			add(n, p.parseStatement(), "")
		}
	}
}

func (p *parser) parseStatement() *Node {
	switch {
	case p.isKeyword("DO"):
		return p.parseDivision(KindDoBlock)
	case p.isKeyword("HEADERS"):
		return p.parseDivision(KindHeadersBlock)
	case p.isKeyword("TRAILERS"):
		return p.parseDivision(KindTrailersBlock)
	case p.isKeyword("IF"):
		return p.parseIf()
	case p.isKeyword("WHILE"):
		return p.parseWhile()
	case p.isKeyword("FOR"):
		return p.parseFor()
	case p.isKeyword("CALL"):
		return p.parseCall()
	case p.isKeyword("PRINT"):
		n := open(KindPrintStatement)
		add(n, p.keyword(), "")
		add(n, p.parseExpression(), FieldValue)
		return p.close(n)
	case p.tok.kind == tokDirective:
		return p.parseDirective()
	case p.isName():
		return p.parseNameStatement()
	case p.startsExpression():
		n := open(KindExpressionStatement)
		add(n, p.parseExpression(), "")
		return p.close(n)
	default:
		return p.errorNode()
	}
}

// parseNameStatement parses statements that begin with a name: assignments
// (X=1, A(2)=3) and bare expressions such as NEWLINE or DOSOMETHING().
//
// Record fields are read-only, so ACCOUNT:TYPE=1 is a condition (as in a
// SELECT division), not an assignment.
func (p *parser) parseNameStatement() *Node {
	target := p.parsePrimary()
	if p.isPunct("=") && target.kind != KindFieldReference {
		n := open(KindAssignment)
		add(n, target, FieldLeft)
		add(n, p.keyword(), "")
		add(n, p.parseExpression(), FieldRight)
		return p.close(n)
	}
	p.primed = target
	n := open(KindExpressionStatement)
	add(n, p.parseExpression(), "")
	return p.close(n)
}

func (p *parser) parseIf() *Node {
	n := open(KindIfStatement)
	add(n, p.keyword(), "")
	add(n, p.parseExpression(), FieldCondition)
	p.expect(n, "THEN")
	add(n, p.parseSubStatement(), FieldConsequence)
	if p.isKeyword("ELSE") {
		add(n, p.keyword(), "")
		add(n, p.parseSubStatement(), FieldAlternative)
	}
	return p.close(n)
}

func (p *parser) parseWhile() *Node {
	n := open(KindWhileStatement)
	add(n, p.keyword(), "")
	add(n, p.parseExpression(), FieldCondition)
	add(n, p.parseSubStatement(), FieldBody)
	return p.close(n)
}

func (p *parser) parseFor() *Node {
	forTok := p.keyword()
	if p.isKeyword("EACH") {
		n := open(KindForEachStatement)
		add(n, forTok, "")
		add(n, p.keyword(), "")
		if p.isName() {
			add(n, p.take(KindRecordType, true), FieldRecord)
		} else {
			add(n, p.missing(KindRecordType, true), FieldRecord)
		}
		if p.isKeyword("WITH") {
			add(n, p.keyword(), "")
			add(n, p.parseExpression(), FieldFilter)
		}
		add(n, p.parseSubStatement(), FieldBody)
		return p.close(n)
	}

	n := open(KindForStatement)
	add(n, forTok, "")
	if p.isName() {
		add(n, p.take(KindIdentifier, true), FieldName)
	} else {
		add(n, p.missing(KindIdentifier, true), FieldName)
	}
	p.expect(n, "=")
	add(n, p.parseExpression(), FieldStart)
	p.expect(n, "TO")
	add(n, p.parseExpression(), FieldStop)
	if p.isKeyword("BY") {
		add(n, p.keyword(), "")
		add(n, p.parseExpression(), FieldStep)
	}
	add(n, p.parseSubStatement(), FieldBody)
	return p.close(n)
}

// parseSubStatement parses the single statement governed by IF, ELSE, WHILE
// or FOR, without letting a stray END escape the enclosing block.
func (p *parser) parseSubStatement() *Node {
	if p.tok.kind == tokEOF || p.isKeyword("END") || p.atTopLevel() {
		return p.missing(KindDoBlock, true)
	}
	p.enter()
	defer p.leave()
	return p.parseStatement()
}

func (p *parser) parseCall() *Node {
	n := open(KindProcedureCall)
	add(n, p.keyword(), "")
	if p.isName() {
		add(n, p.take(KindIdentifier, true), FieldName)
	} else {
		add(n, p.missing(KindIdentifier, true), FieldName)
	}
	return p.close(n)
}

func (p *parser) startsExpression() bool {
	switch p.tok.kind {
	case tokString, tokNumber, tokMoney, tokDate:
		return true
	case tokPunct:
		return p.tok.text == "(" || p.tok.text == "-"
	case tokWord:
		return p.isName() || p.isKeyword("NOT")
	}
	return false
}

func (p *parser) parseExpression() *Node {
	p.enter()
	defer p.leave()
	return p.parseOr()
}

func (p *parser) binary(left *Node, right func() *Node) *Node {
	n := open(KindBinaryExpression)
	add(n, left, FieldLeft)
	add(n, p.keyword(), FieldOperator)
	add(n, right(), FieldRight)
	return p.close(n)
}

func (p *parser) parseOr() *Node {
	left := p.parseAnd()
	for p.isKeyword("OR") {
		left = p.binary(left, p.parseAnd)
	}
	return left
}

func (p *parser) parseAnd() *Node {
	left := p.parseNot()
	for p.isKeyword("AND") {
		left = p.binary(left, p.parseNot)
	}
	return left
}

func (p *parser) parseNot() *Node {
	if p.primed != nil || !p.isKeyword("NOT") {
		return p.parseComparison()
	}
	p.enter()
	defer p.leave()
	n := open(KindUnaryExpression)
	add(n, p.keyword(), FieldOperator)
	add(n, p.parseNot(), FieldOperand)
	return p.close(n)
}

func (p *parser) parseComparison() *Node {
	left := p.parseAdditive()
	if p.tok.kind == tokPunct {
		switch p.tok.text {
		case "=", "<>", "<", ">", "<=", ">=":
			return p.binary(left, p.parseAdditive)
		}
	}
	return left
}

func (p *parser) parseAdditive() *Node {
	left := p.parseMultiplicative()
	for p.isPunct("+") || p.isPunct("-") {
		left = p.binary(left, p.parseMultiplicative)
	}
	return left
}

func (p *parser) parseMultiplicative() *Node {
	left := p.parseUnary()
	for p.isPunct("*") || p.isPunct("/") {
		left = p.binary(left, p.parseUnary)
	}
	return left
}

func (p *parser) parseUnary() *Node {
	if p.primed != nil || !p.isPunct("-") {
		return p.parsePrimary()
	}
	p.enter()
	defer p.leave()
	n := open(KindUnaryExpression)
	add(n, p.keyword(), FieldOperator)
	add(n, p.parseUnary(), FieldOperand)
	return p.close(n)
}

func (p *parser) parsePrimary() *Node {
	if n := p.primed; n != nil {
		p.primed = nil
		return n
	}
	switch p.tok.kind {
	case tokString, tokDate:
		return p.parseStringLiteral()
	case tokNumber:
		return p.take(KindNumberLiteral, true)
	case tokMoney:
		return p.take(KindMoneyLiteral, true)
	case tokPunct:
		if p.tok.text == "(" {
			p.enter()
			defer p.leave()
			n := open(KindParenthesized)
			add(n, p.keyword(), "")
			add(n, p.parseOr(), "")
			p.expect(n, ")")
			return p.close(n)
		}
	case tokWord:
		if !p.isName() {
			return p.missing(KindIdentifier, true)
		}
		switch next := p.peek(); {
		case next.kind == tokPunct && next.text == ":":
			return p.parseFieldReference()
		case next.kind == tokPunct && next.text == "(":
			return p.parseCallExpression()
		}
		return p.take(KindIdentifier, true)
	case tokEOF, tokDirective:
		return p.missing(KindIdentifier, true)
	}
	if p.isPunct(")") || p.isPunct(",") {
		return p.missing(KindIdentifier, true)
	}
	return p.errorNode()
}

// parseFieldReference parses RECORD:FIELD with optional further :FIELD
// segments. Field names may coincide with reserved words.
func (p *parser) parseFieldReference() *Node {
	n := open(KindFieldReference)
	add(n, p.take(KindRecordType, true), FieldRecord)
	for p.isPunct(":") {
		add(n, p.keyword(), "")
		if p.tok.kind == tokWord {
			add(n, p.take(KindFieldName, true), FieldField)
		} else {
			add(n, p.missing(KindFieldName, true), FieldField)
		}
	}
	return p.close(n)
}

// parseCallExpression parses NAME(...). An empty argument list is a
// procedure call; anything else is a function call or array element.
func (p *parser) parseCallExpression() *Node {
	name := p.take(KindIdentifier, true)
	if p.peek().kind == tokPunct && p.peek().text == ")" {
		n := open(KindProcedureCall)
		add(n, name, FieldName)
		add(n, p.keyword(), "")
		add(n, p.keyword(), "")
		return p.close(n)
	}

	p.enter()
	defer p.leave()
	n := open(KindFunctionCall)
	add(n, name, FieldName)
	args := open(KindArgumentList)
	add(args, p.keyword(), "")
	for {
		add(args, p.parseOr(), "")
		if !p.isPunct(",") {
			break
		}
		add(args, p.keyword(), "")
	}
	p.expect(args, ")")
	add(n, p.close(args), FieldArguments)
	return p.close(n)
}
