// Package query matches tree-sitter style S-expression patterns against
// PowerOn syntax trees.
//
// The supported pattern language is a subset of tree-sitter's:
//
//	(kind child... ) @capture
//	(kind field: (child) ...)
//	(_)                      any named node
//	; comment
//
// Child patterns without a field match distinct named children in order.
// Missing nodes inserted by error recovery never match.
package query

import (
	"fmt"

	"github.com/stefanvanburen/pols/internal/syntax"
)

// Capture is a node captured by a pattern.
type Capture struct {
	Name  string
	Node  *syntax.Node
	Range syntax.Range
	Text  string
}

// Query holds compiled patterns. A Query is immutable and safe for
// concurrent use.
type Query struct {
	patterns []*step
	source   string
}

type step struct {
	kind     string // "" matches any named node
	field    string // required field on the parent, or ""
	capture  string
	children []*step
}

// Compile parses src into a Query. Unknown node kinds and field names are
// errors.
func Compile(src string) (*Query, error) {
	p := &queryParser{input: src}
	q := &Query{source: src}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			break
		}
		if p.input[p.pos] != '(' {
			return nil, fmt.Errorf("query: unexpected character %q at position %d", p.input[p.pos], p.pos)
		}
		s, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		q.patterns = append(q.patterns, s)
	}
	if len(q.patterns) == 0 {
		return nil, fmt.Errorf("query: no patterns in %q", src)
	}
	return q, nil
}

// MustCompile is like Compile but panics if src is malformed.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.source }

// Captures runs q over every node of tree in pre-order and returns the
// captures of each match, matches in the order their root nodes were
// visited.
func (q *Query) Captures(tree *syntax.Tree) []Capture {
	if tree == nil {
		return nil
	}
	src := tree.Source()
	var out []Capture
	syntax.Walk(tree.RootNode(), func(n *syntax.Node) bool {
		for _, pat := range q.patterns {
			for _, match := range matchStep(pat, n) {
				for _, c := range match {
					c.Range = c.Node.Range()
					c.Text = c.Node.Content(src)
					out = append(out, c)
				}
			}
		}
		return true
	})
	return out
}

// matchStep returns every way s can match n, each as the list of captures
// it produces. A nil result means no match.
func matchStep(s *step, n *syntax.Node) [][]Capture {
	if n.IsMissing() || !n.IsNamed() {
		return nil
	}
	if s.kind != "" && n.Kind() != s.kind {
		return nil
	}

	var own []Capture
	if s.capture != "" {
		own = []Capture{{Name: s.capture, Node: n}}
	}
	results := [][]Capture{own}

	var positional []*step
	for _, c := range s.children {
		if c.field == "" {
			positional = append(positional, c)
			continue
		}
		child := n.ChildByFieldName(c.field)
		if child == nil {
			return nil
		}
		sub := matchStep(c, child)
		if sub == nil {
			return nil
		}
		results = product(results, sub)
	}

	if len(positional) > 0 {
		sub := matchOrdered(positional, n.NamedChildren())
		if sub == nil {
			return nil
		}
		results = product(results, sub)
	}
	return results
}

// matchOrdered matches steps against distinct nodes taken in order,
// enumerating every assignment.
func matchOrdered(steps []*step, nodes []*syntax.Node) [][]Capture {
	if len(steps) == 0 {
		return [][]Capture{nil}
	}
	var out [][]Capture
	for i, n := range nodes {
		head := matchStep(steps[0], n)
		if head == nil {
			continue
		}
		tail := matchOrdered(steps[1:], nodes[i+1:])
		if tail == nil {
			continue
		}
		out = append(out, product(head, tail)...)
	}
	return out
}

func product(a, b [][]Capture) [][]Capture {
	out := make([][]Capture, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			joined := make([]Capture, 0, len(x)+len(y))
			joined = append(joined, x...)
			joined = append(joined, y...)
			out = append(out, joined)
		}
	}
	return out
}

type queryParser struct {
	input string
	pos   int
}

// parsePattern parses one parenthesized pattern and its trailing capture.
func (p *queryParser) parsePattern() (*step, error) {
	p.pos++ // consume '('
	p.skipSpace()

	kind, err := p.readIdentifier()
	if err != nil {
		return nil, fmt.Errorf("query: expected node kind after '(': %w", err)
	}
	s := &step{}
	if kind != "_" {
		if !syntax.IsNamedKind(kind) {
			return nil, fmt.Errorf("query: unknown node kind %q", kind)
		}
		s.kind = kind
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("query: unexpected end of input, expected ')'")
		}
		switch ch := p.input[p.pos]; {
		case ch == ')':
			p.pos++
			return s, p.readTrailingCapture(s)
		case ch == '(':
			child, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			s.children = append(s.children, child)
		case isIdentStart(ch):
			at := p.pos
			field, err := p.readIdentifier()
			if err != nil {
				return nil, err
			}
			p.skipSpace()
			if p.pos >= len(p.input) || p.input[p.pos] != ':' {
				return nil, fmt.Errorf("query: unexpected identifier %q at position %d", field, at)
			}
			p.pos++
			if !syntax.IsField(field) {
				return nil, fmt.Errorf("query: unknown field name %q", field)
			}
			p.skipSpace()
			if p.pos >= len(p.input) || p.input[p.pos] != '(' {
				return nil, fmt.Errorf("query: expected '(' after field %q", field)
			}
			child, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			child.field = field
			s.children = append(s.children, child)
		default:
			return nil, fmt.Errorf("query: unexpected character %q at position %d", ch, p.pos)
		}
	}
}

func (p *queryParser) readTrailingCapture(s *step) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '@' {
		return nil
	}
	p.pos++
	name, err := p.readIdentifier()
	if err != nil {
		return fmt.Errorf("query: expected capture name after '@': %w", err)
	}
	s.capture = name
	return nil
}

func (p *queryParser) readIdentifier() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if !isIdentStart(ch) && !(ch >= '0' && ch <= '9') && ch != '.' && ch != '-' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("query: expected identifier at position %d", p.pos)
	}
	return p.input[start:p.pos], nil
}

// skipSpace skips whitespace and ;-style line comments.
func (p *queryParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case ';':
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
