package syntax

import "strings"

// Point is a zero-based row and byte column within a source text.
type Point struct {
	Row    int
	Column int
}

// Less reports whether p comes before q.
func (p Point) Less(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Column < q.Column)
}

// Range is the extent of a node, both as byte offsets and as points.
type Range struct {
	StartByte  int
	EndByte    int
	StartPoint Point
	EndPoint   Point
}

// Node is a single node of a PowerOn syntax tree. Named nodes correspond to
// grammar rules (identifier, procedure_definition, ...); anonymous nodes are
// keywords and punctuation.
type Node struct {
	kind     string
	named    bool
	field    string
	missing  bool
	rng      Range
	parent   *Node
	children []*Node
}

func (n *Node) Kind() string      { return n.kind }
func (n *Node) IsNamed() bool     { return n.named }
func (n *Node) FieldName() string { return n.field }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Range() Range      { return n.rng }
func (n *Node) StartByte() int    { return n.rng.StartByte }
func (n *Node) EndByte() int      { return n.rng.EndByte }
func (n *Node) StartPoint() Point { return n.rng.StartPoint }
func (n *Node) EndPoint() Point   { return n.rng.EndPoint }
func (n *Node) ChildCount() int   { return len(n.children) }
func (n *Node) Child(i int) *Node { return n.children[i] }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) IsMissing() bool   { return n.missing }
func (n *Node) IsError() bool     { return n.kind == KindError }

// Content returns the slice of src covered by n.
func (n *Node) Content(src string) string {
	if n.rng.EndByte > len(src) || n.rng.StartByte > n.rng.EndByte {
		return ""
	}
	return src[n.rng.StartByte:n.rng.EndByte]
}

// NamedChildren returns the named children of n in source order.
func (n *Node) NamedChildren() []*Node {
	var named []*Node
	for _, c := range n.children {
		if c.named {
			named = append(named, c)
		}
	}
	return named
}

// ChildByFieldName returns the first child attached under the given field.
func (n *Node) ChildByFieldName(field string) *Node {
	for _, c := range n.children {
		if c.field == field {
			return c
		}
	}
	return nil
}

// PrevNamedSibling returns the closest named node before n under the same
// parent, or nil.
func (n *Node) PrevNamedSibling() *Node {
	if n.parent == nil {
		return nil
	}
	var prev *Node
	for _, c := range n.parent.children {
		if c == n {
			return prev
		}
		if c.named {
			prev = c
		}
	}
	return nil
}

// HasError reports whether n or any of its descendants is an ERROR node or
// a missing node inserted during recovery.
func (n *Node) HasError() bool {
	if n.kind == KindError || n.missing {
		return true
	}
	for _, c := range n.children {
		if c.HasError() {
			return true
		}
	}
	return false
}

// contains reports whether p lies inside n. Empty nodes contain nothing.
func (n *Node) contains(p Point) bool {
	return !p.Less(n.rng.StartPoint) && p.Less(n.rng.EndPoint)
}

// descendantForPoint returns the smallest descendant of n (possibly n
// itself) containing p, optionally restricted to named nodes.
func (n *Node) descendantForPoint(p Point, namedOnly bool) *Node {
	if !n.contains(p) {
		return nil
	}
	for _, c := range n.children {
		if found := c.descendantForPoint(p, namedOnly); found != nil {
			return found
		}
	}
	if namedOnly && !n.named {
		return nil
	}
	return n
}

// String renders n as an S-expression of its named descendants, in the
// same shape tree-sitter prints.
func (n *Node) String() string {
	var b strings.Builder
	n.writeSexp(&b)
	return b.String()
}

func (n *Node) writeSexp(b *strings.Builder) {
	if n.missing {
		b.WriteString("(MISSING ")
		b.WriteString(n.kind)
		b.WriteString(")")
		return
	}
	b.WriteString("(")
	b.WriteString(n.kind)
	for _, c := range n.children {
		if !c.named && !c.missing {
			continue
		}
		b.WriteString(" ")
		if c.field != "" {
			b.WriteString(c.field)
			b.WriteString(": ")
		}
		c.writeSexp(b)
	}
	b.WriteString(")")
}

// Tree is the result of parsing one PowerOn source text. A Tree owns a copy
// of the text it was built from and is never mutated after Parse returns, so
// it may be shared freely between goroutines.
type Tree struct {
	source string
	root   *Node
}

func (t *Tree) RootNode() *Node { return t.root }
func (t *Tree) Source() string  { return t.source }

// DescendantForPoint returns the smallest node, named or anonymous,
// containing p.
func (t *Tree) DescendantForPoint(p Point) *Node {
	return t.root.descendantForPoint(p, false)
}

// NamedDescendantForPoint returns the smallest named node containing p.
func (t *Tree) NamedDescendantForPoint(p Point) *Node {
	return t.root.descendantForPoint(p, true)
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips that node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}
