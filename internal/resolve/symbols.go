package resolve

import (
	"slices"

	"github.com/stefanvanburen/pols/internal/query"
	"github.com/stefanvanburen/pols/internal/syntax"
	"github.com/stefanvanburen/pols/internal/workspace"
)

// Kind distinguishes the declarations Symbols reports.
type Kind int

const (
	Variable Kind = iota
	Procedure
)

func (k Kind) String() string {
	if k == Procedure {
		return "procedure"
	}
	return "variable"
}

// Symbol is a declaration found by Symbols.
type Symbol struct {
	Name string
	Kind Kind
	URI  string
	// Range covers the declared name.
	Range syntax.Range
	// DeclRange covers the whole declaration.
	DeclRange syntax.Range
}

// Symbols lists the variables and procedures declared in uri and in the
// files it includes, up to depth levels deep, whatever the role of uri.
// Files are visited in include discovery order, declarations within a file
// in source order.
func Symbols(snap *workspace.Snapshot, uri string, depth int) []Symbol {
	files := append([]string{uri}, snap.TransitiveIncludes(uri, depth)...)
	var out []Symbol
	for _, file := range files {
		out = append(out, fileSymbols(snap.Tree(file), file)...)
	}
	return out
}

func fileSymbols(tree *syntax.Tree, uri string) []Symbol {
	if tree == nil {
		return nil
	}
	var syms []Symbol
	for pattern, kind := range map[query.Pattern]Kind{
		query.VariableDeclarations: Variable,
		query.ProcedureDefinitions: Procedure,
	} {
		for _, c := range query.Run(tree, pattern) {
			decl := c.Range
			if parent := c.Node.Parent(); parent != nil {
				decl = parent.Range()
			}
			syms = append(syms, Symbol{
				Name:      c.Text,
				Kind:      kind,
				URI:       uri,
				Range:     c.Range,
				DeclRange: decl,
			})
		}
	}
	slices.SortFunc(syms, func(a, b Symbol) int {
		return a.Range.StartByte - b.Range.StartByte
	})
	return syms
}
