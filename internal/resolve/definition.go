// Package resolve answers go-to-definition and outline questions over a
// workspace snapshot.
package resolve

import (
	"github.com/stefanvanburen/pols/internal/query"
	"github.com/stefanvanburen/pols/internal/syntax"
	"github.com/stefanvanburen/pols/internal/workspace"
)

// Location is a range within a document.
type Location struct {
	URI   string
	Range syntax.Range
}

// Definition returns the declarations of the name at p in the document uri.
//
// A procedure call, or an identifier naming the called procedure, resolves
// against procedure definitions; any other identifier resolves against
// variable declarations. Declarations in the document itself shadow all
// others. Otherwise a driver searches the files it includes, up to depth
// levels deep, and any other file searches the whole snapshot. Names match
// exactly and case-sensitively.
func Definition(snap *workspace.Snapshot, uri string, p syntax.Point, depth int) []Location {
	tree := snap.Tree(uri)
	if tree == nil {
		return nil
	}
	name, pattern, ok := targetAt(tree, p)
	if !ok {
		return nil
	}

	if local := declarations(snap, uri, pattern, name); len(local) > 0 {
		return local
	}

	var scope []string
	if snap.Role(uri) == workspace.Driver {
		scope = snap.TransitiveIncludes(uri, depth)
	} else {
		scope = snap.URIs()
	}
	var out []Location
	for _, u := range scope {
		if u == uri {
			continue
		}
		out = append(out, declarations(snap, u, pattern, name)...)
	}
	return out
}

// targetAt returns the name under p and the pattern its declarations are
// found with.
func targetAt(tree *syntax.Tree, p syntax.Point) (string, query.Pattern, bool) {
	node := tree.NamedDescendantForPoint(p)
	if node == nil {
		return "", 0, false
	}
	switch node.Kind() {
	case syntax.KindProcedureCall:
		ident := node.ChildByFieldName(syntax.FieldName)
		if ident == nil || ident.IsMissing() {
			return "", 0, false
		}
		return ident.Content(tree.Source()), query.ProcedureDefinitions, true
	case syntax.KindIdentifier:
		pattern := query.VariableDeclarations
		if parent := node.Parent(); parent != nil && parent.Kind() == syntax.KindProcedureCall {
			pattern = query.ProcedureDefinitions
		}
		return node.Content(tree.Source()), pattern, true
	}
	return "", 0, false
}

// declarations returns the captures of pattern in uri named exactly name.
// Documents without a tree have none.
func declarations(snap *workspace.Snapshot, uri string, pattern query.Pattern, name string) []Location {
	var out []Location
	for _, c := range query.Run(snap.Tree(uri), pattern) {
		if c.Text == name {
			out = append(out, Location{URI: uri, Range: c.Range})
		}
	}
	return out
}
