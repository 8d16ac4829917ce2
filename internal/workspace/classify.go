package workspace

import (
	"github.com/stefanvanburen/pols/internal/query"
	"github.com/stefanvanburen/pols/internal/syntax"
)

// Role is the part a file plays in a PowerOn workspace, derived from its
// structure alone.
type Role int

const (
	Unclassified Role = iota
	// Driver files are runnable specfiles; they have a PRINT division.
	Driver
	// Library files only define procedures.
	Library
	// IncludeTable files declare variables for other files to include.
	IncludeTable
)

func (r Role) String() string {
	switch r {
	case Driver:
		return "driver"
	case Library:
		return "library"
	case IncludeTable:
		return "include table"
	default:
		return "unclassified"
	}
}

// Classify derives the role of a parsed file. A nil tree is Unclassified.
func Classify(tree *syntax.Tree) Role {
	if tree == nil {
		return Unclassified
	}
	switch {
	case len(query.Run(tree, query.PrintDivisions)) > 0:
		return Driver
	case len(query.Run(tree, query.VariableDeclarations)) > 0:
		return IncludeTable
	case len(query.Run(tree, query.ProcedureDefinitions)) > 0:
		return Library
	default:
		return Unclassified
	}
}
