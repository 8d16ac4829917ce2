package query

import (
	"fmt"
	"sync"

	"github.com/stefanvanburen/pols/internal/syntax"
)

// Pattern names one of the fixed queries the language server runs.
type Pattern int

const (
	// VariableDeclarations captures the name of every variable declaration.
	VariableDeclarations Pattern = iota
	// ProcedureDefinitions captures the name of every procedure definition.
	ProcedureDefinitions
	// IncludeLiterals captures the quoted path of every #INCLUDE.
	IncludeLiterals
	// PrintDivisions captures every PRINT division.
	PrintDivisions
)

var sources = [...]string{
	VariableDeclarations: `(variable_declaration name: (identifier) @name)`,
	ProcedureDefinitions: `(procedure_definition name: (identifier) @name)`,
	IncludeLiterals:      `(include_statement path: (string_literal) @path)`,
	PrintDivisions:       `(print_division) @print`,
}

var names = [...]string{
	VariableDeclarations: "VariableDeclarations",
	ProcedureDefinitions: "ProcedureDefinitions",
	IncludeLiterals:      "IncludeLiterals",
	PrintDivisions:       "PrintDivisions",
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(names) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return names[p]
}

// Source returns the S-expression p compiles from.
func (p Pattern) Source() string { return sources[p] }

// vocabulary compiles every pattern on first use. A malformed pattern is a
// programming error and panics.
var vocabulary = sync.OnceValue(func() []*Query {
	qs := make([]*Query, len(sources))
	for i, src := range sources {
		qs[i] = MustCompile(src)
	}
	return qs
})

// Run executes the fixed pattern p against tree. A nil tree has no
// captures.
func Run(tree *syntax.Tree, p Pattern) []Capture {
	if tree == nil {
		return nil
	}
	return vocabulary()[p].Captures(tree)
}
