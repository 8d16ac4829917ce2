package query_test

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/query"
	"github.com/stefanvanburen/pols/internal/syntax"
)

func parse(t *testing.T, text string) *syntax.Tree {
	t.Helper()
	tree, err := syntax.NewParser().Parse(text)
	be.Err(t, err, nil)
	return tree
}

func texts(caps []query.Capture) []string {
	var out []string
	for _, c := range caps {
		out = append(out, c.Text)
	}
	return out
}

const program = `#INCLUDE "RD.TABLES.DEF"
TARGET=ACCOUNT
DEFINE
 COUNT=NUMBER
 TOTAL@AMT=MONEY
 #INCLUDE "RD.MORE.DEF"
END
PRINT TITLE="Report"
 CALL FIRST
END
PROCEDURE FIRST
 COUNT=COUNT+1
END
PROCEDURE SECOND
END
`

func TestRun(t *testing.T) {
	t.Parallel()

	tree := parse(t, program)

	tests := []struct {
		pattern query.Pattern
		want    []string
	}{
		{query.VariableDeclarations, []string{"COUNT", "TOTAL@AMT"}},
		{query.ProcedureDefinitions, []string{"FIRST", "SECOND"}},
		{query.IncludeLiterals, []string{`"RD.TABLES.DEF"`, `"RD.MORE.DEF"`}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			t.Parallel()
			be.Equal(t, texts(query.Run(tree, tt.pattern)), tt.want)
		})
	}

	prints := query.Run(tree, query.PrintDivisions)
	be.Equal(t, len(prints), 1)
	be.Equal(t, prints[0].Name, "print")
	be.Equal(t, prints[0].Node.Kind(), syntax.KindPrintDivision)
	be.Equal(t, prints[0].Range, prints[0].Node.Range())
}

func TestRunNilTree(t *testing.T) {
	t.Parallel()
	be.Equal(t, len(query.Run(nil, query.ProcedureDefinitions)), 0)
}

func TestMissingNodesNeverMatch(t *testing.T) {
	t.Parallel()

	// PROCEDURE without a name gets a missing identifier.
	tree := parse(t, "PROCEDURE\nEND\n")
	be.True(t, tree.RootNode().HasError())
	be.Equal(t, len(query.Run(tree, query.ProcedureDefinitions)), 0)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tree := parse(t, "PROCEDURE A\n X=ABS(Y, 2)\n CALL B\nEND\n")

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "wildcard",
			src:  `(assignment left: (_) @left)`,
			want: []string{"X"},
		},
		{
			name: "positional_children",
			src:  `(argument_list (identifier) @a (number_literal) @b)`,
			want: []string{"Y", "2"},
		},
		{
			name: "nested",
			src:  `(procedure_definition (procedure_call name: (identifier) @callee))`,
			want: []string{"B"},
		},
		{
			name: "several_patterns",
			src: `; calls and definitions
(procedure_definition name: (identifier) @def)
(procedure_call name: (identifier) @call)`,
			want: []string{"A", "B"},
		},
		{
			name: "no_match",
			src:  `(argument_list (number_literal) (identifier) @a)`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, err := query.Compile(tt.src)
			be.Err(t, err, nil)
			be.Equal(t, texts(q.Captures(tree)), tt.want)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown_kind", `(no_such_kind) @x`, "unknown node kind"},
		{"unknown_field", `(procedure_definition label: (identifier))`, "unknown field name"},
		{"unclosed", `(procedure_definition`, "expected ')'"},
		{"stray", `procedure_definition`, "unexpected character"},
		{"empty", ``, "no patterns"},
		{"bad_capture", `(identifier) @`, "capture name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := query.Compile(tt.src)
			be.Err(t, err, tt.want)
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		be.True(t, recover() != nil)
	}()
	query.MustCompile(`(bogus)`)
}

func TestPatternSource(t *testing.T) {
	t.Parallel()
	be.Equal(t, query.IncludeLiterals.Source(), `(include_statement path: (string_literal) @path)`)
	be.Equal(t, query.Pattern(42).String(), "Pattern(42)")
}
