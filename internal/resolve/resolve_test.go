package resolve_test

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/resolve"
	"github.com/stefanvanburen/pols/internal/syntax"
	"github.com/stefanvanburen/pols/internal/workspace"
)

func snapshotOf(t *testing.T, files map[string]string) *workspace.Snapshot {
	t.Helper()
	reg := workspace.NewRegistry(nil)
	for uri, text := range files {
		be.True(t, reg.Load(uri, text))
	}
	return reg.Snapshot()
}

// pointOf returns the position of the first occurrence of needle in text,
// offset by delta bytes.
func pointOf(t *testing.T, text, needle string, delta int) syntax.Point {
	t.Helper()
	i := strings.Index(text, needle)
	be.True(t, i >= 0)
	i += delta
	row := strings.Count(text[:i], "\n")
	col := i - (strings.LastIndex(text[:i], "\n") + 1)
	return syntax.Point{Row: row, Column: col}
}

func uris(locs []resolve.Location) []string {
	var out []string
	for _, l := range locs {
		out = append(out, l.URI)
	}
	return out
}

const driver = `#INCLUDE "RD.TABLES"
#INCLUDE "RD.UTILS"
PRINT TITLE="Report"
 CALL DOSOMETHING
 COUNT=COUNT+1
 CALL NOWHERE
END
`

func TestDefinitionDriverScope(t *testing.T) {
	t.Parallel()

	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.DRIVER": driver,
		"file:///ws/RD.TABLES": "DEFINE\n COUNT=NUMBER\nEND\n",
		"file:///ws/RD.UTILS":  "PROCEDURE DOSOMETHING\n CALL HELPER\nEND\n",
		// Same names outside the include graph are never offered.
		"file:///ws/RD.OTHER": "DEFINE\n COUNT=NUMBER\nEND\nPROCEDURE DOSOMETHING\nEND\n",
	})

	t.Run("procedure_call", func(t *testing.T) {
		t.Parallel()
		got := resolve.Definition(snap, "file:///ws/RD.DRIVER", pointOf(t, driver, "DOSOMETHING", 3), 3)
		be.Equal(t, len(got), 1)
		be.Equal(t, got[0].URI, "file:///ws/RD.UTILS")
		be.Equal(t, got[0].Range.StartPoint, syntax.Point{Row: 0, Column: 10})
		be.Equal(t, got[0].Range.EndPoint, syntax.Point{Row: 0, Column: 21})
	})

	t.Run("call_keyword", func(t *testing.T) {
		t.Parallel()
		got := resolve.Definition(snap, "file:///ws/RD.DRIVER", pointOf(t, driver, "CALL DOSOMETHING", 1), 3)
		be.Equal(t, uris(got), []string{"file:///ws/RD.UTILS"})
	})

	t.Run("variable", func(t *testing.T) {
		t.Parallel()
		got := resolve.Definition(snap, "file:///ws/RD.DRIVER", pointOf(t, driver, "COUNT", 0), 3)
		be.Equal(t, uris(got), []string{"file:///ws/RD.TABLES"})
		be.Equal(t, got[0].Range.StartPoint, syntax.Point{Row: 1, Column: 1})
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		got := resolve.Definition(snap, "file:///ws/RD.DRIVER", pointOf(t, driver, "NOWHERE", 0), 3)
		be.Equal(t, len(got), 0)
	})

	t.Run("not_a_name", func(t *testing.T) {
		t.Parallel()
		got := resolve.Definition(snap, "file:///ws/RD.DRIVER", pointOf(t, driver, `"Report"`, 2), 3)
		be.Equal(t, len(got), 0)
	})
}

func TestDefinitionCallExpression(t *testing.T) {
	t.Parallel()

	text := "#INCLUDE \"RD.LIB\"\nPRINT TITLE=\"x\"\n DOSOMETHING()\nEND\n"
	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.MAIN": text,
		"file:///ws/RD.LIB":  "PROCEDURE DOSOMETHING\nEND\n",
		"file:///ws/RD.C":    "PROCEDURE DOSOMETHING\nEND\n",
	})

	// On the name and on either parenthesis.
	for _, delta := range []int{0, 5, 11, 12} {
		got := resolve.Definition(snap, "file:///ws/RD.MAIN", pointOf(t, text, "DOSOMETHING()", delta), 3)
		be.Equal(t, uris(got), []string{"file:///ws/RD.LIB"})
	}
}

func TestDefinitionDepth(t *testing.T) {
	t.Parallel()

	text := "#INCLUDE \"B\"\nPRINT TITLE=\"x\"\n CALL DEEP\nEND\n"
	snap := snapshotOf(t, map[string]string{
		"file:///ws/A": text,
		"file:///ws/B": "#INCLUDE \"C\"\n",
		"file:///ws/C": "#INCLUDE \"D\"\n",
		"file:///ws/D": "PROCEDURE DEEP\nEND\n",
	})
	p := pointOf(t, text, "DEEP", 0)

	be.Equal(t, uris(resolve.Definition(snap, "file:///ws/A", p, 3)), []string{"file:///ws/D"})
	be.Equal(t, len(resolve.Definition(snap, "file:///ws/A", p, 2)), 0)
}

func TestDefinitionLocalShadowing(t *testing.T) {
	t.Parallel()

	text := "DEFINE\n AMOUNT=MONEY\nEND\nPROCEDURE SUM\n AMOUNT=AMOUNT+1\nEND\n"
	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.LIB":    text,
		"file:///ws/RD.OTHER":  "DEFINE\n AMOUNT=MONEY\nEND\n",
		"file:///ws/RD.OTHER2": "DEFINE\n AMOUNT=NUMBER\nEND\n",
	})

	got := resolve.Definition(snap, "file:///ws/RD.LIB", pointOf(t, text, "AMOUNT=AMOUNT", 8), 3)
	be.Equal(t, uris(got), []string{"file:///ws/RD.LIB"})
	be.Equal(t, got[0].Range.StartPoint, syntax.Point{Row: 1, Column: 1})
}

func TestDefinitionWorkspaceFallback(t *testing.T) {
	t.Parallel()

	text := "PROCEDURE SUM\n CALL HELPER\n X=1\nEND\n"
	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.LIB":    text,
		"file:///ws/a/RD.H1":   "PROCEDURE HELPER\nEND\n",
		"file:///ws/b/RD.H2":   "PROCEDURE HELPER\nEND\nPROCEDURE helper\nEND\n",
		"file:///ws/c/RD.DEFS": "DEFINE\n X=NUMBER\nEND\n",
		"file:///ws/d/RD.BAD":  "\xffPROCEDURE HELPER\nEND\n",
	})

	// Not included by anything, yet every file in the workspace is searched.
	got := resolve.Definition(snap, "file:///ws/RD.LIB", pointOf(t, text, "HELPER", 0), 3)
	be.Equal(t, uris(got), []string{"file:///ws/a/RD.H1", "file:///ws/b/RD.H2"})

	got = resolve.Definition(snap, "file:///ws/RD.LIB", pointOf(t, text, "X=1", 0), 3)
	be.Equal(t, uris(got), []string{"file:///ws/c/RD.DEFS"})
}

func TestDefinitionCaseSensitive(t *testing.T) {
	t.Parallel()

	text := "PROCEDURE A\n CALL Helper\nEND\n"
	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.LIB":  text,
		"file:///ws/RD.UTIL": "PROCEDURE HELPER\nEND\n",
	})
	be.Equal(t, len(resolve.Definition(snap, "file:///ws/RD.LIB", pointOf(t, text, "Helper", 0), 3)), 0)
}

func TestDefinitionUnknownDocument(t *testing.T) {
	t.Parallel()

	snap := snapshotOf(t, map[string]string{"file:///ws/A": "PROCEDURE A\nEND\n"})
	be.Equal(t, len(resolve.Definition(snap, "file:///ws/B", syntax.Point{}, 3)), 0)
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.DRIVER": driver + "PROCEDURE LOCAL\nEND\n",
		"file:///ws/RD.TABLES": "DEFINE\n COUNT=NUMBER\n #INCLUDE \"RD.MORE\"\n NAME=CHARACTER\nEND\n",
		"file:///ws/RD.UTILS":  "PROCEDURE DOSOMETHING\nEND\nDEFINE\n LATE=NUMBER\nEND\n",
		"file:///ws/RD.MORE":   "DEFINE\n EXTRA=DATE\nEND\n",
		"file:///ws/RD.OTHER":  "PROCEDURE UNRELATED\nEND\n",
	})

	type sym struct {
		name string
		kind resolve.Kind
		uri  string
	}
	var got []sym
	for _, s := range resolve.Symbols(snap, "file:///ws/RD.DRIVER", 3) {
		got = append(got, sym{s.Name, s.Kind, s.URI})
	}
	be.Equal(t, got, []sym{
		{"LOCAL", resolve.Procedure, "file:///ws/RD.DRIVER"},
		{"COUNT", resolve.Variable, "file:///ws/RD.TABLES"},
		{"NAME", resolve.Variable, "file:///ws/RD.TABLES"},
		{"DOSOMETHING", resolve.Procedure, "file:///ws/RD.UTILS"},
		{"LATE", resolve.Variable, "file:///ws/RD.UTILS"},
		{"EXTRA", resolve.Variable, "file:///ws/RD.MORE"},
	})

	// Only the driver's own declarations at depth zero.
	be.Equal(t, len(resolve.Symbols(snap, "file:///ws/RD.DRIVER", 0)), 1)
}

func TestSymbolRanges(t *testing.T) {
	t.Parallel()

	snap := snapshotOf(t, map[string]string{
		"file:///ws/RD.LIB": "PROCEDURE WORK\n X=1\nEND\n",
	})
	syms := resolve.Symbols(snap, "file:///ws/RD.LIB", 3)
	be.Equal(t, len(syms), 1)
	be.Equal(t, syms[0].Range.StartPoint, syntax.Point{Row: 0, Column: 10})
	be.Equal(t, syms[0].Range.EndPoint, syntax.Point{Row: 0, Column: 14})
	be.Equal(t, syms[0].DeclRange.StartPoint, syntax.Point{Row: 0, Column: 0})
	be.Equal(t, syms[0].DeclRange.EndPoint, syntax.Point{Row: 2, Column: 3})
	be.Equal(t, syms[0].Kind.String(), "procedure")
}
