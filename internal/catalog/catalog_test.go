package catalog_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/stefanvanburen/pols/internal/catalog"
)

func TestFunctions(t *testing.T) {
	t.Parallel()

	fns := catalog.Functions()
	be.True(t, len(fns) > 100)
	be.True(t, slices.IsSortedFunc(fns, func(a, b catalog.Function) int {
		return strings.Compare(a.Name, b.Name)
	}))
	for _, f := range fns {
		be.True(t, strings.HasPrefix(f.Snippet, f.Name))
	}
}

func TestLookupFunction(t *testing.T) {
	t.Parallel()

	f, ok := catalog.LookupFunction("abs")
	be.True(t, ok)
	be.Equal(t, f.Name, "ABS")
	be.Equal(t, f.Snippet, "ABS(${1:expression})$0")
	be.Equal(t, f.Doc, "This function returns the absolute value of an expression.")

	_, ok = catalog.LookupFunction("NOSUCHFUNCTION")
	be.True(t, !ok)
}

func TestLookupRecord(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"account", "ACCOUNT", "Account:", " account: "} {
		r, ok := catalog.LookupRecord(word)
		be.True(t, ok)
		be.Equal(t, r.Name, "account")
	}
	_, ok := catalog.LookupRecord("share")
	be.True(t, !ok)
}

func TestRecordField(t *testing.T) {
	t.Parallel()

	r, _ := catalog.LookupRecord("ACCOUNT")
	f, ok := r.Field("NUMBER")
	be.True(t, ok)
	be.Equal(t, f.Label(), "NUMBER")
	be.Equal(t, f.Type, catalog.Character)

	md := f.Markdown()
	be.True(t, strings.HasPrefix(md, "# Account Number\n"))
	be.True(t, strings.Contains(md, "Field Number:     001"))
	be.True(t, strings.Contains(md, "Data Type:        10 Characters"))
	be.True(t, strings.Contains(md, "Default Value:    <Blank>"))

	f, _ = r.Field("restrict")
	be.True(t, strings.Contains(f.Markdown(), "Code to 6"))
	be.True(t, strings.Contains(f.Markdown(), "Default Control:  Yes"))

	_, ok = r.Field("balance")
	be.True(t, !ok)
	be.Equal(t, catalog.Rate.String(), "Rate")
	be.Equal(t, catalog.DataType(42).String(), "DataType(42)")
}
