// Package catalog holds the built-in PowerOn functions and database record
// layouts offered by completion and hover.
package catalog

import (
	"slices"
	"strings"
)

// Function is a built-in PowerOn function.
type Function struct {
	Name string
	// Snippet is the text inserted on completion, in LSP snippet syntax.
	Snippet string
	Doc     string
}

// Functions returns every built-in function, sorted by name. The slice is
// shared and must not be modified.
func Functions() []Function { return functions }

// LookupFunction returns the built-in function called name, ignoring case.
func LookupFunction(name string) (Function, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	i, ok := slices.BinarySearchFunc(functions, name, func(f Function, name string) int {
		return strings.Compare(f.Name, name)
	})
	if !ok {
		return Function{}, false
	}
	return functions[i], true
}
