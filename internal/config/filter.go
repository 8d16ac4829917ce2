package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/cel-go/cel"
)

// FileFilter is a compiled workspace.filter expression. A nil *FileFilter
// accepts every file.
type FileFilter struct {
	expr string
	prg  cel.Program
}

// NewFileFilter compiles expr against the variables name, path, ext (without
// the leading dot) and size. An empty expression yields a nil filter.
func NewFileFilter(expr string) (*FileFilter, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("ext", cel.StringType),
		cel.Variable("size", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("workspace.filter: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("workspace.filter: expression must be bool, got %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("workspace.filter: %w", err)
	}
	return &FileFilter{expr: expr, prg: prg}, nil
}

func (f *FileFilter) String() string {
	if f == nil {
		return "true"
	}
	return f.expr
}

// Match evaluates the filter for the file at path with the given size.
func (f *FileFilter) Match(path string, size int64) (bool, error) {
	if f == nil {
		return true, nil
	}
	val, _, err := f.prg.Eval(map[string]any{
		"name": filepath.Base(path),
		"path": filepath.ToSlash(path),
		"ext":  strings.TrimPrefix(filepath.Ext(path), "."),
		"size": size,
	})
	if err != nil {
		return false, fmt.Errorf("workspace.filter %q on %s: %w", f.expr, path, err)
	}
	ok, isBool := val.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("workspace.filter %q on %s: got %v, want bool", f.expr, path, val)
	}
	return ok, nil
}
