package naming

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/ident"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

// parseProgram parses src as one file and fails the test on any
// diagnostic.
func parseProgram(t *testing.T, src string) (*ast.Program, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte(src))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: 100})
	if bag.Len() != 0 {
		var lines []string
		for _, d := range bag.Items() {
			lines = append(lines, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
		}
		t.Fatalf("unexpected diagnostics: %s", strings.Join(lines, "; "))
	}
	return &ast.Program{Modules: res.Modules}, fs
}

func resolveSource(t *testing.T, src string) (*Result, *source.FileSet, error) {
	t.Helper()
	prog, fs := parseProgram(t, src)
	res, err := Resolve(context.Background(), prog, Options{Generator: ident.NewGenerator()})
	return res, fs, err
}

func mustResolve(t *testing.T, src string) *Result {
	t.Helper()
	res, _, err := resolveSource(t, src)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return res
}

// resolveError resolves src, requires a *Error and returns it together with
// the line:col of its primary span.
func resolveError(t *testing.T, src string) (*Error, string) {
	t.Helper()
	res, fs, err := resolveSource(t, src)
	if err == nil {
		t.Fatalf("expected an error, got none (result %v)", res != nil)
	}
	var nerr *Error
	if !errors.As(err, &nerr) {
		t.Fatalf("error %v (%T) is not a *naming.Error", err, err)
	}
	return nerr, position(fs, nerr.Span)
}

func position(fs *source.FileSet, sp source.Span) string {
	if !sp.IsValid() {
		return "-"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d", start.Line, start.Col)
}
