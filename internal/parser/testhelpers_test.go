package parser

import (
	"fmt"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
)

func parseSnippet(t *testing.T, src string) (Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lm", []byte(src))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	return ParseFile(lx, Options{Reporter: rep, MaxErrors: 100}), bag
}

// parseModule parses src and requires exactly one module without diagnostics.
func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	res, bag := parseSnippet(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if len(res.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(res.Modules))
	}
	return res.Modules[0]
}

// firstBody returns the body of the module's first let definition.
func firstBody(t *testing.T, m *ast.Module) ast.Expr {
	t.Helper()
	let, ok := m.Defs[0].(*ast.Let)
	if !ok {
		t.Fatalf("first def is %T, want *ast.Let", m.Defs[0])
	}
	return let.Binding.Body
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
