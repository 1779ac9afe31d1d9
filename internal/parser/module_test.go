package parser

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
)

const sampleModule = `
module M : sig
  type ('a) t = A of t2 | B
  and t2 = { x : int32; y : 'a M.t }
  type u = int32 -> bool
  type o
  val f : int32 -> int32
end = struct
  let f x = x + 1
  let rec g x = h x and h x = g x
  module N = Other
  alias k = f
end
`

func TestParseSampleModule(t *testing.T) {
	m := parseModule(t, sampleModule)
	if m.Name.Text != "M" {
		t.Fatalf("module name = %q", m.Name.Text)
	}
	if len(m.Decls) != 5 {
		t.Fatalf("decls = %d, want 5", len(m.Decls))
	}

	td := m.Decls[0].(*ast.TypeDecl)
	if td.Name.Text != "t" || len(td.Params) != 1 || td.Params[0].Text != "'a" {
		t.Fatalf("unexpected first type decl %+v", td)
	}
	variant, ok := td.Body.(*ast.Variant)
	if !ok || len(variant.Cases) != 2 || variant.Cases[0].Name.Text != "A" || len(variant.Cases[0].Args) != 1 {
		t.Fatalf("unexpected variant body %#v", td.Body)
	}

	rec, ok := m.Decls[1].(*ast.TypeDecl).Body.(*ast.Record)
	if !ok || len(rec.Fields) != 2 {
		t.Fatalf("expected record with 2 fields, got %#v", m.Decls[1].(*ast.TypeDecl).Body)
	}
	app, ok := rec.Fields[1].Type.(*ast.TApp)
	if !ok || app.Con.String() != "M.t" || len(app.Args) != 1 {
		t.Fatalf("expected 'a M.t, got %#v", rec.Fields[1].Type)
	}

	if _, ok := m.Decls[2].(*ast.TypeDecl).Body.(*ast.Abbrev); !ok {
		t.Fatal("expected abbreviation for u")
	}
	if _, ok := m.Decls[3].(*ast.TypeDecl).Body.(*ast.Opaque); !ok {
		t.Fatal("expected opaque type o")
	}
	val := m.Decls[4].(*ast.ValDecl)
	if _, ok := val.Type.(*ast.TArrow); !ok || val.Name.Text != "f" {
		t.Fatalf("unexpected val %+v", val)
	}

	if len(m.Defs) != 4 {
		t.Fatalf("defs = %d, want 4", len(m.Defs))
	}
	let := m.Defs[0].(*ast.Let)
	if let.Binding.Name.Text != "f" || len(let.Binding.Params) != 1 {
		t.Fatalf("unexpected let %+v", let.Binding)
	}
	if rec := m.Defs[1].(*ast.LetRec); len(rec.Bindings) != 2 || rec.Bindings[1].Name.Text != "h" {
		t.Fatalf("unexpected let rec %+v", rec)
	}
	if alias := m.Defs[2].(*ast.ModuleAlias); alias.Name.Text != "N" || alias.Target.Text != "Other" {
		t.Fatalf("unexpected module alias %+v", alias)
	}
	if alias := m.Defs[3].(*ast.ValueAlias); alias.Name.Text != "k" || alias.Target.Text != "f" {
		t.Fatalf("unexpected value alias %+v", alias)
	}
}

func TestParseModuleWithoutSignature(t *testing.T) {
	m := parseModule(t, "module Main = struct let main u = () end")
	if len(m.Decls) != 0 || len(m.Defs) != 1 {
		t.Fatalf("unexpected module %+v", m)
	}
}

func TestParseMultipleModules(t *testing.T) {
	res, bag := parseSnippet(t, "module A = struct end module B = struct end")
	if bag.Len() != 0 || len(res.Modules) != 2 {
		t.Fatalf("modules=%d diags=%s", len(res.Modules), diagnosticsSummary(bag))
	}
}

func TestParseTypes(t *testing.T) {
	m := parseModule(t, `module T : sig
  val a : ('a, int32) M.pair -> 'a list * bool
  val b : (int32 -> int32) -> int32
end = struct end`)

	arrow := m.Decls[0].(*ast.ValDecl).Type.(*ast.TArrow)
	app, ok := arrow.Param.(*ast.TApp)
	if !ok || len(app.Args) != 2 || app.Con.String() != "M.pair" {
		t.Fatalf("param = %#v", arrow.Param)
	}
	tup, ok := arrow.Result.(*ast.TTuple)
	if !ok || len(tup.Elems) != 2 {
		t.Fatalf("result = %#v", arrow.Result)
	}
	if list, ok := tup.Elems[0].(*ast.TApp); !ok || list.Con.String() != "list" {
		t.Fatalf("first tuple elem = %#v", tup.Elems[0])
	}

	arrow = m.Decls[1].(*ast.ValDecl).Type.(*ast.TArrow)
	if _, ok := arrow.Param.(*ast.TArrow); !ok {
		t.Fatalf("parenthesised arrow lost: %#v", arrow.Param)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"top level let", "let x = 1", diag.SynUnexpectedTopLevel},
		{"missing struct", "module M = sig end", diag.SynExpectKeyword},
		{"unclosed struct", "module M = struct let x = 1", diag.SynUnclosedDelimiter},
		{"bad decl", "module M : sig let x = 1 end = struct end", diag.SynUnexpectedToken},
		{"missing expression", "module M = struct let x = end", diag.SynExpectExpression},
		{"missing in", "module M = struct let x = let y = 1 end", diag.SynExpectKeyword},
		{"bad pattern", "module M = struct let f = fun -> 1 end", diag.SynExpectPattern},
		{"bad type", "module M : sig val x : -> end = struct end", diag.SynExpectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSnippet(t, tt.input)
			if bag.Len() == 0 {
				t.Fatal("expected a diagnostic")
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Fatalf("code = %s, want %s (%s)", got.ID(), tt.code.ID(), diagnosticsSummary(bag))
			}
		})
	}
}

func TestParseRecoversAtNextModule(t *testing.T) {
	res, bag := parseSnippet(t, "module A = struct let = end module B = struct let y = 2 end")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	if len(res.Modules) != 1 || res.Modules[0].Name.Text != "B" {
		t.Fatalf("expected only module B to survive, got %d modules", len(res.Modules))
	}
}
