package nast

import (
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/ident"
)

func nm(text string, stamp uint64) Name {
	return Name{ID: ident.Ident{Name: text, Stamp: stamp}}
}

func TestPrintModule(t *testing.T) {
	mod := nm("M", 9)
	other := nm("N", 4)
	prog := &Program{Modules: []*Module{{
		Name: mod,
		Decls: []Decl{
			&TypeDecl{
				Name:   nm("t", 5),
				Params: []Name{nm("'a", 10)},
				Body: &Variant{Cases: []Case{
					{Name: nm("A", 6), Args: []TypeExpr{&TVar{Name: nm("'a", 10)}, &TName{Name: nm("int32", 3)}}},
					{Name: nm("B", 7)},
				}},
			},
			&TypeDecl{Name: nm("o", 8), Body: &Opaque{}},
			&ValDecl{Name: nm("f", 2), Type: &TArrow{
				Param:  &TName{Name: nm("int32", 3)},
				Result: &TName{Module: &other, Name: nm("u", 1)},
			}},
		},
		Defs: []Def{
			&Let{Binding: &Binding{
				Name:   nm("f", 2),
				Params: []Pattern{&PVar{Name: nm("x", 11)}},
				Body: &EBinary{
					Op:    ast.OpAdd,
					Left:  &EVar{Name: nm("x", 11)},
					Right: &External{Module: other, Name: nm("k", 12)},
				},
			}},
			&ValueAlias{Name: nm("g", 2), Target: nm("f", 2)},
		},
	}}}

	want := "module M/9 : sig\n" +
		"  type ('a/10) t/5 = A/6 of 'a/10 * int32/3 | B/7\n" +
		"  type o/8\n" +
		"  val f/2 : (int32/3 -> N/4.u/1)\n" +
		"end = struct\n" +
		"  let f/2 x/11 = (x/11 + N/4.k/12)\n" +
		"  alias g/2 = f/2\n" +
		"end\n"
	if got := Print(prog); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintPatternsAndExprs(t *testing.T) {
	pat := &POr{
		Left:  &PConstr{Name: nm("A", 1), Arg: &PVar{Name: nm("x", 2)}},
		Right: &PAlias{Pat: &PWild{}, Name: nm("x", 2)},
	}
	var b strings.Builder
	writePattern(&b, pat)
	if got := b.String(); got != "((A/1 x/2) | (_ as x/2))" {
		t.Fatalf("pattern = %q", got)
	}

	expr := &EMatch{
		Scrutinee: &EVar{Name: nm("v", 3)},
		Arms: []Arm{
			{Pat: &PLit{Lit: ast.Literal{Kind: ast.LitInt, Text: "0"}}, Body: &EUnary{Op: ast.OpNot, Operand: &ELit{Lit: ast.Literal{Text: "true"}}}},
			{Pat: &PWild{}, Body: &EFun{Params: []Pattern{&PVar{Name: nm("y", 4)}}, Body: &EField{Expr: &EVar{Name: nm("y", 4)}, Field: nm("f", 5)}}},
		},
	}
	b.Reset()
	writeExpr(&b, expr)
	if got := b.String(); got != "(match v/3 with 0 -> (not true) | _ -> (fun y/4 -> y/4.f/5))" {
		t.Fatalf("expr = %q", got)
	}
}
