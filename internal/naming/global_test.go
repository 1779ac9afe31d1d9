package naming

import (
	"errors"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/ident"
)

func TestBuildSignaturesBindsDeclarationsOnly(t *testing.T) {
	prog, _ := parseProgram(t, `module M : sig
  type t = A | B
  type r = { f : t }
  val v : t
end = struct
  let v = A
  let private = B
end`)
	gen := ident.NewGenerator()
	g, err := BuildSignatures(gen, prog)
	if err != nil {
		t.Fatal(err)
	}
	m, err := g.ResolveModule(ast.Name{Text: "M"})
	if err != nil {
		t.Fatal(err)
	}
	sig, ok := g.SignatureOf(m.ID)
	if !ok {
		t.Fatalf("no signature for %s", m.ID)
	}
	checks := []struct {
		ns    Namespace
		names []string
	}{
		{Types, []string{"r", "t"}},
		{Constructors, []string{"A", "B"}},
		{Fields, []string{"f"}},
		{Values, []string{"v"}},
		{TypeVars, nil},
	}
	for _, c := range checks {
		got := sig.Names(c.ns)
		if len(got) != len(c.names) {
			t.Fatalf("%s names = %v, want %v", c.ns, got, c.names)
		}
		for i := range got {
			if got[i] != c.names[i] {
				t.Fatalf("%s names = %v, want %v", c.ns, got, c.names)
			}
		}
	}
	// t, r, A, B, f, v, then the module.
	if m.ID.Stamp != 7 {
		t.Fatalf("module stamp = %d, want 7", m.ID.Stamp)
	}
}

func TestAliasModule(t *testing.T) {
	prog, _ := parseProgram(t, "module M : sig val x : int32 end = struct let x = 1 end")
	gen := ident.NewGenerator()
	g, err := BuildSignatures(gen, prog)
	if err != nil {
		t.Fatal(err)
	}

	g2, alias, target, err := g.AliasModule(gen, ast.Name{Text: "N"}, ast.Name{Text: "M"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.ResolveModule(ast.Name{Text: "N"}); err == nil {
		t.Fatalf("alias visible in the table it was derived from")
	}
	n, err := g2.ResolveModule(ast.Name{Text: "N"})
	if err != nil {
		t.Fatal(err)
	}
	if !n.ID.Same(alias.ID) || alias.ID.Same(target.ID) {
		t.Fatalf("alias %s, target %s", alias.ID, target.ID)
	}
	sigN, _ := g2.SignatureOf(alias.ID)
	sigM, _ := g2.SignatureOf(target.ID)
	if sigN != sigM {
		t.Fatalf("alias does not export the same env")
	}

	_, _, _, err = g2.AliasModule(gen, ast.Name{Text: "N"}, ast.Name{Text: "M"})
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Kind != MultipleDefinition || nerr.Namespace != Modules {
		t.Fatalf("realias err = %v", err)
	}
	_, _, _, err = g2.AliasModule(gen, ast.Name{Text: "K"}, ast.Name{Text: "Q"})
	if !errors.As(err, &nerr) || nerr.Kind != UnboundName {
		t.Fatalf("unknown target err = %v", err)
	}
}

func TestExport(t *testing.T) {
	res := mustResolve(t, `module M : sig
  type t = A
  val x : t
end = struct
  let x = A
  module N = M
end`)
	sigs := res.Global.Export()
	if len(sigs) != 2 {
		t.Fatalf("got %d signatures", len(sigs))
	}
	m, n := sigs[0], sigs[1]
	if m.Name != "M" || m.AliasOf != nil {
		t.Fatalf("first = %+v", m)
	}
	if n.Name != "N" || n.AliasOf == nil || !n.AliasOf.Same(m.ID) {
		t.Fatalf("second = %+v", n)
	}
	// int8..double take 1-7; t, A, x follow.
	if m.Types["t"] != 8 || m.Constructors["A"] != 9 || m.Values["x"] != 10 {
		t.Fatalf("stamps = %v %v %v", m.Types, m.Constructors, m.Values)
	}
	if m.Fields != nil {
		t.Fatalf("empty namespace exported as %v", m.Fields)
	}
	if n.Values["x"] != m.Values["x"] {
		t.Fatalf("alias exports different values")
	}
}
