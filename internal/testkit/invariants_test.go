package testkit

import (
	"context"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/naming"
	"lumen/internal/nast"
	"lumen/internal/parser"
	"lumen/internal/source"
)

const sample = `module M : sig
  type t = A of int32 | B
  val f : t -> t
end = struct
  let f x = match x with A n -> A (n + 1) | B -> B
end
module N = struct
  module P = M
  let g = P.f
end
`

func parse(t *testing.T, src string) ([]*ast.Module, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("sample.lm", []byte(src)))
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep, MaxErrors: 10})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return res.Modules, file
}

func TestSpanInvariantsHold(t *testing.T) {
	mods, file := parse(t, sample)
	if err := CheckSpanInvariants(mods, file); err != nil {
		t.Fatal(err)
	}
}

func TestSpanInvariantsCatchOverlap(t *testing.T) {
	mods, file := parse(t, sample)
	mods[1].Span.Start = mods[0].Span.Start
	if err := CheckSpanInvariants(mods, file); err == nil {
		t.Fatalf("overlapping modules accepted")
	}
}

func TestCheckResolved(t *testing.T) {
	mods, _ := parse(t, sample)
	res, err := naming.Resolve(context.Background(), &ast.Program{Modules: mods}, naming.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckResolved(res.Program); err != nil {
		t.Fatal(err)
	}

	broken := &nast.Program{Modules: []*nast.Module{{Name: nast.Name{}}}}
	broken.Modules[0].Name.ID.Name = "Q"
	if err := CheckResolved(broken); err == nil {
		t.Fatalf("unstamped module name accepted")
	}
}
