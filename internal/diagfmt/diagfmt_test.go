package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
)

func TestPrettyUnderlinesPrimarySpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.lm", []byte("let x = y\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SemaUnboundName, source.Span{File: id, Start: 8, End: 9}, "unbound value 'y'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "m.lm:1:9: ERROR SEM3001: unbound value 'y'\n" +
		"1 | let x = y\n" +
		"  |         ^\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestJSONKeepsTimingNotes(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings").WithNote(source.Span{}, `{"kind":"names"}`))
	bag.Add(diag.New(diag.SevError, diag.SemaMultipleDefinition, source.Span{}, "dup").WithNote(source.Span{}, "previous definition here"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 5})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("output = %+v", out)
	}
	if len(out.Diagnostics[0].Notes) != 1 || len(out.Diagnostics[1].Notes) != 0 {
		t.Fatalf("notes = %+v / %+v", out.Diagnostics[0].Notes, out.Diagnostics[1].Notes)
	}
	if out.Diagnostics[1].Code != "SEM3002" || out.Diagnostics[1].Severity != "ERROR" {
		t.Fatalf("second = %+v", out.Diagnostics[1])
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lm", []byte("let x"))
	toks := lexer.New(fs.Get(id), lexer.Options{}).All()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got:\n%s", buf.String())
	}
	if lines[0] != `  1: KwLet           "let" at 1:1-1:4` {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != `  2: Ident           "x" at 1:5-1:6` {
		t.Fatalf("line 1 = %q", lines[1])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks, fs, PathModeBasename); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 3 || decoded[1].Text != "x" || decoded[1].Span.StartCol != 5 || decoded[2].Kind != "EOF" {
		t.Fatalf("decoded = %+v", decoded)
	}
}
