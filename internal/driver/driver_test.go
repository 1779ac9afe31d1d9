package driver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"lumen/internal/diag"
	"lumen/internal/project"
	"lumen/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func codes(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Code.ID())
	}
	return out
}

const (
	srcA = `module A : sig
  type t = K of int32
  val x : t
end = struct
  let x = K (B.y)
end
`
	srcB = `module B : sig
  val y : int32
end = struct
  let y = 1
end
`
)

func TestNamesUsesManifestOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), `
[package]
name = "demo"

[sources]
files = ["b.lm", "a.lm"]
`)
	writeFile(t, filepath.Join(root, "a.lm"), srcA)
	writeFile(t, filepath.Join(root, "b.lm"), srcB)

	res, err := Names(t.Context(), []string{root}, Options{MaxDiagnostics: 50, Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
	if res.Naming == nil {
		t.Fatalf("naming did not run")
	}
	var order []string
	for _, m := range res.Program.Modules {
		order = append(order, m.Name.Text)
	}
	if got := strings.Join(order, " "); got != "B A" {
		t.Fatalf("module order = %s", got)
	}
	sf := Signatures(res)
	if sf.Package != "demo" || len(sf.Modules) != 2 || sf.Modules[0].Name != "B" {
		t.Fatalf("signatures = %+v", sf)
	}
}

func TestNamesWithoutManifestCollectsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.lm"), srcA)
	writeFile(t, filepath.Join(root, "sub", "b.lm"), srcB)

	res, err := Names(t.Context(), []string{root}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Naming == nil || res.Inputs.Manifest != nil {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
	if len(res.Files) != 2 || filepath.Base(res.Files[0].Path) != "a.lm" {
		t.Fatalf("files = %+v", res.Files)
	}
}

func TestNamesReportsNamingError(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "m.lm")
	writeFile(t, path, "module M = struct let f x = y end\n")

	res, err := Names(t.Context(), []string{path}, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.Naming != nil {
		t.Fatalf("naming succeeded")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SemaUnboundName {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
	if items[0].Message != "unbound value 'y'" {
		t.Fatalf("message = %q", items[0].Message)
	}
	start, _ := res.FileSet.Resolve(items[0].Primary)
	if start.Line != 1 || start.Col != 29 {
		t.Fatalf("position = %d:%d", start.Line, start.Col)
	}
}

func TestNamesStopsAfterSyntaxErrors(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.lm")
	bad := filepath.Join(root, "bad.lm")
	writeFile(t, good, srcB)
	writeFile(t, bad, "module M = struct let = end\n")

	res, err := Names(t.Context(), []string{good, bad}, Options{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() || res.Naming != nil {
		t.Fatalf("syntax error not reported: %v", codes(res.Bag))
	}
	for _, c := range codes(res.Bag) {
		if !strings.HasPrefix(c, "SYN") && !strings.HasPrefix(c, "LEX") {
			t.Fatalf("unexpected code %s", c)
		}
	}
}

func TestNamesMissingFile(t *testing.T) {
	root := t.TempDir()
	res, err := Names(t.Context(), []string{filepath.Join(root, "nope.lm")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
}

func TestNamesProjectErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     diag.Code
	}{
		{"bad toml", "[package\n", diag.ProjBadManifest},
		{"no sources", "[package]\nname = \"x\"\n", diag.ProjNoSources},
		{"missing source", "[package]\nname = \"x\"\n[sources]\nfiles = [\"gone.lm\"]\n", diag.ProjMissingSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, project.ManifestName), tt.manifest)
			res, err := Names(t.Context(), []string{root}, Options{})
			if err != nil {
				t.Fatal(err)
			}
			items := res.Bag.Items()
			if len(items) != 1 || items[0].Code != tt.want {
				t.Fatalf("diagnostics: %v, want %s", codes(res.Bag), tt.want.ID())
			}
		})
	}
}

func TestNamesTimingDiagnostic(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "b.lm")
	writeFile(t, path, srcB)

	res, err := Names(t.Context(), []string{path}, Options{Timings: true})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.ObsTimings || items[0].Severity != diag.SevInfo {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
	var payload timingPayload
	if err := json.Unmarshal([]byte(items[0].Notes[0].Msg), &payload); err != nil {
		t.Fatal(err)
	}
	var phases []string
	for _, p := range payload.Phases {
		phases = append(phases, p.Name)
	}
	if payload.Kind != "names" || strings.Join(phases, ",") != "load,parse,naming" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestTimingDiagnosticIgnoresLimit(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.SemaUnboundName, source.Span{}, "x"))
	appendTimingDiagnostic(bag, timingPayload{TotalMS: 1})
	if bag.Len() != 2 || bag.Items()[1].Code != diag.ObsTimings {
		t.Fatalf("diagnostics: %v", codes(bag))
	}
}

func TestTokenize(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "t.lm")
	writeFile(t, path, "let x = 1")
	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) != 5 || res.Bag.Len() != 0 {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	if _, err := Tokenize(filepath.Join(root, "missing.lm"), 10); err == nil {
		t.Fatalf("missing file tokenized")
	}
}

func TestNamesDemoProject(t *testing.T) {
	res, err := Names(t.Context(), []string{filepath.Join("..", "..", "testdata", "demo")}, Options{Jobs: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", codes(res.Bag))
	}
	var order []string
	for _, m := range res.Naming.Program.Modules {
		order = append(order, m.Name.ID.Name)
	}
	if got := strings.Join(order, " "); got != "List Main Shape" {
		t.Fatalf("module order = %s", got)
	}
	if sf := Signatures(res); sf.Package != "demo" || len(sf.Modules) != 4 {
		t.Fatalf("signatures = %+v", sf)
	}
}

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordSink) last() map[string]Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Event)
	for _, ev := range s.events {
		out[filepath.Base(ev.File)] = ev
	}
	return out
}

func TestNamesReportsProgress(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.lm")
	bad := filepath.Join(root, "bad.lm")
	writeFile(t, good, srcB)
	writeFile(t, bad, "module M = struct let f x = y end\n")

	sink := &recordSink{}
	if _, err := Names(t.Context(), []string{good, bad}, Options{Progress: sink}); err != nil {
		t.Fatal(err)
	}
	last := sink.last()
	if ev := last["good.lm"]; ev.Stage != StageNaming || ev.Status != StatusDone {
		t.Fatalf("good.lm ended with %+v", ev)
	}
	if ev := last["bad.lm"]; ev.Stage != StageNaming || ev.Status != StatusError {
		t.Fatalf("bad.lm ended with %+v", ev)
	}
	if first := sink.events[0]; first.Status != StatusQueued {
		t.Fatalf("first event = %+v", first)
	}
}
