package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
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

func TestLoadManifestFromSubdir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "demo"

[sources]
files = ["main.lm"]
dirs = ["lib"]
`)
	writeFile(t, filepath.Join(root, "main.lm"), "")
	writeFile(t, filepath.Join(root, "lib", "b.lm"), "")
	writeFile(t, filepath.Join(root, "lib", "a.lm"), "")
	writeFile(t, filepath.Join(root, "lib", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "lib", ".hidden", "c.lm"), "")

	m, ok, err := LoadManifest(filepath.Join(root, "lib"))
	if err != nil || !ok {
		t.Fatalf("LoadManifest: %v %v", ok, err)
	}
	if m.Config.Package.Name != "demo" || m.Root != root {
		t.Fatalf("manifest = %+v", m)
	}
	files, err := m.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	if got := strings.Join(rel, " "); got != "main.lm lib/a.lm lib/b.lm" {
		t.Fatalf("sources = %s", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "")
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := FindProjectRoot(deep)
	if err != nil || !ok || got != root {
		t.Fatalf("FindProjectRoot = %q %v %v", got, ok, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		is      error
	}{
		{"bad toml", "[package", "failed to parse TOML", nil},
		{"no name", "[package]\n[sources]\nfiles = [\"a.lm\"]\n", "missing [package].name", nil},
		{"no sources", "[package]\nname = \"x\"\n", "", ErrNoSources},
		{"unknown key", "[package]\nname = \"x\"\nversion = 1\n[sources]\ndirs = [\".\"]\n", "unknown keys: package.version", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestSourceFilesMissing(t *testing.T) {
	root := t.TempDir()
	m := &Manifest{Path: filepath.Join(root, ManifestName), Root: root, Config: Config{
		Sources: SourcesConfig{Files: []string{"gone.lm"}},
	}}
	if _, err := m.SourceFiles(); !errors.Is(err, ErrMissingSource) {
		t.Fatalf("err = %v", err)
	}
	m.Config.Sources = SourcesConfig{Dirs: []string{"."}}
	if _, err := m.SourceFiles(); !errors.Is(err, ErrNoSources) {
		t.Fatalf("empty dir err = %v", err)
	}
}
