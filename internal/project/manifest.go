// Package project reads lumen.toml, the optional manifest listing the
// source files of a program.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// SourceExt is the extension of lumen source files.
const SourceExt = ".lm"

var (
	ErrNoSources     = errors.New("manifest lists no sources")
	ErrMissingSource = errors.New("source file does not exist")
)

// Manifest is a decoded lumen.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Sources SourcesConfig `toml:"sources"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// SourcesConfig lists the program's files. Files come first, in the given
// order, followed by the .lm files found under Dirs in lexical order.
type SourcesConfig struct {
	Files []string `toml:"files"`
	Dirs  []string `toml:"dirs"`
}

// LoadManifest finds lumen.toml above startDir and decodes it.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes the manifest at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("sources", "files") && !meta.IsDefined("sources", "dirs") {
		return Config{}, fmt.Errorf("%s: %w: set [sources].files or [sources].dirs", path, ErrNoSources)
	}
	return cfg, nil
}

// SourceFiles resolves the manifest's sources to absolute paths, without
// duplicates.
func (m *Manifest) SourceFiles() ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, rel := range m.Config.Sources.Files {
		p := m.abs(rel)
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%s: %w: %s", m.Path, ErrMissingSource, rel)
		}
		add(p)
	}
	for _, rel := range m.Config.Sources.Dirs {
		files, err := CollectSources(m.abs(rel))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Path, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", m.Path, ErrNoSources)
	}
	return out, nil
}

func (m *Manifest) abs(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}

// CollectSources returns the .lm files under dir, recursively, sorted.
func CollectSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}
