package diagfmt

import (
	"path/filepath"
	"strings"

	"lumen/internal/source"
)

const autoPathLimit = 40

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	}
	if base := fs.BaseDir(); base != "" {
		if rel, err := source.RelativePath(f.Path, base); err == nil && !strings.HasPrefix(rel, "/") {
			return rel
		}
	}
	if filepath.IsAbs(f.Path) && len(f.Path) > autoPathLimit {
		return filepath.Base(f.Path)
	}
	return f.Path
}
