package driver

import (
	"errors"
	"fmt"
	"os"

	"lumen/internal/diag"
	"lumen/internal/project"
	"lumen/internal/source"
)

// Inputs lists the source files of one run in program order.
type Inputs struct {
	BaseDir string
	Files   []string
	// Manifest is nil unless the files came from a lumen.toml.
	Manifest *project.Manifest
}

// ResolveInputs turns command-line arguments into an ordered file list.
//
// No arguments behaves like ".". A single directory argument uses the
// manifest found from it upwards, or every source file below it when there
// is none. Otherwise directories expand to their sorted source files and
// files are taken in the order given.
func ResolveInputs(args []string) (Inputs, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return dirInputs(args[0])
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return Inputs{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	in := Inputs{BaseDir: wd}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files surface as load diagnostics.
			in.Files = append(in.Files, arg)
			continue
		}
		files, err := project.CollectSources(arg)
		if err != nil {
			return in, err
		}
		in.Files = append(in.Files, files...)
	}
	return in, nil
}

func dirInputs(dir string) (Inputs, error) {
	m, ok, err := project.LoadManifest(dir)
	if err != nil {
		return Inputs{BaseDir: dir}, err
	}
	if ok {
		in := Inputs{BaseDir: m.Root, Manifest: m}
		in.Files, err = m.SourceFiles()
		return in, err
	}
	files, err := project.CollectSources(dir)
	if err != nil {
		return Inputs{BaseDir: dir}, err
	}
	if len(files) == 0 {
		return Inputs{BaseDir: dir}, fmt.Errorf("%s: %w", dir, project.ErrNoSources)
	}
	return Inputs{BaseDir: dir, Files: files}, nil
}

// projectDiagnostic maps an input resolution error onto its code.
func projectDiagnostic(err error) diag.Diagnostic {
	code := diag.ProjBadManifest
	switch {
	case errors.Is(err, project.ErrNoSources):
		code = diag.ProjNoSources
	case errors.Is(err, project.ErrMissingSource):
		code = diag.ProjMissingSource
	}
	return diag.New(diag.SevError, code, source.Span{}, err.Error())
}

// loadFiles reads every input into fileSet. Unreadable files are reported
// to bag and left out of the returned ids.
func loadFiles(fileSet *source.FileSet, paths []string, bag *diag.Bag) []source.FileID {
	ids := make([]source.FileID, 0, len(paths))
	for _, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Span{},
				"failed to load file: "+err.Error()))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
