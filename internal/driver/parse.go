package driver

import (
	"context"
	"runtime"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

// FileResult is the parse output of a single file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Modules []*ast.Module
	Bag     *diag.Bag
}

// ParseFiles parses the given files in parallel, at most jobs at a time
// (GOMAXPROCS when jobs <= 0). Results keep the order of ids. sink may be
// nil.
func ParseFiles(ctx context.Context, fileSet *source.FileSet, ids []source.FileID, maxDiagnostics, jobs int, sink ProgressSink) ([]FileResult, error) {
	results := make([]FileResult, len(ids))
	if len(ids) == 0 {
		return results, nil
	}
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(id)
			emit(sink, file.Path, StageParse, StatusWorking, 0)
			start := time.Now()
			// Each goroutine owns results[i].
			results[i] = parseFile(file, maxDiagnostics, maxErrors)
			status := StatusDone
			if results[i].Bag.HasErrors() {
				status = StatusError
			}
			emit(sink, file.Path, StageParse, status, time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func parseFile(file *source.File, maxDiagnostics int, maxErrors uint) FileResult {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: maxErrors})
	return FileResult{
		Path:    file.Path,
		FileID:  file.ID,
		Modules: res.Modules,
		Bag:     bag,
	}
}

