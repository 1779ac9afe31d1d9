package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/ident"
	"lumen/internal/naming"
	"lumen/internal/observ"
	"lumen/internal/source"
	"lumen/internal/trace"
)

// Options configures a driver run.
type Options struct {
	MaxDiagnostics int
	Jobs           int
	// Timings appends an ObsTimings diagnostic with the phase durations.
	Timings bool
	// Progress receives per-file events; nil disables them.
	Progress ProgressSink
}

// Result is everything a command needs to report on a run.
type Result struct {
	Inputs  Inputs
	FileSet *source.FileSet
	Files   []FileResult
	Bag     *diag.Bag
	Program *ast.Program
	// Naming is nil when loading, parsing or naming failed.
	Naming *naming.Result
	Timer  *observ.Timer
}

// Names loads and parses the inputs named by args and resolves every
// identifier. Problems with the sources end up in Result.Bag; the returned
// error is reserved for cancellation and internal failures.
func Names(ctx context.Context, args []string, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	run := trace.Begin(tracer, trace.ScopeDriver, "names", trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpan(ctx, run)

	res, err := names(ctx, args, opts)
	if err != nil {
		run.End("error")
		return res, err
	}
	if opts.Timings {
		payload := timingPayload{Kind: "names", Path: res.Inputs.BaseDir}
		report := res.Timer.Report()
		payload.TotalMS, payload.Phases = report.TotalMS, report.Phases
		appendTimingDiagnostic(res.Bag, payload)
	}
	run.End(fmt.Sprintf("diagnostics=%d", res.Bag.Len()))
	return res, nil
}

func names(ctx context.Context, args []string, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	res := &Result{
		Bag:   diag.NewBag(opts.MaxDiagnostics),
		Timer: observ.NewTimer(),
	}

	idx := res.Timer.Begin("load")
	span := trace.Begin(tracer, trace.ScopePass, "load", parent)
	in, err := ResolveInputs(args)
	res.Inputs = in
	res.FileSet = source.NewFileSetWithBase(in.BaseDir)
	if err != nil {
		res.Bag.Add(projectDiagnostic(err))
		span.End("error")
		res.Timer.End(idx, "error")
		return res, nil
	}
	ids := loadFiles(res.FileSet, in.Files, res.Bag)
	paths := make([]string, len(ids))
	for i, id := range ids {
		paths[i] = res.FileSet.Get(id).Path
	}
	emitQueued(opts.Progress, paths)
	span.End(fmt.Sprintf("files=%d", len(ids)))
	res.Timer.End(idx, fmt.Sprintf("%d files", len(ids)))

	idx = res.Timer.Begin("parse")
	span = trace.Begin(tracer, trace.ScopePass, "parse", parent)
	res.Files, err = ParseFiles(ctx, res.FileSet, ids, opts.MaxDiagnostics, opts.Jobs, opts.Progress)
	if err != nil {
		span.End("error")
		res.Timer.End(idx, "error")
		return res, fmt.Errorf("parse: %w", err)
	}
	res.Program = &ast.Program{}
	for _, f := range res.Files {
		res.Bag.Merge(f.Bag)
		res.Program.Modules = append(res.Program.Modules, f.Modules...)
	}
	span.End(fmt.Sprintf("modules=%d", len(res.Program.Modules)))
	res.Timer.End(idx, fmt.Sprintf("%d modules", len(res.Program.Modules)))

	if res.Bag.HasErrors() {
		return res, nil
	}

	idx = res.Timer.Begin("naming")
	for _, f := range res.Files {
		emit(opts.Progress, f.Path, StageNaming, StatusWorking, 0)
	}
	start := time.Now()
	gen := ident.NewGenerator()
	nres, err := naming.Resolve(ctx, res.Program, naming.Options{Generator: gen, Tracer: tracer})
	if err != nil {
		res.Timer.End(idx, "error")
		var nerr *naming.Error
		if !errors.As(err, &nerr) {
			return res, fmt.Errorf("naming: %w", err)
		}
		nerr.Report(diag.BagReporter{Bag: res.Bag})
		finishNaming(opts.Progress, res.Files, nerr.Span.File, time.Since(start))
		return res, nil
	}
	res.Naming = nres
	res.Timer.End(idx, fmt.Sprintf("%d symbols", gen.Issued()))
	finishNaming(opts.Progress, res.Files, source.NoFileID, time.Since(start))
	return res, nil
}

// finishNaming marks the file holding the naming error as failed and every
// other file as done.
func finishNaming(sink ProgressSink, files []FileResult, failed source.FileID, elapsed time.Duration) {
	for _, f := range files {
		status := StatusDone
		if failed != source.NoFileID && f.FileID == failed {
			status = StatusError
		}
		emit(sink, f.Path, StageNaming, status, elapsed)
	}
}
