// Package trace records structured, leveled events about a lumen run:
// driver steps, passes (load, parse, signatures, naming) and per-module
// work.
//
// A Tracer travels in the context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// Levels select which scopes are recorded: phase records driver and pass
// spans, detail adds modules, debug records everything. At level error
// events are kept in a ring buffer and only written out when the run
// fails.
package trace
