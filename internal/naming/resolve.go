package naming

import (
	"context"
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/ident"
	"lumen/internal/nast"
	"lumen/internal/trace"
)

// Options configures a naming run.
type Options struct {
	// Generator issues the symbols. A fresh one is used when nil.
	Generator *ident.Generator
	// Tracer receives pass and module spans. Defaults to the tracer
	// attached to the context.
	Tracer trace.Tracer
}

// Result is the output of a successful run.
type Result struct {
	Program *nast.Program
	// Global is the final module table, aliases included.
	Global *Global
	// Primitives binds the primitive types shared by every module.
	Primitives Env
}

type resolver struct {
	gen    *ident.Generator
	global *Global
	prims  Env
}

// module resolves a module qualifier and returns its exported env.
func (r *resolver) module(name ast.Name) (nast.Name, *Env, error) {
	mod, err := r.global.ResolveModule(name)
	if err != nil {
		return nast.Name{}, nil, err
	}
	sig, ok := r.global.SignatureOf(mod.ID)
	if !ok {
		return nast.Name{}, nil, unboundError(Modules, name)
	}
	return mod, sig, nil
}

// Resolve replaces every identifier of prog with a unique symbol. It stops
// at the first error, which is always a *Error.
func Resolve(ctx context.Context, prog *ast.Program, opts Options) (*Result, error) {
	gen := opts.Generator
	if gen == nil {
		gen = ident.NewGenerator()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	parent := trace.CurrentSpan(ctx).SpanID

	r := &resolver{gen: gen, prims: Primitives(gen)}

	span := trace.Begin(tracer, trace.ScopePass, "signatures", parent)
	global, err := BuildSignatures(gen, prog)
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.End(fmt.Sprintf("modules=%d", len(prog.Modules)))
	r.global = global

	out := &nast.Program{Modules: make([]*nast.Module, 0, len(prog.Modules))}
	pass := trace.Begin(tracer, trace.ScopePass, "naming", parent)
	for _, m := range prog.Modules {
		nm, err := r.resolveModule(tracer, pass.ID(), m)
		if err != nil {
			pass.End("error")
			return nil, err
		}
		out.Modules = append(out.Modules, nm)
	}
	pass.End(fmt.Sprintf("symbols=%d", gen.Issued()))

	return &Result{Program: out, Global: r.global, Primitives: r.prims}, nil
}

func (r *resolver) resolveModule(tracer trace.Tracer, parent uint64, m *ast.Module) (*nast.Module, error) {
	span := trace.Begin(tracer, trace.ScopeModule, "module "+m.Name.Text, parent)

	name, sig, err := r.module(m.Name)
	if err != nil {
		span.End("error")
		return nil, err
	}

	declEnv := r.declarationEnv(sig)
	decls, vals, err := r.declarations(m, sig, declEnv)
	if err != nil {
		span.End("error")
		return nil, err
	}
	defs, env, err := r.definitions(m, sig, declEnv.Nested())
	if err != nil {
		span.End("error")
		return nil, err
	}
	if err := checkComplete(env, vals, m.Name.Span); err != nil {
		span.End("unsatisfied")
		return nil, err
	}

	span.WithExtra("decls", fmt.Sprint(len(decls))).WithExtra("defs", fmt.Sprint(len(defs))).End("ok")
	return &nast.Module{Name: name, Decls: decls, Defs: defs, Span: m.Span}, nil
}
