package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/nast"
	"lumen/internal/source"
)

// declaredValue is a val of the module's signature, kept for the
// completeness check.
type declaredValue struct {
	Name ast.Name
}

// declarationEnv is the env type bodies and val types resolve in: the
// primitives, then the module's own types, constructors and fields under
// the symbols minted for its signature.
func (r *resolver) declarationEnv(sig *Env) Env {
	env := r.prims
	for _, ns := range [...]Namespace{Types, Constructors, Fields} {
		sig.Each(ns, func(name string, b Binding) {
			env = env.BindExisting(ns, name, b.ID, b.Span)
		})
	}
	return env
}

// declarations resolves the signature items of m.
func (r *resolver) declarations(m *ast.Module, sig *Env, env Env) ([]nast.Decl, []declaredValue, error) {
	decls := make([]nast.Decl, 0, len(m.Decls))
	var vals []declaredValue
	for _, d := range m.Decls {
		switch d := d.(type) {
		case *ast.TypeDecl:
			td, err := r.typeDecl(env, d)
			if err != nil {
				return nil, nil, err
			}
			decls = append(decls, td)

		case *ast.ValDecl:
			name, err := sig.Lookup(Values, d.Name)
			if err != nil {
				return nil, nil, err
			}
			typ, _, err := r.typeExpr(env.Nested(), d.Type, typeVarsImplicit)
			if err != nil {
				return nil, nil, err
			}
			decls = append(decls, &nast.ValDecl{Name: name, Type: typ, Span: d.Span})
			vals = append(vals, declaredValue{Name: d.Name})

		default:
			panic(fmt.Sprintf("naming: unexpected declaration %T", d))
		}
	}
	return decls, vals, nil
}

func (r *resolver) typeDecl(env Env, d *ast.TypeDecl) (*nast.TypeDecl, error) {
	name, err := env.Lookup(Types, d.Name)
	if err != nil {
		return nil, err
	}

	scope := env.Nested()
	params := make([]nast.Name, 0, len(d.Params))
	for _, p := range d.Params {
		var pn nast.Name
		if scope, pn, err = scope.BindFresh(r.gen, TypeVars, p); err != nil {
			return nil, err
		}
		params = append(params, pn)
	}

	out := &nast.TypeDecl{Name: name, Params: params, Span: d.Span}
	switch body := d.Body.(type) {
	case *ast.Variant:
		cases := make([]nast.Case, 0, len(body.Cases))
		for _, c := range body.Cases {
			cn, err := env.Lookup(Constructors, c.Name)
			if err != nil {
				return nil, err
			}
			args, err := r.closedTypes(scope, c.Args)
			if err != nil {
				return nil, err
			}
			cases = append(cases, nast.Case{Name: cn, Args: args})
		}
		out.Body = &nast.Variant{Cases: cases}

	case *ast.Record:
		fields := make([]nast.FieldDecl, 0, len(body.Fields))
		for _, f := range body.Fields {
			fn, err := env.Lookup(Fields, f.Name)
			if err != nil {
				return nil, err
			}
			typ, _, err := r.typeExpr(scope, f.Type, typeVarsClosed)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nast.FieldDecl{Name: fn, Type: typ})
		}
		out.Body = &nast.Record{Fields: fields}

	case *ast.Abbrev:
		typ, _, err := r.typeExpr(scope, body.Type, typeVarsClosed)
		if err != nil {
			return nil, err
		}
		out.Body = &nast.Abbrev{Type: typ}

	case *ast.Opaque:
		out.Body = &nast.Opaque{}

	default:
		panic(fmt.Sprintf("naming: unexpected type body %T", body))
	}
	return out, nil
}

func (r *resolver) closedTypes(env Env, ts []ast.TypeExpr) ([]nast.TypeExpr, error) {
	out := make([]nast.TypeExpr, 0, len(ts))
	for _, t := range ts {
		nt, _, err := r.typeExpr(env, t, typeVarsClosed)
		if err != nil {
			return nil, err
		}
		out = append(out, nt)
	}
	return out, nil
}

// checkComplete reports the first declared value missing from env.
func checkComplete(env Env, vals []declaredValue, module source.Span) error {
	for _, v := range vals {
		if _, ok := env.TryLookup(Values, v.Name.Text); !ok {
			return &Error{
				Kind:      UnsatisfiedSignature,
				Namespace: Values,
				Name:      v.Name.Text,
				Span:      v.Name.Span,
				Prev:      module,
			}
		}
	}
	return nil
}
