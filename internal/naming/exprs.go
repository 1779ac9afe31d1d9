package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/nast"
)

func (r *resolver) expr(env Env, e ast.Expr) (nast.Expr, error) {
	switch e := e.(type) {
	case *ast.EVar:
		if !e.Path.Qualified() {
			n, err := env.Lookup(Values, e.Path.Name)
			if err != nil {
				return nil, err
			}
			return &nast.EVar{Name: n}, nil
		}
		mod, sig, err := r.module(*e.Path.Module)
		if err != nil {
			return nil, err
		}
		n, err := sig.Lookup(Values, e.Path.Name)
		if err != nil {
			return nil, err
		}
		return &nast.External{Module: mod, Name: n}, nil

	case *ast.ELit:
		return &nast.ELit{Lit: e.Lit}, nil

	case *ast.EConstr:
		mod, name, err := r.constructor(env, e.Path)
		if err != nil {
			return nil, err
		}
		out := &nast.EConstr{Module: mod, Name: name, Span: e.Span}
		if e.Arg != nil {
			if out.Arg, err = r.expr(env, e.Arg); err != nil {
				return nil, err
			}
		}
		return out, nil

	case *ast.ETuple:
		elems, err := r.exprs(env, e.Elems)
		if err != nil {
			return nil, err
		}
		return &nast.ETuple{Elems: elems, Span: e.Span}, nil

	case *ast.ERecord:
		fields := make([]nast.RecordField, 0, len(e.Fields))
		for _, f := range e.Fields {
			name, err := env.Lookup(Fields, f.Name)
			if err != nil {
				return nil, err
			}
			value, err := r.expr(env, f.Value)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nast.RecordField{Name: name, Value: value})
		}
		return &nast.ERecord{Fields: fields, Span: e.Span}, nil

	case *ast.EField:
		inner, err := r.expr(env, e.Expr)
		if err != nil {
			return nil, err
		}
		field, err := env.Lookup(Fields, e.Field)
		if err != nil {
			return nil, err
		}
		return &nast.EField{Expr: inner, Field: field, Span: e.Span}, nil

	case *ast.EApp:
		fn, err := r.expr(env, e.Fn)
		if err != nil {
			return nil, err
		}
		args, err := r.exprs(env, e.Args)
		if err != nil {
			return nil, err
		}
		return &nast.EApp{Fn: fn, Args: args, Span: e.Span}, nil

	case *ast.EFun:
		params, inner, err := r.patterns(env.Nested(), e.Params)
		if err != nil {
			return nil, err
		}
		body, err := r.expr(inner, e.Body)
		if err != nil {
			return nil, err
		}
		return &nast.EFun{Params: params, Body: body, Span: e.Span}, nil

	case *ast.ELet:
		return r.letExpr(env, e)

	case *ast.ELetRec:
		scope := env.Nested()
		bindings, scope, err := r.recBindings(scope, e.Bindings, nil)
		if err != nil {
			return nil, err
		}
		body, err := r.expr(scope, e.Body)
		if err != nil {
			return nil, err
		}
		return &nast.ELetRec{Bindings: bindings, Body: body, Span: e.Span}, nil

	case *ast.EMatch:
		scrutinee, err := r.expr(env, e.Scrutinee)
		if err != nil {
			return nil, err
		}
		arms := make([]nast.Arm, 0, len(e.Arms))
		for _, a := range e.Arms {
			pat, armEnv, err := r.pattern(env.Nested(), a.Pat)
			if err != nil {
				return nil, err
			}
			body, err := r.expr(armEnv, a.Body)
			if err != nil {
				return nil, err
			}
			arms = append(arms, nast.Arm{Pat: pat, Body: body})
		}
		return &nast.EMatch{Scrutinee: scrutinee, Arms: arms, Span: e.Span}, nil

	case *ast.EIf:
		parts, err := r.exprs(env, []ast.Expr{e.Cond, e.Then, e.Else})
		if err != nil {
			return nil, err
		}
		return &nast.EIf{Cond: parts[0], Then: parts[1], Else: parts[2], Span: e.Span}, nil

	case *ast.EBinary:
		parts, err := r.exprs(env, []ast.Expr{e.Left, e.Right})
		if err != nil {
			return nil, err
		}
		return &nast.EBinary{Op: e.Op, Left: parts[0], Right: parts[1], Span: e.Span}, nil

	case *ast.EUnary:
		operand, err := r.expr(env, e.Operand)
		if err != nil {
			return nil, err
		}
		return &nast.EUnary{Op: e.Op, Operand: operand, Span: e.Span}, nil

	case *ast.ESeq:
		parts, err := r.exprs(env, []ast.Expr{e.First, e.Second})
		if err != nil {
			return nil, err
		}
		return &nast.ESeq{First: parts[0], Second: parts[1], Span: e.Span}, nil

	default:
		panic(fmt.Sprintf("naming: unexpected expression %T", e))
	}
}

func (r *resolver) exprs(env Env, es []ast.Expr) ([]nast.Expr, error) {
	out := make([]nast.Expr, 0, len(es))
	for _, e := range es {
		ne, err := r.expr(env, e)
		if err != nil {
			return nil, err
		}
		out = append(out, ne)
	}
	return out, nil
}

// letExpr handles both let forms. The bound names are visible in the body
// only; the function form's own name is not visible in its value.
func (r *resolver) letExpr(env Env, e *ast.ELet) (nast.Expr, error) {
	if len(e.Params) == 0 {
		value, err := r.expr(env, e.Value)
		if err != nil {
			return nil, err
		}
		pat, bodyEnv, err := r.pattern(env.Nested(), e.Pat)
		if err != nil {
			return nil, err
		}
		body, err := r.expr(bodyEnv, e.Body)
		if err != nil {
			return nil, err
		}
		return &nast.ELet{Pat: pat, Value: value, Body: body, Span: e.Span}, nil
	}

	params, inner, err := r.patterns(env.Nested(), e.Params)
	if err != nil {
		return nil, err
	}
	value, err := r.expr(inner, e.Value)
	if err != nil {
		return nil, err
	}
	pat, bodyEnv, err := r.pattern(env.Nested(), e.Pat)
	if err != nil {
		return nil, err
	}
	body, err := r.expr(bodyEnv, e.Body)
	if err != nil {
		return nil, err
	}
	return &nast.ELet{Pat: pat, Params: params, Value: value, Body: body, Span: e.Span}, nil
}
