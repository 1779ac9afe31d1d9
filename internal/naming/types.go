package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/nast"
)

// typeVarMode says what an unknown type variable means.
type typeVarMode uint8

const (
	// typeVarsClosed reports unknown type variables as unbound.
	typeVarsClosed typeVarMode = iota
	// typeVarsImplicit binds unknown type variables on first occurrence.
	typeVarsImplicit
)

// typeExpr resolves t. In implicit mode the returned Env carries the type
// variables introduced so far; otherwise it is env.
func (r *resolver) typeExpr(env Env, t ast.TypeExpr, mode typeVarMode) (nast.TypeExpr, Env, error) {
	switch t := t.(type) {
	case *ast.TVar:
		if b, ok := env.TryLookup(TypeVars, t.Name.Text); ok {
			return &nast.TVar{Name: nast.Name{ID: b.ID, Span: t.Name.Span}}, env, nil
		}
		if mode != typeVarsImplicit {
			return nil, env, unboundError(TypeVars, t.Name)
		}
		env, n, err := env.BindFresh(r.gen, TypeVars, t.Name)
		if err != nil {
			return nil, env, err
		}
		return &nast.TVar{Name: n}, env, nil

	case *ast.TName:
		tn, err := r.typeName(env, t.Path)
		return tn, env, err

	case *ast.TApp:
		args := make([]nast.TypeExpr, 0, len(t.Args))
		for _, a := range t.Args {
			var (
				na  nast.TypeExpr
				err error
			)
			if na, env, err = r.typeExpr(env, a, mode); err != nil {
				return nil, env, err
			}
			args = append(args, na)
		}
		con, err := r.typeName(env, t.Con)
		if err != nil {
			return nil, env, err
		}
		return &nast.TApp{Args: args, Con: con, Span: t.Span}, env, nil

	case *ast.TTuple:
		elems := make([]nast.TypeExpr, 0, len(t.Elems))
		for _, e := range t.Elems {
			var (
				ne  nast.TypeExpr
				err error
			)
			if ne, env, err = r.typeExpr(env, e, mode); err != nil {
				return nil, env, err
			}
			elems = append(elems, ne)
		}
		return &nast.TTuple{Elems: elems, Span: t.Span}, env, nil

	case *ast.TArrow:
		param, env, err := r.typeExpr(env, t.Param, mode)
		if err != nil {
			return nil, env, err
		}
		result, env, err := r.typeExpr(env, t.Result, mode)
		if err != nil {
			return nil, env, err
		}
		return &nast.TArrow{Param: param, Result: result, Span: t.Span}, env, nil

	default:
		panic(fmt.Sprintf("naming: unexpected type expression %T", t))
	}
}

// typeName resolves t or M.t.
func (r *resolver) typeName(env Env, p ast.Path) (*nast.TName, error) {
	if !p.Qualified() {
		n, err := env.Lookup(Types, p.Name)
		if err != nil {
			return nil, err
		}
		return &nast.TName{Name: n}, nil
	}
	mod, sig, err := r.module(*p.Module)
	if err != nil {
		return nil, err
	}
	n, err := sig.Lookup(Types, p.Name)
	if err != nil {
		return nil, err
	}
	return &nast.TName{Module: &mod, Name: n}, nil
}
