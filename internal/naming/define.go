package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/nast"
)

// definitions resolves the implementation of one module. env is the
// declaration env with a fresh group opened for top-level values; sig is
// the module's exported signature.
func (r *resolver) definitions(m *ast.Module, sig *Env, env Env) ([]nast.Def, Env, error) {
	defs := make([]nast.Def, 0, len(m.Defs))
	for _, d := range m.Defs {
		switch d := d.(type) {
		case *ast.Let:
			b, next, err := r.topLet(env, sig, d.Binding)
			if err != nil {
				return nil, env, err
			}
			env = next
			defs = append(defs, &nast.Let{Binding: b})

		case *ast.LetRec:
			bindings, next, err := r.recBindings(env, d.Bindings, sig)
			if err != nil {
				return nil, env, err
			}
			env = next
			defs = append(defs, &nast.LetRec{Bindings: bindings, Span: d.Span})

		case *ast.ModuleAlias:
			g, name, target, err := r.global.AliasModule(r.gen, d.Name, d.Target)
			if err != nil {
				return nil, env, err
			}
			r.global = g
			defs = append(defs, &nast.ModuleAlias{Name: name, Target: target, Span: d.Span})

		case *ast.ValueAlias:
			target, err := env.Lookup(Values, d.Target)
			if err != nil {
				return nil, env, err
			}
			next, name, err := env.bindAs(Values, d.Name, target.ID)
			if err != nil {
				return nil, env, err
			}
			env = next
			name.ID.Name = d.Name.Text
			defs = append(defs, &nast.ValueAlias{Name: name, Target: target, Span: d.Span})

		default:
			panic(fmt.Sprintf("naming: unexpected definition %T", d))
		}
	}
	return defs, env, nil
}

// topLet resolves let f p1 .. pn = e. Parameters and body are resolved
// before f is bound, so f is not visible in its own body.
func (r *resolver) topLet(env Env, sig *Env, b *ast.Binding) (*nast.Binding, Env, error) {
	params, inner, err := r.patterns(env.Nested(), b.Params)
	if err != nil {
		return nil, env, err
	}
	body, err := r.expr(inner, b.Body)
	if err != nil {
		return nil, env, err
	}
	env, name, err := r.bindValue(env, sig, b.Name)
	if err != nil {
		return nil, env, err
	}
	return &nast.Binding{Name: name, Params: params, Body: body, Span: b.Span}, env, nil
}

// recBindings binds every name of a let rec group into env, then resolves
// the bodies with all of them visible. sig is nil for local groups.
func (r *resolver) recBindings(env Env, bs []*ast.Binding, sig *Env) ([]*nast.Binding, Env, error) {
	names := make([]nast.Name, 0, len(bs))
	for _, b := range bs {
		var (
			n   nast.Name
			err error
		)
		if env, n, err = r.bindValue(env, sig, b.Name); err != nil {
			return nil, env, err
		}
		names = append(names, n)
	}

	out := make([]*nast.Binding, 0, len(bs))
	for i, b := range bs {
		params, inner, err := r.patterns(env.Nested(), b.Params)
		if err != nil {
			return nil, env, err
		}
		body, err := r.expr(inner, b.Body)
		if err != nil {
			return nil, env, err
		}
		out = append(out, &nast.Binding{Name: names[i], Params: params, Body: body, Span: b.Span})
	}
	return out, env, nil
}

// bindValue binds a value definition. A top-level name declared in the
// signature takes the symbol minted for it there; anything else gets a
// fresh, module-private symbol.
func (r *resolver) bindValue(env Env, sig *Env, name ast.Name) (Env, nast.Name, error) {
	if sig != nil {
		if b, ok := sig.TryLookup(Values, name.Text); ok {
			return env.bindAs(Values, name, b.ID)
		}
	}
	return env.BindFresh(r.gen, Values, name)
}
