package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/ident"
	"lumen/internal/nast"
)

// patternScope tracks the variables one pattern binds. When reuse is set
// the pattern is the right side of an or-pattern and must bind exactly the
// variables in reuse, to the same symbols.
type patternScope struct {
	r     *resolver
	reuse map[string]ident.Ident
	bound []boundVar
}

type boundVar struct {
	name ast.Name
	id   ident.Ident
}

// pattern resolves p, binding its variables into env.
func (r *resolver) pattern(env Env, p ast.Pattern) (nast.Pattern, Env, error) {
	s := &patternScope{r: r}
	return s.pattern(env, p)
}

// patterns resolves a parameter list left to right into one env.
func (r *resolver) patterns(env Env, ps []ast.Pattern) ([]nast.Pattern, Env, error) {
	out := make([]nast.Pattern, 0, len(ps))
	for _, p := range ps {
		np, next, err := r.pattern(env, p)
		if err != nil {
			return nil, env, err
		}
		env = next
		out = append(out, np)
	}
	return out, env, nil
}

func (s *patternScope) pattern(env Env, p ast.Pattern) (nast.Pattern, Env, error) {
	switch p := p.(type) {
	case *ast.PWild:
		return &nast.PWild{Span: p.Span}, env, nil

	case *ast.PLit:
		return &nast.PLit{Lit: p.Lit}, env, nil

	case *ast.PVar:
		env, n, err := s.bindVar(env, p.Name)
		if err != nil {
			return nil, env, err
		}
		return &nast.PVar{Name: n}, env, nil

	case *ast.PTuple:
		elems := make([]nast.Pattern, 0, len(p.Elems))
		for _, e := range p.Elems {
			ne, next, err := s.pattern(env, e)
			if err != nil {
				return nil, env, err
			}
			env = next
			elems = append(elems, ne)
		}
		return &nast.PTuple{Elems: elems, Span: p.Span}, env, nil

	case *ast.PConstr:
		mod, name, err := s.r.constructor(env, p.Path)
		if err != nil {
			return nil, env, err
		}
		out := &nast.PConstr{Module: mod, Name: name, Span: p.Span}
		if p.Arg != nil {
			if out.Arg, env, err = s.pattern(env, p.Arg); err != nil {
				return nil, env, err
			}
		}
		return out, env, nil

	case *ast.PRecord:
		fields := make([]nast.PField, 0, len(p.Fields))
		for _, f := range p.Fields {
			fname, err := env.Lookup(Fields, f.Name)
			if err != nil {
				return nil, env, err
			}
			np, next, err := s.pattern(env, f.Pat)
			if err != nil {
				return nil, env, err
			}
			env = next
			fields = append(fields, nast.PField{Name: fname, Pat: np})
		}
		return &nast.PRecord{Fields: fields, Span: p.Span}, env, nil

	case *ast.POr:
		return s.orPattern(env, p)

	case *ast.PAlias:
		inner, env, err := s.pattern(env, p.Pat)
		if err != nil {
			return nil, env, err
		}
		env, n, err := s.bindVar(env, p.Name)
		if err != nil {
			return nil, env, err
		}
		return &nast.PAlias{Pat: inner, Name: n, Span: p.Span}, env, nil

	default:
		panic(fmt.Sprintf("naming: unexpected pattern %T", p))
	}
}

// orPattern resolves both sides from env. The right side reuses the left
// side's symbols, so every variable ends up with a single binding site.
func (s *patternScope) orPattern(env Env, p *ast.POr) (nast.Pattern, Env, error) {
	left := &patternScope{r: s.r, reuse: s.reuse}
	nl, _, err := left.pattern(env, p.Left)
	if err != nil {
		return nil, env, err
	}

	reuse := make(map[string]ident.Ident, len(left.bound))
	for _, v := range left.bound {
		reuse[v.name.Text] = v.id
	}
	right := &patternScope{r: s.r, reuse: reuse}
	nr, env, err := right.pattern(env, p.Right)
	if err != nil {
		return nil, env, err
	}
	if len(right.bound) != len(left.bound) {
		seen := make(map[string]bool, len(right.bound))
		for _, v := range right.bound {
			seen[v.name.Text] = true
		}
		for _, v := range left.bound {
			if !seen[v.name.Text] {
				return nil, env, &Error{Kind: UnboundName, Namespace: Values, Name: v.name.Text, Span: p.Span}
			}
		}
	}
	s.bound = append(s.bound, right.bound...)
	return &nast.POr{Left: nl, Right: nr, Span: p.Span}, env, nil
}

func (s *patternScope) bindVar(env Env, name ast.Name) (Env, nast.Name, error) {
	var (
		n   nast.Name
		err error
	)
	if s.reuse != nil {
		id, ok := s.reuse[name.Text]
		if !ok {
			return env, nast.Name{}, unboundError(Values, name)
		}
		env, n, err = env.bindAs(Values, name, id)
	} else {
		env, n, err = env.BindFresh(s.r.gen, Values, name)
	}
	if err != nil {
		return env, nast.Name{}, err
	}
	s.bound = append(s.bound, boundVar{name: name, id: n.ID})
	return env, n, nil
}

// constructor resolves C or M.C.
func (r *resolver) constructor(env Env, p ast.Path) (*nast.Name, nast.Name, error) {
	if !p.Qualified() {
		n, err := env.Lookup(Constructors, p.Name)
		return nil, n, err
	}
	mod, sig, err := r.module(*p.Module)
	if err != nil {
		return nil, nast.Name{}, err
	}
	n, err := sig.Lookup(Constructors, p.Name)
	if err != nil {
		return nil, nast.Name{}, err
	}
	return &mod, n, nil
}
