package naming

import (
	"slices"

	"lumen/internal/ast"
	"lumen/internal/ident"
	"lumen/internal/nast"
	"lumen/internal/source"
)

// ModuleInfo describes one entry of the module table.
type ModuleInfo struct {
	Name string
	ID   ident.Ident
	Span source.Span
	// AliasOf is the module this entry re-exports; invalid for real modules.
	AliasOf ident.Ident
}

// Global is the immutable module signature table: module symbol to
// exported Env, and surface module name to module entry. Registration
// returns a new *Global. A surface name is registered at most once.
type Global struct {
	sigs    *pmap[uint64, *Env]
	modules *pmap[string, ModuleInfo]
	order   []string
}

func NewGlobal() *Global {
	return &Global{}
}

func (g *Global) register(info ModuleInfo, sig *Env) *Global {
	return &Global{
		sigs:    g.sigs.Set(info.ID.Stamp, sig),
		modules: g.modules.Set(info.Name, info),
		order:   append(slices.Clip(g.order), info.Name),
	}
}

// ResolveModule resolves a surface module name.
func (g *Global) ResolveModule(name ast.Name) (nast.Name, error) {
	info, ok := g.modules.Get(name.Text)
	if !ok {
		return nast.Name{}, unboundError(Modules, name)
	}
	return nast.Name{ID: info.ID, Span: name.Span}, nil
}

// SignatureOf returns the Env exported by module id. Callers must not
// modify it; Env values are immutable anyway.
func (g *Global) SignatureOf(id ident.Ident) (*Env, bool) {
	return g.sigs.Get(id.Stamp)
}

// Lookup returns the entry for a surface module name.
func (g *Global) Lookup(name string) (ModuleInfo, bool) {
	return g.modules.Get(name)
}

// Modules lists every registered module, aliases included, in
// registration order.
func (g *Global) Modules() []ModuleInfo {
	out := make([]ModuleInfo, 0, len(g.order))
	for _, name := range g.order {
		info, _ := g.modules.Get(name)
		out = append(out, info)
	}
	return out
}

// AliasModule registers newName as another name for the module existing
// denotes. It returns the new table, the alias symbol and the resolved
// target.
func (g *Global) AliasModule(gen *ident.Generator, newName, existing ast.Name) (*Global, nast.Name, nast.Name, error) {
	target, err := g.ResolveModule(existing)
	if err != nil {
		return g, nast.Name{}, nast.Name{}, err
	}
	if prev, ok := g.modules.Get(newName.Text); ok {
		return g, nast.Name{}, nast.Name{}, &Error{
			Kind:      MultipleDefinition,
			Namespace: Modules,
			Name:      newName.Text,
			Span:      newName.Span,
			Prev:      prev.Span,
		}
	}
	sig, _ := g.SignatureOf(target.ID)
	id := gen.Fresh(newName.Text)
	info := ModuleInfo{Name: newName.Text, ID: id, Span: newName.Span, AliasOf: target.ID}
	return g.register(info, sig), nast.Name{ID: id, Span: newName.Span}, target, nil
}

// BuildSignatures mints the exported names of every module of prog, in
// input order, from the declarations alone.
func BuildSignatures(gen *ident.Generator, prog *ast.Program) (*Global, error) {
	g := NewGlobal()
	for _, m := range prog.Modules {
		if prev, ok := g.modules.Get(m.Name.Text); ok {
			return nil, &Error{
				Kind:      MultipleDefinition,
				Namespace: Modules,
				Name:      m.Name.Text,
				Span:      m.Name.Span,
				Prev:      prev.Span,
			}
		}
		sig, err := buildSignature(gen, m)
		if err != nil {
			return nil, err
		}
		id := gen.Fresh(m.Name.Text)
		g = g.register(ModuleInfo{Name: m.Name.Text, ID: id, Span: m.Name.Span}, &sig)
	}
	return g, nil
}

// buildSignature binds type names first, then constructors and fields,
// then values, all in one binding group.
func buildSignature(gen *ident.Generator, m *ast.Module) (Env, error) {
	env := Env{}.Nested()
	var err error

	for _, d := range m.Decls {
		if td, ok := d.(*ast.TypeDecl); ok {
			if env, _, err = env.BindFresh(gen, Types, td.Name); err != nil {
				return env, err
			}
		}
	}
	for _, d := range m.Decls {
		td, ok := d.(*ast.TypeDecl)
		if !ok {
			continue
		}
		switch body := td.Body.(type) {
		case *ast.Variant:
			for _, c := range body.Cases {
				if env, _, err = env.BindFresh(gen, Constructors, c.Name); err != nil {
					return env, err
				}
			}
		case *ast.Record:
			for _, f := range body.Fields {
				if env, _, err = env.BindFresh(gen, Fields, f.Name); err != nil {
					return env, err
				}
			}
		}
	}
	for _, d := range m.Decls {
		if vd, ok := d.(*ast.ValDecl); ok {
			if env, _, err = env.BindFresh(gen, Values, vd.Name); err != nil {
				return env, err
			}
		}
	}
	return env, nil
}
