package naming

import (
	"sort"

	"lumen/internal/ast"
	"lumen/internal/ident"
	"lumen/internal/nast"
	"lumen/internal/source"
)

// Namespace selects one of the independent name tables of an Env.
type Namespace uint8

const (
	Values Namespace = iota
	Fields
	Types
	TypeVars
	Constructors

	numNamespaces

	// Modules is not an Env table; it tags errors about module names.
	Modules = numNamespaces
)

func (ns Namespace) String() string {
	switch ns {
	case Values:
		return "value"
	case Fields:
		return "field"
	case Types:
		return "type"
	case TypeVars:
		return "type variable"
	case Constructors:
		return "constructor"
	case Modules:
		return "module"
	default:
		return "namespace(?)"
	}
}

// EnvNamespaces lists the Env tables in a stable order.
var EnvNamespaces = [...]Namespace{Values, Fields, Types, TypeVars, Constructors}

// Binding is what an Env maps a surface name to.
type Binding struct {
	ID   ident.Ident
	Span source.Span

	group uint32
}

// Env is an immutable multi-namespace environment. Every Bind* returns a
// new Env; the receiver stays valid and unchanged. The zero Env is empty.
//
// Names are bound in binding groups. A name may be rebound freely in a
// nested group (shadowing) but only once per group.
type Env struct {
	tables [numNamespaces]*pmap[string, Binding]
	group  uint32
}

// Nested returns e with a new, empty binding group opened.
func (e Env) Nested() Env {
	e.group++
	return e
}

func (e Env) TryLookup(ns Namespace, name string) (Binding, bool) {
	return e.tables[ns].Get(name)
}

// Lookup resolves an occurrence of name, keeping the occurrence's span.
func (e Env) Lookup(ns Namespace, name ast.Name) (nast.Name, error) {
	b, ok := e.tables[ns].Get(name.Text)
	if !ok {
		return nast.Name{}, unboundError(ns, name)
	}
	return nast.Name{ID: b.ID, Span: name.Span}, nil
}

// BindFresh mints a new symbol for name and binds it in the current group.
// Nothing is minted when name is already bound in that group.
func (e Env) BindFresh(gen *ident.Generator, ns Namespace, name ast.Name) (Env, nast.Name, error) {
	if err := e.checkFree(ns, name); err != nil {
		return e, nast.Name{}, err
	}
	id := gen.Fresh(name.Text)
	return e.BindExisting(ns, name.Text, id, name.Span), nast.Name{ID: id, Span: name.Span}, nil
}

// BindExisting binds name to an already minted symbol, replacing whatever
// name was bound to.
func (e Env) BindExisting(ns Namespace, name string, id ident.Ident, span source.Span) Env {
	e.tables[ns] = e.tables[ns].Set(name, Binding{ID: id, Span: span, group: e.group})
	return e
}

// bindAs is BindExisting with the same-group check of BindFresh.
func (e Env) bindAs(ns Namespace, name ast.Name, id ident.Ident) (Env, nast.Name, error) {
	if err := e.checkFree(ns, name); err != nil {
		return e, nast.Name{}, err
	}
	return e.BindExisting(ns, name.Text, id, name.Span), nast.Name{ID: id, Span: name.Span}, nil
}

func (e Env) checkFree(ns Namespace, name ast.Name) error {
	if prev, ok := e.tables[ns].Get(name.Text); ok && prev.group == e.group {
		return &Error{
			Kind:      MultipleDefinition,
			Namespace: ns,
			Name:      name.Text,
			Span:      name.Span,
			Prev:      prev.Span,
		}
	}
	return nil
}

// Len reports how many names are bound in ns.
func (e Env) Len(ns Namespace) int {
	return e.tables[ns].Len()
}

// Names returns the names bound in ns, sorted.
func (e Env) Names(ns Namespace) []string {
	names := make([]string, 0, e.tables[ns].Len())
	e.tables[ns].Range(func(name string, _ Binding) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Each calls fn for every binding in ns in name order.
func (e Env) Each(ns Namespace, fn func(name string, b Binding)) {
	for _, name := range e.Names(ns) {
		b, _ := e.tables[ns].Get(name)
		fn(name, b)
	}
}

// PrimitiveTypes are bound in every module's Types table.
var PrimitiveTypes = [...]string{"int8", "int16", "int32", "int64", "bool", "float", "double"}

// Primitives mints the primitive types once and returns the Env binding
// them. Primitive bindings have no source span.
func Primitives(gen *ident.Generator) Env {
	var env Env
	for _, name := range PrimitiveTypes {
		env = env.BindExisting(Types, name, gen.Fresh(name), source.Span{})
	}
	return env
}
