package ast

import "lumen/internal/source"

// Program is the ordered sequence of modules of one build.
type Program struct {
	Modules []*Module
}

// Module pairs a signature (Decls) with its implementation (Defs).
type Module struct {
	Name  Name
	Decls []Decl
	Defs  []Def
	Span  source.Span
}

// Decl is a signature item: *TypeDecl or *ValDecl.
type Decl interface {
	Loc() source.Span
	declNode()
}

// TypeDecl declares type Name with parameters Params ('a, 'b, ...).
type TypeDecl struct {
	Name   Name
	Params []Name
	Body   TypeBody
	Span   source.Span
}

// ValDecl declares a value and its type.
type ValDecl struct {
	Name Name
	Type TypeExpr
	Span source.Span
}

func (d *TypeDecl) Loc() source.Span { return d.Span }
func (d *ValDecl) Loc() source.Span  { return d.Span }

func (*TypeDecl) declNode() {}
func (*ValDecl) declNode()  {}

// TypeBody is the right-hand side of a type declaration.
type TypeBody interface {
	bodyNode()
}

// Variant is an algebraic type: A of t1 * t2 | B.
type Variant struct {
	Cases []Case
}

type Case struct {
	Name Name
	Args []TypeExpr
}

// Record is { f : t; ... }.
type Record struct {
	Fields []FieldDecl
}

type FieldDecl struct {
	Name Name
	Type TypeExpr
}

// Abbrev is type u = <type expression>.
type Abbrev struct {
	Type TypeExpr
}

// Opaque is a type declared without a body.
type Opaque struct{}

func (*Variant) bodyNode() {}
func (*Record) bodyNode()  {}
func (*Abbrev) bodyNode()  {}
func (*Opaque) bodyNode()  {}

// Def is a top-level definition: *Let, *LetRec, *ModuleAlias or *ValueAlias.
type Def interface {
	Loc() source.Span
	defNode()
}

// Binding is name p1 .. pn = body.
type Binding struct {
	Name   Name
	Params []Pattern
	Body   Expr
	Span   source.Span
}

type Let struct {
	Binding *Binding
}

type LetRec struct {
	Bindings []*Binding
	Span     source.Span
}

// ModuleAlias is module Name = Target.
type ModuleAlias struct {
	Name   Name
	Target Name
	Span   source.Span
}

// ValueAlias is alias Name = Target.
type ValueAlias struct {
	Name   Name
	Target Name
	Span   source.Span
}

func (d *Let) Loc() source.Span         { return d.Binding.Span }
func (d *LetRec) Loc() source.Span      { return d.Span }
func (d *ModuleAlias) Loc() source.Span { return d.Span }
func (d *ValueAlias) Loc() source.Span  { return d.Span }

func (*Let) defNode()         {}
func (*LetRec) defNode()      {}
func (*ModuleAlias) defNode() {}
func (*ValueAlias) defNode()  {}
