// Package nast defines the resolved ("named") tree emitted by the naming
// phase. Its shape mirrors package ast, except that every identifier
// occurrence is a Name carrying a unique ident.Ident, and qualified value
// references are reified as External nodes.
package nast

import (
	"lumen/internal/ast"
	"lumen/internal/ident"
	"lumen/internal/source"
)

// Name is a resolved identifier occurrence.
type Name struct {
	ID   ident.Ident
	Span source.Span
}

func (n Name) String() string { return n.ID.String() }

type Program struct {
	Modules []*Module
}

type Module struct {
	Name  Name
	Decls []Decl
	Defs  []Def
	Span  source.Span
}

type Decl interface{ declNode() }

type TypeDecl struct {
	Name   Name
	Params []Name
	Body   TypeBody
	Span   source.Span
}

type ValDecl struct {
	Name Name
	Type TypeExpr
	Span source.Span
}

func (*TypeDecl) declNode() {}
func (*ValDecl) declNode()  {}

type TypeBody interface{ bodyNode() }

type Variant struct{ Cases []Case }

type Case struct {
	Name Name
	Args []TypeExpr
}

type Record struct{ Fields []FieldDecl }

type FieldDecl struct {
	Name Name
	Type TypeExpr
}

type Abbrev struct{ Type TypeExpr }

type Opaque struct{}

func (*Variant) bodyNode() {}
func (*Record) bodyNode()  {}
func (*Abbrev) bodyNode()  {}
func (*Opaque) bodyNode()  {}

type Def interface{ defNode() }

type Binding struct {
	Name   Name
	Params []Pattern
	Body   Expr
	Span   source.Span
}

type Let struct{ Binding *Binding }

type LetRec struct {
	Bindings []*Binding
	Span     source.Span
}

// ModuleAlias records the freshly minted module Name and the module it
// re-exports.
type ModuleAlias struct {
	Name   Name
	Target Name
	Span   source.Span
}

// ValueAlias shares Target's symbol: Name.ID has Target's stamp but keeps
// the alias text for printing.
type ValueAlias struct {
	Name   Name
	Target Name
	Span   source.Span
}

func (*Let) defNode()         {}
func (*LetRec) defNode()      {}
func (*ModuleAlias) defNode() {}
func (*ValueAlias) defNode()  {}

type TypeExpr interface{ typeNode() }

type TVar struct{ Name Name }

// TName is a named type; Module is set for qualified references.
type TName struct {
	Module *Name
	Name   Name
}

type TApp struct {
	Args []TypeExpr
	Con  *TName
	Span source.Span
}

type TTuple struct {
	Elems []TypeExpr
	Span  source.Span
}

type TArrow struct {
	Param  TypeExpr
	Result TypeExpr
	Span   source.Span
}

func (*TVar) typeNode()   {}
func (*TName) typeNode()  {}
func (*TApp) typeNode()   {}
func (*TTuple) typeNode() {}
func (*TArrow) typeNode() {}

// Literal is carried over from the surface tree unchanged.
type Literal = ast.Literal

type Pattern interface{ patternNode() }

type PWild struct{ Span source.Span }

type PVar struct{ Name Name }

type PLit struct{ Lit Literal }

type PTuple struct {
	Elems []Pattern
	Span  source.Span
}

type PConstr struct {
	Module *Name
	Name   Name
	Arg    Pattern
	Span   source.Span
}

type PField struct {
	Name Name
	Pat  Pattern
}

type PRecord struct {
	Fields []PField
	Span   source.Span
}

type POr struct {
	Left  Pattern
	Right Pattern
	Span  source.Span
}

type PAlias struct {
	Pat  Pattern
	Name Name
	Span source.Span
}

func (*PWild) patternNode()   {}
func (*PVar) patternNode()    {}
func (*PLit) patternNode()    {}
func (*PTuple) patternNode()  {}
func (*PConstr) patternNode() {}
func (*PRecord) patternNode() {}
func (*POr) patternNode()     {}
func (*PAlias) patternNode()  {}

type Expr interface{ exprNode() }

// EVar references a binding of the current module.
type EVar struct{ Name Name }

// External references value Name exported by module Module.
type External struct {
	Module Name
	Name   Name
}

type ELit struct{ Lit Literal }

type EConstr struct {
	Module *Name
	Name   Name
	Arg    Expr
	Span   source.Span
}

type ETuple struct {
	Elems []Expr
	Span  source.Span
}

type RecordField struct {
	Name  Name
	Value Expr
}

type ERecord struct {
	Fields []RecordField
	Span   source.Span
}

type EField struct {
	Expr  Expr
	Field Name
	Span  source.Span
}

type EApp struct {
	Fn   Expr
	Args []Expr
	Span source.Span
}

type EFun struct {
	Params []Pattern
	Body   Expr
	Span   source.Span
}

type ELet struct {
	Pat    Pattern
	Params []Pattern
	Value  Expr
	Body   Expr
	Span   source.Span
}

type ELetRec struct {
	Bindings []*Binding
	Body     Expr
	Span     source.Span
}

type Arm struct {
	Pat  Pattern
	Body Expr
}

type EMatch struct {
	Scrutinee Expr
	Arms      []Arm
	Span      source.Span
}

type EIf struct {
	Cond Expr
	Then Expr
	Else Expr
	Span source.Span
}

type EBinary struct {
	Op    ast.BinOp
	Left  Expr
	Right Expr
	Span  source.Span
}

type EUnary struct {
	Op      ast.UnOp
	Operand Expr
	Span    source.Span
}

type ESeq struct {
	First  Expr
	Second Expr
	Span   source.Span
}

func (*EVar) exprNode()     {}
func (*External) exprNode() {}
func (*ELit) exprNode()     {}
func (*EConstr) exprNode()  {}
func (*ETuple) exprNode()   {}
func (*ERecord) exprNode()  {}
func (*EField) exprNode()   {}
func (*EApp) exprNode()     {}
func (*EFun) exprNode()     {}
func (*ELet) exprNode()     {}
func (*ELetRec) exprNode()  {}
func (*EMatch) exprNode()   {}
func (*EIf) exprNode()      {}
func (*EBinary) exprNode()  {}
func (*EUnary) exprNode()   {}
func (*ESeq) exprNode()     {}
