package ast

import "lumen/internal/source"

// TypeExpr is a type expression.
type TypeExpr interface {
	Loc() source.Span
	typeNode()
}

// TVar is a type variable; Name.Text keeps the leading quote ('a).
type TVar struct {
	Name Name
}

// TName is a named type, possibly qualified (M.t).
type TName struct {
	Path Path
}

// TApp is a type constructor application: 'a t, ('a, b) M.t.
type TApp struct {
	Args []TypeExpr
	Con  Path
	Span source.Span
}

// TTuple is t1 * t2 * ...
type TTuple struct {
	Elems []TypeExpr
	Span  source.Span
}

// TArrow is Param -> Result.
type TArrow struct {
	Param  TypeExpr
	Result TypeExpr
	Span   source.Span
}

func (t *TVar) Loc() source.Span   { return t.Name.Span }
func (t *TName) Loc() source.Span  { return t.Path.Span() }
func (t *TApp) Loc() source.Span   { return t.Span }
func (t *TTuple) Loc() source.Span { return t.Span }
func (t *TArrow) Loc() source.Span { return t.Span }

func (*TVar) typeNode()   {}
func (*TName) typeNode()  {}
func (*TApp) typeNode()   {}
func (*TTuple) typeNode() {}
func (*TArrow) typeNode() {}
