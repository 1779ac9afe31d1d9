package ast

import "lumen/internal/source"

// Expr is an expression.
type Expr interface {
	Loc() source.Span
	exprNode()
}

// EVar is a value occurrence, possibly qualified.
type EVar struct {
	Path Path
}

type ELit struct {
	Lit Literal
}

// EConstr applies a constructor; Arg is nil for constant constructors.
type EConstr struct {
	Path Path
	Arg  Expr
	Span source.Span
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

// EField is field projection Expr.Field.
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

// ELet is either let Pat = Value in Body, or, when Params is non-empty,
// the function form let f p1 .. pn = Value in Body with Pat a *PVar.
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
	Span source.Span
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
	Op    BinOp
	Left  Expr
	Right Expr
	Span  source.Span
}

type EUnary struct {
	Op      UnOp
	Operand Expr
	Span    source.Span
}

// ESeq is First; Second.
type ESeq struct {
	First  Expr
	Second Expr
	Span   source.Span
}

func (e *EVar) Loc() source.Span    { return e.Path.Span() }
func (e *ELit) Loc() source.Span    { return e.Lit.Span }
func (e *EConstr) Loc() source.Span { return e.Span }
func (e *ETuple) Loc() source.Span  { return e.Span }
func (e *ERecord) Loc() source.Span { return e.Span }
func (e *EField) Loc() source.Span  { return e.Span }
func (e *EApp) Loc() source.Span    { return e.Span }
func (e *EFun) Loc() source.Span    { return e.Span }
func (e *ELet) Loc() source.Span    { return e.Span }
func (e *ELetRec) Loc() source.Span { return e.Span }
func (e *EMatch) Loc() source.Span  { return e.Span }
func (e *EIf) Loc() source.Span     { return e.Span }
func (e *EBinary) Loc() source.Span { return e.Span }
func (e *EUnary) Loc() source.Span  { return e.Span }
func (e *ESeq) Loc() source.Span    { return e.Span }

func (*EVar) exprNode()    {}
func (*ELit) exprNode()    {}
func (*EConstr) exprNode() {}
func (*ETuple) exprNode()  {}
func (*ERecord) exprNode() {}
func (*EField) exprNode()  {}
func (*EApp) exprNode()    {}
func (*EFun) exprNode()    {}
func (*ELet) exprNode()    {}
func (*ELetRec) exprNode() {}
func (*EMatch) exprNode()  {}
func (*EIf) exprNode()     {}
func (*EBinary) exprNode() {}
func (*EUnary) exprNode()  {}
func (*ESeq) exprNode()    {}
