package ast

import "lumen/internal/source"

// Pattern is a binding pattern.
type Pattern interface {
	Loc() source.Span
	patternNode()
}

type PWild struct {
	Span source.Span
}

// PVar binds a value name.
type PVar struct {
	Name Name
}

type PLit struct {
	Lit Literal
}

type PTuple struct {
	Elems []Pattern
	Span  source.Span
}

// PConstr matches a constructor; Arg is nil for constant constructors.
type PConstr struct {
	Path Path
	Arg  Pattern
	Span source.Span
}

type PField struct {
	Name Name
	Pat  Pattern
}

type PRecord struct {
	Fields []PField
	Span   source.Span
}

// POr is Left | Right; both sides must bind the same names.
type POr struct {
	Left  Pattern
	Right Pattern
	Span  source.Span
}

// PAlias is Pat as Name.
type PAlias struct {
	Pat  Pattern
	Name Name
	Span source.Span
}

func (p *PWild) Loc() source.Span   { return p.Span }
func (p *PVar) Loc() source.Span    { return p.Name.Span }
func (p *PLit) Loc() source.Span    { return p.Lit.Span }
func (p *PTuple) Loc() source.Span  { return p.Span }
func (p *PConstr) Loc() source.Span { return p.Span }
func (p *PRecord) Loc() source.Span { return p.Span }
func (p *POr) Loc() source.Span     { return p.Span }
func (p *PAlias) Loc() source.Span  { return p.Span }

func (*PWild) patternNode()   {}
func (*PVar) patternNode()    {}
func (*PLit) patternNode()    {}
func (*PTuple) patternNode()  {}
func (*PConstr) patternNode() {}
func (*PRecord) patternNode() {}
func (*POr) patternNode()     {}
func (*PAlias) patternNode()  {}
