package ast

import "lumen/internal/source"

type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
	LitUnit
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	case LitUnit:
		return "unit"
	}
	return "?"
}

// Literal keeps the literal's source text; values are not evaluated here.
type Literal struct {
	Kind LitKind
	Text string
	Span source.Span
}
