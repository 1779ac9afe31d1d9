package ast

import "lumen/internal/source"

// Name is a single identifier occurrence.
type Name struct {
	Text string
	Span source.Span
}

// Path is an optionally module-qualified name: x or M.x.
type Path struct {
	Module *Name
	Name   Name
}

func (p Path) Qualified() bool { return p.Module != nil }

func (p Path) Span() source.Span {
	if p.Module != nil {
		return p.Module.Span.Cover(p.Name.Span)
	}
	return p.Name.Span
}

func (p Path) String() string {
	if p.Module != nil {
		return p.Module.Text + "." + p.Name.Text
	}
	return p.Name.Text
}
