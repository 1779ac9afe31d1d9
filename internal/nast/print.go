package nast

import (
	"fmt"
	"io"
	"strings"
)

// Print renders p in a deterministic ML-like form. Every name is printed as
// text/stamp, externals as Module/stamp.name/stamp, and compound
// expressions are fully parenthesised.
func Print(p *Program) string {
	var b strings.Builder
	for i, m := range p.Modules {
		if i > 0 {
			b.WriteByte('\n')
		}
		printModule(&b, m)
	}
	return b.String()
}

// Fprint writes Print(p) to w.
func Fprint(w io.Writer, p *Program) error {
	_, err := io.WriteString(w, Print(p))
	return err
}

func printModule(b *strings.Builder, m *Module) {
	fmt.Fprintf(b, "module %s : sig\n", m.Name)
	for _, d := range m.Decls {
		b.WriteString("  ")
		writeDecl(b, d)
		b.WriteByte('\n')
	}
	b.WriteString("end = struct\n")
	for _, d := range m.Defs {
		b.WriteString("  ")
		writeDef(b, d)
		b.WriteByte('\n')
	}
	b.WriteString("end\n")
}

func writeDecl(b *strings.Builder, d Decl) {
	switch d := d.(type) {
	case *TypeDecl:
		b.WriteString("type ")
		if len(d.Params) > 0 {
			b.WriteByte('(')
			for i, p := range d.Params {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(p.String())
			}
			b.WriteString(") ")
		}
		b.WriteString(d.Name.String())
		writeTypeBody(b, d.Body)
	case *ValDecl:
		fmt.Fprintf(b, "val %s : ", d.Name)
		writeType(b, d.Type)
	}
}

func writeTypeBody(b *strings.Builder, body TypeBody) {
	switch body := body.(type) {
	case *Variant:
		b.WriteString(" =")
		for i, c := range body.Cases {
			if i > 0 {
				b.WriteString(" |")
			}
			b.WriteByte(' ')
			b.WriteString(c.Name.String())
			if len(c.Args) > 0 {
				b.WriteString(" of ")
				for j, a := range c.Args {
					if j > 0 {
						b.WriteString(" * ")
					}
					writeType(b, a)
				}
			}
		}
	case *Record:
		b.WriteString(" = {")
		for i, f := range body.Fields {
			if i > 0 {
				b.WriteByte(';')
			}
			fmt.Fprintf(b, " %s : ", f.Name)
			writeType(b, f.Type)
		}
		b.WriteString(" }")
	case *Abbrev:
		b.WriteString(" = ")
		writeType(b, body.Type)
	case *Opaque:
	}
}

func writeType(b *strings.Builder, t TypeExpr) {
	switch t := t.(type) {
	case *TVar:
		b.WriteString(t.Name.String())
	case *TName:
		writeQualified(b, t.Module, t.Name)
	case *TApp:
		b.WriteByte('(')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, a)
		}
		b.WriteString(") ")
		writeType(b, t.Con)
	case *TTuple:
		b.WriteByte('(')
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(" * ")
			}
			writeType(b, e)
		}
		b.WriteByte(')')
	case *TArrow:
		b.WriteByte('(')
		writeType(b, t.Param)
		b.WriteString(" -> ")
		writeType(b, t.Result)
		b.WriteByte(')')
	}
}

func writeQualified(b *strings.Builder, module *Name, name Name) {
	if module != nil {
		b.WriteString(module.String())
		b.WriteByte('.')
	}
	b.WriteString(name.String())
}

func writeDef(b *strings.Builder, d Def) {
	switch d := d.(type) {
	case *Let:
		b.WriteString("let ")
		writeBinding(b, d.Binding)
	case *LetRec:
		b.WriteString("let rec ")
		writeBindings(b, d.Bindings)
	case *ModuleAlias:
		fmt.Fprintf(b, "module %s = %s", d.Name, d.Target)
	case *ValueAlias:
		fmt.Fprintf(b, "alias %s = %s", d.Name, d.Target)
	}
}

func writeBindings(b *strings.Builder, bs []*Binding) {
	for i, bind := range bs {
		if i > 0 {
			b.WriteString(" and ")
		}
		writeBinding(b, bind)
	}
}

func writeBinding(b *strings.Builder, bind *Binding) {
	b.WriteString(bind.Name.String())
	for _, p := range bind.Params {
		b.WriteByte(' ')
		writePattern(b, p)
	}
	b.WriteString(" = ")
	writeExpr(b, bind.Body)
}

func writePattern(b *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *PWild:
		b.WriteByte('_')
	case *PVar:
		b.WriteString(p.Name.String())
	case *PLit:
		b.WriteString(p.Lit.Text)
	case *PTuple:
		b.WriteByte('(')
		for i, e := range p.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writePattern(b, e)
		}
		b.WriteByte(')')
	case *PConstr:
		if p.Arg == nil {
			writeQualified(b, p.Module, p.Name)
			return
		}
		b.WriteByte('(')
		writeQualified(b, p.Module, p.Name)
		b.WriteByte(' ')
		writePattern(b, p.Arg)
		b.WriteByte(')')
	case *PRecord:
		b.WriteByte('{')
		for i, f := range p.Fields {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(b, "%s = ", f.Name)
			writePattern(b, f.Pat)
		}
		b.WriteByte('}')
	case *POr:
		b.WriteByte('(')
		writePattern(b, p.Left)
		b.WriteString(" | ")
		writePattern(b, p.Right)
		b.WriteByte(')')
	case *PAlias:
		b.WriteByte('(')
		writePattern(b, p.Pat)
		fmt.Fprintf(b, " as %s)", p.Name)
	}
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *EVar:
		b.WriteString(e.Name.String())
	case *External:
		fmt.Fprintf(b, "%s.%s", e.Module, e.Name)
	case *ELit:
		b.WriteString(e.Lit.Text)
	case *EConstr:
		if e.Arg == nil {
			writeQualified(b, e.Module, e.Name)
			return
		}
		b.WriteByte('(')
		writeQualified(b, e.Module, e.Name)
		b.WriteByte(' ')
		writeExpr(b, e.Arg)
		b.WriteByte(')')
	case *ETuple:
		b.WriteByte('(')
		for i, x := range e.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, x)
		}
		b.WriteByte(')')
	case *ERecord:
		b.WriteByte('{')
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(b, "%s = ", f.Name)
			writeExpr(b, f.Value)
		}
		b.WriteByte('}')
	case *EField:
		writeExpr(b, e.Expr)
		fmt.Fprintf(b, ".%s", e.Field)
	case *EApp:
		b.WriteByte('(')
		writeExpr(b, e.Fn)
		for _, a := range e.Args {
			b.WriteByte(' ')
			writeExpr(b, a)
		}
		b.WriteByte(')')
	case *EFun:
		b.WriteString("(fun")
		for _, p := range e.Params {
			b.WriteByte(' ')
			writePattern(b, p)
		}
		b.WriteString(" -> ")
		writeExpr(b, e.Body)
		b.WriteByte(')')
	case *ELet:
		b.WriteString("(let ")
		writePattern(b, e.Pat)
		for _, p := range e.Params {
			b.WriteByte(' ')
			writePattern(b, p)
		}
		b.WriteString(" = ")
		writeExpr(b, e.Value)
		b.WriteString(" in ")
		writeExpr(b, e.Body)
		b.WriteByte(')')
	case *ELetRec:
		b.WriteString("(let rec ")
		writeBindings(b, e.Bindings)
		b.WriteString(" in ")
		writeExpr(b, e.Body)
		b.WriteByte(')')
	case *EMatch:
		b.WriteString("(match ")
		writeExpr(b, e.Scrutinee)
		b.WriteString(" with")
		for i, arm := range e.Arms {
			if i > 0 {
				b.WriteString(" |")
			}
			b.WriteByte(' ')
			writePattern(b, arm.Pat)
			b.WriteString(" -> ")
			writeExpr(b, arm.Body)
		}
		b.WriteByte(')')
	case *EIf:
		b.WriteString("(if ")
		writeExpr(b, e.Cond)
		b.WriteString(" then ")
		writeExpr(b, e.Then)
		b.WriteString(" else ")
		writeExpr(b, e.Else)
		b.WriteByte(')')
	case *EBinary:
		b.WriteByte('(')
		writeExpr(b, e.Left)
		fmt.Fprintf(b, " %s ", e.Op)
		writeExpr(b, e.Right)
		b.WriteByte(')')
	case *EUnary:
		fmt.Fprintf(b, "(%s ", e.Op)
		writeExpr(b, e.Operand)
		b.WriteByte(')')
	case *ESeq:
		b.WriteByte('(')
		writeExpr(b, e.First)
		b.WriteString("; ")
		writeExpr(b, e.Second)
		b.WriteByte(')')
	}
}
