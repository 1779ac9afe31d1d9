package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
	"lumen/internal/token"
)

// parseModule parses
//
//	module M : sig decl* end = struct def* end
//	module M = struct def* end
func (p *Parser) parseModule() (*ast.Module, bool) {
	start := p.advance().Span // module
	name, ok := p.parseName(token.UIdent, "module name")
	if !ok {
		return nil, false
	}
	mod := &ast.Module{Name: name}

	if p.eat(token.Colon) {
		if _, ok := p.expect(token.KwSig, diag.SynExpectKeyword, "expected 'sig'"); !ok {
			return nil, false
		}
		for !p.atOr(token.KwEnd, token.EOF) {
			decls, ok := p.parseDecl()
			if !ok {
				return nil, false
			}
			mod.Decls = append(mod.Decls, decls...)
		}
		if _, ok := p.expect(token.KwEnd, diag.SynUnclosedDelimiter, "expected 'end' to close 'sig'"); !ok {
			return nil, false
		}
	}

	if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' before module body"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwStruct, diag.SynExpectKeyword, "expected 'struct'"); !ok {
		return nil, false
	}
	for !p.atOr(token.KwEnd, token.EOF) {
		def, ok := p.parseDef()
		if !ok {
			return nil, false
		}
		mod.Defs = append(mod.Defs, def)
	}
	if _, ok := p.expect(token.KwEnd, diag.SynUnclosedDelimiter, "expected 'end' to close 'struct'"); !ok {
		return nil, false
	}
	mod.Span = p.spanFrom(start)
	return mod, true
}

// parseDecl parses one signature item. A type group joined with 'and'
// yields one TypeDecl per member.
func (p *Parser) parseDecl() ([]ast.Decl, bool) {
	switch p.peek().Kind {
	case token.KwType:
		var out []ast.Decl
		for {
			start := p.advance().Span // type / and
			td, ok := p.parseTypeDecl()
			if !ok {
				return nil, false
			}
			td.Span = p.spanFrom(start)
			out = append(out, td)
			if !p.at(token.KwAnd) {
				return out, true
			}
		}
	case token.KwVal:
		start := p.advance().Span
		name, ok := p.parseName(token.Ident, "value name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after value name"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return []ast.Decl{&ast.ValDecl{Name: name, Type: ty, Span: p.spanFrom(start)}}, true
	}
	p.err(diag.SynUnexpectedToken, "expected 'type' or 'val' in signature, got "+p.describe())
	return nil, false
}

func (p *Parser) parseTypeDecl() (*ast.TypeDecl, bool) {
	td := &ast.TypeDecl{}
	switch {
	case p.at(token.TyVar):
		tok := p.advance()
		td.Params = []ast.Name{{Text: tok.Text, Span: tok.Span}}
	case p.at(token.LParen) && p.peekN(1).Kind == token.TyVar:
		p.advance()
		for {
			v, ok := p.parseName(token.TyVar, "type parameter")
			if !ok {
				return nil, false
			}
			td.Params = append(td.Params, v)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after type parameters"); !ok {
			return nil, false
		}
	}

	name, ok := p.parseName(token.Ident, "type name")
	if !ok {
		return nil, false
	}
	td.Name = name

	if !p.eat(token.Eq) {
		td.Body = &ast.Opaque{}
		return td, true
	}
	switch {
	case p.at(token.LBrace):
		td.Body, ok = p.parseRecordBody()
	case p.at(token.Pipe), p.at(token.UIdent) && p.peekN(1).Kind != token.Dot:
		td.Body, ok = p.parseVariantBody()
	default:
		var ty ast.TypeExpr
		ty, ok = p.parseType()
		td.Body = &ast.Abbrev{Type: ty}
	}
	return td, ok
}

func (p *Parser) parseVariantBody() (*ast.Variant, bool) {
	v := &ast.Variant{}
	p.eat(token.Pipe)
	for {
		name, ok := p.parseName(token.UIdent, "constructor name")
		if !ok {
			return nil, false
		}
		c := ast.Case{Name: name}
		if p.eat(token.KwOf) {
			for {
				arg, ok := p.parseAppType()
				if !ok {
					return nil, false
				}
				c.Args = append(c.Args, arg)
				if !p.eat(token.Star) {
					break
				}
			}
		}
		v.Cases = append(v.Cases, c)
		if !p.eat(token.Pipe) {
			return v, true
		}
	}
}

func (p *Parser) parseRecordBody() (*ast.Record, bool) {
	p.advance() // {
	r := &ast.Record{}
	for !p.at(token.RBrace) {
		name, ok := p.parseName(token.Ident, "field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		r.Fields = append(r.Fields, ast.FieldDecl{Name: name, Type: ty})
		if !p.eat(token.Semicolon) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close record type"); !ok {
		return nil, false
	}
	return r, true
}

// parseDef parses one module body item.
func (p *Parser) parseDef() (ast.Def, bool) {
	switch p.peek().Kind {
	case token.KwLet:
		start := p.advance().Span
		if p.eat(token.KwRec) {
			bs, ok := p.parseBindings()
			if !ok {
				return nil, false
			}
			return &ast.LetRec{Bindings: bs, Span: p.spanFrom(start)}, true
		}
		b, ok := p.parseBinding(start)
		if !ok {
			return nil, false
		}
		return &ast.Let{Binding: b}, true
	case token.KwModule:
		start := p.advance().Span
		name, ok := p.parseName(token.UIdent, "module name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in module alias"); !ok {
			return nil, false
		}
		target, ok := p.parseName(token.UIdent, "module name")
		if !ok {
			return nil, false
		}
		return &ast.ModuleAlias{Name: name, Target: target, Span: p.spanFrom(start)}, true
	case token.KwAlias:
		start := p.advance().Span
		name, ok := p.parseName(token.Ident, "value name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in value alias"); !ok {
			return nil, false
		}
		target, ok := p.parseName(token.Ident, "value name")
		if !ok {
			return nil, false
		}
		return &ast.ValueAlias{Name: name, Target: target, Span: p.spanFrom(start)}, true
	}
	p.err(diag.SynUnexpectedToken, "expected 'let', 'module' or 'alias' in module body, got "+p.describe())
	return nil, false
}

// parseBindings parses b1 and b2 and ... after 'let rec'.
func (p *Parser) parseBindings() ([]*ast.Binding, bool) {
	var out []*ast.Binding
	for {
		b, ok := p.parseBinding(p.peek().Span)
		if !ok {
			return nil, false
		}
		out = append(out, b)
		if !p.eat(token.KwAnd) {
			return out, true
		}
	}
}

// parseBinding parses name p1 .. pn = expr.
func (p *Parser) parseBinding(start source.Span) (*ast.Binding, bool) {
	name, ok := p.parseName(token.Ident, "binding name")
	if !ok {
		return nil, false
	}
	b := &ast.Binding{Name: name}
	for atPatternStart(p.peek().Kind) {
		pat, ok := p.parseAtomPattern()
		if !ok {
			return nil, false
		}
		b.Params = append(b.Params, pat)
	}
	if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in binding"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	b.Body = body
	b.Span = p.spanFrom(start)
	return b, true
}
