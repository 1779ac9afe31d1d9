package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/token"
)

func atPatternStart(k token.Kind) bool {
	switch k {
	case token.Underscore, token.Ident, token.UIdent, token.IntLit, token.FloatLit,
		token.StringLit, token.KwTrue, token.KwFalse, token.LParen, token.LBrace:
		return true
	}
	return false
}

// parsePattern parses p ('as' x)*, where p is an or-pattern of tuples.
func (p *Parser) parsePattern() (ast.Pattern, bool) {
	pat, ok := p.parseOrPattern()
	if !ok {
		return nil, false
	}
	for p.eat(token.KwAs) {
		name, ok := p.parseName(token.Ident, "name after 'as'")
		if !ok {
			return nil, false
		}
		pat = &ast.PAlias{Pat: pat, Name: name, Span: pat.Loc().Cover(name.Span)}
	}
	return pat, true
}

func (p *Parser) parseOrPattern() (ast.Pattern, bool) {
	left, ok := p.parseTuplePattern()
	if !ok {
		return nil, false
	}
	for p.eat(token.Pipe) {
		right, ok := p.parseTuplePattern()
		if !ok {
			return nil, false
		}
		left = &ast.POr{Left: left, Right: right, Span: left.Loc().Cover(right.Loc())}
	}
	return left, true
}

func (p *Parser) parseTuplePattern() (ast.Pattern, bool) {
	first, ok := p.parseConstrPattern()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	elems := []ast.Pattern{first}
	for p.eat(token.Comma) {
		next, ok := p.parseConstrPattern()
		if !ok {
			return nil, false
		}
		elems = append(elems, next)
	}
	return &ast.PTuple{Elems: elems, Span: first.Loc().Cover(p.lastSpan)}, true
}

// parseConstrPattern parses C p, M.C p or an atomic pattern.
func (p *Parser) parseConstrPattern() (ast.Pattern, bool) {
	if !p.at(token.UIdent) {
		return p.parseAtomPattern()
	}
	path, ok := p.parseConstrPath()
	if !ok {
		return nil, false
	}
	pc := &ast.PConstr{Path: path, Span: path.Span()}
	if atPatternStart(p.peek().Kind) {
		arg, ok := p.parseAtomPattern()
		if !ok {
			return nil, false
		}
		pc.Arg = arg
		pc.Span = pc.Span.Cover(arg.Loc())
	}
	return pc, true
}

// parseConstrPath parses C or M.C.
func (p *Parser) parseConstrPath() (ast.Path, bool) {
	first := p.advance()
	if p.at(token.Dot) && p.peekN(1).Kind == token.UIdent {
		p.advance()
		name := p.advance()
		return ast.Path{
			Module: &ast.Name{Text: first.Text, Span: first.Span},
			Name:   ast.Name{Text: name.Text, Span: name.Span},
		}, true
	}
	return ast.Path{Name: ast.Name{Text: first.Text, Span: first.Span}}, true
}

func (p *Parser) parseAtomPattern() (ast.Pattern, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Underscore:
		p.advance()
		return &ast.PWild{Span: tok.Span}, true
	case token.Ident:
		p.advance()
		return &ast.PVar{Name: ast.Name{Text: tok.Text, Span: tok.Span}}, true
	case token.UIdent:
		path, ok := p.parseConstrPath()
		if !ok {
			return nil, false
		}
		return &ast.PConstr{Path: path, Span: path.Span()}, true
	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse:
		return &ast.PLit{Lit: p.parseLiteral()}, true
	case token.LParen:
		start := p.advance().Span
		if p.at(token.RParen) {
			end := p.advance().Span
			return &ast.PLit{Lit: ast.Literal{Kind: ast.LitUnit, Text: "()", Span: start.Cover(end)}}, true
		}
		inner, ok := p.parsePattern()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close pattern"); !ok {
			return nil, false
		}
		if tup, isTuple := inner.(*ast.PTuple); isTuple {
			tup.Span = p.spanFrom(start)
		}
		return inner, true
	case token.LBrace:
		return p.parseRecordPattern()
	}
	p.err(diag.SynExpectPattern, "expected pattern, got "+p.describe())
	return nil, false
}

func (p *Parser) parseRecordPattern() (ast.Pattern, bool) {
	start := p.advance().Span // {
	rp := &ast.PRecord{}
	for !p.at(token.RBrace) {
		name, ok := p.parseName(token.Ident, "field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' after field name"); !ok {
			return nil, false
		}
		pat, ok := p.parsePattern()
		if !ok {
			return nil, false
		}
		rp.Fields = append(rp.Fields, ast.PField{Name: name, Pat: pat})
		if !p.eat(token.Semicolon) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close record pattern"); !ok {
		return nil, false
	}
	rp.Span = p.spanFrom(start)
	return rp, true
}

func (p *Parser) parseLiteral() ast.Literal {
	tok := p.advance()
	lit := ast.Literal{Text: tok.Text, Span: tok.Span}
	switch tok.Kind {
	case token.IntLit:
		lit.Kind = ast.LitInt
	case token.FloatLit:
		lit.Kind = ast.LitFloat
	case token.StringLit:
		lit.Kind = ast.LitString
	case token.KwTrue, token.KwFalse:
		lit.Kind = ast.LitBool
	}
	return lit
}
