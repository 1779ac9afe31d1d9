package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/token"
)

// parseType parses t1 -> t2 (right associative) over tuple types.
func (p *Parser) parseType() (ast.TypeExpr, bool) {
	left, ok := p.parseTupleType()
	if !ok {
		return nil, false
	}
	if !p.eat(token.Arrow) {
		return left, true
	}
	right, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return &ast.TArrow{Param: left, Result: right, Span: left.Loc().Cover(right.Loc())}, true
}

func (p *Parser) parseTupleType() (ast.TypeExpr, bool) {
	first, ok := p.parseAppType()
	if !ok {
		return nil, false
	}
	if !p.at(token.Star) {
		return first, true
	}
	elems := []ast.TypeExpr{first}
	for p.eat(token.Star) {
		next, ok := p.parseAppType()
		if !ok {
			return nil, false
		}
		elems = append(elems, next)
	}
	return &ast.TTuple{Elems: elems, Span: first.Loc().Cover(p.lastSpan)}, true
}

// parseAppType parses an atomic type followed by postfix constructor
// applications: 'a list, int32 M.t, ('a, 'b) pair.
func (p *Parser) parseAppType() (ast.TypeExpr, bool) {
	start := p.peek().Span
	var args []ast.TypeExpr
	var cur ast.TypeExpr

	switch p.peek().Kind {
	case token.TyVar:
		tok := p.advance()
		cur = &ast.TVar{Name: ast.Name{Text: tok.Text, Span: tok.Span}}
	case token.Ident, token.UIdent:
		path, ok := p.parseTypePath()
		if !ok {
			return nil, false
		}
		cur = &ast.TName{Path: path}
	case token.LParen:
		p.advance()
		first, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = []ast.TypeExpr{first}
		for p.eat(token.Comma) {
			next, ok := p.parseType()
			if !ok {
				return nil, false
			}
			args = append(args, next)
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' in type"); !ok {
			return nil, false
		}
		if len(args) == 1 {
			cur, args = first, nil
		} else if !atTypeConStart(p) {
			p.err(diag.SynExpectType, "expected type constructor after parenthesised type arguments, got "+p.describe())
			return nil, false
		}
	default:
		p.err(diag.SynExpectType, "expected type, got "+p.describe())
		return nil, false
	}

	for atTypeConStart(p) {
		con, ok := p.parseTypePath()
		if !ok {
			return nil, false
		}
		if cur != nil {
			args = []ast.TypeExpr{cur}
		}
		cur = &ast.TApp{Args: args, Con: con, Span: start.Cover(p.lastSpan)}
		args = nil
	}
	return cur, true
}

func atTypeConStart(p *Parser) bool {
	switch p.peek().Kind {
	case token.Ident:
		return true
	case token.UIdent:
		return p.peekN(1).Kind == token.Dot && p.peekN(2).Kind == token.Ident
	}
	return false
}

// parseTypePath parses t or M.t.
func (p *Parser) parseTypePath() (ast.Path, bool) {
	if p.at(token.UIdent) {
		mod := p.advance()
		if _, ok := p.expect(token.Dot, diag.SynExpectType, "expected '.' after module name in type"); !ok {
			return ast.Path{}, false
		}
		name, ok := p.parseName(token.Ident, "type name")
		if !ok {
			return ast.Path{}, false
		}
		return ast.Path{Module: &ast.Name{Text: mod.Text, Span: mod.Span}, Name: name}, true
	}
	name, ok := p.parseName(token.Ident, "type name")
	return ast.Path{Name: name}, ok
}
