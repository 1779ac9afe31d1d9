package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/token"
)

// parseExpr parses a sequence e1; e2 (right associative).
func (p *Parser) parseExpr() (ast.Expr, bool) {
	first, ok := p.parseExprNoSeq()
	if !ok {
		return nil, false
	}
	if !p.eat(token.Semicolon) {
		return first, true
	}
	rest, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.ESeq{First: first, Second: rest, Span: first.Loc().Cover(rest.Loc())}, true
}

// parseExprNoSeq parses an expression that does not contain a top-level ';'.
func (p *Parser) parseExprNoSeq() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLetExpr()
	case token.KwFun:
		return p.parseFunExpr()
	case token.KwMatch:
		return p.parseMatchExpr()
	case token.KwIf:
		return p.parseIfExpr()
	}
	return p.parseBinary(0)
}

type binLevel struct {
	ops map[token.Kind]ast.BinOp
}

// binLevels lists binary operators from loosest to tightest; all are left
// associative.
var binLevels = []binLevel{
	{ops: map[token.Kind]ast.BinOp{token.OrOr: ast.OpOr}},
	{ops: map[token.Kind]ast.BinOp{token.AndAnd: ast.OpAnd}},
	{ops: map[token.Kind]ast.BinOp{
		token.Eq: ast.OpEq, token.NotEq: ast.OpNe,
		token.Lt: ast.OpLt, token.LtEq: ast.OpLe,
		token.Gt: ast.OpGt, token.GtEq: ast.OpGe,
	}},
	{ops: map[token.Kind]ast.BinOp{token.Plus: ast.OpAdd, token.Minus: ast.OpSub}},
	{ops: map[token.Kind]ast.BinOp{token.Star: ast.OpMul, token.Slash: ast.OpDiv, token.KwMod: ast.OpMod}},
}

func (p *Parser) parseBinary(level int) (ast.Expr, bool) {
	if level == len(binLevels) {
		return p.parseUnary()
	}
	left, ok := p.parseBinary(level + 1)
	if !ok {
		return nil, false
	}
	for {
		op, isOp := binLevels[level].ops[p.peek().Kind]
		if !isOp {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinaryOperand(level + 1)
		if !ok {
			return nil, false
		}
		left = &ast.EBinary{Op: op, Left: left, Right: right, Span: left.Loc().Cover(right.Loc())}
	}
}

// parseBinaryOperand allows a trailing let/fun/match/if as the right operand
// (x + let y = 1 in y).
func (p *Parser) parseBinaryOperand(level int) (ast.Expr, bool) {
	if p.atOr(token.KwLet, token.KwFun, token.KwMatch, token.KwIf) {
		return p.parseExprNoSeq()
	}
	return p.parseBinary(level)
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	var op ast.UnOp
	switch p.peek().Kind {
	case token.Minus:
		op = ast.OpNeg
	case token.KwNot:
		op = ast.OpNot
	default:
		return p.parseApp()
	}
	start := p.advance().Span
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.EUnary{Op: op, Operand: operand, Span: start.Cover(operand.Loc())}, true
}

func atExprAtomStart(k token.Kind) bool {
	switch k {
	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse,
		token.LParen, token.LBrace, token.Ident, token.UIdent:
		return true
	}
	return false
}

// parseApp parses application by juxtaposition. A constructor in head
// position takes the following atom as its argument.
func (p *Parser) parseApp() (ast.Expr, bool) {
	head, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	if c, isConstr := head.(*ast.EConstr); isConstr && atExprAtomStart(p.peek().Kind) {
		arg, ok := p.parsePostfix()
		if !ok {
			return nil, false
		}
		c.Arg = arg
		c.Span = c.Span.Cover(arg.Loc())
		return c, true
	}
	var args []ast.Expr
	for atExprAtomStart(p.peek().Kind) {
		arg, ok := p.parsePostfix()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return head, true
	}
	return &ast.EApp{Fn: head, Args: args, Span: head.Loc().Cover(p.lastSpan)}, true
}

// parsePostfix parses an atom followed by field projections e.f.g.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	e, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for p.at(token.Dot) && p.peekN(1).Kind == token.Ident {
		p.advance()
		f := p.advance()
		e = &ast.EField{Expr: e, Field: ast.Name{Text: f.Text, Span: f.Span}, Span: e.Loc().Cover(f.Span)}
	}
	return e, true
}

func (p *Parser) parseAtom() (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse:
		return &ast.ELit{Lit: p.parseLiteral()}, true
	case token.Ident:
		p.advance()
		return &ast.EVar{Path: ast.Path{Name: ast.Name{Text: tok.Text, Span: tok.Span}}}, true
	case token.UIdent:
		p.advance()
		mod := &ast.Name{Text: tok.Text, Span: tok.Span}
		if p.at(token.Dot) {
			switch next := p.peekN(1); next.Kind {
			case token.Ident:
				p.advance()
				p.advance()
				return &ast.EVar{Path: ast.Path{Module: mod, Name: ast.Name{Text: next.Text, Span: next.Span}}}, true
			case token.UIdent:
				p.advance()
				p.advance()
				return &ast.EConstr{
					Path: ast.Path{Module: mod, Name: ast.Name{Text: next.Text, Span: next.Span}},
					Span: tok.Span.Cover(next.Span),
				}, true
			}
		}
		return &ast.EConstr{Path: ast.Path{Name: *mod}, Span: tok.Span}, true
	case token.LParen:
		return p.parseParenExpr()
	case token.LBrace:
		return p.parseRecordExpr()
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+p.describe())
	return nil, false
}

func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	start := p.advance().Span // (
	if p.at(token.RParen) {
		end := p.advance().Span
		return &ast.ELit{Lit: ast.Literal{Kind: ast.LitUnit, Text: "()", Span: start.Cover(end)}}, true
	}
	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
			return nil, false
		}
		return first, true
	}
	elems := []ast.Expr{first}
	for p.eat(token.Comma) {
		next, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, next)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close tuple"); !ok {
		return nil, false
	}
	return &ast.ETuple{Elems: elems, Span: p.spanFrom(start)}, true
}

func (p *Parser) parseRecordExpr() (ast.Expr, bool) {
	start := p.advance().Span // {
	rec := &ast.ERecord{}
	for !p.at(token.RBrace) {
		name, ok := p.parseName(token.Ident, "field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' after field name"); !ok {
			return nil, false
		}
		val, ok := p.parseExprNoSeq()
		if !ok {
			return nil, false
		}
		rec.Fields = append(rec.Fields, ast.RecordField{Name: name, Value: val})
		if !p.eat(token.Semicolon) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close record"); !ok {
		return nil, false
	}
	rec.Span = p.spanFrom(start)
	return rec, true
}

// parseLetExpr parses the three local let forms:
//
//	let rec b1 and b2 in e
//	let f p1 .. pn = v in e
//	let pat = v in e
func (p *Parser) parseLetExpr() (ast.Expr, bool) {
	start := p.advance().Span // let
	if p.eat(token.KwRec) {
		bs, ok := p.parseBindings()
		if !ok {
			return nil, false
		}
		body, ok := p.parseIn()
		if !ok {
			return nil, false
		}
		return &ast.ELetRec{Bindings: bs, Body: body, Span: start.Cover(body.Loc())}, true
	}

	let := &ast.ELet{}
	if p.at(token.Ident) && atPatternStart(p.peekN(1).Kind) {
		name := p.advance()
		let.Pat = &ast.PVar{Name: ast.Name{Text: name.Text, Span: name.Span}}
		for atPatternStart(p.peek().Kind) {
			param, ok := p.parseAtomPattern()
			if !ok {
				return nil, false
			}
			let.Params = append(let.Params, param)
		}
	} else {
		pat, ok := p.parsePattern()
		if !ok {
			return nil, false
		}
		let.Pat = pat
	}
	if _, ok := p.expect(token.Eq, diag.SynUnexpectedToken, "expected '=' in let"); !ok {
		return nil, false
	}
	val, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	let.Value = val
	body, ok := p.parseIn()
	if !ok {
		return nil, false
	}
	let.Body = body
	let.Span = start.Cover(body.Loc())
	return let, true
}

func (p *Parser) parseIn() (ast.Expr, bool) {
	if _, ok := p.expect(token.KwIn, diag.SynExpectKeyword, "expected 'in'"); !ok {
		return nil, false
	}
	return p.parseExpr()
}

func (p *Parser) parseFunExpr() (ast.Expr, bool) {
	start := p.advance().Span // fun
	fn := &ast.EFun{}
	for atPatternStart(p.peek().Kind) {
		param, ok := p.parseAtomPattern()
		if !ok {
			return nil, false
		}
		fn.Params = append(fn.Params, param)
	}
	if len(fn.Params) == 0 {
		p.err(diag.SynExpectPattern, "expected parameter after 'fun', got "+p.describe())
		return nil, false
	}
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->' after parameters"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	fn.Body = body
	fn.Span = start.Cover(body.Loc())
	return fn, true
}

func (p *Parser) parseMatchExpr() (ast.Expr, bool) {
	start := p.advance().Span // match
	scrut, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwWith, diag.SynExpectKeyword, "expected 'with'"); !ok {
		return nil, false
	}
	m := &ast.EMatch{Scrutinee: scrut}
	p.eat(token.Pipe)
	for {
		armStart := p.peek().Span
		pat, ok := p.parsePattern()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->' in match arm"); !ok {
			return nil, false
		}
		body, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		m.Arms = append(m.Arms, ast.Arm{Pat: pat, Body: body, Span: armStart.Cover(body.Loc())})
		if !p.eat(token.Pipe) {
			break
		}
	}
	m.Span = p.spanFrom(start)
	return m, true
}

func (p *Parser) parseIfExpr() (ast.Expr, bool) {
	start := p.advance().Span // if
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwThen, diag.SynExpectKeyword, "expected 'then'"); !ok {
		return nil, false
	}
	then, ok := p.parseExprNoSeq()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwElse, diag.SynExpectKeyword, "expected 'else'"); !ok {
		return nil, false
	}
	els, ok := p.parseExprNoSeq()
	if !ok {
		return nil, false
	}
	return &ast.EIf{Cond: cond, Then: then, Else: els, Span: start.Cover(els.Loc())}, true
}
