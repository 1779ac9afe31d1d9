package parser

import (
	"slices"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Modules []*ast.Module
	Errors  uint
}

// Parser holds the state for one file. Tokens are lexed up front so the
// grammar can look two tokens ahead.
type Parser struct {
	toks     []token.Token
	pos      int
	opts     Options
	lastSpan source.Span
}

// ParseFile parses every module of the file behind lx. A module that fails
// to parse is reported and skipped; parsing resumes at the next top-level
// module.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{toks: lx.All(), opts: opts}
	p.lastSpan = p.peek().Span

	var mods []*ast.Module
	for !p.at(token.EOF) {
		if !p.at(token.KwModule) {
			p.err(diag.SynUnexpectedTopLevel, "expected 'module' at top level, got "+p.describe())
			p.resyncTop()
			continue
		}
		mod, ok := p.parseModule()
		if !ok {
			p.resyncTop()
			continue
		}
		mods = append(mods, mod)
		if p.opts.Enough() {
			break
		}
	}
	return Result{Modules: mods, Errors: p.opts.CurrentErrors}
}

func (p *Parser) peek() token.Token { return p.peekN(0) }

func (p *Parser) peekN(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// resyncTop skips to the next 'module' that can start a top-level module:
// the first token of the file or one following 'end'.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		p.advance()
		if p.at(token.KwModule) && p.toks[p.pos-1].Kind == token.KwEnd {
			return
		}
	}
}

// spanFrom covers start through the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func (p *Parser) parseName(k token.Kind, what string) (ast.Name, bool) {
	if p.at(k) {
		tok := p.advance()
		return ast.Name{Text: tok.Text, Span: tok.Span}, true
	}
	p.err(diag.SynExpectIdentifier, "expected "+what+", got "+p.describe())
	return ast.Name{}, false
}
