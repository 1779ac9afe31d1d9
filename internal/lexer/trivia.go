package lexer

import (
	"lumen/internal/diag"
)

// skipTrivia consumes whitespace and (* ... *) comments. Comments nest; an
// unterminated one is reported and runs to EOF.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
			continue
		case '(':
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '(' && b1 == '*' {
				lx.skipComment()
				continue
			}
		}
		return
	}
}

func (lx *Lexer) skipComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '(' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == ')' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated comment")
	}
}
