// Package token defines lexical token kinds for lumen sources.
// Invariants:
//   - Token.Text is the token's source text, NFC-normalised for identifiers.
//   - Token.Span covers the original bytes of the token.
//   - Comments and whitespace never appear in the token stream.
//   - Identifiers starting with an upper-case letter lex as UIdent
//     (constructors, modules); others lex as Ident.
//   - Primitive type names (int32, bool, ...) are plain identifiers.
package token
