// Package fuzztests houses Go fuzz harnesses for the lumen pipeline
// (source -> lexer -> parser -> naming). They guard against panics, hangs
// and broken span or resolution invariants on arbitrary input.
//
// Seeds come from the .lm files under testdata/ and a handful of inline
// snippets.
package fuzztests
