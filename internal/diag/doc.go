// Package diag defines the diagnostic model shared by every phase of the
// lumen front-end.
//
// Producers (lexer, parser, naming, driver) never format or print: they emit
// through a Reporter, usually a BagReporter wrapping a Bag owned by the
// driver. Rendering lives in internal/diagfmt.
//
// A Diagnostic carries a Severity, a numeric Code with a stable textual ID
// (LEX1001, SYN2001, SEM3001, ...), a message, a primary source.Span and
// optional Notes. Notes add secondary locations, for example the earlier
// binding of a name reported as a multiple definition.
//
// Bag.Sort orders diagnostics by file and position so output is
// deterministic regardless of the order phases reported them in.
package diag
