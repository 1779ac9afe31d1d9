// Package ast defines the surface syntax tree produced by the parser.
//
// Identifiers are plain strings scoped only by their position in the tree.
// Every node kind is a concrete struct implementing one of the sealed
// interfaces Decl, Def, TypeBody, TypeExpr, Pattern or Expr; consumers
// dispatch with a type switch over the full set of variants.
package ast
