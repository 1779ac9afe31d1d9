// Package naming resolves every identifier of a parsed program to a unique
// ident.Ident.
//
// Resolution runs in two phases. BuildSignatures mints the exported names
// of all modules from their declarations, so modules may refer to each
// other regardless of order. Each module is then resolved on its own:
// declarations against the module's signature, definitions in source
// order, and finally a completeness check that every declared value is
// defined.
//
// Environments are persistent. Binding a name yields a new Env and the
// old one stays valid, which is what gives lexical scoping: a scope is
// simply the Env value passed down to a subtree.
package naming
