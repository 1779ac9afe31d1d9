package token

var keywords = map[string]Kind{
	"module": KwModule,
	"sig":    KwSig,
	"struct": KwStruct,
	"end":    KwEnd,
	"type":   KwType,
	"and":    KwAnd,
	"of":     KwOf,
	"val":    KwVal,
	"let":    KwLet,
	"rec":    KwRec,
	"in":     KwIn,
	"fun":    KwFun,
	"match":  KwMatch,
	"with":   KwWith,
	"if":     KwIf,
	"then":   KwThen,
	"else":   KwElse,
	"alias":  KwAlias,
	"as":     KwAs,
	"true":   KwTrue,
	"false":  KwFalse,
	"not":    KwNot,
	"mod":    KwMod,
}

// LookupKeyword reports the keyword kind for ident. Keywords are
// case-sensitive: only the lower-case spelling is reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
