package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident  // x, int32
	UIdent // Some, List
	TyVar  // 'a

	IntLit
	FloatLit
	StringLit

	KwModule // module
	KwSig    // sig
	KwStruct // struct
	KwEnd    // end
	KwType   // type
	KwAnd    // and
	KwOf     // of
	KwVal    // val
	KwLet    // let
	KwRec    // rec
	KwIn     // in
	KwFun    // fun
	KwMatch  // match
	KwWith   // with
	KwIf     // if
	KwThen   // then
	KwElse   // else
	KwAlias  // alias
	KwAs     // as
	KwTrue   // true
	KwFalse  // false
	KwNot    // not
	KwMod    // mod

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Eq         // =
	NotEq      // <>
	Lt         // <
	LtEq       // <=
	Gt         // >
	GtEq       // >=
	AndAnd     // &&
	OrOr       // ||
	Pipe       // |
	Arrow      // ->
	Colon      // :
	Semicolon  // ;
	Comma      // ,
	Dot        // .
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	Underscore // _
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	UIdent:     "UIdent",
	TyVar:      "TyVar",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	KwModule:   "KwModule",
	KwSig:      "KwSig",
	KwStruct:   "KwStruct",
	KwEnd:      "KwEnd",
	KwType:     "KwType",
	KwAnd:      "KwAnd",
	KwOf:       "KwOf",
	KwVal:      "KwVal",
	KwLet:      "KwLet",
	KwRec:      "KwRec",
	KwIn:       "KwIn",
	KwFun:      "KwFun",
	KwMatch:    "KwMatch",
	KwWith:     "KwWith",
	KwIf:       "KwIf",
	KwThen:     "KwThen",
	KwElse:     "KwElse",
	KwAlias:    "KwAlias",
	KwAs:       "KwAs",
	KwTrue:     "KwTrue",
	KwFalse:    "KwFalse",
	KwNot:      "KwNot",
	KwMod:      "KwMod",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Eq:         "Eq",
	NotEq:      "NotEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	AndAnd:     "AndAnd",
	OrOr:       "OrOr",
	Pipe:       "Pipe",
	Arrow:      "Arrow",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Comma:      "Comma",
	Dot:        "Dot",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Underscore: "Underscore",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
