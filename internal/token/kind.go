package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// DSL keywords.
	KwFn     // fn
	KwLet    // let
	KwStatic // static
	KwLayout // layout
	KwIf     // if
	KwElse   // else
	KwReturn // return
	KwAs     // as
	KwTrue   // true
	KwFalse  // false

	// Reserved host keywords. The lexer recognises them so the parser can
	// reject the construct they introduce instead of misreading it.
	KwPub      // pub
	KwConst    // const
	KwAsync    // async
	KwUnsafe   // unsafe
	KwExtern   // extern
	KwMut      // mut
	KwStruct   // struct
	KwEnum     // enum
	KwImpl     // impl
	KwTrait    // trait
	KwUse      // use
	KwMod      // mod
	KwType     // type
	KwMatch    // match
	KwLoop     // loop
	KwWhile    // while
	KwFor      // for
	KwBreak    // break
	KwContinue // continue

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=
	EqEq          // ==
	Bang          // !
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Amp           // &
	Pipe          // |
	Caret         // ^
	AndAnd        // &&
	OrOr          // ||
	Question      // ?
	Colon         // :
	ColonColon    // ::
	Semicolon     // ;
	Comma         // ,
	Dot           // .
	DotDot        // ..
	Arrow         // ->
	FatArrow      // =>
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	Hash          // #
	Underscore    // _
)

var kindNames = [...]string{
	Invalid:       "invalid",
	EOF:           "end of file",
	Ident:         "identifier",
	KwFn:          "'fn'",
	KwLet:         "'let'",
	KwStatic:      "'static'",
	KwLayout:      "'layout'",
	KwIf:          "'if'",
	KwElse:        "'else'",
	KwReturn:      "'return'",
	KwAs:          "'as'",
	KwTrue:        "'true'",
	KwFalse:       "'false'",
	KwPub:         "'pub'",
	KwConst:       "'const'",
	KwAsync:       "'async'",
	KwUnsafe:      "'unsafe'",
	KwExtern:      "'extern'",
	KwMut:         "'mut'",
	KwStruct:      "'struct'",
	KwEnum:        "'enum'",
	KwImpl:        "'impl'",
	KwTrait:       "'trait'",
	KwUse:         "'use'",
	KwMod:         "'mod'",
	KwType:        "'type'",
	KwMatch:       "'match'",
	KwLoop:        "'loop'",
	KwWhile:       "'while'",
	KwFor:         "'for'",
	KwBreak:       "'break'",
	KwContinue:    "'continue'",
	IntLit:        "integer literal",
	FloatLit:      "float literal",
	Plus:          "'+'",
	Minus:         "'-'",
	Star:          "'*'",
	Slash:         "'/'",
	Percent:       "'%'",
	Assign:        "'='",
	PlusAssign:    "'+='",
	MinusAssign:   "'-='",
	StarAssign:    "'*='",
	SlashAssign:   "'/='",
	PercentAssign: "'%='",
	AmpAssign:     "'&='",
	PipeAssign:    "'|='",
	CaretAssign:   "'^='",
	ShlAssign:     "'<<='",
	ShrAssign:     "'>>='",
	EqEq:          "'=='",
	Bang:          "'!'",
	BangEq:        "'!='",
	Lt:            "'<'",
	LtEq:          "'<='",
	Gt:            "'>'",
	GtEq:          "'>='",
	Shl:           "'<<'",
	Shr:           "'>>'",
	Amp:           "'&'",
	Pipe:          "'|'",
	Caret:         "'^'",
	AndAnd:        "'&&'",
	OrOr:          "'||'",
	Question:      "'?'",
	Colon:         "':'",
	ColonColon:    "'::'",
	Semicolon:     "';'",
	Comma:         "','",
	Dot:           "'.'",
	DotDot:        "'..'",
	Arrow:         "'->'",
	FatArrow:      "'=>'",
	LParen:        "'('",
	RParen:        "')'",
	LBrace:        "'{'",
	RBrace:        "'}'",
	LBracket:      "'['",
	RBracket:      "']'",
	Hash:          "'#'",
	Underscore:    "'_'",
}

// String returns a human readable name used in diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsCompoundAssign reports whether k is one of the op-assign operators.
func (k Kind) IsCompoundAssign() bool {
	switch k {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign:
		return true
	default:
		return false
	}
}

// IsReserved reports whether k is a host keyword the DSL does not support.
func (k Kind) IsReserved() bool {
	return k >= KwPub && k <= KwContinue
}
