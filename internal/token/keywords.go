package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"static":   KwStatic,
	"layout":   KwLayout,
	"if":       KwIf,
	"else":     KwElse,
	"return":   KwReturn,
	"as":       KwAs,
	"true":     KwTrue,
	"false":    KwFalse,
	"pub":      KwPub,
	"const":    KwConst,
	"async":    KwAsync,
	"unsafe":   KwUnsafe,
	"extern":   KwExtern,
	"mut":      KwMut,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"impl":     KwImpl,
	"trait":    KwTrait,
	"use":      KwUse,
	"mod":      KwMod,
	"type":     KwType,
	"match":    KwMatch,
	"loop":     KwLoop,
	"while":    KwWhile,
	"for":      KwFor,
	"break":    KwBreak,
	"continue": KwContinue,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
