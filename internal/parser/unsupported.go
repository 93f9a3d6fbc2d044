package parser

import (
	"yasl/internal/diag"
	"yasl/internal/token"
)

// rejectReserved reports the host-grammar construct introduced by tok, if
// any. It returns true when an error was reported.
func (p *Parser) rejectReserved(tok token.Token) bool {
	switch tok.Kind {
	case token.Hash:
		p.report(diag.SynUnsupportedAttribute, tok.Span, "attributes are not supported")
	case token.KwPub, token.KwConst, token.KwAsync, token.KwUnsafe, token.KwExtern, token.KwMut:
		p.report(diag.SynUnsupportedModifier, tok.Span, "modifier "+tok.Kind.String()+" is not supported")
	case token.KwStruct, token.KwEnum, token.KwImpl, token.KwTrait, token.KwUse, token.KwMod, token.KwType:
		p.report(diag.SynUnsupportedItem, tok.Span, tok.Kind.String()+" items are not supported")
	case token.KwMatch, token.KwLoop, token.KwWhile, token.KwFor, token.KwBreak, token.KwContinue:
		p.report(diag.SynUnsupportedControlFlow, tok.Span, tok.Kind.String()+" is not supported")
	case token.Invalid:
		// лексер уже отрепортил, второй диагностики не нужно
		p.failed = true
	default:
		return false
	}
	return true
}

// rejectPattern handles binding positions that hold something other than a
// plain identifier.
func (p *Parser) rejectPattern() bool {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwMut:
		p.report(diag.SynUnsupportedModifier, tok.Span, "mutable bindings are not supported")
	case token.LParen, token.Underscore, token.LBracket, token.Amp:
		p.report(diag.SynUnsupportedPattern, tok.Span, "only identifier patterns are supported")
	default:
		return false
	}
	return true
}
