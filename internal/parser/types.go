package parser

import (
	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/token"
	"yasl/internal/types"
)

// parseType разбирает тип:
//
//	i32 | u32 | f32 | f64 | bool
//	vecN '<' scalar '>'          (N = 2..4)
//	'(' ')'                      (void)
//
// Tuples, references, pointers and arrays are rejected.
func (p *Parser) parseType() (ast.TypeRef, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		return p.parseNamedType()
	case token.LParen:
		p.advance()
		if rp, ok := p.eat(token.RParen); ok {
			return ast.TypeRef{Type: types.Void(), Span: tok.Span.Cover(rp.Span)}, true
		}
		p.report(diag.SynUnsupportedTuple, tok.Span, "tuple types are not supported")
		return ast.TypeRef{}, false
	case token.Amp, token.Star:
		p.report(diag.SynUnsupportedExpr, tok.Span, "reference and pointer types are not supported")
		return ast.TypeRef{}, false
	case token.LBracket:
		p.report(diag.SynUnsupportedExpr, tok.Span, "array types are not supported")
		return ast.TypeRef{}, false
	}
	if p.rejectReserved(tok) {
		return ast.TypeRef{}, false
	}
	p.err(diag.SynExpectType, "expected type, got "+describe(tok))
	return ast.TypeRef{}, false
}

func (p *Parser) parseNamedType() (ast.TypeRef, bool) {
	name := p.advance()
	if p.at(token.ColonColon) {
		p.err(diag.SynUnsupportedPath, "type paths are not supported")
		return ast.TypeRef{}, false
	}

	if s, ok := types.LookupScalar(name.Text); ok {
		if p.at(token.Lt) {
			p.err(diag.SynUnsupportedGeneric, "scalar type "+name.Text+" takes no arguments")
			return ast.TypeRef{}, false
		}
		return ast.TypeRef{Type: types.MakeScalar(s), Span: name.Span}, true
	}

	degree, ok := types.VectorDegree(name.Text)
	if !ok {
		p.report(diag.SynUnknownType, name.Span, "unknown type "+name.Text)
		return ast.TypeRef{}, false
	}
	if _, ok = p.expect(token.Lt, diag.SynExpectType, "'<' and a component type after "+name.Text); !ok {
		return ast.TypeRef{}, false
	}
	elemTok, ok := p.expect(token.Ident, diag.SynExpectType, "vector component type")
	if !ok {
		return ast.TypeRef{}, false
	}
	elem, ok := types.LookupScalar(elemTok.Text)
	if !ok {
		if _, isVec := types.VectorDegree(elemTok.Text); isVec {
			p.report(diag.SynUnsupportedGeneric, elemTok.Span, "vector components must be scalar types")
		} else {
			p.report(diag.SynUnknownType, elemTok.Span, "unknown type "+elemTok.Text)
		}
		return ast.TypeRef{}, false
	}
	closeTok, ok := p.expect(token.Gt, diag.SynUnclosedDelimiter, "'>' to close vector type")
	if !ok {
		return ast.TypeRef{}, false
	}
	return ast.TypeRef{
		Type: types.MakeVector(degree, elem),
		Span: name.Span.Cover(closeTok.Span),
	}, true
}
