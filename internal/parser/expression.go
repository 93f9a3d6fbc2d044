package parser

import (
	"strings"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/token"
)

// parseValueExpr разбирает выражение-значение (без присваиваний и
// управляющих конструкций).
func (p *Parser) parseValueExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precOrOr)
}

// parseBinaryExpr: Pratt-цикл по таблице приоритетов. Все бинарные
// операторы левоассоциативны.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseCastExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		prec, op := binaryOpFor(p.lx.Peek().Kind)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parseCastExpr: Unary ('as' Type)*
func (p *Parser) parseCastExpr() (ast.ExprID, bool) {
	expr, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.KwAs) {
		p.advance()
		target, ok := p.parseType()
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(expr).Span.Cover(target.Span)
		expr = p.arenas.Exprs.NewCast(span, expr, target)
	}
	return expr, true
}

func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	var op ast.ExprUnaryOp
	switch tok.Kind {
	case token.Minus:
		op = ast.ExprUnaryMinus
	case token.Bang:
		op = ast.ExprUnaryNot
	case token.Amp, token.AndAnd, token.Star:
		p.report(diag.SynUnsupportedExpr, tok.Span, "references and dereferences are not supported")
		return ast.NoExprID, false
	default:
		return p.parsePostfixExpr()
	}
	p.advance()
	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
	return p.arenas.Exprs.NewUnary(span, op, operand), true
}

// parsePostfixExpr: Primary ('.' ident)*
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			member := p.lx.Peek()
			switch member.Kind {
			case token.Ident:
				p.advance()
				if p.at(token.LParen) {
					p.err(diag.SynUnsupportedExpr, "method calls are not supported")
					return ast.NoExprID, false
				}
				span := p.arenas.Exprs.Get(expr).Span.Cover(member.Span)
				expr = p.arenas.Exprs.NewMember(span, expr, member.Text, member.Span)
			case token.IntLit:
				p.report(diag.SynUnsupportedTuple, member.Span, "tuple field access is not supported")
				return ast.NoExprID, false
			default:
				p.err(diag.SynExpectIdentifier, "expected field name after '.', got "+describe(member))
				return ast.NoExprID, false
			}
		case token.FloatLit:
			// t.0 лексится как t и .0
			if !strings.HasPrefix(tok.Text, ".") {
				return expr, true
			}
			p.report(diag.SynUnsupportedTuple, tok.Span, "tuple field access is not supported")
			return ast.NoExprID, false
		case token.LBracket:
			p.report(diag.SynUnsupportedExpr, tok.Span, "indexing is not supported")
			return ast.NoExprID, false
		case token.Question:
			p.report(diag.SynUnsupportedExpr, tok.Span, "the '?' operator is not supported")
			return ast.NoExprID, false
		case token.LParen:
			p.report(diag.SynUnsupportedExpr, tok.Span, "only named functions can be called")
			return ast.NoExprID, false
		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitInt, tok.Text), true
	case token.FloatLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitFloat, tok.Text), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitBool, tok.Text), true
	case token.Ident:
		return p.parseIdentOrCall()
	case token.LParen:
		return p.parseGroupExpr()
	case token.Pipe, token.OrOr:
		p.report(diag.SynUnsupportedExpr, tok.Span, "closures are not supported")
		return ast.NoExprID, false
	case token.LBracket:
		p.report(diag.SynUnsupportedExpr, tok.Span, "array expressions are not supported")
		return ast.NoExprID, false
	case token.DotDot:
		p.report(diag.SynUnsupportedExpr, tok.Span, "ranges are not supported")
		return ast.NoExprID, false
	case token.LBrace, token.KwIf, token.KwReturn:
		p.report(diag.SynStatementInValue, tok.Span, tok.Kind.String()+" cannot be used as a value")
		return ast.NoExprID, false
	}
	if p.rejectReserved(tok) {
		return ast.NoExprID, false
	}
	p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return ast.NoExprID, false
}

// parsePath разбирает идентификатор или путь из двух сегментов ns::name и
// назначает ему префикс.
func (p *Parser) parsePath() (ast.IdentID, bool) {
	first := p.advance()
	if !p.at(token.ColonColon) {
		return p.arenas.Idents.New(first.Text, "", p.opts.Prefix, first.Span), true
	}
	p.advance()
	if p.at(token.Lt) {
		p.err(diag.SynUnsupportedGeneric, "turbofish arguments are not supported")
		return ast.NoIdentID, false
	}
	second, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "identifier after '::'")
	if !ok {
		return ast.NoIdentID, false
	}
	if p.at(token.ColonColon) {
		p.err(diag.SynUnsupportedPath, "paths with more than two segments are not supported")
		return ast.NoIdentID, false
	}
	prefix, known := NamespacePrefix(first.Text)
	if !known {
		p.report(diag.SynUnknownNamespace, first.Span, "unknown namespace "+first.Text)
		return ast.NoIdentID, false
	}
	return p.arenas.Idents.New(second.Text, first.Text, prefix, first.Span.Cover(second.Span)), true
}

func (p *Parser) parseIdentOrCall() (ast.ExprID, bool) {
	ident, ok := p.parsePath()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.arenas.Idents.Get(ident).Span
	if bang, isMacro := p.eat(token.Bang); isMacro {
		p.report(diag.SynUnsupportedExpr, span.Cover(bang.Span), "macros are not supported")
		return ast.NoExprID, false
	}
	if !p.at(token.LParen) {
		return p.arenas.Exprs.NewIdent(span, ident), true
	}

	p.advance()
	var args []ast.ExprID
	for !p.at(token.RParen) {
		arg, ok := p.parseValueExpr()
		if !ok {
			return ast.NoExprID, false
		}
		args = append(args, arg)
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "')' to close argument list"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCall(span.Cover(p.lastSpan), ident, args), true
}

// parseGroupExpr: '(' ValueExpr ')'. Empty parens and comma lists are tuples.
func (p *Parser) parseGroupExpr() (ast.ExprID, bool) {
	open := p.advance()
	if p.at(token.RParen) {
		p.report(diag.SynUnsupportedTuple, open.Span, "the unit value is not supported")
		return ast.NoExprID, false
	}
	inner, ok := p.parseValueExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if comma, isTuple := p.eat(token.Comma); isTuple {
		p.report(diag.SynUnsupportedTuple, comma.Span, "tuples are not supported")
		return ast.NoExprID, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "')'")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewGroup(open.Span.Cover(closeTok.Span), inner), true
}
