package parser

import (
	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/token"
)

// parseBlock: '{' Statement* '}'
func (p *Parser) parseBlock() (ast.BlockID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "'{'")
	if !ok {
		return ast.NoBlockID, false
	}
	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynUnclosedDelimiter, open.Span, "unclosed '{'")
			return ast.NoBlockID, false
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoBlockID, false
		}
		stmts = append(stmts, stmt)
	}
	closeTok := p.advance()
	return p.arenas.Blocks.New(open.Span, closeTok.Span, stmts), true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.KwLet:
		return p.parseLetStmt()
	case isItemStart(tok.Kind):
		item, ok := p.parseItem()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewItem(p.arenas.Items.Get(item).Span, item), true
	case p.rejectReserved(tok):
		return ast.NoStmtID, false
	}

	expr, ok := p.parseStmtExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	span := p.arenas.Exprs.Get(expr).Span
	switch p.arenas.Exprs.Get(expr).Kind {
	case ast.ExprIf, ast.ExprBlock:
		// if и блок могут обходиться без ';'
		if semi, ok := p.eat(token.Semicolon); ok {
			span = span.Cover(semi.Span)
		}
	default:
		semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after statement")
		if !ok {
			return ast.NoStmtID, false
		}
		span = span.Cover(semi.Span)
	}
	return p.arenas.Stmts.NewExpr(span, expr), true
}

// parseLetStmt: let NAME (':' Type)? ('=' ValueExpr)? ';'
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.parseBindingName("binding name")
	if !ok {
		return ast.NoStmtID, false
	}
	let := ast.LetStmt{Name: name, Value: ast.NoExprID}
	if _, ok := p.eat(token.Colon); ok {
		if let.Type, ok = p.parseType(); !ok {
			return ast.NoStmtID, false
		}
		let.HasType = true
	}
	if _, ok := p.eat(token.Assign); ok {
		if let.Value, ok = p.parseValueExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after let binding"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLet(kw.Span.Cover(p.lastSpan), let), true
}

// parseStmtExpr разбирает выражение уровня инструкции: return, if, блок,
// присваивание или обычное значение.
func (p *Parser) parseStmtExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.LBrace:
		block, ok := p.parseBlock()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewBlock(p.arenas.Blocks.Get(block).Span, block), true
	}

	lhs, ok := p.parseValueExpr()
	if !ok {
		return ast.NoExprID, false
	}
	op, isAssign := assignOpFor(p.lx.Peek().Kind)
	if !isAssign {
		return lhs, true
	}
	opTok := p.advance()
	if !p.isAssignable(lhs) {
		p.report(diag.SynBadAssignTarget, p.arenas.Exprs.Get(lhs).Span,
			"left side of "+opTok.Kind.String()+" must be a variable or a field of one")
		return ast.NoExprID, false
	}
	rhs, ok := p.parseValueExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.arenas.Exprs.Get(lhs).Span.Cover(p.arenas.Exprs.Get(rhs).Span)
	return p.arenas.Exprs.NewAssign(span, op, lhs, rhs), true
}

func (p *Parser) parseReturn() (ast.ExprID, bool) {
	kw := p.advance()
	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		var ok bool
		if value, ok = p.parseValueExpr(); !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewReturn(kw.Span.Cover(p.lastSpan), value), true
}

// parseIf: if ValueExpr Block (else (Block | if ... | StmtExpr))?
func (p *Parser) parseIf() (ast.ExprID, bool) {
	kw := p.advance()
	cond, ok := p.parseValueExpr()
	if !ok {
		return ast.NoExprID, false
	}
	data := ast.ExprIfData{
		Cond:   cond,
		Else:   ast.NoExprID,
		Header: kw.Span.Cover(p.lastSpan),
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBlock, "expected '{' after if condition, got "+describe(p.lx.Peek()))
		return ast.NoExprID, false
	}
	if data.Then, ok = p.parseBlock(); !ok {
		return ast.NoExprID, false
	}
	if elseTok, hasElse := p.eat(token.KwElse); hasElse {
		data.ElseKw = elseTok.Span
		if data.Else, ok = p.parseStmtExpr(); !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewIf(kw.Span.Cover(p.lastSpan), data), true
}

// isAssignable: идентификатор или цепочка полей от идентификатора.
func (p *Parser) isAssignable(id ast.ExprID) bool {
	for {
		expr := p.arenas.Exprs.Get(id)
		switch expr.Kind {
		case ast.ExprIdent:
			return true
		case ast.ExprMember:
			member, _ := p.arenas.Exprs.Member(id)
			id = member.Target
		default:
			return false
		}
	}
}
