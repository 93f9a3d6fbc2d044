package parser

import (
	"fmt"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/source"
	"yasl/internal/token"
)

// parseBindingName parses a declaration name. Declarations always carry the
// default prefix; a path here is rejected.
func (p *Parser) parseBindingName(what string) (ast.IdentID, bool) {
	if p.rejectPattern() {
		return ast.NoIdentID, false
	}
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, what)
	if !ok {
		return ast.NoIdentID, false
	}
	if p.at(token.ColonColon) {
		p.err(diag.SynUnsupportedPath, "declaration names cannot be paths")
		return ast.NoIdentID, false
	}
	return p.arenas.Idents.New(tok.Text, "", p.opts.Prefix, tok.Span), true
}

// parseStaticItem: static NAME ':' Type '=' ValueExpr ';'
func (p *Parser) parseStaticItem() (ast.ItemID, bool) {
	kw := p.advance()
	name, ok := p.parseBindingName("static name")
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "':' and a type after static name"); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Assign, diag.SynUnexpectedToken, "'=' in static item"); !ok {
		return ast.NoItemID, false
	}
	value, ok := p.parseValueExpr()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after static item"); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewStatic(kw.Span.Cover(p.lastSpan), ast.StaticItem{
		Name:  name,
		Type:  typ,
		Value: value,
	}), true
}

// parseSlotItem: layout '<' input|output ',' IntLit '>' NAME ':' Type ';'
func (p *Parser) parseSlotItem() (ast.ItemID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "'<' after 'layout'"); !ok {
		return ast.NoItemID, false
	}

	var dir ast.SlotDirection
	dirTok := p.lx.Peek()
	switch {
	case dirTok.Kind == token.Ident && dirTok.Text == "input":
		dir = ast.SlotInput
	case dirTok.Kind == token.Ident && dirTok.Text == "output":
		dir = ast.SlotOutput
	default:
		p.report(diag.SynBadSlotDirection, dirTok.Span, "expected 'input' or 'output', got "+describe(dirTok))
		return ast.NoItemID, false
	}
	p.advance()

	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "',' after slot direction"); !ok {
		return ast.NoItemID, false
	}
	idxTok, ok := p.expect(token.IntLit, diag.SynBadSlotIndex, "slot index")
	if !ok {
		return ast.NoItemID, false
	}
	index, err := ast.ParseIntLiteral(idxTok.Text)
	if err != nil || index > 0xFFFFFFFF {
		p.report(diag.SynBadSlotIndex, idxTok.Span, fmt.Sprintf("slot index %s is out of range", idxTok.Text))
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Gt, diag.SynUnclosedDelimiter, "'>' to close slot header"); !ok {
		return ast.NoItemID, false
	}

	name, ok := p.parseBindingName("slot name")
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "':' and a type after slot name"); !ok {
		return ast.NoItemID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after slot"); !ok {
		return ast.NoItemID, false
	}
	return p.arenas.Items.NewSlot(kw.Span.Cover(p.lastSpan), ast.SlotItem{
		Direction: dir,
		Index:     uint32(index),
		Name:      name,
		Type:      typ,
	}), true
}

// parseFnItem: fn NAME '(' params ')' ('->' Type)? Block
func (p *Parser) parseFnItem() (ast.ItemID, bool) {
	kw := p.advance()
	name, ok := p.parseBindingName("function name")
	if !ok {
		return ast.NoItemID, false
	}
	if p.at(token.Lt) {
		p.err(diag.SynUnsupportedGeneric, "generic functions are not supported")
		return ast.NoItemID, false
	}
	if _, ok = p.expect(token.LParen, diag.SynUnexpectedToken, "'(' after function name"); !ok {
		return ast.NoItemID, false
	}

	var params []ast.FnParam
	for !p.at(token.RParen) {
		param, ok := p.parseParam()
		if !ok {
			return ast.NoItemID, false
		}
		params = append(params, param)
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	if _, ok = p.expect(token.RParen, diag.SynUnclosedDelimiter, "')' to close parameter list"); !ok {
		return ast.NoItemID, false
	}

	fn := ast.FnItem{
		Name:   name,
		Params: params,
		Result: ast.TypeRef{Span: source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}},
	}
	if _, ok := p.eat(token.Arrow); ok {
		fn.Result, ok = p.parseType()
		if !ok {
			return ast.NoItemID, false
		}
		fn.HasResult = true
	}
	fn.Header = kw.Span.Cover(p.lastSpan)

	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBlock, "expected '{' to start function body, got "+describe(p.lx.Peek()))
		return ast.NoItemID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoItemID, false
	}
	fn.Body = body
	return p.arenas.Items.NewFn(kw.Span.Cover(p.lastSpan), fn), true
}

func (p *Parser) parseParam() (ast.FnParam, bool) {
	name, ok := p.parseBindingName("parameter name")
	if !ok {
		return ast.FnParam{}, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "':' and a type after parameter name"); !ok {
		return ast.FnParam{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.FnParam{}, false
	}
	return ast.FnParam{Name: name, Type: typ}, true
}
