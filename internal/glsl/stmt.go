package glsl

import (
	"yasl/internal/ast"
	"yasl/internal/source"
)

// block emits "{", one entry per statement and "}". Brace lines carry the
// brace token spans.
func (g *generator) block(id ast.BlockID) (*Fragment, error) {
	blk := g.builder.Blocks.Get(id)
	if blk == nil {
		return nil, internalErr("unknown block %d", id)
	}
	frag := &Fragment{}
	frag.line("{", blk.Open, false)
	for _, stmtID := range blk.Stmts {
		child, err := g.stmt(stmtID)
		if err != nil {
			return nil, err
		}
		frag.add(child)
	}
	frag.line("}", blk.Close, false)
	return frag, nil
}

func (g *generator) stmt(id ast.StmtID) (*Fragment, error) {
	st := g.builder.Stmts.Get(id)
	if st == nil {
		return nil, internalErr("unknown statement %d", id)
	}
	switch st.Kind {
	case ast.StmtLet:
		return g.let(id, st.Span)
	case ast.StmtExpr:
		return g.stmtExpr(g.builder.Stmts.Expr(id).Expr, st.Span)
	case ast.StmtItem:
		return g.item(g.builder.Stmts.Item(id).Item)
	}
	return nil, internalErr("unexpected statement kind %s", st.Kind)
}

func (g *generator) let(id ast.StmtID, sp source.Span) (*Fragment, error) {
	let := g.builder.Stmts.Let(id)
	typ := let.Type.Type
	if !let.HasType {
		typ = g.types.IdentType(let.Name)
	}
	text := typ.GLSL() + " " + g.name(let.Name)
	if let.Value.IsValid() {
		init, err := g.expr(let.Value)
		if err != nil {
			return nil, err
		}
		text += " = " + init
	}
	frag := &Fragment{}
	frag.line(text, sp, true)
	return frag, nil
}

// stmtExpr emits a statement-level expression. sp is the span of the whole
// statement, or of the expression itself inside an else branch.
func (g *generator) stmtExpr(id ast.ExprID, sp source.Span) (*Fragment, error) {
	expr := g.builder.Exprs.Get(id)
	if expr == nil {
		return nil, internalErr("unknown expression %d", id)
	}
	switch expr.Kind {
	case ast.ExprIf:
		return g.ifExpr(id)
	case ast.ExprBlock:
		data, _ := g.builder.Exprs.Block(id)
		return g.block(data.Block)
	case ast.ExprReturn:
		data, _ := g.builder.Exprs.Return(id)
		text := "return"
		if data.Value.IsValid() {
			value, err := g.expr(data.Value)
			if err != nil {
				return nil, err
			}
			text += " " + value
		}
		frag := &Fragment{}
		frag.line(text, sp, true)
		return frag, nil
	case ast.ExprAssign:
		data, _ := g.builder.Exprs.Assign(id)
		lhs, err := g.expr(data.Target)
		if err != nil {
			return nil, err
		}
		rhs, err := g.expr(data.Value)
		if err != nil {
			return nil, err
		}
		frag := &Fragment{}
		frag.line(lhs+" "+data.Op.String()+" "+rhs, sp, true)
		return frag, nil
	}

	text, err := g.expr(id)
	if err != nil {
		return nil, err
	}
	frag := &Fragment{}
	frag.line(text, sp, true)
	return frag, nil
}

// ifExpr emits "if(cond)", the then block and, when present, an "else" line
// followed by the else branch.
func (g *generator) ifExpr(id ast.ExprID) (*Fragment, error) {
	data, _ := g.builder.Exprs.If(id)
	cond, err := g.expr(data.Cond)
	if err != nil {
		return nil, err
	}
	frag := &Fragment{}
	frag.line("if("+cond+")", data.Header, false)
	then, err := g.block(data.Then)
	if err != nil {
		return nil, err
	}
	frag.add(then)
	if !data.Else.IsValid() {
		return frag, nil
	}
	frag.line("else", data.ElseKw, false)
	elseFrag, err := g.stmtExpr(data.Else, g.builder.Exprs.Get(data.Else).Span)
	if err != nil {
		return nil, err
	}
	frag.add(elseFrag)
	return frag, nil
}
