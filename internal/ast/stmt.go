package ast

import (
	"yasl/internal/source"
)

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtItem
)

func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtExpr:
		return "Expr"
	case StmtItem:
		return "Item"
	}
	return "Unknown"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// LetStmt is a local binding. Type is meaningful only when HasType is set.
type LetStmt struct {
	Name    IdentID
	Type    TypeRef
	HasType bool
	Value   ExprID // NoExprID when there is no initializer
}

type ExprStmt struct {
	Expr ExprID
}

type ItemStmt struct {
	Item ItemID
}

type Stmts struct {
	Arena *Arena[Stmt]
	Lets  *Arena[LetStmt]
	Exprs *Arena[ExprStmt]
	Items *Arena[ItemStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Lets:  NewArena[LetStmt](capHint),
		Exprs: NewArena[ExprStmt](capHint),
		Items: NewArena[ItemStmt](capHint/8 + 1),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewLet(span source.Span, let LetStmt) StmtID {
	return s.new(StmtLet, span, s.Lets.Allocate(let))
}

func (s *Stmts) Let(id StmtID) *LetStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLet {
		return nil
	}
	return s.Lets.Get(uint32(st.Payload))
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return s.new(StmtExpr, span, s.Exprs.Allocate(ExprStmt{Expr: expr}))
}

func (s *Stmts) Expr(id StmtID) *ExprStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExpr {
		return nil
	}
	return s.Exprs.Get(uint32(st.Payload))
}

func (s *Stmts) NewItem(span source.Span, item ItemID) StmtID {
	return s.new(StmtItem, span, s.Items.Allocate(ItemStmt{Item: item}))
}

func (s *Stmts) Item(id StmtID) *ItemStmt {
	st := s.Get(id)
	if st == nil || st.Kind != StmtItem {
		return nil
	}
	return s.Items.Get(uint32(st.Payload))
}
