package ast

import (
	"yasl/internal/source"
)

// Block owns its statements. Open and Close are the brace tokens.
type Block struct {
	Span  source.Span
	Open  source.Span
	Close source.Span
	Stmts []StmtID
}

type Blocks struct {
	Arena *Arena[Block]
}

func NewBlocks(capHint uint) *Blocks {
	return &Blocks{Arena: NewArena[Block](capHint)}
}

func (b *Blocks) New(open, close source.Span, stmts []StmtID) BlockID {
	return BlockID(b.Arena.Allocate(Block{
		Span:  open.Cover(close),
		Open:  open,
		Close: close,
		Stmts: append([]StmtID(nil), stmts...),
	}))
}

func (b *Blocks) Get(id BlockID) *Block {
	return b.Arena.Get(uint32(id))
}
