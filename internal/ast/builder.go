package ast

import (
	"yasl/internal/source"
)

type Hints struct{ Files, Items, Stmts, Exprs uint }

// Builder owns every arena of one parse. A Builder is not safe for
// concurrent use; independent compilations use independent builders.
type Builder struct {
	Files  *Files
	Items  *Items
	Stmts  *Stmts
	Exprs  *Exprs
	Blocks *Blocks
	Idents *Idents
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Items == 0 {
		hints.Items = 1 << 5
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:  NewFiles(hints.Files),
		Items:  NewItems(hints.Items),
		Stmts:  NewStmts(hints.Stmts),
		Exprs:  NewExprs(hints.Exprs),
		Blocks: NewBlocks(hints.Stmts/4 + 1),
		Idents: NewIdents(hints.Exprs),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushItem(file FileID, item ItemID) {
	f := b.Files.Get(file)
	f.Items = append(f.Items, item)
}
