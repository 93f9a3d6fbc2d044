// Package testkit holds structural checks shared by parser and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"yasl/internal/ast"
	"yasl/internal/source"
)

// CheckSpanInvariants runs span invariants on a parsed file:
// the file span lies within the content, every item lies within the file,
// and every function body nests its statements inside its braces.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	c := checker{b: b, file: sf.ID}
	for _, it := range f.Items {
		if err := c.item(it, f.Span); err != nil {
			return err
		}
	}
	return nil
}

type checker struct {
	b    *ast.Builder
	file source.FileID
}

func (c checker) within(what string, sp, outer source.Span) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("empty %s span: %v", what, sp)
	}
	if sp.File != c.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, c.file)
	}
	if sp.Start < outer.Start || sp.End > outer.End {
		return fmt.Errorf("%s span %v is outside %v", what, sp, outer)
	}
	return nil
}

func (c checker) item(id ast.ItemID, outer source.Span) error {
	item := c.b.Items.Get(id)
	if item == nil {
		return fmt.Errorf("nil item for id=%d", id)
	}
	if err := c.within("item", item.Span, outer); err != nil {
		return err
	}
	if item.Kind != ast.ItemFn {
		return nil
	}
	fn := c.b.Items.Fn(id)
	if err := c.within("fn header", fn.Header, item.Span); err != nil {
		return err
	}
	return c.block(fn.Body, item.Span)
}

func (c checker) block(id ast.BlockID, outer source.Span) error {
	blk := c.b.Blocks.Get(id)
	if blk == nil {
		return fmt.Errorf("nil block for id=%d", id)
	}
	if err := c.within("block", blk.Span, outer); err != nil {
		return err
	}
	// содержимое строго между скобками
	inner := source.Span{File: c.file, Start: blk.Open.End, End: blk.Close.Start}
	prev := inner.Start
	for _, sid := range blk.Stmts {
		st := c.b.Stmts.Get(sid)
		if st == nil {
			return fmt.Errorf("nil stmt for id=%d", sid)
		}
		if err := c.within("stmt", st.Span, inner); err != nil {
			return err
		}
		if st.Span.Start < prev {
			return fmt.Errorf("stmt span %v overlaps previous statement ending at %d", st.Span, prev)
		}
		prev = st.Span.End
		if st.Kind == ast.StmtItem {
			if err := c.item(c.b.Stmts.Item(sid).Item, st.Span); err != nil {
				return err
			}
		}
	}
	return nil
}
