package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"yasl/internal/ast"
	"yasl/internal/sema"
	"yasl/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) *treeNode {
	n.children = append(n.children, children...)
	return n
}

func leaf(format string, args ...any) *treeNode {
	return &treeNode{label: fmt.Sprintf(format, args...)}
}

// astPrinter builds tree nodes. types is optional; with it every
// expression and binding is annotated with its resolved type.
type astPrinter struct {
	b     *ast.Builder
	fs    *source.FileSet
	types *sema.Result
}

// FormatASTTree writes the file as an indented tree. Pass res to annotate
// expressions with resolved types, or nil for the bare parse.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet, res *sema.Result) error {
	p := astPrinter{b: builder, fs: fs, types: res}
	root := p.file(fileID)
	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, n *treeNode, indent string) {
	for i, child := range n.children {
		last := i == len(n.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(indent)
		sb.WriteString(branch)
		sb.WriteString(child.label)
		sb.WriteByte('\n')
		writeChildren(sb, child, indent+next)
	}
}

func (p *astPrinter) span(sp source.Span) string {
	if p.fs == nil || !p.fs.Has(sp.File) {
		return sp.String()
	}
	start, end := p.fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (p *astPrinter) ident(id ast.IdentID) string {
	ident := p.b.Idents.Get(id)
	if ident == nil {
		return "<nil>"
	}
	s := ident.Qualified()
	if p.types != nil {
		s += ": " + p.types.IdentType(id).String()
	}
	return s
}

func (p *astPrinter) file(fileID ast.FileID) *treeNode {
	file := p.b.Files.Get(fileID)
	if file == nil {
		return leaf("File[%d]: <nil>", fileID)
	}
	header := "File"
	if p.fs != nil && p.fs.Has(file.Span.File) {
		header = p.fs.Get(file.Span.File).FormatPath("auto", p.fs.BaseDir())
	}
	root := leaf("%s (span: %s)", header, p.span(file.Span))
	for _, itemID := range file.Items {
		root.add(p.item(itemID))
	}
	return root
}

func (p *astPrinter) item(id ast.ItemID) *treeNode {
	item := p.b.Items.Get(id)
	if item == nil {
		return leaf("<nil item>")
	}
	node := leaf("%s (span: %s)", item.Kind, p.span(item.Span))
	switch item.Kind {
	case ast.ItemStatic:
		st := p.b.Items.Static(id)
		node.add(
			leaf("Name: %s", p.ident(st.Name)),
			leaf("Type: %s", st.Type.Type),
			p.expr("Value", st.Value),
		)
	case ast.ItemSlot:
		sl := p.b.Items.Slot(id)
		node.add(
			leaf("Direction: %s", sl.Direction),
			leaf("Location: %d", sl.Index),
			leaf("Name: %s", p.ident(sl.Name)),
			leaf("Type: %s", sl.Type.Type),
		)
	case ast.ItemFn:
		fn := p.b.Items.Fn(id)
		node.add(leaf("Name: %s", p.ident(fn.Name)))
		params := leaf("Params")
		for _, prm := range fn.Params {
			params.add(leaf("%s: %s", p.b.Idents.Get(prm.Name).Name, prm.Type.Type))
		}
		node.add(params, leaf("Result: %s", fn.Result.Type), p.block("Body", fn.Body))
	}
	return node
}

func (p *astPrinter) block(label string, id ast.BlockID) *treeNode {
	blk := p.b.Blocks.Get(id)
	if blk == nil {
		return leaf("%s: <none>", label)
	}
	node := leaf("%s (span: %s)", label, p.span(blk.Span))
	for _, stmtID := range blk.Stmts {
		node.add(p.stmt(stmtID))
	}
	return node
}

func (p *astPrinter) stmt(id ast.StmtID) *treeNode {
	st := p.b.Stmts.Get(id)
	if st == nil {
		return leaf("<nil stmt>")
	}
	switch st.Kind {
	case ast.StmtLet:
		let := p.b.Stmts.Let(id)
		node := leaf("Let %s (span: %s)", p.ident(let.Name), p.span(st.Span))
		if let.HasType {
			node.add(leaf("Type: %s", let.Type.Type))
		}
		if let.Value.IsValid() {
			node.add(p.expr("Value", let.Value))
		}
		return node
	case ast.StmtExpr:
		return p.expr("Expr", p.b.Stmts.Expr(id).Expr)
	case ast.StmtItem:
		return leaf("Item").add(p.item(p.b.Stmts.Item(id).Item))
	}
	return leaf("%s", st.Kind)
}

func (p *astPrinter) typeOf(id ast.ExprID) string {
	if p.types == nil {
		return ""
	}
	return " : " + p.types.ExprType(id).String()
}

func (p *astPrinter) expr(label string, id ast.ExprID) *treeNode {
	e := p.b.Exprs.Get(id)
	if e == nil {
		return leaf("%s: <none>", label)
	}
	head := func(format string, args ...any) *treeNode {
		return leaf("%s: %s%s", label, fmt.Sprintf(format, args...), p.typeOf(id))
	}
	ex := p.b.Exprs
	switch e.Kind {
	case ast.ExprLit:
		lit, _ := ex.Literal(id)
		return head("Lit %s", lit.Text)
	case ast.ExprIdent:
		data, _ := ex.Ident(id)
		return head("Ident %s", p.b.Idents.Get(data.Ident).Qualified())
	case ast.ExprBinary:
		data, _ := ex.Binary(id)
		return head("Binary %s", data.Op).add(p.expr("Left", data.Left), p.expr("Right", data.Right))
	case ast.ExprUnary:
		data, _ := ex.Unary(id)
		return head("Unary %s", data.Op).add(p.expr("Operand", data.Operand))
	case ast.ExprCall:
		data, _ := ex.Call(id)
		node := head("Call %s", p.b.Idents.Get(data.Callee).Qualified())
		for i, arg := range data.Args {
			node.add(p.expr(fmt.Sprintf("Arg[%d]", i), arg))
		}
		return node
	case ast.ExprCast:
		data, _ := ex.Cast(id)
		return head("Cast as %s", data.Target.Type).add(p.expr("Value", data.Value))
	case ast.ExprMember:
		data, _ := ex.Member(id)
		return head("Member .%s", data.Member).add(p.expr("Target", data.Target))
	case ast.ExprGroup:
		data, _ := ex.Group(id)
		return head("Group").add(p.expr("Inner", data.Inner))
	case ast.ExprAssign:
		data, _ := ex.Assign(id)
		return head("Assign %s", data.Op).add(p.expr("Target", data.Target), p.expr("Value", data.Value))
	case ast.ExprReturn:
		data, _ := ex.Return(id)
		node := leaf("%s: Return", label)
		if data.Value.IsValid() {
			node.add(p.expr("Value", data.Value))
		}
		return node
	case ast.ExprIf:
		data, _ := ex.If(id)
		node := leaf("%s: If", label).add(p.expr("Cond", data.Cond), p.block("Then", data.Then))
		if data.Else.IsValid() {
			node.add(p.expr("Else", data.Else))
		}
		return node
	case ast.ExprBlock:
		data, _ := ex.Block(id)
		return p.block(label, data.Block)
	}
	return leaf("%s: %s", label, e.Kind)
}
