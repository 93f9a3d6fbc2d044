package parser

import (
	"fmt"
	"strings"
	"testing"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/lexer"
	"yasl/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseSource parses src with a roomy bag so fail-fast behaviour is visible.
func parseSource(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yasl", []byte(src))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: rep})
	builder := ast.NewBuilder(ast.Hints{})
	res := ParseFile(lx, builder, Options{Reporter: rep})
	if res.Failed && !bag.HasErrors() {
		t.Fatalf("Failed=%v but bag=%s", res.Failed, diagnosticsSummary(bag))
	}
	return builder, res.File, bag, fs
}

func mustParse(t *testing.T, src string) (*ast.Builder, ast.FileID, *source.FileSet) {
	t.Helper()
	b, file, bag, fs := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	return b, file, fs
}

// sexpr renders a value expression as an s-expression.
func sexpr(b *ast.Builder, id ast.ExprID) string {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := b.Exprs.Literal(id)
		return lit.Text
	case ast.ExprIdent:
		data, _ := b.Exprs.Ident(id)
		return b.Idents.Get(data.Ident).Qualified()
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		return fmt.Sprintf("(%s %s %s)", data.Op, sexpr(b, data.Left), sexpr(b, data.Right))
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		return fmt.Sprintf("(%s %s)", data.Op, sexpr(b, data.Operand))
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		parts := []string{"call", b.Idents.Get(data.Callee).Qualified()}
		for _, arg := range data.Args {
			parts = append(parts, sexpr(b, arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprCast:
		data, _ := b.Exprs.Cast(id)
		return fmt.Sprintf("(as %s %s)", sexpr(b, data.Value), data.Target.Type)
	case ast.ExprMember:
		data, _ := b.Exprs.Member(id)
		return fmt.Sprintf("(. %s %s)", sexpr(b, data.Target), data.Member)
	case ast.ExprGroup:
		data, _ := b.Exprs.Group(id)
		return fmt.Sprintf("(group %s)", sexpr(b, data.Inner))
	case ast.ExprAssign:
		data, _ := b.Exprs.Assign(id)
		return fmt.Sprintf("(%s %s %s)", data.Op, sexpr(b, data.Target), sexpr(b, data.Value))
	}
	return "<" + expr.Kind.String() + ">"
}

// fnBody returns the statements of the first function in file.
func fnBody(t *testing.T, b *ast.Builder, file ast.FileID) []ast.StmtID {
	t.Helper()
	for _, item := range b.Files.Get(file).Items {
		if fn := b.Items.Fn(item); fn != nil {
			return b.Blocks.Get(fn.Body).Stmts
		}
	}
	t.Fatal("no function in file")
	return nil
}

func newVirtual(src string) *source.FileSet {
	fs := source.NewFileSet()
	fs.AddVirtual("test.yasl", []byte(src))
	return fs
}

func newBuilder() *ast.Builder {
	return ast.NewBuilder(ast.Hints{})
}
