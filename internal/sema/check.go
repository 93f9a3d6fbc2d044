package sema

import (
	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/types"
)

// Options configures semantic analysis.
type Options struct {
	// Reporter receives warnings about bindings that fell back to void.
	// Resolution never fails, so no errors are reported.
	Reporter diag.Reporter
}

// BindingKind tells what declared a name.
type BindingKind uint8

const (
	BindingLet BindingKind = iota
	BindingParam
	BindingStatic
	BindingSlot
	BindingFn
)

func (k BindingKind) String() string {
	switch k {
	case BindingLet:
		return "let"
	case BindingParam:
		return "param"
	case BindingStatic:
		return "static"
	case BindingSlot:
		return "slot"
	case BindingFn:
		return "fn"
	}
	return "?"
}

// Binding is one declaration, in source order.
type Binding struct {
	Kind  BindingKind
	Ident ast.IdentID
	Type  types.Type
	// Inferred is set for let bindings whose type came from the initializer.
	Inferred bool
}

// Result stores the resolved types. The AST is left untouched; every
// identifier (declaration or reference) and every expression has an entry.
type Result struct {
	IdentTypes map[ast.IdentID]types.Type
	ExprTypes  map[ast.ExprID]types.Type
	Bindings   []Binding
}

// IdentType returns the resolved type of id, void when unknown.
func (r *Result) IdentType(id ast.IdentID) types.Type {
	if r == nil {
		return types.Void()
	}
	return r.IdentTypes[id]
}

// ExprType returns the type recorded for expr, void when unknown.
func (r *Result) ExprType(id ast.ExprID) types.Type {
	if r == nil {
		return types.Void()
	}
	return r.ExprTypes[id]
}

// Check runs the single forward inference pass over a parsed file.
//
// Items are processed in declaration order: each static, slot and function
// signature enters the global mapping as it is met, and each function body
// is resolved against a clone of the globals seen so far. A call to a
// function declared later therefore resolves to void.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		IdentTypes: make(map[ast.IdentID]types.Type),
		ExprTypes:  make(map[ast.ExprID]types.Type),
	}
	if builder == nil || !fileID.IsValid() {
		return res
	}
	tc := typeChecker{
		builder:  builder,
		reporter: opts.Reporter,
		result:   &res,
	}
	tc.run(fileID)
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	reporter diag.Reporter
	result   *Result
}

func (tc *typeChecker) run(fileID ast.FileID) {
	file := tc.builder.Files.Get(fileID)
	if file == nil {
		return
	}
	globals := newScope()
	for _, item := range file.Items {
		tc.item(item, globals)
	}
}

// item declares the item in sc and resolves whatever it contains.
func (tc *typeChecker) item(id ast.ItemID, sc scope) {
	it := tc.builder.Items.Get(id)
	if it == nil {
		return
	}
	switch it.Kind {
	case ast.ItemStatic:
		st := tc.builder.Items.Static(id)
		tc.expr(st.Value, sc)
		tc.declare(sc, BindingStatic, st.Name, st.Type.Type, false)
	case ast.ItemSlot:
		slot := tc.builder.Items.Slot(id)
		tc.declare(sc, BindingSlot, slot.Name, slot.Type.Type, false)
	case ast.ItemFn:
		fn := tc.builder.Items.Fn(id)
		// имя видно в собственном теле
		tc.declare(sc, BindingFn, fn.Name, fn.Result.Type, false)
		local := sc.clone()
		for _, param := range fn.Params {
			tc.declare(local, BindingParam, param.Name, param.Type.Type, false)
		}
		tc.blockIn(fn.Body, local)
	}
}

func (tc *typeChecker) declare(sc scope, kind BindingKind, name ast.IdentID, t types.Type, inferred bool) {
	ident := tc.builder.Idents.Get(name)
	sc[ident.Emitted()] = t
	tc.result.IdentTypes[name] = t
	tc.result.Bindings = append(tc.result.Bindings, Binding{
		Kind:     kind,
		Ident:    name,
		Type:     t,
		Inferred: inferred,
	})
}

// blockIn walks a block whose declarations go straight into sc.
func (tc *typeChecker) blockIn(id ast.BlockID, sc scope) {
	block := tc.builder.Blocks.Get(id)
	if block == nil {
		return
	}
	for _, stmtID := range block.Stmts {
		tc.stmt(stmtID, sc)
	}
}

// nestedBlock walks a block in a child scope; its locals do not leak out.
func (tc *typeChecker) nestedBlock(id ast.BlockID, sc scope) {
	tc.blockIn(id, sc.clone())
}

func (tc *typeChecker) stmt(id ast.StmtID, sc scope) {
	st := tc.builder.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case ast.StmtLet:
		tc.let(id, sc)
	case ast.StmtExpr:
		tc.expr(tc.builder.Stmts.Expr(id).Expr, sc)
	case ast.StmtItem:
		tc.item(tc.builder.Stmts.Item(id).Item, sc)
	}
}

func (tc *typeChecker) let(id ast.StmtID, sc scope) {
	let := tc.builder.Stmts.Let(id)
	var valueType types.Type
	if let.Value.IsValid() {
		valueType = tc.expr(let.Value, sc)
	}
	switch {
	case let.HasType:
		tc.declare(sc, BindingLet, let.Name, let.Type.Type, false)
	case let.Value.IsValid():
		tc.declare(sc, BindingLet, let.Name, valueType, true)
		if valueType.IsVoid() {
			tc.warnVoid(id, let.Name, "initializer of %s has no known type; it becomes void")
		}
	default:
		tc.declare(sc, BindingLet, let.Name, types.Void(), true)
		tc.warnVoid(id, let.Name, "%s has neither a type nor an initializer; it becomes void")
	}
}

func (tc *typeChecker) warnVoid(stmt ast.StmtID, name ast.IdentID, format string) {
	if tc.reporter == nil {
		return
	}
	ident := tc.builder.Idents.Get(name)
	diag.ReportWarning(tc.reporter, diag.SemaVoidBinding, ident.Span, fmtName(format, ident.Name)).
		WithNote(tc.builder.Stmts.Get(stmt).Span, "declared here").
		Emit()
}
