package sema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/parser"
	"yasl/internal/source"
	"yasl/internal/types"
)

type checked struct {
	builder *ast.Builder
	file    ast.FileID
	result  Result
	bag     *diag.Bag
}

func check(t *testing.T, src string) checked {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.yasl", []byte(src))
	builder := ast.NewBuilder(ast.Hints{})
	file, err := parser.Parse(fs.Get(id), builder, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bag := diag.NewBag(32)
	res := Check(builder, file, Options{Reporter: diag.BagReporter{Bag: bag}})
	return checked{builder: builder, file: file, result: res, bag: bag}
}

// bindingTypes renders every declaration as "kind name: type" in source order.
func (c checked) bindingTypes() []string {
	out := make([]string, 0, len(c.result.Bindings))
	for _, b := range c.result.Bindings {
		name := c.builder.Idents.Get(b.Ident).Name
		out = append(out, b.Kind.String()+" "+name+": "+b.Type.String())
	}
	return out
}

func TestIntegerLiteralInference(t *testing.T) {
	c := check(t, "fn main(){ let a = 1 + 2; return; }")
	want := []string{"fn main: void", "let a: i32"}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
	if !c.result.Bindings[1].Inferred {
		t.Errorf("a should be marked inferred")
	}
}

func TestLiteralAndOperatorRules(t *testing.T) {
	src := `layout<input,0> pos: vec3<f32>;
static GAMMA: f64 = 2.2;
fn scale(v: vec3<f32>) -> vec3<f32> { return v; }
fn main() {
	let i = 7;
	let f = 1.5;
	let b = true;
	let sum = f + i;
	let neg = -GAMMA;
	let not = !b;
	let cast = i as u32;
	let p = pos;
	let call = scale(p);
	let sw = p.xy;
	let one = p.z;
	let bad = p.xyzwx;
	let grouped = (i * 2);
	let cmp = i < 3;
	let typed: f32 = i;
}`
	c := check(t, src)
	want := []string{
		"slot pos: vec3<f32>",
		"static GAMMA: f64",
		"fn scale: vec3<f32>",
		"param v: vec3<f32>",
		"fn main: void",
		"let i: i32",
		"let f: f32",
		"let b: bool",
		"let sum: f32",
		"let neg: f64",
		"let not: bool",
		"let cast: u32",
		"let p: vec3<f32>",
		"let call: vec3<f32>",
		"let sw: vec2<f32>",
		"let one: f32",
		"let bad: void",
		"let grouped: i32",
		"let cmp: i32",
		"let typed: f32",
	}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespaceCalls(t *testing.T) {
	src := `fn main() {
	let v = f64::vec3(1.0, 2.0, 3.0);
	let iv = i32::vec2(1, 2);
	let bv = bool::vec4(true, true, false, false);
	let uv = u32::vec3(1, 2, 3);
	let fv = f32::vec4(0.0, 0.0, 0.0, 1.0);
	let len = glsl::length(fv);
	let s = glsl::sin(1.0);
	let n = glsl::normalize(v);
	let a = glsl::any(bv);
	let pos = glsl::gl_Position;
	let unknown = glsl::mystery(1.0);
	let conv = i32::i32(1.5);
}`
	c := check(t, src)
	want := []string{
		"fn main: void",
		"let v: vec3<f64>",
		"let iv: vec2<i32>",
		"let bv: vec4<bool>",
		"let uv: vec3<u32>",
		"let fv: vec4<f32>",
		"let len: f32",
		"let s: f32",
		"let n: vec3<f64>",
		"let a: bool",
		"let pos: vec4<f32>",
		"let unknown: void",
		"let conv: i32",
	}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestInferenceIsForwardOnly(t *testing.T) {
	// b ссылается на a до объявления a
	c := check(t, "fn main() { let b = a; let a = 1; let c = a; }")
	want := []string{"fn main: void", "let b: void", "let a: i32", "let c: i32"}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestReferencesCarryResolvedType(t *testing.T) {
	c := check(t, "fn main() { let a = 1.0; let b = a * 2.0; }")
	var refs []types.Type
	for id, typ := range c.result.IdentTypes {
		ident := c.builder.Idents.Get(id)
		if ident.Name == "a" {
			refs = append(refs, typ)
		}
	}
	if len(refs) != 2 {
		t.Fatalf("expected declaration and one reference of a, got %d", len(refs))
	}
	for _, typ := range refs {
		if typ != types.Float32 {
			t.Errorf("a resolved to %s, want f32", typ)
		}
	}
}

func TestNestedBlocksDoNotLeak(t *testing.T) {
	src := `fn main() {
	let outer = 1;
	if outer > 0 {
		let inner = 2.0;
		let seen = outer;
	} else {
		let other = inner;
	}
	{ let shadow = true; }
	let after = inner;
	let still = shadow;
}`
	c := check(t, src)
	want := []string{
		"fn main: void",
		"let outer: i32",
		"let inner: f32",
		"let seen: i32",
		"let other: void",
		"let shadow: bool",
		"let after: void",
		"let still: void",
	}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestShadowingUsesLatestBinding(t *testing.T) {
	c := check(t, "fn main() { let x = 1; let x = true; let y = x; }")
	want := []string{"fn main: void", "let x: i32", "let x: bool", "let y: bool"}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestForwardFunctionReferenceIsVoid(t *testing.T) {
	src := `fn main() { let x = later(); let y = earlier(); }
fn earlier() -> f32 { return 1.0; }
fn later() -> i32 { return 1; }`
	c := check(t, src)
	// earlier объявлена после main, поэтому тоже не видна
	want := []string{
		"fn main: void",
		"let x: void",
		"let y: void",
		"fn earlier: f32",
		"fn later: i32",
	}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}

	c = check(t, "fn helper() -> f32 { return 1.0; }\nfn main() { let x = helper(); }")
	if got := c.result.Bindings[2].Type; got != types.Float32 {
		t.Errorf("earlier function should resolve, got %s", got)
	}
}

func TestNestedItems(t *testing.T) {
	src := `static K: f32 = 1.0;
fn main() {
	let a = 1;
	static LOCAL: u32 = 3;
	fn inner(x: i32) -> i32 { let y = a; let z = x; return z; }
	let r = inner(a);
	let l = LOCAL;
	let k = K;
}`
	c := check(t, src)
	want := []string{
		"static K: f32",
		"fn main: void",
		"let a: i32",
		"static LOCAL: u32",
		"fn inner: i32",
		"param x: i32",
		"let y: i32",
		"let z: i32",
		"let r: i32",
		"let l: u32",
		"let k: f32",
	}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestVoidBindingIsLenient(t *testing.T) {
	c := check(t, "fn main() { let x; let y = x; let z = glsl::mystery(); }")
	want := []string{"fn main: void", "let x: void", "let y: void", "let z: void"}
	if diff := cmp.Diff(want, c.bindingTypes()); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
	if c.bag.HasErrors() {
		t.Fatalf("void bindings must not be errors: %+v", c.bag.Items())
	}
	if c.bag.Len() != 3 {
		t.Fatalf("expected one warning per void binding, got %d", c.bag.Len())
	}
	for _, d := range c.bag.Items() {
		if d.Code != diag.SemaVoidBinding || d.Severity != diag.SevWarning {
			t.Errorf("unexpected diagnostic %+v", d)
		}
	}
}

func TestExprTypesCoverStatements(t *testing.T) {
	c := check(t, "fn main() { let a = 1; a = 2; if a > 1 { return; } }")
	stmts := c.builder.Blocks.Get(c.builder.Items.Fn(c.builder.Files.Get(c.file).Items[0]).Body).Stmts
	assign := c.builder.Stmts.Expr(stmts[1]).Expr
	if got, ok := c.result.ExprTypes[assign]; !ok || !got.IsVoid() {
		t.Errorf("assignment should be recorded as void, got %v (%v)", got, ok)
	}
	ifExpr, _ := c.builder.Exprs.If(c.builder.Stmts.Expr(stmts[2]).Expr)
	if got := c.result.ExprType(ifExpr.Cond); got != types.Int {
		t.Errorf("condition typed %s, want i32 (left operand)", got)
	}
}

func TestCheckIsDeterministic(t *testing.T) {
	const src = "static A: f32 = 1.0;\nfn main() { let b = A; let c = glsl::sin(b); }"
	first := check(t, src).bindingTypes()
	for range 5 {
		if diff := cmp.Diff(first, check(t, src).bindingTypes()); diff != "" {
			t.Fatalf("non-deterministic result:\n%s", diff)
		}
	}
}
