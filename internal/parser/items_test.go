package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"yasl/internal/ast"
	"yasl/internal/testkit"
	"yasl/internal/types"
)

func TestParseItems(t *testing.T) {
	src := `layout<input,0> pos: vec3<f32>;
layout<output, 0x2> color: vec4<f32>;
static GAMMA: f32 = 2.2;
fn shade(c: vec3<f32>, k: f32,) -> vec3<f32> { return c; }
fn main() {}
`
	b, file, fs := mustParse(t, src)
	items := b.Files.Get(file).Items
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	kinds := make([]ast.ItemKind, len(items))
	for i, id := range items {
		kinds[i] = b.Items.Get(id).Kind
	}
	wantKinds := []ast.ItemKind{ast.ItemSlot, ast.ItemSlot, ast.ItemStatic, ast.ItemFn, ast.ItemFn}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("item kinds mismatch (-want +got):\n%s", diff)
	}

	in := b.Items.Slot(items[0])
	if in.Direction != ast.SlotInput || in.Index != 0 || in.Type.Type != types.MakeVector(3, types.ScalarFloat32) {
		t.Errorf("unexpected input slot %+v", in)
	}
	out := b.Items.Slot(items[1])
	if out.Direction != ast.SlotOutput || out.Index != 2 {
		t.Errorf("unexpected output slot %+v", out)
	}
	if got := b.Idents.Get(out.Name).Emitted(); got != "yasl_color" {
		t.Errorf("slot name %q", got)
	}

	st := b.Items.Static(items[2])
	if st.Type.Type != types.Float32 || sexpr(b, st.Value) != "2.2" {
		t.Errorf("unexpected static %+v", st)
	}

	shade := b.Items.Fn(items[3])
	if len(shade.Params) != 2 || !shade.HasResult {
		t.Fatalf("unexpected fn %+v", shade)
	}
	if got := fs.Text(shade.Header); got != "fn shade(c: vec3<f32>, k: f32,) -> vec3<f32>" {
		t.Errorf("header text %q", got)
	}
	if got := fs.Text(shade.Params[1].Type.Span); got != "f32" {
		t.Errorf("param type text %q", got)
	}

	main := b.Items.Fn(items[4])
	if main.HasResult || !main.Result.Type.IsVoid() {
		t.Errorf("main should return void, got %+v", main.Result)
	}
	if got := fs.Text(main.Header); got != "fn main()" {
		t.Errorf("main header %q", got)
	}
	body := b.Blocks.Get(main.Body)
	if fs.Text(body.Open) != "{" || fs.Text(body.Close) != "}" || len(body.Stmts) != 0 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestUnitTypeIsVoid(t *testing.T) {
	b, file, _ := mustParse(t, "fn f() -> () {}")
	fn := b.Items.Fn(b.Files.Get(file).Items[0])
	if !fn.HasResult || !fn.Result.Type.IsVoid() {
		t.Errorf("expected explicit void result, got %+v", fn.Result)
	}
}

func TestEmptyModule(t *testing.T) {
	b, file, _ := mustParse(t, "// nothing here\n")
	if n := len(b.Files.Get(file).Items); n != 0 {
		t.Errorf("expected no items, got %d", n)
	}
}

func TestSpansNest(t *testing.T) {
	srcs := []string{
		"layout<input,0> pos: vec3<f32>;\nfn main() { glsl::gl_Position = f32::vec4(pos, 1.0); }",
		"static SCALE: f32 = 2.0;\nfn main() { let a = SCALE * 3.0; }",
		"fn f(x: i32) -> i32 { if x > 0 { return x; } else { return -x; } }",
		"fn main() { fn inner() -> f32 { return 1.0; } let y = inner(); }",
		"fn main() { let a = 1; a += 2; { a = 3; } }",
	}
	for _, src := range srcs {
		b, file, fs := mustParse(t, src)
		if err := testkit.CheckSpanInvariants(b, file, fs.Get(1)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}
