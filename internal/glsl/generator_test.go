package glsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/parser"
	"yasl/internal/sema"
	"yasl/internal/source"
)

func generate(t *testing.T, src string, opt Options) (*Shader, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.yasl", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	file, err := parser.Parse(fs.Get(id), b, opt.Prefix)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := sema.Check(b, file, sema.Options{})
	shader, err := Generate(b, file, &res, opt)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return shader, fs
}

func bodyLines(sh *Shader) []string {
	var out []string
	sh.Body.Walk(func(l Line) { out = append(out, l.String()) })
	return out
}

func TestRoundTripScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "static",
			input: "static X: f32 = 1.0;",
			want:  []string{"float yasl_X = 1.0;"},
		},
		{
			name:  "input slot",
			input: "layout<input,0> p: vec3<f32>;",
			want:  []string{"layout(location=0) in vec3 yasl_p;"},
		},
		{
			name:  "integer inference",
			input: "fn main(){ let a = 1 + 2; return; }",
			want:  []string{"void yasl_main()", "{", "int yasl_a = 1 + 2;", "return;", "}"},
		},
		{
			name: "namespaced and user calls",
			input: `fn user_fn(v: f32) -> f32 { return v; }
fn main() { let x = 1.0; let s = glsl::sin(x); let u = user_fn(x); }`,
			want: []string{
				"float yasl_user_fn(float yasl_v)", "{", "return yasl_v;", "}",
				"void yasl_main()", "{",
				"float yasl_x = 1.0;",
				"float yasl_s = sin(yasl_x);",
				"float yasl_u = yasl_user_fn(yasl_x);",
				"}",
			},
		},
		{
			name: "comparison over bitwise operands",
			input: `fn main() { let a = 1; let b = 2; let c = 3;
let d = a & b == c; let e = a == b < c; let f = a < b == c; }`,
			want: []string{
				"void yasl_main()", "{",
				"int yasl_a = 1;", "int yasl_b = 2;", "int yasl_c = 3;",
				"int yasl_d = (yasl_a & yasl_b) == yasl_c;",
				"int yasl_e = (yasl_a == yasl_b) < yasl_c;",
				"int yasl_f = yasl_a < yasl_b == yasl_c;",
				"}",
			},
		},
		{
			name: "matching precedence stays flat",
			input: `fn main() { let a = 1; let b = 2; let c = 3;
let d = a + b * c; let e = a - b - c; let f = a | b ^ c; let g = a << 1 + b; let h = a - (b - c); }`,
			want: []string{
				"void yasl_main()", "{",
				"int yasl_a = 1;", "int yasl_b = 2;", "int yasl_c = 3;",
				"int yasl_d = yasl_a + yasl_b * yasl_c;",
				"int yasl_e = yasl_a - yasl_b - yasl_c;",
				"int yasl_f = yasl_a | yasl_b ^ yasl_c;",
				"int yasl_g = yasl_a << 1 + yasl_b;",
				"int yasl_h = yasl_a - (yasl_b - yasl_c);",
				"}",
			},
		},
		{
			name:  "nested negation",
			input: "fn main() { let a = 1.0; let b = - -a; let c = -a; }",
			want: []string{
				"void yasl_main()", "{",
				"float yasl_a = 1.0;",
				"float yasl_b = -(-yasl_a);",
				"float yasl_c = -yasl_a;",
				"}",
			},
		},
		{
			name:  "scalar conversions",
			input: "fn main() { let s = i32::i32(1.0); let f = f32::f32(1); let u = u32::u32(s); }",
			want: []string{
				"void yasl_main()", "{",
				"int yasl_s = int(1.0);",
				"float yasl_f = float(1);",
				"uint yasl_u = uint(yasl_s);",
				"}",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, _ := generate(t, tt.input, Options{})
			if diff := cmp.Diff(tt.want, bodyLines(sh)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShaderLayout(t *testing.T) {
	sh, _ := generate(t, "static X: f32 = 1.0;", Options{})
	want := "#version 450\nfloat yasl_X = 1.0;\n\nvoid main(){ yasl_main(); }"
	if sh.Text != want {
		t.Errorf("text mismatch:\n got %q\nwant %q", sh.Text, want)
	}
	if sh.Preamble != 1 {
		t.Errorf("preamble = %d, want 1", sh.Preamble)
	}
}

func TestEmptyModule(t *testing.T) {
	sh, _ := generate(t, "", Options{})
	if want := "#version 450\n\nvoid main(){ yasl_main(); }"; sh.Text != want {
		t.Errorf("got %q, want %q", sh.Text, want)
	}
}

func TestCustomOptions(t *testing.T) {
	sh, _ := generate(t, "fn start() {}", Options{Version: 460, Prefix: "my_", Entry: "start"})
	want := "#version 460\nvoid my_start()\n{\n}\n\nvoid main(){ my_start(); }"
	if sh.Text != want {
		t.Errorf("got %q, want %q", sh.Text, want)
	}
}

const fullShader = `layout<input, 0> pos: vec3<f32>;
layout<input, 1> uv: vec2<f32>;
layout<output, 0> color: vec4<f32>;
static GAMMA: f32 = 2.2;
static MASK: u32 = 0b1010;

fn shade(c: vec3<f32>, k: f32) -> vec3<f32> {
	return glsl::pow(c, f32::vec3(k, k, k));
}

fn main() {
	let base = f32::vec3(uv.x, uv.y, 0.5);
	let lit: vec3<f32> = shade(base, 1.0 / GAMMA);
	let n = 1_000;
	let flag = !(n > 10);
	let d = n as f64;
	let h = 0xFF_FF;
	let o = 0o17;
	let z = 007;
	let w;
	if flag {
		color = f32::vec4(lit.x, lit.y, lit.z, 1.0);
	} else if n < 0 {
		color.x = -1.0;
	} else {
		color *= 0.5;
	}
	{
		static LOCAL: i32 = 3;
		n += LOCAL;
	}
	glsl::gl_Position = f32::vec4(pos.x, pos.y, pos.z, 1.0);
	return;
}
`

func TestFullShaderGolden(t *testing.T) {
	sh, _ := generate(t, fullShader, Options{})
	want := strings.Join([]string{
		"#version 450",
		"layout(location=0) in vec3 yasl_pos;",
		"layout(location=1) in vec2 yasl_uv;",
		"layout(location=0) out vec4 yasl_color;",
		"float yasl_GAMMA = 2.2;",
		"uint yasl_MASK = 10;",
		"vec3 yasl_shade(vec3 yasl_c,float yasl_k)",
		"{",
		"return pow(yasl_c,vec3(yasl_k,yasl_k,yasl_k));",
		"}",
		"void yasl_main()",
		"{",
		"vec3 yasl_base = vec3(yasl_uv.x,yasl_uv.y,0.5);",
		"vec3 yasl_lit = yasl_shade(yasl_base,1.0 / yasl_GAMMA);",
		"int yasl_n = 1000;",
		"int yasl_flag = !(yasl_n > 10);",
		"double yasl_d = double(yasl_n);",
		"int yasl_h = 0xFFFF;",
		"int yasl_o = 15;",
		"int yasl_z = 7;",
		"void yasl_w;",
		"if(yasl_flag)",
		"{",
		"yasl_color = vec4(yasl_lit.x,yasl_lit.y,yasl_lit.z,1.0);",
		"}",
		"else",
		"if(yasl_n < 0)",
		"{",
		"yasl_color.x = -1.0;",
		"}",
		"else",
		"{",
		"yasl_color *= 0.5;",
		"}",
		"{",
		"int yasl_LOCAL = 3;",
		"yasl_n += yasl_LOCAL;",
		"}",
		"gl_Position = vec4(yasl_pos.x,yasl_pos.y,yasl_pos.z,1.0);",
		"return;",
		"}",
		"",
		"void main(){ yasl_main(); }",
	}, "\n")
	if diff := cmp.Diff(want, sh.Text); diff != "" {
		t.Errorf("shader mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesCarrySourceSpans(t *testing.T) {
	src := "fn main() {\n\tlet a = 1;\n\tif a > 0 { a = 2; } else { a = 3; }\n}"
	sh, fs := generate(t, src, Options{})
	var got []string
	sh.Body.Walk(func(l Line) {
		if !l.HasSpan {
			t.Errorf("line %q has no span", l.Text)
			return
		}
		got = append(got, fs.Text(l.Span))
	})
	want := []string{
		"fn main()",
		"{",
		"let a = 1;",
		"if a > 0",
		"{",
		"a = 2;",
		"}",
		"else",
		"{",
		"a = 3;",
		"}",
		"}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, _ := generate(t, fullShader, Options{})
	for range 10 {
		again, _ := generate(t, fullShader, Options{})
		if again.Text != first.Text {
			t.Fatal("output differs between runs")
		}
		if diff := cmp.Diff(bodyLines(first), bodyLines(again)); diff != "" {
			t.Fatalf("line tree differs:\n%s", diff)
		}
	}
}

func TestGenerateRejectsMissingInput(t *testing.T) {
	if _, err := Generate(nil, 1, nil, Options{}); err == nil {
		t.Error("expected error for nil builder")
	}
	b := ast.NewBuilder(ast.Hints{})
	if _, err := Generate(b, ast.NoFileID, nil, Options{}); err == nil {
		t.Error("expected error for invalid file")
	}
	// выражение-инструкция в позиции значения: внутренняя ошибка
	file := b.NewFile(source.Span{})
	ret := b.Exprs.NewReturn(source.Span{}, ast.NoExprID)
	name := b.Idents.New("X", "", "yasl_", source.Span{})
	b.PushItem(file, b.Items.NewStatic(source.Span{}, ast.StaticItem{Name: name, Value: ret}))
	_, err := Generate(b, file, nil, Options{})
	if !errors.Is(err, diag.ErrInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
}
