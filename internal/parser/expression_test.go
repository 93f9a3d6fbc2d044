package parser

import (
	"testing"
)

func TestValueExpressionShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"a - b - c", "(- (- a b) c)"},
		{"a * b + c * d", "(+ (* a b) (* c d))"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a == b | c", "(== a (| b c))"},
		{"a & b ^ c | d", "(| (^ (& a b) c) d)"},
		{"a << 1 + b", "(<< a (+ 1 b))"},
		{"a < b && c >= d", "(&& (< a b) (>= c d))"},
		{"-a as f32", "(as (- a) f32)"},
		{"a + b as f64", "(+ a (as b f64))"},
		{"x as i32 as u32", "(as (as x i32) u32)"},
		{"!a.x", "(! (. a x))"},
		{"--a", "(- (- a))"},
		{"v.xy.x", "(. (. v xy) x)"},
		{"(a + b) * c", "(* (group (+ a b)) c)"},
		{"glsl::sin(x, 1.0)", "(call glsl::sin x 1.0)"},
		{"f64::vec3(1.0, 2.0, 3.0)", "(call f64::vec3 1.0 2.0 3.0)"},
		{"helper()", "(call helper)"},
		{"helper(a, b,)", "(call helper a b)"},
		{"true && false", "(&& true false)"},
		{"0x1F + 1_000", "(+ 0x1F 1_000)"},
		{"glsl::gl_Position.xy", "(. glsl::gl_Position xy)"},
		{"v as vec3<f32>", "(as v vec3<f32>)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, file, _ := mustParse(t, "static X: f32 = "+tt.input+";")
			st := b.Items.Static(b.Files.Get(file).Items[0])
			if st == nil {
				t.Fatal("expected static item")
			}
			if got := sexpr(b, st.Value); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIdentifierPrefixes(t *testing.T) {
	b, file, _ := mustParse(t, `fn main() {
	let v = f64::vec3(1.0, 2.0, 3.0);
	let n = glsl::normalize(v);
	let m = bool::vec2(true, false);
	let i = i32::vec4(1, 2, 3, 4);
	let u = u32::vec2(1, 2);
	let f = f32::vec2(1.0, 2.0);
	let c = helper(n);
}`)
	want := []struct{ name, callee string }{
		{"yasl_v", "dvec3"},
		{"yasl_n", "normalize"},
		{"yasl_m", "bvec2"},
		{"yasl_i", "ivec4"},
		{"yasl_u", "uvec2"},
		{"yasl_f", "vec2"},
		{"yasl_c", "yasl_helper"},
	}
	stmts := fnBody(t, b, file)
	if len(stmts) != len(want) {
		t.Fatalf("expected %d statements, got %d", len(want), len(stmts))
	}
	for i, stmt := range stmts {
		let := b.Stmts.Let(stmt)
		if let == nil {
			t.Fatalf("stmt %d is not a let", i)
		}
		if got := b.Idents.Get(let.Name).Emitted(); got != want[i].name {
			t.Errorf("stmt %d: binding %q, want %q", i, got, want[i].name)
		}
		call, ok := b.Exprs.Call(let.Value)
		if !ok {
			t.Fatalf("stmt %d: initializer is not a call", i)
		}
		if got := b.Idents.Get(call.Callee).Emitted(); got != want[i].callee {
			t.Errorf("stmt %d: callee %q, want %q", i, got, want[i].callee)
		}
	}
}

func TestCustomPrefix(t *testing.T) {
	fs := newVirtual("fn main() { let x = 1; }")
	b := newBuilder()
	file, err := Parse(fs.Get(0), b, "my_")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	let := b.Stmts.Let(fnBody(t, b, file)[0])
	if got := b.Idents.Get(let.Name).Emitted(); got != "my_x" {
		t.Errorf("got %q, want my_x", got)
	}
}
