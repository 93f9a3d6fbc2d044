package parser

import (
	"errors"
	"testing"

	"yasl/internal/diag"
)

func TestRejectedConstructs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  diag.Code
	}{
		{"pub modifier", "pub fn f() {}", diag.SynUnsupportedModifier},
		{"const item", "const X: f32 = 1.0;", diag.SynUnsupportedModifier},
		{"unsafe fn", "unsafe fn f() {}", diag.SynUnsupportedModifier},
		{"mut param", "fn f(mut x: f32) {}", diag.SynUnsupportedModifier},
		{"mut let", "fn f() { let mut x = 1; }", diag.SynUnsupportedModifier},
		{"struct", "struct S {}", diag.SynUnsupportedItem},
		{"use", "use foo;", diag.SynUnsupportedItem},
		{"nested impl", "fn f() { impl S {} }", diag.SynUnsupportedItem},
		{"while", "fn f() { while true {} }", diag.SynUnsupportedControlFlow},
		{"loop", "fn f() { loop {} }", diag.SynUnsupportedControlFlow},
		{"break", "fn f() { break; }", diag.SynUnsupportedControlFlow},
		{"tuple pattern", "fn f() { let (a, b) = 1; }", diag.SynUnsupportedPattern},
		{"wildcard param", "fn f(_: f32) {}", diag.SynUnsupportedPattern},
		{"tuple return type", "fn f() -> (f32, f32) {}", diag.SynUnsupportedTuple},
		{"tuple value", "fn f() { let x = (1, 2); }", diag.SynUnsupportedTuple},
		{"unit value", "fn f() { let x = (); }", diag.SynUnsupportedTuple},
		{"tuple field", "fn f() { let x = t.0; }", diag.SynUnsupportedTuple},
		{"generic fn", "fn f<T>() {}", diag.SynUnsupportedGeneric},
		{"turbofish", "fn f() { let x = glsl::<f32>; }", diag.SynUnsupportedGeneric},
		{"reference", "fn f() { let x = &y; }", diag.SynUnsupportedExpr},
		{"deref", "fn f() { let x = *y; }", diag.SynUnsupportedExpr},
		{"method call", "fn f() { let x = a.len(); }", diag.SynUnsupportedExpr},
		{"index", "fn f() { let x = a[0]; }", diag.SynUnsupportedExpr},
		{"closure", "fn f() { let g = |y| y; }", diag.SynUnsupportedExpr},
		{"macro", "fn f() { println!(1); }", diag.SynUnsupportedExpr},
		{"array type", "static A: [f32; 4] = 1;", diag.SynUnsupportedExpr},
		{"three segment path", "fn f() { let x = glsl::a::b; }", diag.SynUnsupportedPath},
		{"path as name", "fn glsl::f() {}", diag.SynUnsupportedPath},
		{"attribute", "#[inline] fn f() {}", diag.SynUnsupportedAttribute},
		{"unknown namespace", "fn f() { let x = foo::bar(); }", diag.SynUnknownNamespace},
		{"unknown type", "static X: mat4 = 1;", diag.SynUnknownType},
		{"vector of five", "static X: vec5<f32> = 1;", diag.SynUnknownType},
		{"unknown component", "static X: vec2<half> = 1;", diag.SynUnknownType},
		{"if as value", "fn f() { let x = 1 + if a { }; }", diag.SynStatementInValue},
		{"block as argument", "fn f() { g({ 1; }); }", diag.SynStatementInValue},
		{"return as value", "fn f() { let x = return; }", diag.SynStatementInValue},
		{"literal target", "fn f() { 1 = 2; }", diag.SynBadAssignTarget},
		{"call target", "fn f() { g() += 2; }", diag.SynBadAssignTarget},
		{"bad slot direction", "layout<uniform, 0> x: f32;", diag.SynBadSlotDirection},
		{"oversized slot index", "layout<input, 99999999999> x: f32;", diag.LexBadNumber},
		{"float slot index", "layout<input, 1.0> x: f32;", diag.SynBadSlotIndex},
		{"missing semicolon", "fn f() { let x = 1 }", diag.SynExpectSemicolon},
		{"missing statement semicolon", "fn f() { x }", diag.SynExpectSemicolon},
		{"let at top level", "let x = 1;", diag.SynUnexpectedTopLevel},
		{"fn without keyword", "main() {}", diag.SynUnexpectedTopLevel},
		{"missing body", "fn f();", diag.SynExpectBlock},
		{"unclosed block", "fn f() { let x = 1;", diag.SynUnclosedDelimiter},
		{"missing expression", "static X: f32 = ;", diag.SynExpectExpression},
		{"bad number", "static X: f32 = 1e;", diag.LexBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, _ := parseSource(t, tt.input)
			if bag.Len() != 1 {
				t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(bag))
			}
			if got := bag.Items()[0].Code; got != tt.want {
				t.Errorf("got %s, want %s (%s)", got.ID(), tt.want.ID(), diagnosticsSummary(bag))
			}
		})
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	_, _, bag, _ := parseSource(t, "pub fn a() {}\nstruct S {}\nfn b() { while x {} }")
	if bag.Len() != 1 {
		t.Fatalf("expected a single diagnostic, got %s", diagnosticsSummary(bag))
	}
	if bag.Items()[0].Code != diag.SynUnsupportedModifier {
		t.Errorf("first error should win, got %s", diagnosticsSummary(bag))
	}
}

func TestParseErrorClasses(t *testing.T) {
	tests := []struct {
		input string
		class error
	}{
		{"fn f() { let x = foo::bar; }", diag.ErrUnknownNamespace},
		{"static X: mat3 = 1;", diag.ErrUnknownType},
		{"pub fn f() {}", diag.ErrUnsupportedConstruct},
		{"fn f() { let x = 1 }", diag.ErrSyntax},
		{"static X: f32 = 1.5f32;", diag.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fs := newVirtual(tt.input)
			_, err := Parse(fs.Get(0), newBuilder(), "")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.class) {
				t.Errorf("error %v does not match class %v", err, tt.class)
			}
			de, ok := diag.AsError(err)
			if !ok || !de.Anchored() {
				t.Errorf("expected an anchored diagnostic error, got %#v", err)
			}
		})
	}
}

func TestUnknownNamespaceSpan(t *testing.T) {
	_, _, bag, fs := parseSource(t, "fn f() { let x = foo::bar(1); }")
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %s", diagnosticsSummary(bag))
	}
	if got := fs.Text(bag.Items()[0].Primary); got != "foo" {
		t.Errorf("error should point at the namespace, got %q", got)
	}
}
