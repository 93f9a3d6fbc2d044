package sourcemap

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/glsl"
	"yasl/internal/parser"
	"yasl/internal/sema"
	"yasl/internal/source"
)

const shaderSrc = `layout<input, 0> pos: vec3<f32>;
static GAMMA: f32 = 2.2;
fn main() {
	let a = 1.0;
	if a > 0.5 {
		a = a * GAMMA;
	} else {
		a = 0.0;
	}
	let b = undefined_thing;
	return;
}
`

func build(t *testing.T, src string) (*glsl.Shader, SourceMap, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("shader.yasl", []byte(src))
	b := ast.NewBuilder(ast.Hints{})
	file, err := parser.Parse(fs.Get(id), b, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := sema.Check(b, file, sema.Options{})
	sh, err := glsl.Generate(b, file, &res, glsl.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return sh, Build(sh), fs
}

func TestSourceMapBijection(t *testing.T) {
	sh, sm, _ := build(t, shaderSrc)
	if err := sm.Verify(sh.Text); err != nil {
		t.Fatal(err)
	}
	out := strings.Split(sh.Text, "\n")
	// преамбула + тело + пустая строка + заглушка main
	if want := sm.Preamble + sm.Len() + 2; len(out) != want {
		t.Fatalf("output has %d lines, want %d", len(out), want)
	}
	for i, l := range sm.Lines {
		if !l.HasSpan {
			t.Errorf("entry %d (%q) has no span", i, l.Text)
		}
		if out[sm.Preamble+i] != l.String() {
			t.Errorf("entry %d = %q, output line = %q", i, l.String(), out[sm.Preamble+i])
		}
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	sh, sm, _ := build(t, shaderSrc)
	sm.Lines = append([]glsl.Line{{Text: "// injected"}}, sm.Lines...)
	if err := sm.Verify(sh.Text); err == nil {
		t.Fatal("expected a mismatch")
	}
}

func TestLookup(t *testing.T) {
	_, sm, fs := build(t, shaderSrc)
	if _, ok := sm.Lookup(1); ok {
		t.Error("the #version line is synthesized and must not resolve")
	}
	first, ok := sm.Lookup(2)
	if !ok || fs.Text(first.Span) != "layout<input, 0> pos: vec3<f32>;" {
		t.Errorf("line 2 resolved to %+v", first)
	}
	if _, ok := sm.Lookup(sm.Preamble + sm.Len() + 1); ok {
		t.Error("blank separator line must not resolve")
	}
	if _, ok := sm.Lookup(0); ok {
		t.Error("line 0 must not resolve")
	}
}

func TestTranslateAnchorsBackendError(t *testing.T) {
	src := "static A: f32 = 1.0;\nstatic B: f32 = 2.0;\nstatic C: f32 = 3.0;\nstatic D: f32 = oops;\n"
	_, sm, fs := build(t, src)
	// строка 5 вывода: это sm.Lines[3]
	log := "shader.glsl:5: 'yasl_oops' : syntax error\n"
	err := sm.Translate(log)
	if !err.Anchored() {
		t.Fatalf("expected anchored error, got %v", err)
	}
	if !errors.Is(err, diag.ErrBackendCompile) {
		t.Errorf("error class = %v", errors.Unwrap(err))
	}
	sp, _ := err.Span()
	if sp != sm.Lines[3].Span {
		t.Errorf("anchored at %v, want %v", sp, sm.Lines[3].Span)
	}
	if got := fs.Text(sp); got != "static D: f32 = oops;" {
		t.Errorf("anchored text %q", got)
	}
	if err.Diag.Message != "shader.glsl:5: 'yasl_oops' : syntax error" {
		t.Errorf("message %q", err.Diag.Message)
	}
}

func TestTranslateGlslangFormat(t *testing.T) {
	sh, sm, fs := build(t, shaderSrc)
	lines := strings.Split(sh.Text, "\n")
	var target int
	for i, l := range lines {
		if strings.Contains(l, "yasl_undefined_thing") {
			target = i + 1
		}
	}
	log := "stdin\nERROR: 0:" + strconv.Itoa(target) + ": 'yasl_undefined_thing' : undeclared identifier\nERROR: 1 compilation errors.  No code generated.\n"
	err := sm.Translate(log)
	if !err.Anchored() {
		t.Fatalf("expected anchored error, got %v", err)
	}
	sp, _ := err.Span()
	if got := fs.Text(sp); got != "let b = undefined_thing;" {
		t.Errorf("anchored text %q", got)
	}
}

func TestTranslateFirstAnchoredWins(t *testing.T) {
	_, sm, fs := build(t, shaderSrc)
	log := "ERROR: 0:1: preamble problem\nERROR: 0:999: way out of range\nERROR: 0:2: first real\nERROR: 0:3: second real\n"
	err := sm.Translate(log)
	sp, ok := err.Span()
	if !ok {
		t.Fatalf("expected anchored error, got %v", err)
	}
	if got := fs.Text(sp); got != "layout<input, 0> pos: vec3<f32>;" {
		t.Errorf("anchored text %q", got)
	}
	if err.Diag.Message != "ERROR: 0:2: first real" {
		t.Errorf("message %q", err.Diag.Message)
	}
}

func TestTranslatePassesThroughUnmatched(t *testing.T) {
	_, sm, _ := build(t, shaderSrc)
	tests := []string{
		"internal compiler failure\n",
		"shader.glsl:1: error in preamble",
		"shader.glsl:4242: out of range",
	}
	for _, log := range tests {
		err := sm.Translate(log)
		if err.Anchored() {
			t.Errorf("%q: expected unanchored passthrough", log)
		}
		if err.Diag.Message != strings.TrimSpace(log) {
			t.Errorf("%q: message %q", log, err.Diag.Message)
		}
		if !errors.Is(err, diag.ErrBackendCompile) {
			t.Errorf("%q: wrong class", log)
		}
	}
}

func TestMapFileKeepsTranslation(t *testing.T) {
	sh, sm, fs := build(t, shaderSrc)
	path := t.TempDir() + "/shader.map"
	if err := WriteFile(path, sm, "shader.yasl"); err != nil {
		t.Fatal(err)
	}
	loaded, src, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if src != "shader.yasl" {
		t.Errorf("source = %q", src)
	}
	if err := loaded.Verify(sh.Text); err != nil {
		t.Fatalf("decoded map does not match output: %v", err)
	}
	// строка 6: "let a = 1.0;" внутри main
	log := "ERROR: 0:6: 'x' : undeclared identifier"
	want, got := sm.Translate(log), loaded.Translate(log)
	ws, _ := want.Span()
	gs, _ := got.Span()
	if fs.Text(ws) != fs.Text(gs) || !got.Anchored() {
		t.Errorf("decoded map anchors %q, original %q", fs.Text(gs), fs.Text(ws))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode([]byte{0xc1}); err == nil {
		t.Fatal("expected decode error")
	}
}
