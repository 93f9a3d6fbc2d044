package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"yasl/internal/diag"
	"yasl/internal/lexer"
	"yasl/internal/source"
	"yasl/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.yasl", []byte(input))
	reporter := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}), reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	expected = append(expected, token.EOF)
	if diff := cmp.Diff(expected, kinds(tokens)); diff != "" {
		t.Fatalf("tokens for %q mismatch (-want +got):\n%s", input, diff)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", input, rep.diagnostics)
	}
	return tokens
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	tokens := expectTokens(t, input, kind)
	if tokens[0].Text != text {
		t.Fatalf("text for %q = %q, want %q", input, tokens[0].Text, text)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	expectSingleToken(t, "pos", token.Ident, "pos")
	expectSingleToken(t, "_tmp1", token.Ident, "_tmp1")
	expectSingleToken(t, "__", token.Ident, "__")
	expectSingleToken(t, "_", token.Underscore, "_")
	expectSingleToken(t, "цвет", token.Ident, "цвет")
	expectSingleToken(t, "static", token.KwStatic, "static")
	expectSingleToken(t, "Static", token.Ident, "Static")
	expectSingleToken(t, "f32", token.Ident, "f32")
	expectSingleToken(t, "input", token.Ident, "input")
	expectSingleToken(t, "layout", token.KwLayout, "layout")
	expectSingleToken(t, "struct", token.KwStruct, "struct")
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1_000", token.IntLit},
		{"0x1F", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o17", token.IntLit},
		{"2.2", token.FloatLit},
		{"1.", token.FloatLit},
		{".5", token.FloatLit},
		{"1e3", token.FloatLit},
		{"1.5E-3", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			expectSingleToken(t, tt.in, tt.kind, tt.in)
		})
	}
}

func TestNumberFollowedByMember(t *testing.T) {
	// "1.x" is a member access on an integer, "1..2" a range
	expectTokens(t, "1.x", token.IntLit, token.Dot, token.Ident)
	expectTokens(t, "1..2", token.IntLit, token.DotDot, token.IntLit)
}

func TestBadNumbers(t *testing.T) {
	tests := []string{"1e", "0x", "1u32", "2.0f32", "99999999999999999999999", "4294967296", "0x1_0000_0000"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, rep := makeTestLexer(in)
			tokens := collectAllTokens(lx)
			if tokens[0].Kind != token.Invalid {
				t.Fatalf("first token = %v, want invalid", tokens[0].Kind)
			}
			if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != diag.LexBadNumber {
				t.Fatalf("expected LexBadNumber, got %v", rep.codes())
			}
		})
	}
}

func TestIntLiteralWidth(t *testing.T) {
	for _, in := range []string{"4294967295", "0xFFFF_FFFF", "0b1010", "0o777", "007"} {
		lx, rep := makeTestLexer(in)
		tokens := collectAllTokens(lx)
		if tokens[0].Kind != token.IntLit || len(rep.diagnostics) != 0 {
			t.Errorf("%s: got %v, diagnostics %v", in, tokens[0].Kind, rep.codes())
		}
	}
}

func TestOperatorsGreedy(t *testing.T) {
	expectTokens(t, "<<= >>= << >> <= >= < >",
		token.ShlAssign, token.ShrAssign, token.Shl, token.Shr,
		token.LtEq, token.GtEq, token.Lt, token.Gt)
	expectTokens(t, "+= -= *= /= %= &= |= ^=",
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.PercentAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign)
	expectTokens(t, ":: -> => && || == != ..",
		token.ColonColon, token.Arrow, token.FatArrow, token.AndAnd,
		token.OrOr, token.EqEq, token.BangEq, token.DotDot)
	expectTokens(t, "#[]?",
		token.Hash, token.LBracket, token.RBracket, token.Question)
}

func TestTrivia(t *testing.T) {
	lx, rep := makeTestLexer("// line\n/// doc\n  /* outer /* inner */ */\tlet")
	tok := lx.Next()
	if tok.Kind != token.KwLet {
		t.Fatalf("got %v, want 'let'", tok.Kind)
	}
	var got []token.TriviaKind
	for _, tr := range tok.Leading {
		got = append(got, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaLineComment, token.TriviaNewline,
		token.TriviaDocLine, token.TriviaNewline,
		token.TriviaSpace, token.TriviaBlockComment, token.TriviaSpace,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("trivia mismatch (-want +got):\n%s", diff)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.codes())
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, rep := makeTestLexer("let /* never closed")
	tokens := collectAllTokens(lx)
	if diff := cmp.Diff([]token.Kind{token.KwLet, token.EOF}, kinds(tokens)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]diag.Code{diag.LexUnterminatedBlockComment}, rep.codes()); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, rep := makeTestLexer("a $ b")
	tokens := collectAllTokens(lx)
	if diff := cmp.Diff([]token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}, kinds(tokens)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]diag.Code{diag.LexUnknownChar}, rep.codes()); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if sp := rep.diagnostics[0].Primary; sp.Start != 2 || sp.End != 3 {
		t.Fatalf("span = %v", sp)
	}
}

func TestInterfaceSlotLine(t *testing.T) {
	expectTokens(t, "layout<input,0> pos: vec3<f32>;",
		token.KwLayout, token.Lt, token.Ident, token.Comma, token.IntLit, token.Gt,
		token.Ident, token.Colon, token.Ident, token.Lt, token.Ident, token.Gt, token.Semicolon)
}

func TestSpansMatchText(t *testing.T) {
	src := "fn main() {\n    let c: vec3<f32> = f32::vec3(1.0, 0.5, .25);\n    return;\n}\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("spans.yasl", []byte(src))
	tokens := lexer.Tokenize(fs.Get(id), lexer.Options{})
	for _, tok := range tokens {
		if got := fs.Text(tok.Span); got != tok.Text {
			t.Fatalf("%v: span text %q != token text %q", tok.Kind, got, tok.Text)
		}
	}
	if last := tokens[len(tokens)-1]; last.Kind != token.EOF || last.Span.Start != uint32(len(src)) {
		t.Fatalf("bad EOF token: %+v", last)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("second Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("Next = %q", n.Text)
	}
	for i := 0; i < 3; i++ {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("Next after end = %v", n.Kind)
		}
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "fn f%d(a: f32) -> f32 {\n    let b = a * %d.0 + glsl::sin(a);\n    return b;\n}\n", i, i)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bench.yasl", []byte(sb.String())))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexer.Tokenize(file, lexer.Options{})
	}
}
