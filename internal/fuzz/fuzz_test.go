package fuzztests

import (
	"context"
	"testing"
	"time"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/driver"
	"yasl/internal/lexer"
	"yasl/internal/parser"
	"yasl/internal/source"
	"yasl/internal/testkit"
	"yasl/internal/token"
)

// emitTimeout bounds one input; longer means a loop in error recovery.
const emitTimeout = 5 * time.Second

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.yasl", clamp(input)))
		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF: %d tokens", len(toks))
		}
		prev := uint32(0)
		for _, tok := range toks {
			if tok.Span.Start < prev || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %s has span %v after offset %d", tok.Kind, tok.Span, prev)
			}
			prev = tok.Span.End
		}
	})
}

// FuzzParseSpans checks that every successfully parsed file keeps its
// item and statement spans nested.
func FuzzParseSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.yasl", clamp(input)))
		builder := ast.NewBuilder(ast.Hints{})
		fileID, err := parser.Parse(file, builder, "yasl_")
		if err != nil {
			return
		}
		if err := testkit.CheckSpanInvariants(builder, fileID, file); err != nil {
			t.Fatalf("span invariant: %v", err)
		}
	})
}

// FuzzEmit runs the whole pipeline. Failures must be classified
// *diag.Error values; successes must carry a line map that agrees with
// the text.
func FuzzEmit(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		type result struct {
			out *driver.Output
			err error
		}
		done := make(chan result, 1)
		go func() {
			out, err := driver.EmitSource(context.Background(), "fuzz.yasl", input, driver.Options{})
			done <- result{out, err}
		}()

		var r result
		select {
		case r = <-done:
		case <-ctx.Done():
			t.Fatalf("pipeline hang: %d byte input %q", len(input), truncate(input, 200))
		}

		if r.err != nil {
			de, ok := diag.AsError(r.err)
			if !ok {
				t.Fatalf("unclassified error %T: %v", r.err, r.err)
			}
			if de.Code().Class() == nil {
				t.Fatalf("error %s has no class", de.Code().ID())
			}
			return
		}
		if err := r.out.SourceMap.Verify(r.out.Text); err != nil {
			t.Fatalf("line map disagrees with output: %v", err)
		}
	})
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
