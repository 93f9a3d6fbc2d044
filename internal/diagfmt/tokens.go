package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"yasl/internal/source"
	"yasl/internal/token"
)

// TokenJSON is one token in `yasl tokenize --format json`.
type TokenJSON struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Line    uint32   `json:"line"`
	Col     uint32   `json:"col"`
	Leading []string `json:"leading,omitempty"`
}

func triviaKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	kinds := make([]string, len(tok.Leading))
	for i, tr := range tok.Leading {
		kinds[i] = tr.Kind.String()
	}
	return kinds
}

// FormatTokensPretty prints one token per line, stopping after EOF.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%4d  %-14s %d:%d-%d:%d", i+1, tok.Kind, start.Line, start.Col, end.Line, end.Col)
		if tok.Text != "" {
			fmt.Fprintf(&sb, "  %q", tok.Text)
		}
		if kinds := triviaKinds(tok); kinds != nil {
			fmt.Fprintf(&sb, "  [%s]", strings.Join(kinds, " "))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, TokenJSON{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Line:    start.Line,
			Col:     start.Col,
			Leading: triviaKinds(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
