// Package sourcemap flattens generated GLSL into a line table and maps
// backend diagnostics back onto YASL source.
package sourcemap

import (
	"fmt"
	"strings"

	"yasl/internal/glsl"
)

// SourceMap is the ordered list of generated body lines. Lines[i] is output
// line Preamble+i+1 (1-based).
type SourceMap struct {
	Lines    []glsl.Line `msgpack:"lines"`
	Preamble int         `msgpack:"preamble"`
}

// Squash flattens a fragment tree depth-first into emission order.
func Squash(f *glsl.Fragment) []glsl.Line {
	var lines []glsl.Line
	f.Walk(func(l glsl.Line) {
		lines = append(lines, l)
	})
	return lines
}

// Build returns the source map of a generated shader.
func Build(sh *glsl.Shader) SourceMap {
	return SourceMap{
		Lines:    Squash(sh.Body),
		Preamble: sh.Preamble,
	}
}

func (m SourceMap) Len() int {
	return len(m.Lines)
}

// Lookup returns the body line that produced the 1-based output line n.
func (m SourceMap) Lookup(n int) (glsl.Line, bool) {
	idx := n - m.Preamble - 1
	if idx < 0 || idx >= len(m.Lines) {
		return glsl.Line{}, false
	}
	return m.Lines[idx], true
}

// Verify checks that every entry renders to the output line it claims.
func (m SourceMap) Verify(text string) error {
	out := strings.Split(text, "\n")
	for i, l := range m.Lines {
		n := m.Preamble + i
		if n >= len(out) {
			return fmt.Errorf("sourcemap: entry %d points past the end of output (%d lines)", i, len(out))
		}
		if got := l.String(); got != out[n] {
			return fmt.Errorf("sourcemap: entry %d is %q but output line %d is %q", i, got, n+1, out[n])
		}
	}
	return nil
}
