package glsl

import (
	"strings"

	"yasl/internal/source"
)

// Line is one generated output line. Synthesized lines have no span.
type Line struct {
	Text       string
	Span       source.Span
	HasSpan    bool
	Terminated bool // a trailing ';' is appended when rendering
}

// String renders the line without its newline.
func (l Line) String() string {
	if l.Terminated {
		return l.Text + ";"
	}
	return l.Text
}

// Node is either a Line or a *Fragment.
type Node interface {
	isNode()
}

func (Line) isNode()      {}
func (*Fragment) isNode() {}

// Fragment is an ordered group of lines and nested fragments, in emission
// order.
type Fragment struct {
	Nodes []Node
}

func (f *Fragment) line(text string, sp source.Span, terminated bool) {
	f.Nodes = append(f.Nodes, Line{Text: text, Span: sp, HasSpan: true, Terminated: terminated})
}

func (f *Fragment) add(child *Fragment) {
	if child != nil {
		f.Nodes = append(f.Nodes, child)
	}
}

// Walk visits every line depth-first in emission order.
func (f *Fragment) Walk(visit func(Line)) {
	if f == nil {
		return
	}
	for _, n := range f.Nodes {
		switch n := n.(type) {
		case Line:
			visit(n)
		case *Fragment:
			n.Walk(visit)
		}
	}
}

// Render concatenates all lines, each followed by '\n'.
func (f *Fragment) Render() string {
	var sb strings.Builder
	f.Walk(func(l Line) {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	})
	return sb.String()
}
