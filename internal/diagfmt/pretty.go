package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"yasl/internal/diag"
	"yasl/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, loc, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		loc:    color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.loc, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, true, fs, opts)
	}
}

// PrettyError renders a single pipeline error. Unanchored errors (backend
// output that could not be mapped, missing tools, manifest problems) get a
// header only; errors that are not *diag.Error are printed as plain text.
func PrettyError(w io.Writer, err error, fs *source.FileSet, opts PrettyOpts) {
	if err == nil {
		return
	}
	de, ok := diag.AsError(err)
	if !ok {
		p := newPalette(opts.Color)
		fmt.Fprintf(w, "%s: %s\n", p.err.Sprint("error"), err.Error())
		return
	}
	writePretty(w, de.Diag, de.Anchored(), fs, opts)
}

func writePretty(w io.Writer, d diag.Diagnostic, anchored bool, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	sev := p.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID())

	if !anchored || fs == nil || !fs.Has(d.Primary.File) {
		fmt.Fprintf(w, "%s: %s\n", sev, indentRest(d.Message, "  "))
		return
	}

	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s: %s: %s\n", p.loc.Sprint(loc), sev, d.Message)
	writeSnippet(w, p, fs, d.Primary, int(opts.Context))

	if opts.ShowNotes {
		for _, n := range d.Notes {
			label := p.note.Sprint("note")
			if fs.Has(n.Span.File) {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s: %s (%s:%d:%d)\n", label, n.Msg,
					formatPath(fs.Get(n.Span.File), fs, opts.PathMode), ns.Line, ns.Col)
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", label, n.Msg)
		}
	}
}

func writeSnippet(w io.Writer, p palette, fs *source.FileSet, sp source.Span, context int) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	first := int(start.Line) - max(context, 0)
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + max(context, 0)
	gutterWidth := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text := file.GetLine(uint32(n))
		if n > int(start.Line) && text == "" {
			break
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), expandTabs(text))
		if n != int(start.Line) {
			continue
		}
		// подчёркивание в колонках экрана: табы и широкие символы
		prefix := columnPrefix(text, int(start.Col)-1)
		underEnd := len(text)
		if end.Line == start.Line {
			underEnd = min(int(end.Col)-1, len(text))
		}
		marked := ""
		if underEnd > int(start.Col)-1 {
			marked = text[int(start.Col)-1 : underEnd]
		}
		width := max(runewidth.StringWidth(expandTabs(marked)), 1)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix))),
			p.caret.Sprint(underline))
	}
}

func columnPrefix(line string, byteCol int) string {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	if byteCol < 0 {
		byteCol = 0
	}
	return line[:byteCol]
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func indentRest(msg, indent string) string {
	return strings.ReplaceAll(strings.TrimRight(msg, "\n"), "\n", "\n"+indent)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeAuto, PathModeAbsolute, PathModeBasename:
		return f.FormatPath(mode.String(), "")
	}
	return f.Path
}

// Short prints one line per diagnostic: path:line:col: SEV CODE: message.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		writeShort(w, d, true, fs, mode)
	}
}

// ShortError is Short for a single pipeline error.
func ShortError(w io.Writer, err error, fs *source.FileSet, mode PathMode) {
	if err == nil {
		return
	}
	de, ok := diag.AsError(err)
	if !ok {
		fmt.Fprintf(w, "error: %s\n", err.Error())
		return
	}
	writeShort(w, de.Diag, de.Anchored(), fs, mode)
}

func writeShort(w io.Writer, d diag.Diagnostic, anchored bool, fs *source.FileSet, mode PathMode) {
	msg := strings.ReplaceAll(strings.TrimSpace(d.Message), "\n", " ")
	if !anchored || fs == nil || !fs.Has(d.Primary.File) {
		fmt.Fprintf(w, "%s %s: %s\n", d.Severity, d.Code.ID(), msg)
		return
	}
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(fs.Get(d.Primary.File), fs, mode), start.Line, start.Col, d.Severity, d.Code.ID(), msg)
}
