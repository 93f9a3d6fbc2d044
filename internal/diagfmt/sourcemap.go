package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"yasl/internal/source"
	"yasl/internal/sourcemap"
)

const mapTextWidth = 48

// FormatSourceMap prints each generated line next to the YASL source it
// came from. fs may be nil, in which case only byte spans are shown.
func FormatSourceMap(w io.Writer, sm sourcemap.SourceMap, fs *source.FileSet) error {
	var sb strings.Builder
	gutter := len(fmt.Sprint(sm.Preamble + sm.Len()))
	for i, l := range sm.Lines {
		n := sm.Preamble + i + 1
		text := runewidth.FillRight(runewidth.Truncate(expandTabs(l.String()), mapTextWidth, "…"), mapTextWidth)
		fmt.Fprintf(&sb, "%*d  %s", gutter, n, text)
		switch {
		case !l.HasSpan:
			sb.WriteString("  <synthesized>")
		case fs != nil && fs.Has(l.Span.File):
			start, _ := fs.Resolve(l.Span)
			fmt.Fprintf(&sb, "  %s:%d:%d  %s", fs.Get(l.Span.File).FormatPath("basename", ""),
				start.Line, start.Col, firstLine(fs.Text(l.Span)))
		default:
			fmt.Fprintf(&sb, "  %s", l.Span)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return strings.TrimSpace(s)
}
