package diagfmt

import (
	"encoding/json"
	"io"

	"yasl/internal/diag"
	"yasl/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is a single diagnostic. Location is absent for errors
// that could not be anchored to YASL source.
type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Class    string        `json:"class,omitempty"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) *LocationJSON {
	if fs == nil || !fs.Has(span.File) {
		return nil
	}
	loc := &LocationJSON{
		File:      formatPath(fs.Get(span.File), fs, opts.PathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func makeDiagnostic(d diag.Diagnostic, anchored bool, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
	}
	if class := d.Code.Class(); class != nil {
		out.Class = class.Error()
	}
	if anchored {
		out.Location = makeLocation(d.Primary, fs, opts)
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			nj := NoteJSON{Message: n.Msg}
			if loc := makeLocation(n.Span, fs, opts); loc != nil {
				nj.Location = *loc
			}
			out.Notes = append(out.Notes, nj)
		}
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, makeDiagnostic(d, true, fs, opts))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// AppendError adds a pipeline error to out. Plain errors become an
// unclassified ERROR entry without a code.
func AppendError(out *DiagnosticsOutput, err error, fs *source.FileSet, opts JSONOpts) {
	if err == nil {
		return
	}
	if de, ok := diag.AsError(err); ok {
		out.Diagnostics = append(out.Diagnostics, makeDiagnostic(de.Diag, de.Anchored(), fs, opts))
	} else {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{Severity: diag.SevError.String(), Message: err.Error()})
	}
	out.Count = len(out.Diagnostics)
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return WriteJSON(w, BuildDiagnosticsOutput(bag, fs, opts))
}

func WriteJSON(w io.Writer, out DiagnosticsOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
