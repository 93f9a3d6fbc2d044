package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"yasl/internal/diag"
	"yasl/internal/diagfmt"
	"yasl/internal/driver"
	"yasl/internal/source"
	"yasl/internal/trace"
)

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// cliEnv collects the persistent flags every command consults.
type cliEnv struct {
	color       bool
	quiet       bool
	timings     bool
	maxDiag     int
	diagFormat  string
	pathMode    diagfmt.PathMode
	stdout      io.Writer
	stderr      io.Writer
	tracer      trace.Tracer
	diagnostics *diagfmt.DiagnosticsOutput // collected for --diagnostics=json
}

func readEnv(cmd *cobra.Command) (*cliEnv, error) {
	pf := cmd.Root().PersistentFlags()
	colorFlag, err := pf.GetString("color")
	if err != nil {
		return nil, err
	}
	env := &cliEnv{stdout: cmd.OutOrStdout(), stderr: cmd.ErrOrStderr()}
	switch colorFlag {
	case "on":
		env.color = true
	case "off":
	case "auto":
		env.color = isTerminal(env.stderr)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	if env.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, err
	}
	if env.timings, err = pf.GetBool("timings"); err != nil {
		return nil, err
	}
	if env.maxDiag, err = pf.GetInt("max-diagnostics"); err != nil {
		return nil, err
	}
	if env.diagFormat, err = pf.GetString("diagnostics"); err != nil {
		return nil, err
	}
	switch env.diagFormat {
	case "pretty", "short", "golden":
	case "json":
		env.diagnostics = &diagfmt.DiagnosticsOutput{Diagnostics: []diagfmt.DiagnosticJSON{}}
	default:
		return nil, fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|golden|json)", env.diagFormat)
	}
	pathMode, err := pf.GetString("path-mode")
	if err != nil {
		return nil, err
	}
	env.pathMode = diagfmt.ParsePathMode(pathMode)
	env.tracer = trace.FromContext(cmd.Context())
	return env, nil
}

func (e *cliEnv) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: e.color, Context: 1, PathMode: e.pathMode, ShowNotes: true}
}

func (e *cliEnv) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{IncludePositions: true, PathMode: e.pathMode, IncludeNotes: true}
}

// driverOptions fills the options shared by emit, check and parse.
func (e *cliEnv) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: e.maxDiag,
		Observer:       trace.PhaseObserver(e.tracer),
	}
}

// reportBag prints every diagnostic in bag; warnings are dropped with --quiet.
func (e *cliEnv) reportBag(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if e.quiet && !bag.HasErrors() {
		return
	}
	if e.quiet {
		filtered := diag.NewBag(bag.Len())
		for _, d := range bag.Items() {
			if d.Severity == diag.SevError {
				filtered.Add(d)
			}
		}
		bag = filtered
	}
	switch e.diagFormat {
	case "json":
		out := diagfmt.BuildDiagnosticsOutput(bag, fs, e.jsonOpts())
		e.diagnostics.Diagnostics = append(e.diagnostics.Diagnostics, out.Diagnostics...)
		e.diagnostics.Count = len(e.diagnostics.Diagnostics)
	case "short":
		diagfmt.Short(e.stderr, bag, fs, e.pathMode)
	case "golden":
		if text := diag.FormatGoldenDiagnostics(bag.Items(), fs, true); text != "" {
			fmt.Fprintln(e.stderr, text)
		}
	default:
		diagfmt.Pretty(e.stderr, bag, fs, e.prettyOpts())
	}
}

func (e *cliEnv) reportWarnings(warnings []diag.Diagnostic, fs *source.FileSet) {
	if len(warnings) == 0 || e.quiet {
		return
	}
	bag := diag.NewBag(len(warnings))
	for _, w := range warnings {
		bag.Add(w)
	}
	e.reportBag(bag, fs)
}

// reportError prints a pipeline error. fs may be nil for errors that were
// never anchored (missing file, manifest problems).
func (e *cliEnv) reportError(err error, fs *source.FileSet) {
	if err == nil {
		return
	}
	switch e.diagFormat {
	case "json":
		diagfmt.AppendError(e.diagnostics, err, fs, e.jsonOpts())
	case "short":
		diagfmt.ShortError(e.stderr, err, fs, e.pathMode)
	case "golden":
		fmt.Fprintln(e.stderr, diag.FormatError(err, fs))
	default:
		diagfmt.PrettyError(e.stderr, err, fs, e.prettyOpts())
	}
}

// flush writes diagnostics collected in JSON mode to stdout.
func (e *cliEnv) flush() error {
	if e.diagnostics == nil {
		return nil
	}
	return diagfmt.WriteJSON(e.stdout, *e.diagnostics)
}
