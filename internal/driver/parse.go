package driver

import (
	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/parser"
	"yasl/internal/sema"
	"yasl/internal/source"
)

// Analysis is the front half of the pipeline for one file: parsed arenas
// and, after Check, the resolved types. Bag holds the single fail-fast
// error (if any) followed by semantic warnings.
type Analysis struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	// Types is nil until Check succeeds.
	Types *sema.Result
	Bag   *diag.Bag
}

// Err returns the first error of the analysis or nil.
func (a *Analysis) Err() error {
	if a == nil || a.Bag == nil {
		return nil
	}
	if err := a.Bag.FirstError(); err != nil {
		return err
	}
	return nil
}

// Parse loads and parses path. A load failure is returned as an error; a
// syntax error lands in Analysis.Bag so callers can still render it.
func Parse(path string, opts Options) (*Analysis, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, loadError(path, err)
	}
	return parseFile(fs, fs.Get(fileID), opts), nil
}

// Check parses path and runs type resolution when the parse succeeded.
func Check(path string, opts Options) (*Analysis, error) {
	a, err := Parse(path, opts)
	if err != nil {
		return nil, err
	}
	checkAnalysis(a)
	return a, nil
}

// CheckSource is Check for in-memory text, used by the REPL and tests.
func CheckSource(name string, content []byte, opts Options) *Analysis {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	a := parseFile(fs, fs.Get(fileID), opts)
	checkAnalysis(a)
	return a
}

func parseFile(fs *source.FileSet, file *source.File, opts Options) *Analysis {
	opts = opts.withDefaults()
	builder := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(opts.MaxDiagnostics)

	fid, err := parser.Parse(file, builder, opts.Prefix)
	if err != nil {
		if de, ok := diag.AsError(err); ok {
			bag.Add(de.Diag)
		}
	}
	return &Analysis{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  fid,
		Bag:     bag,
	}
}

func checkAnalysis(a *Analysis) {
	if a.Bag.HasErrors() {
		return
	}
	res := sema.Check(a.Builder, a.FileID, sema.Options{Reporter: diag.BagReporter{Bag: a.Bag}})
	a.Types = &res
}
