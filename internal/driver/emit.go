package driver

import (
	"context"
	"fmt"

	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/glsl"
	"yasl/internal/observ"
	"yasl/internal/parser"
	"yasl/internal/sema"
	"yasl/internal/source"
	"yasl/internal/sourcemap"
)

type Options struct {
	// Prefix is prepended to user identifiers; parser.DefaultPrefix when empty.
	Prefix string
	// GLSL controls the preamble and entry stub. GLSL.Prefix is always
	// overwritten with Prefix so the stub calls the renamed entry.
	GLSL glsl.Options
	// MaxDiagnostics bounds warnings collected per file.
	MaxDiagnostics int
	// Cache, when set, short-circuits files whose normalised text was
	// already generated under the same options.
	Cache *DiskCache
	// Observer receives phase boundaries.
	Observer PhaseObserver
	// Jobs limits EmitDir parallelism; GOMAXPROCS when <= 0.
	Jobs int
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = parser.DefaultPrefix
	}
	if o.GLSL.Version == 0 {
		o.GLSL.Version = glsl.DefaultVersion
	}
	if o.GLSL.Entry == "" {
		o.GLSL.Entry = glsl.DefaultEntry
	}
	o.GLSL.Prefix = o.Prefix
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// Output is the result of running the whole pipeline on one file.
// On a pipeline error Emit still returns an Output with FileSet and File
// set so the error can be rendered against the source.
type Output struct {
	Path      string
	FileSet   *source.FileSet
	File      *source.File
	Text      string
	SourceMap sourcemap.SourceMap
	// Warnings from type resolution, in report order.
	Warnings []diag.Diagnostic
	Cached   bool
	Timings  observ.Report
}

// Emit runs Parse, Resolve and Generate on path. The pipeline is
// fail-fast: the first lexical or syntax error is returned as a
// *diag.Error and nothing is generated.
func Emit(ctx context.Context, path string, opts Options) (*Output, error) {
	opts = opts.withDefaults()
	pt := newPhaseTimer(path, opts.Observer)

	idx := pt.begin(PhaseLoad)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	pt.end(idx, "")
	if err != nil {
		return nil, loadError(path, err)
	}
	return emitFile(ctx, fs, fs.Get(fileID), opts, pt)
}

// EmitSource is Emit for in-memory text.
func EmitSource(ctx context.Context, name string, content []byte, opts Options) (*Output, error) {
	opts = opts.withDefaults()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return emitFile(ctx, fs, fs.Get(fileID), opts, newPhaseTimer(name, opts.Observer))
}

func emitFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options, pt *phaseTimer) (*Output, error) {
	out := &Output{Path: file.Path, FileSet: fs, File: file}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	key := cacheKey(file, opts)
	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.valid() {
			out.Text = payload.Text
			out.SourceMap = payload.SourceMap
			out.Warnings = payload.Warnings
			out.Cached = true
			out.Timings = pt.report()
			return out, nil
		}
	}

	idx := pt.begin(PhaseParse)
	builder := ast.NewBuilder(ast.Hints{})
	fid, err := parser.Parse(file, builder, opts.Prefix)
	if err != nil {
		pt.end(idx, "failed")
		out.Timings = pt.report()
		return out, err
	}
	pt.end(idx, plural(len(builder.Files.Get(fid).Items), "item"))
	if err := ctx.Err(); err != nil {
		return out, err
	}

	idx = pt.begin(PhaseResolve)
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := sema.Check(builder, fid, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	pt.end(idx, plural(bag.Len(), "warning"))
	out.Warnings = bag.Items()

	idx = pt.begin(PhaseGenerate)
	sh, err := glsl.Generate(builder, fid, &res, opts.GLSL)
	pt.end(idx, "")
	if err != nil {
		out.Timings = pt.report()
		return out, err
	}

	idx = pt.begin(PhaseMap)
	out.Text = sh.Text
	out.SourceMap = sourcemap.Build(sh)
	pt.end(idx, plural(len(out.SourceMap.Lines), "line"))
	out.Timings = pt.report()

	if opts.Cache != nil {
		// кеш best-effort: ошибка записи не ломает компиляцию
		_ = opts.Cache.Put(key, &DiskPayload{
			Schema:    diskCacheSchemaVersion,
			Path:      file.Path,
			Text:      out.Text,
			SourceMap: out.SourceMap,
			Warnings:  out.Warnings,
		})
	}
	return out, nil
}

// phaseTimer couples an observ.Timer with the optional observer.
type phaseTimer struct {
	path     string
	timer    *observ.Timer
	observer PhaseObserver
}

func newPhaseTimer(path string, observer PhaseObserver) *phaseTimer {
	return &phaseTimer{path: path, timer: observ.NewTimer(), observer: observer}
}

func (t *phaseTimer) begin(name string) int {
	if t.observer != nil {
		t.observer(PhaseEvent{Path: t.path, Name: name, Status: PhaseStart})
	}
	return t.timer.Begin(name)
}

func (t *phaseTimer) end(idx int, note string) {
	p := t.timer.End(idx, note)
	if t.observer != nil {
		t.observer(PhaseEvent{Path: t.path, Name: p.Name, Status: PhaseEnd, Elapsed: p.Dur})
	}
}

func (t *phaseTimer) report() observ.Report {
	return t.timer.Report()
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
