// Package buildpipeline builds every shader of a yasl.toml project: GLSL
// generation, backend compilation and mapping of backend errors back onto
// YASL source.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"yasl/internal/backend"
	"yasl/internal/diag"
	"yasl/internal/driver"
	"yasl/internal/glsl"
	"yasl/internal/project"
	"yasl/internal/sourcemap"
)

// BuildRequest configures a project build.
type BuildRequest struct {
	Manifest *project.Manifest
	// Compiler overrides the manifest backend; used by tests and --backend.
	Compiler backend.Compiler
	// SkipCompile stops after writing GLSL.
	SkipCompile bool
	Cache       *driver.DiskCache
	Jobs        int
	Progress    ProgressSink
	// Observer receives front-end phase events of every shader.
	Observer driver.PhaseObserver
}

// ShaderResult is the outcome of one [[shader]] entry.
type ShaderResult struct {
	Shader    project.Shader
	Name      string
	GLSLPath  string
	MapPath   string
	SPIRVPath string
	Output    *driver.Output
	// Err is a *diag.Error; backend failures are translated through the
	// shader's source map and are anchored when a line could be mapped.
	Err     error
	timings Timings
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	Shaders []ShaderResult
	Timings Timings
}

// Failed returns the results that carry an error, in manifest order.
func (r BuildResult) Failed() []ShaderResult {
	var out []ShaderResult
	for _, s := range r.Shaders {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// ErrBuildFailed is returned when at least one shader failed.
var ErrBuildFailed = errors.New("build failed")

// Build runs every shader of the manifest. Shaders are independent: one
// failing does not stop the others. The returned error wraps
// ErrBuildFailed when any shader failed, or is the context error.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil || req.Manifest == nil {
		return result, fmt.Errorf("missing build request")
	}
	m := req.Manifest

	compiler := req.Compiler
	if compiler == nil && !req.SkipCompile {
		c, err := backend.New(m.Config.Project.Backend)
		if err != nil {
			return result, diag.Unanchored(diag.ProjBadBackend, err.Error())
		}
		compiler = c
	}

	if err := os.MkdirAll(m.OutDir(), 0o750); err != nil {
		return result, diag.Unanchored(diag.IOWriteFileError, "failed to create output dir: "+err.Error())
	}

	names := ProgressNames(m)
	emitQueued(req.Progress, names)

	opts := driver.Options{
		Prefix:   m.Config.Project.Prefix,
		GLSL:     glsl.Options{Version: m.Config.Project.GLSLVersion},
		Cache:    req.Cache,
		Observer: req.Observer,
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	result.Shaders = make([]ShaderResult, len(m.Shaders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(m.Shaders))))
	for i, sh := range m.Shaders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := shaderJob{
				manifest: m,
				shader:   sh,
				name:     names[i],
				compiler: compiler,
				skip:     req.SkipCompile,
				opts:     opts,
				sink:     req.Progress,
			}
			result.Shaders[i] = w.run(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	failed := 0
	for i := range result.Shaders {
		for _, stage := range []Stage{StageEmit, StageWrite, StageCompile} {
			if result.Shaders[i].timings.Has(stage) {
				result.Timings.Add(stage, result.Shaders[i].timings.Duration(stage))
			}
		}
		if result.Shaders[i].Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return result, fmt.Errorf("%w: %d of %d shaders", ErrBuildFailed, failed, len(result.Shaders))
	}
	return result, nil
}

type shaderJob struct {
	manifest *project.Manifest
	shader   project.Shader
	name     string
	compiler backend.Compiler
	skip     bool
	opts     driver.Options
	sink     ProgressSink
}

func (w *shaderJob) event(stage Stage, status Status, err error, elapsed time.Duration) {
	if w.sink == nil {
		return
	}
	w.sink.OnEvent(Event{File: w.name, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}

func (w *shaderJob) run(ctx context.Context) ShaderResult {
	res := ShaderResult{
		Shader:    w.shader,
		Name:      w.name,
		GLSLPath:  w.manifest.GLSLPath(w.shader),
		SPIRVPath: w.manifest.SPIRVPath(w.shader),
	}
	res.MapPath = res.GLSLPath + ".map"

	start := time.Now()
	w.event(StageEmit, StatusWorking, nil, 0)
	out, err := driver.Emit(ctx, w.shader.Path, w.opts)
	res.Output = out
	res.timings.Set(StageEmit, time.Since(start))
	if err != nil {
		res.Err = err
		w.event(StageEmit, StatusError, err, res.timings.Duration(StageEmit))
		return res
	}
	w.event(StageEmit, StatusDone, nil, res.timings.Duration(StageEmit))

	start = time.Now()
	w.event(StageWrite, StatusWorking, nil, 0)
	if err := w.write(res, out); err != nil {
		res.Err = err
		w.event(StageWrite, StatusError, err, time.Since(start))
		return res
	}
	res.timings.Set(StageWrite, time.Since(start))
	w.event(StageWrite, StatusDone, nil, res.timings.Duration(StageWrite))

	if w.skip {
		return res
	}

	start = time.Now()
	w.event(StageCompile, StatusWorking, nil, 0)
	spirv, err := w.compiler.Compile(ctx, out.Text, w.shader.Kind)
	res.timings.Set(StageCompile, time.Since(start))
	if err != nil {
		res.Err = translate(err, out.SourceMap)
		w.event(StageCompile, StatusError, res.Err, res.timings.Duration(StageCompile))
		return res
	}
	if err := os.WriteFile(res.SPIRVPath, spirv, 0o600); err != nil {
		res.Err = writeErr(res.SPIRVPath, err)
		w.event(StageCompile, StatusError, res.Err, res.timings.Duration(StageCompile))
		return res
	}
	w.event(StageCompile, StatusDone, nil, res.timings.Duration(StageCompile))
	return res
}

func (w *shaderJob) write(res ShaderResult, out *driver.Output) error {
	if err := os.MkdirAll(filepath.Dir(res.GLSLPath), 0o750); err != nil {
		return writeErr(res.GLSLPath, err)
	}
	if err := os.WriteFile(res.GLSLPath, []byte(out.Text), 0o600); err != nil {
		return writeErr(res.GLSLPath, err)
	}
	if err := sourcemap.WriteFile(res.MapPath, out.SourceMap, w.shader.Path); err != nil {
		return writeErr(res.MapPath, err)
	}
	return nil
}

// translate maps a backend failure onto YASL source. Errors that are not a
// compile log (missing tool, cancellation) pass through unchanged.
func translate(err error, sm sourcemap.SourceMap) error {
	var ce *backend.CompileError
	if errors.As(err, &ce) {
		return sm.Translate(ce.Log)
	}
	return err
}

func writeErr(path string, err error) error {
	return diag.Unanchored(diag.IOWriteFileError, "failed to write "+path+": "+err.Error())
}
